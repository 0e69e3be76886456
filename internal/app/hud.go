// internal/app/hud.go
package app

import (
	"fmt"
	"image/color"
	"strconv"

	"go-knife-hit/internal/config"
	"go-knife-hit/internal/system"
)

// StageIcon — одна иконка в полоске стадий
type StageIcon struct {
	Visible bool
	Active  bool
}

// AdPanel — данные окна "досмотри рекламу и продолжи"
type AdPanel struct {
	Score     string
	Fill      float64 // 1..0
	Remaining float64
	Waiting   bool // Игрок согласился, ждём ролик
}

// GameOverPanel — итоги партии
type GameOverPanel struct {
	Score   string
	Stage   string
	NewBest bool
}

// HUD — всё, что нужно виджетам для отрисовки кадра
type HUD struct {
	Score      string
	Apples     int
	BestScore  int
	StageLabel string
	StageColor color.RGBA
	StageIcons []StageIcon

	Banner      string  // Пусто, если баннера нет
	BannerLeft  float64 // Секунд до конца баннера
	KnivesTotal int
	KnivesUsed  int

	AdPanel       *AdPanel
	GameOverPanel *GameOverPanel
}

func (g *Game) HUD() HUD {
	h := HUD{
		Score:     strconv.Itoa(g.Session.Score),
		Apples:    g.Session.Apples,
		BestScore: g.Session.HighScore,
	}
	h.StageLabel, h.StageColor, h.StageIcons = StageStrip(g.Session.Stage, g.Sequencer.BossName(), config.StageIconCount)

	switch g.Sequencer.Phase() {
	case system.SeqBossIntro:
		h.Banner = "BOSS FIGHT!"
		h.BannerLeft = g.Sequencer.BannerRemaining()
	case system.SeqBossOutro:
		h.Banner = "BOSS DEFEATED!"
		h.BannerLeft = g.Sequencer.BannerRemaining()
	}

	if target := g.Sequencer.Current(); target != nil {
		h.KnivesTotal = target.TotalKnife
		h.KnivesUsed = g.Knives.Spawned()
		if g.Knives.Staged() != nil {
			h.KnivesUsed--
		}
	}

	if g.Gate.Active() {
		h.AdPanel = &AdPanel{
			Score:     strconv.Itoa(g.Session.Score),
			Fill:      g.Gate.Fill(),
			Remaining: g.Gate.Remaining(),
			Waiting:   g.Gate.Phase() == system.GateAwaitingAd,
		}
	}
	if g.gameOverShown {
		h.GameOverPanel = &GameOverPanel{
			Score:   strconv.Itoa(g.Session.Score),
			Stage:   fmt.Sprintf("Stage %d", g.Session.Stage),
			NewBest: g.newBest,
		}
	}
	return h
}

// StageStrip строит подпись и иконки стадии. На стадии босса видна
// только последняя иконка; иначе иконка i активна, пока i < stage % n.
func StageStrip(stage int, bossName string, n int) (string, color.RGBA, []StageIcon) {
	icons := make([]StageIcon, n)
	if n == 0 {
		return fmt.Sprintf("STAGE %d", stage), config.StageIconNormalColor, icons
	}
	if stage%config.BossEvery == 0 {
		icons[n-1] = StageIcon{Visible: true, Active: true}
		return "Boss : " + bossName, config.StageIconActiveColor, icons
	}
	for i := range icons {
		icons[i] = StageIcon{Visible: true, Active: i < stage%n}
	}
	return fmt.Sprintf("STAGE %d", stage), config.StageIconNormalColor, icons
}
