// internal/state/menu_state.go
package state

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-knife-hit/internal/config"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/storage"
	"go-knife-hit/internal/ui"
)

// MenuState — сцена "HomeScene": рекорд, выбор ножа, кнопка игры
type MenuState struct {
	scenes    *Scenes
	env       *Env
	bestScore int

	playButton  *ui.Button
	prevButton  *ui.Button
	nextButton  *ui.Button
	soundButton *ui.Button
}

func NewMenuState(scenes *Scenes) *MenuState {
	cx := config.ScreenWidth / 2
	return &MenuState{
		scenes:      scenes,
		env:         scenes.env,
		playButton:  ui.NewButton(cx-140, 700, 280, 80, "PLAY", config.ButtonAccentColor),
		prevButton:  ui.NewButton(cx-190, 450, 60, 60, "<", config.ButtonColor),
		nextButton:  ui.NewButton(cx+130, 450, 60, 60, ">", config.ButtonColor),
		soundButton: ui.NewButton(config.ScreenWidth-84, 20, 64, 40, "SND", config.ButtonColor),
	}
}

func (m *MenuState) Enter() {
	best, err := m.env.Store.HighScore()
	if err != nil {
		logging.Warnf("High score not loaded: %v", err)
	}
	m.bestScore = best
}

func (m *MenuState) Update(deltaTime float64) {
	m.env.PollLibrary()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.play()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		m.cycleSkin(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		m.cycleSkin(1)
	}

	x, y, ok := justPressedPointer()
	if !ok {
		return
	}
	switch {
	case m.playButton.Contains(x, y):
		m.play()
	case m.prevButton.Contains(x, y):
		m.prevButton.Click()
		m.cycleSkin(-1)
	case m.nextButton.Contains(x, y):
		m.nextButton.Click()
		m.cycleSkin(1)
	case m.soundButton.Contains(x, y):
		m.soundButton.Click()
		m.toggleSound()
	}
}

func (m *MenuState) play() {
	m.playButton.Click()
	if m.env.Sound != nil {
		m.env.Sound.PlayButton()
	}
	m.scenes.LoadScene(config.GameSceneName)
}

// cycleSkin листает ножи и запоминает выбор
func (m *MenuState) cycleSkin(step int) {
	skins := m.env.Library.Skins
	if len(skins) == 0 {
		return
	}
	idx := 0
	for i, s := range skins {
		if s.ID == m.env.SkinID {
			idx = i
			break
		}
	}
	idx = (idx + step + len(skins)) % len(skins)
	m.env.SkinID = skins[idx].ID
	if m.env.Sound != nil {
		m.env.Sound.PlayButton()
	}
	if err := m.env.Store.SetPreference(storage.PrefKnifeSkin, m.env.SkinID); err != nil {
		logging.Warnf("Knife skin not saved: %v", err)
	}
}

func (m *MenuState) toggleSound() {
	if m.env.Sound == nil {
		return
	}
	enabled := !m.env.Sound.Enabled()
	m.env.Sound.SetEnabled(enabled)
	if err := m.env.Store.SetPreference(storage.PrefSound, strconv.FormatBool(enabled)); err != nil {
		logging.Warnf("Sound preference not saved: %v", err)
	}
	m.env.Sound.PlayButton()
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := m.env.Fonts
	cx := float64(config.ScreenWidth) / 2

	ui.DrawOutlinedText(screen, "KNIFE HIT", fonts.Title, cx, 180, config.TextLightColor, config.TextDarkColor, 3)
	ui.DrawText(screen, "BEST "+strconv.Itoa(m.bestScore), fonts.Regular, cx, 270, config.NewBestColor, text.AlignCenter)

	skin := m.env.Library.Skin(m.env.SkinID)
	m.env.Renderer.DrawKnifeIcon(screen, cx, 480, 160, skin)
	ui.DrawText(screen, skin.Name, fonts.Regular, cx, 600, config.TextLightColor, text.AlignCenter)

	m.prevButton.Draw(screen, fonts.Large)
	m.nextButton.Draw(screen, fonts.Large)
	m.playButton.Draw(screen, fonts.Large)

	m.soundButton.Text = "SND"
	m.soundButton.BgColor = config.ButtonColor
	if m.env.Sound != nil && !m.env.Sound.Enabled() {
		m.soundButton.Text = "OFF"
		m.soundButton.BgColor = config.KnifeCounterUsedColor
	}
	m.soundButton.Draw(screen, fonts.Small)
}

func (m *MenuState) Exit() {}
