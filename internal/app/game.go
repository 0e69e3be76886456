// internal/app/game.go
package app

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"go-knife-hit/internal/ads"
	"go-knife-hit/internal/component"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/event"
	"go-knife-hit/internal/interfaces"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/metrics"
	"go-knife-hit/internal/session"
	"go-knife-hit/internal/storage"
	"go-knife-hit/internal/system"
	"go-knife-hit/internal/utils"
)

// Options — зависимости игровой сцены
type Options struct {
	Context   context.Context
	Settings  config.Settings
	Library   *defs.Library
	Ads       interfaces.RewardRequester
	Sound     interfaces.SoundPlayer
	Store     storage.Store
	Navigator interfaces.Navigator
	Metrics   *metrics.Collector // может быть nil
	SkinID    string
}

// Game ведёт одну партию: мишени, ножи, проигрыш и продолжение за
// рекламу.
type Game struct {
	Session         *session.Session
	Library         *defs.Library
	Sequencer       *system.StageSequencer
	Knives          *system.KnifeSystem
	Flight          *system.FlightSystem
	Gate            *system.AdGate
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	ctx      context.Context
	settings config.Settings
	ads      interfaces.RewardRequester
	sound    interfaces.SoundPlayer
	store    storage.Store
	nav      interfaces.Navigator

	pendingAd     uuid.UUID
	gameOverShown bool
	newBest       bool
	gameTime      float64
}

// NewGame собирает сцену. Партия начинается вызовом StartGame.
func NewGame(opts Options) *Game {
	if opts.Library == nil {
		opts.Library = defs.Default()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.SkinID == "" {
		opts.SkinID = opts.Settings.KnifeSkin
	}

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Settings.Seed)
	sess := session.New(0, opts.Settings.DebugStage)

	g := &Game{
		Session:         sess,
		Library:         opts.Library,
		Sequencer:       system.NewStageSequencer(sess, opts.Library, rng, eventDispatcher),
		Knives:          system.NewKnifeSystem(eventDispatcher, opts.Library.Skin(opts.SkinID).ID),
		Flight:          system.NewFlightSystem(),
		Gate:            system.NewAdGate(sess, eventDispatcher),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		ctx:             opts.Context,
		settings:        opts.Settings,
		ads:             opts.Ads,
		sound:           opts.Sound,
		store:           opts.Store,
		nav:             opts.Navigator,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeMany(listener,
		event.TargetSpawned, event.BossFightStarted, event.BossFightEnded, event.AdLapsed,
	)
	if opts.Metrics != nil {
		opts.Metrics.Subscribe(eventDispatcher)
	}
	return g
}

// GameEventListener связывает события систем с действиями сцены
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetSpawned:
		l.game.SetupGame()
	case event.BossFightStarted:
		l.game.playRandom(config.BossFightStartSounds)
	case event.BossFightEnded:
		l.game.playRandom(config.BossFightEndSounds)
	case event.AdLapsed:
		l.game.CancelAdsShow()
	}
}

// StartGame начинает новую партию с первой (или отладочной) стадии
func (g *Game) StartGame() {
	highScore, err := g.store.HighScore()
	if err != nil {
		logging.Warnf("High score not loaded: %v", err)
	}
	g.Session = session.New(highScore, g.settings.DebugStage)
	g.Gate.Reset(g.Session)
	g.Knives.Reset()
	g.Flight.Clear()
	g.pendingAd = uuid.Nil
	g.gameOverShown = false
	g.newBest = false
	g.gameTime = 0
	logging.Infof("Game started: session %s, stage %d, best %d", g.Session.ID, g.Session.Stage, highScore)
	g.Sequencer.Begin(g.Session)
}

// SetupGame готовит выдачу ножей под только что появившуюся мишень
func (g *Game) SetupGame() {
	g.Knives.Reset()
	g.Knives.Request()
}

func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.pollAds()

	g.Sequencer.Update(deltaTime)
	target := g.Sequencer.Current()
	if target != nil {
		target.Update(deltaTime)
	}

	total := 0
	if target != nil {
		total = target.TotalKnife
	}
	g.Knives.Update(deltaTime, total, g.Session.IsGameOver)

	for _, impact := range g.Flight.Update(deltaTime, target) {
		g.handleImpact(impact, target)
	}

	g.Gate.Update(deltaTime)
}

// Tap бросает нож, если он на позиции. Во время баннеров и после
// проигрыша ничего не делает.
func (g *Game) Tap() bool {
	if g.Session.IsGameOver || g.Sequencer.Phase() != system.SeqPlaying {
		return false
	}
	knife := g.Knives.Throw()
	if knife == nil {
		return false
	}
	g.Flight.Launch(knife)
	g.play(config.SfxKnifeThrow)
	return true
}

func (g *Game) handleImpact(impact system.Impact, target *component.Target) {
	switch impact.Kind {
	case system.ImpactStuck:
		g.Session.AddScore(config.KnifeHitScore)
		if impact.Apples > 0 {
			g.Session.Apples += impact.Apples
			g.play(config.SfxApple)
		}
		g.play(config.SfxKnifeHit)
		g.EventDispatcher.Dispatch(event.Event{Type: event.KnifeStuck, Data: impact})
		if target.Cleared() {
			g.play(config.SfxTargetDone)
			g.NextLevel()
		}
	case system.ImpactCollided:
		g.play(config.SfxKnifeClash)
		g.EventDispatcher.Dispatch(event.Event{Type: event.KnifeCollided, Data: impact})
		g.GameOver()
	case system.ImpactDropped:
		// Нож не долетел до мишени и не считается потраченным
		g.Knives.Refund()
	}
}

// NextLevel — мишень заполнена ножами
func (g *Game) NextLevel() {
	g.Sequencer.NextLevel()
}

// GameOver — нож попал в нож. Один раз за партию предлагается
// продолжить за рекламу, иначе сразу итоги.
func (g *Game) GameOver() {
	if g.Session.IsGameOver {
		return
	}
	g.Session.IsGameOver = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.Session.Score})

	if g.Gate.Open() {
		if g.sound != nil {
			g.sound.PlayTimerSound()
		}
		return
	}
	g.ShowGameOverPopup()
}

// AcceptAd — игрок согласился посмотреть рекламу
func (g *Game) AcceptAd() {
	if !g.Gate.Accept() {
		return
	}
	if g.sound != nil {
		g.sound.PlayButton()
	}
	if g.ads == nil {
		logging.Warnf("Rewarded ad requested, but ads are not configured")
		g.EventDispatcher.Dispatch(event.Event{Type: event.AdUnavailable})
		return
	}
	id, err := g.ads.RequestReward(g.ctx, g.Session.ID.String())
	if err != nil {
		// Отсчёт продолжается и закончится итогами
		logging.Warnf("Rewarded ad unavailable: %v", err)
		g.EventDispatcher.Dispatch(event.Event{Type: event.AdUnavailable, Data: err})
		return
	}
	g.pendingAd = id
}

// SkipAd — игрок закрыл предложение
func (g *Game) SkipAd() {
	g.Gate.Skip()
}

func (g *Game) pollAds() {
	if g.ads == nil {
		return
	}
	for {
		res, ok := g.ads.Poll()
		if !ok {
			return
		}
		if res.RequestID != g.pendingAd {
			logging.Debugf("Stale ad result %s (%s) ignored", res.RequestID, res.Outcome)
			continue
		}
		g.pendingAd = uuid.Nil
		switch res.Outcome {
		case ads.OutcomeGranted:
			g.AdShowSuccessfully()
		default:
			logging.Infof("Rewarded ad %s: %v", res.Outcome, res.Err)
		}
	}
}

// AdShowSuccessfully — награда получена: один нож возвращается и игра
// продолжается на той же мишени.
func (g *Game) AdShowSuccessfully() {
	if !g.Gate.Redeem() {
		return
	}
	if g.sound != nil {
		g.sound.StopTimerSound()
	}
	g.Knives.Refund()
	g.Session.IsGameOver = false
	g.Knives.Request()
	logging.Infof("Continue after ad, stage %d, score %d", g.Session.Stage, g.Session.Score)
}

// CancelAdsShow — время на рекламу вышло или игрок отказался
func (g *Game) CancelAdsShow() {
	if g.sound != nil {
		g.sound.StopTimerSound()
		g.sound.PlayButton()
	}
	g.ShowGameOverPopup()
}

// ShowGameOverPopup фиксирует рекорд и показывает итоги партии
func (g *Game) ShowGameOverPopup() {
	if g.gameOverShown {
		return
	}
	g.gameOverShown = true
	g.play(config.SfxGameOver)

	g.newBest = g.Session.CommitHighScore()
	if g.newBest {
		if err := g.store.SaveHighScore(g.Session.HighScore); err != nil {
			logging.Errorf("Failed to save high score: %v", err)
		}
		g.EventDispatcher.Dispatch(event.Event{Type: event.NewBestScore, Data: g.Session.HighScore})
	}
	err := g.store.RecordPlay(storage.Play{
		SessionID: g.Session.ID.String(),
		Score:     g.Session.Score,
		Stage:     g.Session.Stage,
		Apples:    g.Session.Apples,
		UsedAd:    g.Session.UsedAdContinue,
	})
	if err != nil {
		logging.Warnf("Failed to record play: %v", err)
	}
	logging.Infof("Game over: score %d, stage %d, new best %t", g.Session.Score, g.Session.Stage, g.newBest)
}

func (g *Game) Restart() {
	g.click()
	g.loadScene(config.GameSceneName)
}

func (g *Game) BackToHome() {
	g.click()
	g.loadScene(config.HomeSceneName)
}

func (g *Game) loadScene(name string) {
	if g.nav == nil {
		logging.Warnf("No navigator, scene %s not loaded", name)
		return
	}
	g.nav.LoadScene(name)
}

// ToggleSound включает и выключает звук и запоминает выбор
func (g *Game) ToggleSound() bool {
	if g.sound == nil {
		return false
	}
	enabled := !g.sound.Enabled()
	g.sound.SetEnabled(enabled)
	if err := g.store.SetPreference(storage.PrefSound, strconv.FormatBool(enabled)); err != nil {
		logging.Warnf("Sound preference not saved: %v", err)
	}
	g.click()
	return enabled
}

// SetLibrary подменяет определения стадий после горячей перезагрузки.
// Текущая мишень доигрывается по старым.
func (g *Game) SetLibrary(lib *defs.Library) {
	if lib == nil {
		return
	}
	g.Library = lib
	g.Sequencer.SetLibrary(lib)
}

func (g *Game) GameOverShown() bool {
	return g.gameOverShown
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) play(clip config.Clip) {
	if g.sound != nil {
		g.sound.PlaySingle(clip, config.DefaultVolume)
	}
}

func (g *Game) click() {
	if g.sound != nil {
		g.sound.PlayButton()
	}
}

func (g *Game) playRandom(clips []config.Clip) {
	if g.sound == nil || len(clips) == 0 {
		return
	}
	g.sound.PlaySingle(clips[g.Rng.Intn(len(clips))], config.BossVolume)
}
