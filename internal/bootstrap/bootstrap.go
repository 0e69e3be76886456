// internal/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/sync/errgroup"

	"go-knife-hit/internal/ads"
	"go-knife-hit/internal/assets"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/metrics"
	"go-knife-hit/internal/sound"
	"go-knife-hit/internal/state"
	"go-knife-hit/internal/storage"
	"go-knife-hit/internal/ui"
	"go-knife-hit/pkg/render"
)

// AppGame реализует ebiten.Game поверх машины состояний
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time

	Metrics *metrics.Collector
	closers []func() error
}

var _ ebiten.Game = (*AppGame)(nil)

// New собирает приложение: определения стадий, хранилище, рекламу,
// звук. Начинает с главного меню.
func New(ctx context.Context, settings config.Settings) (*AppGame, error) {
	a := &AppGame{
		stateMachine:   state.NewStateMachine(),
		lastUpdateTime: time.Now(),
		Metrics:        metrics.NewCollector(),
	}

	lib, watcher := loadLibrary(settings.DefsPath)
	if watcher != nil {
		a.closers = append(a.closers, watcher.Close)
	}

	var (
		store storage.Store
		fonts *ui.Fonts
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		store = openStore(settings)
		return nil
	})
	g.Go(func() error {
		var err error
		fonts, err = ui.LoadFonts()
		return err
	})
	err := g.Wait()
	if store != nil {
		a.closers = append(a.closers, store.Close)
	}
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	mediator := ads.NewMediator(newProvider(settings))
	mediator.Start()
	a.closers = append(a.closers, mediator.Close)

	if v, ok, err := store.Preference(storage.PrefSound); err == nil && ok {
		if enabled, perr := strconv.ParseBool(v); perr == nil {
			settings.Sound = enabled
		}
	}
	skinID := settings.KnifeSkin
	if v, ok, err := store.Preference(storage.PrefKnifeSkin); err == nil && ok {
		skinID = v
	}

	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(sound.SampleRate)
	}
	soundManager := sound.NewSoundManager(audioContext, settings.Sound)

	env := &state.Env{
		Ctx:      ctx,
		Settings: settings,
		Library:  lib,
		SkinID:   lib.Skin(skinID).ID,
		Ads:      mediator,
		Sound:    soundManager,
		Store:    store,
		Metrics:  a.Metrics,
		Watcher:  watcher,
		Fonts:    fonts,
		Renderer: render.NewSceneRenderer(),
	}
	scenes := state.NewScenes(a.stateMachine, env)
	if settings.DebugStage > 0 {
		scenes.LoadScene(config.GameSceneName)
	} else {
		scenes.LoadScene(config.HomeSceneName)
	}
	return a, nil
}

// loadLibrary читает определения из файла и следит за ним. Без файла
// или при ошибке — встроенные определения без слежения.
func loadLibrary(path string) (*defs.Library, *assets.DefsWatcher) {
	if path == "" {
		return defs.Default(), nil
	}
	lib, err := defs.Load(path)
	if err != nil {
		logging.Warnf("Stage definitions not loaded, using built-in: %v", err)
		return defs.Default(), nil
	}
	watcher, err := assets.NewDefsWatcher(path)
	if err != nil {
		logging.Warnf("Hot reload disabled: %v", err)
		return lib, nil
	}
	return lib, watcher
}

func openStore(settings config.Settings) storage.Store {
	store, err := storage.OpenSQLite(settings.HighScorePath())
	if err != nil {
		logging.Errorf("High score storage unavailable, scores kept in memory: %v", err)
		return storage.NewMemoryStore()
	}
	logging.Infof("High scores stored in %s", store.Path())
	return store
}

// newProvider выбирает рекламный блок под платформу
func newProvider(settings config.Settings) ads.RewardProvider {
	if !settings.Ads.Enabled {
		return ads.NewDisabled()
	}
	unitID, gameID := settings.Ads.AndroidAdUnitID, settings.Ads.AndroidGameID
	if runtime.GOOS == "ios" {
		unitID, gameID = settings.Ads.IOSAdUnitID, settings.Ads.IOSGameID
	}
	return ads.NewSimulated(ads.SimulatedConfig{
		AdUnitID:       unitID,
		GameID:         gameID,
		FillRate:       settings.Ads.FillRate,
		CompletionRate: settings.Ads.CompletionRate,
		WatchDuration:  time.Duration(settings.Ads.WatchSeconds * float64(time.Second)),
		Seed:           settings.Seed,
	})
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close освобождает ресурсы в обратном порядке
func (a *AppGame) Close() error {
	a.stateMachine.SetState(nil)
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
