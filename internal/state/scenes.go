// internal/state/scenes.go
package state

import (
	"context"

	"go-knife-hit/internal/assets"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/interfaces"
	"go-knife-hit/internal/logging"
	"go-knife-hit/internal/metrics"
	"go-knife-hit/internal/storage"
	"go-knife-hit/internal/ui"
	"go-knife-hit/pkg/render"
)

// Env — всё, что сцены делят между собой на время работы приложения
type Env struct {
	Ctx      context.Context
	Settings config.Settings
	Library  *defs.Library
	SkinID   string
	Ads      interfaces.RewardRequester
	Sound    interfaces.SoundPlayer
	Store    storage.Store
	Metrics  *metrics.Collector
	Watcher  *assets.DefsWatcher // nil, если файл определений не задан
	Fonts    *ui.Fonts
	Renderer *render.SceneRenderer
}

// PollLibrary забирает перечитанные определения, если они есть
func (e *Env) PollLibrary() bool {
	if e.Watcher == nil {
		return false
	}
	select {
	case lib := <-e.Watcher.Reloaded():
		e.Library = lib
		return true
	default:
		return false
	}
}

// Scenes загружает сцены по имени
type Scenes struct {
	sm  *StateMachine
	env *Env
}

var _ interfaces.Navigator = (*Scenes)(nil)

func NewScenes(sm *StateMachine, env *Env) *Scenes {
	return &Scenes{sm: sm, env: env}
}

func (s *Scenes) LoadScene(name string) {
	logging.Debugf("Loading scene %s", name)
	switch name {
	case config.GameSceneName:
		s.sm.SetState(NewGameState(s))
	case config.HomeSceneName:
		s.sm.SetState(NewMenuState(s))
	default:
		logging.Warnf("Unknown scene %q", name)
	}
}
