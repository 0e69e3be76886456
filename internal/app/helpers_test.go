package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"go-knife-hit/internal/ads"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/event"
	"go-knife-hit/internal/storage"
)

type fakeSound struct {
	enabled      bool
	played       []config.Clip
	timerPlaying bool
	timerStarts  int
	buttons      int
}

func (s *fakeSound) PlaySingle(clip config.Clip, _ float64) {
	if s.enabled {
		s.played = append(s.played, clip)
	}
}
func (s *fakeSound) PlayButton()             { s.buttons++ }
func (s *fakeSound) PlayTimerSound()         { s.timerPlaying = true; s.timerStarts++ }
func (s *fakeSound) StopTimerSound()         { s.timerPlaying = false }
func (s *fakeSound) SetEnabled(enabled bool) { s.enabled = enabled }
func (s *fakeSound) Enabled() bool           { return s.enabled }

func (s *fakeSound) playedAny(clips ...config.Clip) bool {
	for _, p := range s.played {
		for _, c := range clips {
			if p == c {
				return true
			}
		}
	}
	return false
}

type fakeAds struct {
	err      error
	requests []string
	lastID   uuid.UUID
	results  []ads.Result
}

func (a *fakeAds) RequestReward(_ context.Context, userID string) (uuid.UUID, error) {
	a.requests = append(a.requests, userID)
	if a.err != nil {
		return uuid.Nil, a.err
	}
	a.lastID = uuid.New()
	return a.lastID, nil
}

func (a *fakeAds) Poll() (ads.Result, bool) {
	if len(a.results) == 0 {
		return ads.Result{}, false
	}
	r := a.results[0]
	a.results = a.results[1:]
	return r, true
}

func (a *fakeAds) grant() {
	a.results = append(a.results, ads.Result{RequestID: a.lastID, Outcome: ads.OutcomeGranted})
}

type fakeNav struct {
	scenes []string
}

func (n *fakeNav) LoadScene(name string) { n.scenes = append(n.scenes, name) }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

var errNoFill = errors.New("no fill")

// testLibrary — одна обычная мишень с заданной скоростью и боссы по умолчанию
func testLibrary(speed float64, total int) *defs.Library {
	lib := defs.Default()
	lib.Targets = []defs.TargetDefinition{{
		ID:         "plank",
		TotalKnife: total,
		Rotation:   defs.Rotation{Speed: speed},
	}}
	return lib
}

type fixture struct {
	game  *Game
	sound *fakeSound
	ads   *fakeAds
	nav   *fakeNav
	store *storage.MemoryStore
	log   *recorder
}

func newFixture(lib *defs.Library, debugStage int) *fixture {
	f := &fixture{
		sound: &fakeSound{enabled: true},
		ads:   &fakeAds{},
		nav:   &fakeNav{},
		store: storage.NewMemoryStore(),
		log:   &recorder{},
	}
	settings := config.DefaultSettings()
	settings.Seed = 1
	settings.DebugStage = debugStage
	f.game = NewGame(Options{
		Settings:  settings,
		Library:   lib,
		Ads:       f.ads,
		Sound:     f.sound,
		Store:     f.store,
		Navigator: f.nav,
	})
	f.game.EventDispatcher.SubscribeMany(f.log,
		event.KnifeStuck, event.KnifeCollided, event.GameOver, event.AdOffered,
		event.AdRedeemed, event.AdLapsed, event.AdUnavailable, event.NewBestScore,
		event.StageAdvanced, event.BossFightStarted,
	)
	return f
}

// step прокручивает игру кадрами по 1/60 секунды
func (f *fixture) step(seconds float64) {
	const frame = 1.0 / 60
	for t := 0.0; t < seconds; t += frame {
		f.game.Update(frame)
	}
}

// throw бросает нож и ждёт, пока он долетит
func (f *fixture) throw() bool {
	ok := f.game.Tap()
	f.step(0.3)
	return ok
}

// adResultFor — результат чужого (устаревшего) запроса
func adResultFor(_ *fixture, granted bool) ads.Result {
	outcome := ads.OutcomeDeclined
	if granted {
		outcome = ads.OutcomeGranted
	}
	return ads.Result{RequestID: uuid.New(), Outcome: outcome}
}
