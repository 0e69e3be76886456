// internal/ads/simulated.go
package ads

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// SimulatedConfig — поведение локальной заглушки SDK
type SimulatedConfig struct {
	AdUnitID       string
	GameID         string
	FillRate       float64 // Вероятность, что загрузка найдёт ролик
	CompletionRate float64 // Вероятность, что игрок досмотрит ролик
	WatchDuration  time.Duration
	Seed           int64
}

// Simulated ведёт себя как SDK медиации: грузит ролик с заданной
// вероятностью, показывает его в своей горутине и сообщает исход
// событиями.
type Simulated struct {
	cfg SimulatedConfig

	mu          sync.Mutex
	rng         *rand.Rand
	initialized bool
	state       atomic.Int32

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewSimulated(cfg SimulatedConfig) *Simulated {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulated{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
}

func (s *Simulated) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.cfg.AdUnitID == "" {
		return &InitializationError{Code: InitErrorInvalidArgument, Err: errors.New("ad unit id is empty")}
	}
	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	return nil
}

func (s *Simulated) roll(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}

func (s *Simulated) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	initialized := s.initialized
	s.mu.Unlock()
	if !initialized {
		return ErrUnavailable
	}
	if !s.state.CompareAndSwap(int32(AdStateUnloaded), int32(AdStateLoading)) {
		return nil
	}
	if !s.roll(s.cfg.FillRate) {
		s.state.Store(int32(AdStateUnloaded))
		s.emit(Event{Kind: EventFailedLoad, AdUnitID: s.cfg.AdUnitID, Err: ErrNoFill})
		return ErrNoFill
	}
	s.state.Store(int32(AdStateLoaded))
	s.emit(Event{Kind: EventLoaded, AdUnitID: s.cfg.AdUnitID})
	return nil
}

func (s *Simulated) Show(ctx context.Context, opts ShowOptions) error {
	if !s.state.CompareAndSwap(int32(AdStateLoaded), int32(AdStateShowing)) {
		return ErrNotLoaded
	}
	completed := s.roll(s.cfg.CompletionRate)

	impression := map[string]interface{}{
		"ad_unit_id": s.cfg.AdUnitID,
		"game_id":    s.cfg.GameID,
		"format":     "rewarded",
		"revenue":    0.01,
		"currency":   "USD",
	}
	if opts.S2S != nil {
		impression["user_id"] = opts.S2S.UserID
		impression["custom_data"] = opts.S2S.CustomData
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.emit(Event{Kind: EventImpression, AdUnitID: s.cfg.AdUnitID, Impression: impression})

		timer := time.NewTimer(s.cfg.WatchDuration)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			completed = false
		case <-s.done:
			return
		}
		if completed {
			s.emit(Event{Kind: EventUserRewarded, AdUnitID: s.cfg.AdUnitID, Reward: Reward{Type: "Reward", Amount: "50"}})
		}
		s.state.Store(int32(AdStateUnloaded))
		s.emit(Event{Kind: EventClosed, AdUnitID: s.cfg.AdUnitID})
	}()
	return nil
}

func (s *Simulated) emit(e Event) {
	select {
	case s.events <- e:
	case <-s.done:
	}
}

func (s *Simulated) State() AdState {
	return AdState(s.state.Load())
}

func (s *Simulated) Events() <-chan Event {
	return s.events
}

func (s *Simulated) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
	return nil
}
