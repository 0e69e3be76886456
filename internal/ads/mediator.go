// internal/ads/mediator.go
package ads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"go-knife-hit/internal/logging"
)

// Outcome — итог запроса награды
type Outcome int

const (
	OutcomeGranted Outcome = iota
	OutcomeDeclined
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGranted:
		return "granted"
	case OutcomeDeclined:
		return "declined"
	default:
		return "failed"
	}
}

// Result — итог конкретного запроса, доставляется в игровой цикл
type Result struct {
	RequestID uuid.UUID
	Outcome   Outcome
	Reward    Reward
	Err       error
}

// ContinueRewardData — custom data для серверной проверки награды
const ContinueRewardData = `{"reward":"Continue","amount":1}`

type pendingRequest struct {
	id         uuid.UUID
	autoReload bool
	granted    bool
}

// Mediator владеет провайдером рекламы. SDK живёт в своих горутинах,
// игровой цикл забирает результаты через Poll и не блокируется.
type Mediator struct {
	provider RewardProvider

	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group
	done   chan struct{}

	ready   atomic.Bool
	mu      sync.Mutex
	pending *pendingRequest
	results chan Result

	closeOnce sync.Once
}

func NewMediator(provider RewardProvider) *Mediator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Mediator{
		provider: provider,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		results:  make(chan Result, 4),
	}
}

// Start поднимает SDK в фоне: инициализация, первая загрузка и
// обработка событий. Возвращается сразу.
func (m *Mediator) Start() {
	m.group.Go(m.pump)
	m.group.Go(func() error {
		if err := m.provider.Initialize(m.ctx); err != nil {
			logging.Errorf("Mediation init failed (%s): %v", InitErrorCodeOf(err), err)
			return fmt.Errorf("initialize mediation: %w", err)
		}
		m.ready.Store(true)
		logging.Infof("Mediation initialized")
		m.load()
		return nil
	})
}

func (m *Mediator) load() {
	if err := m.provider.Load(m.ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Warnf("Rewarded load failed: %v", err)
	}
}

func (m *Mediator) pump() error {
	events := m.provider.Events()
	for {
		select {
		case <-m.done:
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			m.handle(e)
		}
	}
}

func (m *Mediator) handle(e Event) {
	switch e.Kind {
	case EventLoaded:
		logging.Infof("Rewarded loaded: %s", e.AdUnitID)
	case EventFailedLoad:
		logging.Warnf("Rewarded failed to load: %s: %v", e.AdUnitID, e.Err)
	case EventImpression:
		data, err := json.Marshal(e.Impression)
		if err != nil {
			logging.Warnf("Impression data is not serializable: %v", err)
			return
		}
		logging.Debugf("Impression: %s", data)
	case EventUserRewarded:
		logging.Infof("User rewarded: %s x %s", e.Reward.Type, e.Reward.Amount)
		m.mu.Lock()
		p := m.pending
		if p != nil && !p.granted {
			p.granted = true
		} else {
			p = nil
		}
		m.mu.Unlock()
		if p != nil {
			m.emit(Result{RequestID: p.id, Outcome: OutcomeGranted, Reward: e.Reward})
		}
	case EventClosed:
		logging.Infof("Rewarded closed: %s", e.AdUnitID)
		m.mu.Lock()
		p := m.pending
		m.pending = nil
		m.mu.Unlock()
		if p == nil {
			return
		}
		if !p.granted {
			m.emit(Result{RequestID: p.id, Outcome: OutcomeDeclined})
		}
		if p.autoReload {
			m.group.Go(func() error {
				m.load()
				return nil
			})
		}
	}
}

func (m *Mediator) emit(r Result) {
	select {
	case m.results <- r:
	case <-m.done:
	}
}

// RequestReward показывает ролик. Ошибка означает, что показать нечего;
// иначе итог придёт через Poll с тем же RequestID.
func (m *Mediator) RequestReward(ctx context.Context, userID string) (uuid.UUID, error) {
	if !m.ready.Load() {
		return uuid.Nil, ErrUnavailable
	}
	if st := m.provider.State(); st != AdStateLoaded {
		return uuid.Nil, fmt.Errorf("%w (state %s)", ErrNotLoaded, st)
	}

	p := &pendingRequest{id: uuid.New(), autoReload: true}
	m.mu.Lock()
	if m.pending != nil {
		m.mu.Unlock()
		return uuid.Nil, ErrBusy
	}
	m.pending = p
	m.mu.Unlock()

	opts := ShowOptions{
		AutoReload: true,
		S2S:        &S2SRedeemData{UserID: userID, CustomData: ContinueRewardData},
	}
	if err := m.provider.Show(ctx, opts); err != nil {
		m.mu.Lock()
		if m.pending == p {
			m.pending = nil
		}
		m.mu.Unlock()
		return uuid.Nil, fmt.Errorf("show rewarded: %w", err)
	}
	return p.id, nil
}

// Poll забирает очередной результат, не блокируясь
func (m *Mediator) Poll() (Result, bool) {
	select {
	case r := <-m.results:
		return r, true
	default:
		return Result{}, false
	}
}

// Ready — SDK инициализирован
func (m *Mediator) Ready() bool {
	return m.ready.Load()
}

// Close останавливает горутины медиатора и провайдера. Возвращает
// ошибку инициализации, если она была.
func (m *Mediator) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.done)
		m.cancel()
		if cerr := m.provider.Close(); cerr != nil {
			logging.Warnf("Failed to close ad provider: %v", cerr)
		}
		err = m.group.Wait()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// RequestReward без медиатора: показывает ролик и ждёт его закрытия.
// Провайдер не должен одновременно обслуживаться Mediator.
func RequestReward(ctx context.Context, provider RewardProvider, opts ShowOptions) (Outcome, error) {
	if provider.State() != AdStateLoaded {
		return OutcomeFailed, ErrNotLoaded
	}
	if err := provider.Show(ctx, opts); err != nil {
		return OutcomeFailed, fmt.Errorf("show rewarded: %w", err)
	}
	granted := false
	events := provider.Events()
	for {
		select {
		case <-ctx.Done():
			return OutcomeFailed, ctx.Err()
		case e, ok := <-events:
			if !ok {
				return OutcomeFailed, ErrUnavailable
			}
			switch e.Kind {
			case EventUserRewarded:
				granted = true
			case EventClosed:
				if granted {
					return OutcomeGranted, nil
				}
				return OutcomeDeclined, nil
			}
		}
	}
}
