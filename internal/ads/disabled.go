// internal/ads/disabled.go
package ads

import (
	"context"
	"sync"
)

// Disabled — реклама выключена в настройках: награда выдаётся сразу,
// без ролика.
type Disabled struct {
	events    chan Event
	closeOnce sync.Once
}

func NewDisabled() *Disabled {
	return &Disabled{events: make(chan Event, 8)}
}

func (d *Disabled) Initialize(ctx context.Context) error {
	return ctx.Err()
}

func (d *Disabled) Load(ctx context.Context) error {
	return ctx.Err()
}

func (d *Disabled) Show(ctx context.Context, _ ShowOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.push(Event{Kind: EventUserRewarded, Reward: Reward{Type: "Reward", Amount: "50"}})
	d.push(Event{Kind: EventClosed})
	return nil
}

func (d *Disabled) push(e Event) {
	select {
	case d.events <- e:
	default:
	}
}

func (d *Disabled) State() AdState {
	return AdStateLoaded
}

func (d *Disabled) Events() <-chan Event {
	return d.events
}

func (d *Disabled) Close() error {
	return nil
}
