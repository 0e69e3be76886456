package system

import (
	"go-knife-hit/internal/event"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) types() []event.EventType {
	out := make([]event.EventType, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Type)
	}
	return out
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) reset() { l.events = nil }

func newRecordingDispatcher(types ...event.EventType) (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	l := &eventLog{}
	d.SubscribeMany(l, types...)
	return d, l
}

var allEvents = []event.EventType{
	event.TargetSpawned, event.TargetCleared, event.StageAdvanced, event.BossFightStarted,
	event.BossFightEnded, event.KnifeStaged, event.KnifeThrown, event.KnifeStuck, event.KnifeCollided,
	event.GameOver, event.AdOffered, event.AdRequested, event.AdRedeemed, event.AdLapsed,
	event.AdUnavailable, event.NewBestScore,
}
