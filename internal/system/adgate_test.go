package system

import (
	"testing"

	"go-knife-hit/internal/config"
	"go-knife-hit/internal/event"
	"go-knife-hit/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate() (*AdGate, *session.Session, *eventLog) {
	d, log := newRecordingDispatcher(event.AdOffered, event.AdRequested, event.AdRedeemed, event.AdLapsed)
	sess := session.New(0, 0)
	return NewAdGate(sess, d), sess, log
}

func TestGateLapsesAfterCountdown(t *testing.T) {
	gate, sess, log := newGate()
	require.True(t, gate.Open())
	assert.True(t, sess.HasShownAdPopup)
	assert.Equal(t, 1.0, gate.Fill())
	assert.InDelta(t, config.AdCountdownDuration, gate.Remaining(), 1e-9)

	for i := 0; i < 29; i++ {
		gate.Update(config.AdCountdownStep)
	}
	assert.Equal(t, GateCountdown, gate.Phase())
	assert.InDelta(t, 1.0/30, gate.Fill(), 1e-9)

	gate.Update(config.AdCountdownStep)
	assert.Equal(t, GateLapsed, gate.Phase())
	assert.Equal(t, []event.EventType{event.AdOffered, event.AdLapsed}, log.types())
}

func TestGateCountdownWithFrameSizedSteps(t *testing.T) {
	gate, _, _ := newGate()
	require.True(t, gate.Open())
	elapsed := 0.0
	for gate.Phase() == GateCountdown && elapsed < 10 {
		gate.Update(1.0 / 60)
		elapsed += 1.0 / 60
	}
	assert.Equal(t, GateLapsed, gate.Phase())
	assert.InDelta(t, config.AdCountdownDuration, elapsed, 0.05)
}

func TestGateRedeemWins(t *testing.T) {
	gate, sess, log := newGate()
	require.True(t, gate.Open())
	gate.Update(1)
	require.True(t, gate.Accept())
	assert.Equal(t, GateAwaitingAd, gate.Phase())

	require.True(t, gate.Redeem())
	assert.True(t, sess.IsAdShown)
	assert.True(t, sess.UsedAdContinue)

	// Отсчёт больше не может закончиться проигрышем
	gate.Update(10)
	assert.Equal(t, GateRedeemed, gate.Phase())
	assert.False(t, gate.Redeem())
	assert.Equal(t, 1, log.count(event.AdRedeemed))
	assert.Equal(t, 0, log.count(event.AdLapsed))
}

func TestGateLateRewardIsIgnored(t *testing.T) {
	gate, sess, log := newGate()
	require.True(t, gate.Open())
	require.True(t, gate.Accept())
	gate.Update(config.AdCountdownDuration + 0.5)
	require.Equal(t, GateLapsed, gate.Phase())

	assert.False(t, gate.Redeem())
	assert.False(t, sess.UsedAdContinue)
	assert.Equal(t, GateLapsed, gate.Phase())
	assert.Equal(t, 1, log.count(event.AdLapsed))
	assert.Equal(t, 0, log.count(event.AdRedeemed))
}

func TestGateExactlyOneOutcome(t *testing.T) {
	steps := []struct {
		name string
		run  func(g *AdGate)
	}{
		{"redeem then skip", func(g *AdGate) { g.Redeem(); g.Skip(); g.Update(5) }},
		{"skip then redeem", func(g *AdGate) { g.Skip(); g.Redeem(); g.Update(5) }},
		{"lapse then redeem twice", func(g *AdGate) { g.Update(5); g.Redeem(); g.Redeem() }},
		{"accept, redeem, lapse", func(g *AdGate) { g.Accept(); g.Redeem(); g.Update(5) }},
	}
	for _, tc := range steps {
		t.Run(tc.name, func(t *testing.T) {
			gate, _, log := newGate()
			require.True(t, gate.Open())
			tc.run(gate)
			assert.Equal(t, 1, log.count(event.AdRedeemed)+log.count(event.AdLapsed))
			assert.False(t, gate.Active())
		})
	}
}

func TestGateOffersOncePerSession(t *testing.T) {
	gate, _, _ := newGate()
	require.True(t, gate.Open())
	assert.False(t, gate.Open(), "already counting down")
	gate.Skip()
	assert.False(t, gate.Open(), "popup already shown this session")

	gate.Reset(session.New(0, 0))
	assert.True(t, gate.CanOffer())

	used := session.New(0, 0)
	used.UsedAdContinue = true
	gate.Reset(used)
	assert.False(t, gate.Open())
	assert.Equal(t, GateClosed, gate.Phase())
}

func TestGateAcceptOnlyDuringCountdown(t *testing.T) {
	gate, _, _ := newGate()
	assert.False(t, gate.Accept())
	require.True(t, gate.Open())
	assert.True(t, gate.Accept())
	assert.False(t, gate.Accept())
}
