package system

import (
	"testing"

	"go-knife-hit/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnifeStagingLifecycle(t *testing.T) {
	d, log := newRecordingDispatcher(event.KnifeStaged, event.KnifeThrown)
	ks := NewKnifeSystem(d, "dagger")
	ks.Reset()
	assert.Equal(t, KnifeIdle, ks.Phase())
	assert.Nil(t, ks.Throw(), "nothing to throw before a knife is staged")

	ks.Request()
	ks.Update(0.016, 3, false)
	require.Equal(t, KnifeStaged, ks.Phase())
	staged := ks.Staged()
	require.NotNil(t, staged)
	assert.Equal(t, "dagger", staged.SkinID)
	assert.False(t, staged.IsFire)
	assert.Equal(t, 1, ks.Spawned())

	thrown := ks.Throw()
	require.Same(t, staged, thrown)
	assert.True(t, thrown.IsFire)
	assert.Equal(t, KnifeThrown, ks.Phase())
	assert.Nil(t, ks.Staged())
	assert.Nil(t, ks.Throw(), "a thrown knife cannot be thrown twice")

	ks.Update(0.016, 3, false)
	assert.Equal(t, KnifeStaged, ks.Phase())
	assert.Equal(t, 2, ks.Spawned())
	assert.Equal(t, []event.EventType{event.KnifeStaged, event.KnifeThrown, event.KnifeStaged}, log.types())
}

func TestKnifeNeverMoreThanOneStaged(t *testing.T) {
	d := event.NewDispatcher()
	ks := NewKnifeSystem(d, "default")
	ks.Reset()

	live := 0
	d.Subscribe(event.KnifeStaged, event.ListenerFunc(func(event.Event) { live++ }))
	d.Subscribe(event.KnifeThrown, event.ListenerFunc(func(event.Event) { live-- }))

	for i := 0; i < 200; i++ {
		// Запросы сыплются чаще, чем игрок бросает
		ks.Request()
		ks.Request()
		ks.Update(0.016, 50, false)
		assert.LessOrEqual(t, live, 1)
		if i%3 == 0 {
			ks.Throw()
		}
		assert.LessOrEqual(t, live, 1)
	}
	assert.LessOrEqual(t, ks.Spawned(), 50)
}

func TestKnifeStopsAtTargetTotal(t *testing.T) {
	ks := NewKnifeSystem(event.NewDispatcher(), "default")
	ks.Reset()
	ks.Request()
	for i := 0; i < 5; i++ {
		ks.Update(0.016, 2, false)
		ks.Throw()
	}
	ks.Update(0.016, 2, false)
	assert.Equal(t, 2, ks.Spawned())
	assert.Equal(t, KnifeIdle, ks.Phase())
	assert.False(t, ks.Pending())
}

func TestKnifeNotStagedAfterGameOver(t *testing.T) {
	ks := NewKnifeSystem(event.NewDispatcher(), "default")
	ks.Reset()
	ks.Request()
	ks.Update(0.016, 5, true)
	assert.Nil(t, ks.Staged())
	assert.Equal(t, 0, ks.Spawned())

	// Продолжение после рекламы: возвращаем нож и просим новый
	ks.Refund()
	ks.Request()
	ks.Update(0.016, 5, false)
	assert.NotNil(t, ks.Staged())
}

func TestKnifeRefundAllowsOneMore(t *testing.T) {
	ks := NewKnifeSystem(event.NewDispatcher(), "default")
	ks.Reset()
	ks.Request()
	ks.Update(0.016, 1, false)
	require.NotNil(t, ks.Throw())
	ks.Update(0.016, 1, false)
	require.Nil(t, ks.Staged())

	ks.Refund()
	ks.Request()
	ks.Update(0.016, 1, false)
	assert.NotNil(t, ks.Staged())
	assert.Equal(t, 1, ks.Spawned())

	ks.Reset()
	ks.Refund()
	assert.Equal(t, 0, ks.Spawned())
}

func TestStagedKnifeRises(t *testing.T) {
	ks := NewKnifeSystem(event.NewDispatcher(), "default")
	ks.Reset()
	ks.Request()
	ks.Update(0, 1, false)
	require.NotNil(t, ks.Staged())
	assert.Equal(t, 0.0, ks.Staged().Rise)
	ks.Update(0.05, 1, false)
	assert.InDelta(t, 0.5, ks.Staged().Rise, 1e-9)
	ks.Update(1, 1, false)
	assert.Equal(t, 1.0, ks.Staged().Rise)
}
