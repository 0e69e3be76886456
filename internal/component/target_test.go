package component

import (
	"math"
	"testing"

	"go-knife-hit/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestNewTargetConvertsDegrees(t *testing.T) {
	tg := NewTarget(defs.TargetDefinition{
		ID:         "T",
		TotalKnife: 3,
		Rotation:   defs.Rotation{Speed: 180},
		Obstacles:  []float64{90, -90},
		Apples:     []float64{180},
	}, 1, "")

	assert.InDelta(t, math.Pi, tg.Speed, 1e-9)
	assert.InDelta(t, math.Pi/2, tg.Obstacles[0], 1e-9)
	assert.InDelta(t, 1.5*math.Pi, tg.Obstacles[1], 1e-9)
	assert.InDelta(t, math.Pi, tg.Apples[0].Angle, 1e-9)
	assert.False(t, tg.IsBoss())
	assert.Equal(t, 3, tg.Remaining())
}

func TestTargetReversesDirection(t *testing.T) {
	tg := NewTarget(defs.TargetDefinition{TotalKnife: 1, Rotation: defs.Rotation{Speed: 90, ReverseEvery: 1}}, 1, "")
	tg.Update(0.5)
	assert.Greater(t, tg.Speed, 0.0)
	tg.Update(0.6)
	assert.Less(t, tg.Speed, 0.0)
	tg.Update(1.0)
	assert.Greater(t, tg.Speed, 0.0)
}

func TestTargetClearedAndDestroyed(t *testing.T) {
	tg := NewTarget(defs.TargetDefinition{TotalKnife: 2, Apples: []float64{0}}, 5, "Cheese")
	assert.True(t, tg.IsBoss())
	tg.HitKnives = append(tg.HitKnives, &Knife{}, &Knife{})
	assert.True(t, tg.Cleared())
	assert.Equal(t, 0, tg.Remaining())

	tg.DestroyMeAndAllKnives()
	assert.True(t, tg.Destroyed)
	assert.Empty(t, tg.HitKnives)
	assert.Empty(t, tg.Apples)

	rot := tg.Rotation
	tg.Update(1)
	assert.Equal(t, rot, tg.Rotation)
}

func TestLocalWorldAngles(t *testing.T) {
	tg := NewTarget(defs.TargetDefinition{TotalKnife: 1}, 1, "")
	tg.Rotation = math.Pi / 2
	assert.InDelta(t, 0, tg.LocalAngle(math.Pi/2), 1e-9)
	assert.InDelta(t, math.Pi, tg.WorldAngle(math.Pi/2), 1e-9)
}
