package system

import (
	"math"
	"testing"

	"go-knife-hit/internal/component"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightTime = ThrowDistance / config.KnifeSpeed

func staticTarget(total int, obstacles, apples []float64) *component.Target {
	return component.NewTarget(defs.TargetDefinition{ID: "T", TotalKnife: total, Obstacles: obstacles, Apples: apples}, 1, "")
}

func TestKnifeSticksWhenRimIsFree(t *testing.T) {
	fs := NewFlightSystem()
	target := staticTarget(3, nil, nil)
	knife := &component.Knife{ID: 1, IsFire: true}
	fs.Launch(knife)

	assert.Empty(t, fs.Update(flightTime/2, target))
	assert.Len(t, fs.InFlight(), 1)

	impacts := fs.Update(flightTime, target)
	require.Len(t, impacts, 1)
	assert.Equal(t, ImpactStuck, impacts[0].Kind)
	assert.InDelta(t, HitAngle, knife.Angle, 1e-9)
	assert.Equal(t, []*component.Knife{knife}, target.HitKnives)
	assert.Empty(t, fs.InFlight())
}

func TestKnifeCollidesWithStuckKnife(t *testing.T) {
	fs := NewFlightSystem()
	target := staticTarget(3, nil, nil)

	fs.Launch(&component.Knife{ID: 1})
	require.Len(t, fs.Update(1, target), 1)

	// Мишень не вращается — второй нож прилетает в то же место
	fs.Launch(&component.Knife{ID: 2})
	impacts := fs.Update(1, target)
	require.Len(t, impacts, 1)
	assert.Equal(t, ImpactCollided, impacts[0].Kind)
	assert.True(t, impacts[0].Knife.Bounced)
	assert.Len(t, target.HitKnives, 1)
	assert.Len(t, fs.Falling(), 1)
}

func TestKnifeCollidesWithObstacle(t *testing.T) {
	fs := NewFlightSystem()
	target := staticTarget(3, []float64{90}, nil)
	fs.Launch(&component.Knife{ID: 1})
	impacts := fs.Update(1, target)
	require.Len(t, impacts, 1)
	assert.Equal(t, ImpactCollided, impacts[0].Kind)
}

func TestRotationSeparatesKnives(t *testing.T) {
	fs := NewFlightSystem()
	target := staticTarget(3, nil, nil)
	fs.Launch(&component.Knife{ID: 1})
	require.Len(t, fs.Update(1, target), 1)

	target.Rotation = math.Pi / 2
	fs.Launch(&component.Knife{ID: 2})
	impacts := fs.Update(1, target)
	require.Len(t, impacts, 1)
	assert.Equal(t, ImpactStuck, impacts[0].Kind)
	assert.InDelta(t, 0, impacts[0].Angle, 1e-9)
}

func TestAppleIsCollectedOnce(t *testing.T) {
	fs := NewFlightSystem()
	target := staticTarget(5, nil, []float64{92})
	fs.Launch(&component.Knife{ID: 1})
	impacts := fs.Update(1, target)
	require.Len(t, impacts, 1)
	assert.Equal(t, 1, impacts[0].Apples)
	assert.True(t, target.Apples[0].Taken)

	target.Rotation = 0.5
	fs.Launch(&component.Knife{ID: 2})
	impacts = fs.Update(1, target)
	require.Len(t, impacts, 1)
	assert.Equal(t, 0, impacts[0].Apples)
}

func TestKnivesAfterCollisionFall(t *testing.T) {
	fs := NewFlightSystem()
	target := staticTarget(5, []float64{90}, nil)
	fs.Launch(&component.Knife{ID: 1})
	fs.Launch(&component.Knife{ID: 2})

	impacts := fs.Update(1, target)
	require.Len(t, impacts, 2)
	assert.Equal(t, ImpactCollided, impacts[0].Kind)
	assert.Equal(t, ImpactDropped, impacts[1].Kind)
	assert.Equal(t, 2, impacts[1].Knife.ID)
	assert.Empty(t, fs.InFlight())
	assert.Len(t, fs.Falling(), 2)

	fs.Update(1, target)
	assert.Empty(t, fs.Falling())
}

func TestNoTargetDropsKnives(t *testing.T) {
	fs := NewFlightSystem()
	fs.Launch(&component.Knife{ID: 1})
	assert.Empty(t, fs.Update(0.01, nil))
	assert.Empty(t, fs.InFlight())

	fs.Clear()
	assert.Empty(t, fs.Falling())
}
