// internal/system/flight.go
package system

import (
	"math"

	"go-knife-hit/internal/component"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/utils"
)

// ImpactKind — чем закончился полёт ножа
type ImpactKind int

const (
	ImpactStuck    ImpactKind = iota // Воткнулся в мишень
	ImpactCollided                   // Попал в другой нож
	ImpactDropped                    // Был в воздухе, когда другой нож отскочил
)

// Impact — результат полёта одного ножа
type Impact struct {
	Knife  *component.Knife
	Kind   ImpactKind
	Angle  float64 // Угол в системе координат мишени
	Apples int     // Сколько яблок сбито
}

// HitAngle — мировой угол точки обода, куда прилетает нож (низ мишени,
// ось Y направлена вниз).
const HitAngle = math.Pi / 2

// ThrowDistance — путь острия ножа от точки выдачи до обода мишени
const ThrowDistance = (config.KnifeSpawnY - config.KnifeLength/2) - (config.TargetCenterY + config.TargetRadius)

const fallDuration = 0.8

// FlightSystem ведёт брошенные ножи до мишени и решает, воткнулись
// они или отскочили.
type FlightSystem struct {
	inFlight []*component.Knife
	falling  []*component.Knife
}

func NewFlightSystem() *FlightSystem {
	return &FlightSystem{}
}

// Launch отправляет нож в полёт
func (s *FlightSystem) Launch(knife *component.Knife) {
	knife.Travel = ThrowDistance
	s.inFlight = append(s.inFlight, knife)
}

// Update двигает ножи. Ножи, долетевшие до мишени, возвращаются как
// Impact в порядке броска. После столкновения оставшиеся в воздухе ножи
// падают и возвращаются как ImpactDropped: до мишени они не долетели.
func (s *FlightSystem) Update(deltaTime float64, target *component.Target) []Impact {
	s.updateFalling(deltaTime)

	var impacts []Impact
	remaining := s.inFlight[:0]
	stop := false
	for _, knife := range s.inFlight {
		if stop {
			s.drop(knife)
			impacts = append(impacts, Impact{Knife: knife, Kind: ImpactDropped})
			continue
		}
		if target == nil || target.Destroyed {
			s.drop(knife)
			continue
		}
		knife.Travel -= config.KnifeSpeed * deltaTime
		if knife.Travel > 0 {
			remaining = append(remaining, knife)
			continue
		}
		knife.Travel = 0
		impact := s.resolve(knife, target)
		impacts = append(impacts, impact)
		if impact.Kind == ImpactCollided || target.Cleared() {
			stop = true
		}
	}
	s.inFlight = remaining
	return impacts
}

func (s *FlightSystem) resolve(knife *component.Knife, target *component.Target) Impact {
	local := target.LocalAngle(HitAngle)
	if collides(local, target) {
		s.drop(knife)
		return Impact{Knife: knife, Kind: ImpactCollided, Angle: local}
	}

	knife.Angle = local
	target.HitKnives = append(target.HitKnives, knife)
	apples := 0
	for _, apple := range target.Apples {
		if !apple.Taken && utils.AngleDistance(apple.Angle, local) < config.AppleArc {
			apple.Taken = true
			apples++
		}
	}
	return Impact{Knife: knife, Kind: ImpactStuck, Angle: local, Apples: apples}
}

func collides(local float64, target *component.Target) bool {
	for _, a := range target.Obstacles {
		if utils.AngleDistance(a, local) < config.KnifeCollisionArc {
			return true
		}
	}
	for _, k := range target.HitKnives {
		if utils.AngleDistance(k.Angle, local) < config.KnifeCollisionArc {
			return true
		}
	}
	return false
}

func (s *FlightSystem) drop(knife *component.Knife) {
	knife.Bounced = true
	knife.Fall = 0
	s.falling = append(s.falling, knife)
}

func (s *FlightSystem) updateFalling(deltaTime float64) {
	alive := s.falling[:0]
	for _, knife := range s.falling {
		knife.Fall += deltaTime
		if knife.Fall < fallDuration {
			alive = append(alive, knife)
		}
	}
	s.falling = alive
}

// Clear убирает все ножи в полёте (смена мишени, новая партия)
func (s *FlightSystem) Clear() {
	s.inFlight = nil
	s.falling = nil
}

func (s *FlightSystem) InFlight() []*component.Knife {
	return s.inFlight
}

func (s *FlightSystem) Falling() []*component.Knife {
	return s.falling
}
