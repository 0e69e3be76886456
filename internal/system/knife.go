// internal/system/knife.go
package system

import (
	"math"

	"go-knife-hit/internal/component"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/event"
)

// KnifePhase — состояние точки выдачи ножей
type KnifePhase int

const (
	KnifeIdle   KnifePhase = iota // Ножа на позиции нет
	KnifeStaged                   // Нож на позиции, ещё не брошен
	KnifeThrown                   // Нож только что брошен, следующий ещё не выдан
)

// KnifeSystem выдаёт ножи по одному. Новый нож появляется, только если
// точка выдачи пуста, мишени нужны ещё ножи и игра не окончена.
type KnifeSystem struct {
	eventDispatcher *event.Dispatcher
	skinID          string

	phase   KnifePhase
	staged  *component.Knife
	pending bool // Запрошена выдача ножа; повторные запросы не копятся
	spawned int  // Сколько ножей выдано для текущей мишени
	nextID  int
}

func NewKnifeSystem(eventDispatcher *event.Dispatcher, skinID string) *KnifeSystem {
	return &KnifeSystem{
		eventDispatcher: eventDispatcher,
		skinID:          skinID,
	}
}

// Reset готовит выдачу для новой мишени
func (s *KnifeSystem) Reset() {
	s.phase = KnifeIdle
	s.staged = nil
	s.pending = false
	s.spawned = 0
}

// Request просит выдать нож, как только точка выдачи освободится
func (s *KnifeSystem) Request() {
	s.pending = true
}

// Update выполняет отложенный запрос и двигает выезжающий нож
func (s *KnifeSystem) Update(deltaTime float64, totalKnife int, gameOver bool) {
	if s.staged != nil {
		s.staged.Rise = math.Min(1, s.staged.Rise+deltaTime/config.KnifeRiseTime)
	}
	if !s.pending || s.staged != nil {
		return
	}
	s.pending = false
	s.phase = KnifeIdle
	if s.spawned >= totalKnife || gameOver {
		return
	}
	s.spawned++
	s.nextID++
	s.staged = &component.Knife{ID: s.nextID, SkinID: s.skinID}
	s.phase = KnifeStaged
	s.eventDispatcher.Dispatch(event.Event{Type: event.KnifeStaged, Data: s.staged})
}

// Throw бросает нож с позиции. Возвращает nil, если бросать нечего.
func (s *KnifeSystem) Throw() *component.Knife {
	if s.phase != KnifeStaged || s.staged == nil || s.staged.IsFire {
		return nil
	}
	knife := s.staged
	knife.IsFire = true
	knife.Rise = 1
	s.staged = nil
	s.phase = KnifeThrown
	s.pending = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.KnifeThrown, Data: knife})
	return knife
}

// Refund возвращает один нож (продолжение после рекламы)
func (s *KnifeSystem) Refund() {
	if s.spawned > 0 {
		s.spawned--
	}
}

func (s *KnifeSystem) SetSkin(skinID string) {
	s.skinID = skinID
}

func (s *KnifeSystem) Phase() KnifePhase {
	return s.phase
}

func (s *KnifeSystem) Staged() *component.Knife {
	return s.staged
}

func (s *KnifeSystem) Spawned() int {
	return s.spawned
}

func (s *KnifeSystem) Pending() bool {
	return s.pending
}
