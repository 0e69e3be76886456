// internal/component/target.go
package component

import (
	"math"

	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/utils"
)

// Target — вращающаяся мишень (круг), в которую нужно воткнуть
// TotalKnife ножей.
type Target struct {
	Def        defs.TargetDefinition
	BossName   string // Пусто для обычной мишени
	Stage      int
	TotalKnife int
	HitKnives  []*Knife
	Obstacles  []float64 // Углы заранее воткнутых ножей, радианы
	Apples     []*Apple

	Rotation  float64 // Текущий угол поворота, радианы
	Speed     float64 // Радиан в секунду
	reverseIn float64

	Age       float64 // Время с момента появления, для анимации масштаба
	Destroyed bool
}

// NewTarget строит мишень по определению
func NewTarget(def defs.TargetDefinition, stage int, bossName string) *Target {
	t := &Target{
		Def:        def,
		BossName:   bossName,
		Stage:      stage,
		TotalKnife: def.TotalKnife,
		Speed:      def.Rotation.Speed * math.Pi / 180,
		reverseIn:  def.Rotation.ReverseEvery,
	}
	for _, deg := range def.Obstacles {
		t.Obstacles = append(t.Obstacles, utils.NormalizeAngle(deg*math.Pi/180))
	}
	for _, deg := range def.Apples {
		t.Apples = append(t.Apples, &Apple{Angle: utils.NormalizeAngle(deg * math.Pi / 180)})
	}
	return t
}

// IsBoss — мишень-босс
func (t *Target) IsBoss() bool {
	return t.BossName != ""
}

// Update вращает мишень и меняет направление по расписанию
func (t *Target) Update(deltaTime float64) {
	if t.Destroyed {
		return
	}
	t.Age += deltaTime
	t.Rotation = utils.NormalizeAngle(t.Rotation + t.Speed*deltaTime)
	if t.Def.Rotation.ReverseEvery > 0 {
		t.reverseIn -= deltaTime
		for t.reverseIn <= 0 {
			t.Speed = -t.Speed
			t.reverseIn += t.Def.Rotation.ReverseEvery
		}
	}
}

// LocalAngle переводит мировой угол в систему координат мишени
func (t *Target) LocalAngle(world float64) float64 {
	return utils.NormalizeAngle(world - t.Rotation)
}

// WorldAngle — обратное преобразование
func (t *Target) WorldAngle(local float64) float64 {
	return utils.NormalizeAngle(local + t.Rotation)
}

// Cleared — воткнуты все требуемые ножи
func (t *Target) Cleared() bool {
	return len(t.HitKnives) >= t.TotalKnife
}

// Remaining — сколько ножей ещё нужно воткнуть
func (t *Target) Remaining() int {
	if r := t.TotalKnife - len(t.HitKnives); r > 0 {
		return r
	}
	return 0
}

// DestroyMeAndAllKnives убирает мишень вместе с воткнутыми ножами
func (t *Target) DestroyMeAndAllKnives() {
	t.Destroyed = true
	t.HitKnives = nil
	t.Apples = nil
	t.Obstacles = nil
}
