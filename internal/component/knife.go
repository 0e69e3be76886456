// internal/component/knife.go
package component

// Knife — метательный нож. Одноразовый: после броска либо втыкается
// в мишень, либо отскакивает.
type Knife struct {
	ID     int
	SkinID string
	IsFire bool // Брошен ли нож

	Rise   float64 // Прогресс выезда на позицию, 0..1
	Travel float64 // Сколько пикселей осталось до обода мишени

	Angle float64 // Угол на мишени (в системе координат мишени), если воткнут

	Bounced bool    // Столкнулся с другим ножом
	Fall    float64 // Время падения после отскока
}

// Apple — яблоко на ободе мишени
type Apple struct {
	Angle float64 // Угол в системе координат мишени, радианы
	Taken bool
}
