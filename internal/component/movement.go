// component/movement.go
package component

import "go-cave-rhythm/pkg/geom"

// Charge — состояние перемещения монстра: направление и остаток пути.
// Монстр стоит на месте, пока Remaining == 0.
type Charge struct {
	Direction geom.Vec2
	Remaining float64
}

// Moving: монстр ещё не прошёл выбранную дистанцию
func (c Charge) Moving() bool {
	return c.Remaining > 0
}
