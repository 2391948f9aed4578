// internal/component/player.go
package component

import "go-cave-rhythm/pkg/geom"

// PlayerState хранит информацию, специфичную для игрока.
type PlayerState struct {
	Facing         geom.Vec2 // последнее ненулевое направление движения
	CombatCooldown float64   // пока > 0, касание монстра не начинает бой
}
