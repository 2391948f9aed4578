// internal/system/monster.go
package system

import (
	"math"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/physics"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/geom"
)

// MonsterSystem бродит монстрами: изредка выбирает цель и бежит к ней с постоянной скоростью.
type MonsterSystem struct {
	world World
}

func NewMonsterSystem(world World) *MonsterSystem {
	return &MonsterSystem{world: world}
}

func (s *MonsterSystem) Update(deltaTime float64, e *entity.Entity) {
	if !e.Charge.Moving() {
		s.roll(e)
		return
	}

	step := math.Min(config.MonsterSpeed*deltaTime, e.Charge.Remaining)
	e.Charge.Remaining -= step
	if e.Charge.Remaining < 0 {
		e.Charge.Remaining = 0
	}
	physics.MoveEntity(s.world.Level(), e, e.Charge.Direction.Scale(step))
}

// roll с малой вероятностью назначает новый рывок.
// Рядом с игроком это вектор до игрока без нормализации, иначе случайная точка в квадрате ±10.
func (s *MonsterSystem) roll(e *entity.Entity) {
	rng := s.world.Rand()
	if !utils.Chance(rng, config.MonsterRollChance) {
		return
	}

	var velocity geom.Vec2
	if player, ok := s.world.Level().Player(); ok && player.Position.Dist(e.Position) <= config.MonsterChargeRadius {
		velocity = player.Position.Sub(e.Position)
	} else {
		r := config.MonsterWanderRange
		velocity = geom.V(utils.Range(rng, -r, r), utils.Range(rng, -r, r))
	}

	e.Velocity = velocity
	e.Charge = component.Charge{
		Direction: velocity.Normalize(),
		Remaining: velocity.Len(),
	}
}
