// internal/system/player.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/defs"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/level"
	"go-cave-rhythm/internal/physics"
	"go-cave-rhythm/pkg/geom"
	"go-cave-rhythm/pkg/logger"
)

// PlayerSystem двигает игрока, подбирает сокровища и ищет контакт с монстрами.
type PlayerSystem struct {
	world     World
	camera    *Camera
	fireballs bool
	spell     *defs.SpellDefinition
}

func NewPlayerSystem(world World, camera *Camera, fireballs bool) *PlayerSystem {
	return &PlayerSystem{world: world, camera: camera, fireballs: fireballs}
}

// SetSpell окрашивает огненные шары заклинанием и масштабирует их урон.
func (s *PlayerSystem) SetSpell(spell defs.SpellDefinition) {
	s.spell = &spell
}

func (s *PlayerSystem) Update(deltaTime float64, in *input.Snapshot, index int, e *entity.Entity, result *StepResult) {
	lvl := s.world.Level()

	e.Player.CombatCooldown = math.Max(0, e.Player.CombatCooldown-deltaTime)

	dir := geom.V(in.Direction()).Normalize()
	if !dir.IsZero() {
		e.Player.Facing = dir
		physics.MoveEntity(lvl, e, dir.Scale(config.PlayerSpeed*deltaTime))
	}
	s.camera.Target = e.Position

	if s.fireballs && in.Pressed(input.KeySpace) {
		s.castFireball(e)
	}

	ents := lvl.Entities
	for j := 0; j < ents.Len(); j++ {
		if j == index || ents.IsMarked(j) {
			continue
		}
		other := ents.At(j)
		if !e.Overlaps(other) {
			continue
		}
		switch other.Brain {
		case component.BrainTreasure:
			ents.MarkRemoved(j)
			result.Treasure++
			s.world.Events().Queue(event.Event{Type: event.TreasureCollected, Data: other.ID})
		case component.BrainMonster:
			if result.Combat == nil && e.Player.CombatCooldown <= 0 {
				result.Combat = other
			}
		}
	}
}

func (s *PlayerSystem) castFireball(e *entity.Entity) {
	facing := e.Player.Facing
	if facing.IsZero() {
		facing = geom.V(1, 0)
	}
	ball := level.NewFireball(e.Position, facing.Scale(config.FireballSpeed), e.Friendly)
	fields := logrus.Fields{"dir": facing}
	if s.spell != nil {
		ball.Render.Color = s.spell.Color.RGBA()
		ball.Damage = config.FireballDamage * s.spell.BaseDamage
		fields["spell"] = s.spell.ID
	}
	s.world.Level().Entities.Add(ball)

	fields["id"] = ball.ID
	logger.Log.WithFields(fields).Debug("fireball cast")
	s.world.Events().Queue(event.Event{Type: event.FireballCast, Data: ball.ID})
}
