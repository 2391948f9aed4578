// internal/system/fireball.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/pkg/logger"
)

// FireballSystem ведёт огненные шары: без столкновений со стенами, до выхода
// за уровень, отрыва от камеры или попадания во врага.
type FireballSystem struct {
	world  World
	camera *Camera
}

func NewFireballSystem(world World, camera *Camera) *FireballSystem {
	return &FireballSystem{world: world, camera: camera}
}

func (s *FireballSystem) Update(deltaTime float64, index int, e *entity.Entity) {
	lvl := s.world.Level()
	ents := lvl.Entities

	step := e.Velocity.Scale(deltaTime)
	e.Position = e.Position.Add(step)
	e.Projectile.Traveled += step.Len()

	if s.expired(e) {
		ents.MarkRemoved(index)
		return
	}

	for j := 0; j < ents.Len(); j++ {
		if j == index || ents.IsMarked(j) {
			continue
		}
		target := ents.At(j)
		if !target.Health.Mortal() || !e.Opposed(target) || !e.Overlaps(target) {
			continue
		}
		s.hit(e, target, j)
		ents.MarkRemoved(index)
		return
	}
}

func (s *FireballSystem) expired(e *entity.Entity) bool {
	lvl := s.world.Level()
	halfX, halfY := e.Size.X/2, e.Size.Y/2
	outside := e.Position.X < -halfX || e.Position.X > float64(lvl.Width)+halfX ||
		e.Position.Y < -halfY || e.Position.Y > float64(lvl.Height)+halfY
	return outside ||
		e.Position.Dist(s.camera.Position) > config.FireballCameraCutoff ||
		e.Projectile.Traveled > config.FireballMaxTravel
}

func (s *FireballSystem) hit(ball, target *entity.Entity, targetIndex int) {
	dealt := target.Health.Damage(ball.Damage)
	target.Render.Flash = config.DamageFlashDuration

	s.world.Events().Queue(event.Event{Type: event.DamageApplied, Data: event.DamageInfo{
		TargetID: target.ID,
		Amount:   dealt,
		Source:   "fireball",
	}})

	if !target.Health.Dead() {
		return
	}
	switch target.Brain {
	case component.BrainMonster:
		s.world.Level().Entities.MarkRemoved(targetIndex)
	case component.BrainPlayer:
		target.Health.Heal()
		logger.Log.WithFields(logrus.Fields{"id": target.ID}).Info("player respawned by heal")
	}
}
