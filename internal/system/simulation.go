// internal/system/simulation.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/level"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/logger"
)

// World определяет, что проход симуляции требует от Game.
// Это помогает избежать циклических зависимостей.
type World interface {
	Level() *level.Level
	Events() *event.Dispatcher
	Rand() utils.Rand
}

// StepResult: итог одного прохода симуляции.
type StepResult struct {
	Combat   *entity.Entity // первый монстр, которого коснулся игрок
	Treasure int            // подобрано сокровищ за кадр
	Removed  []*entity.Entity
}

// Simulation обходит сущности уровня по индексу и раздаёт их системам по Brain.
type Simulation struct {
	world    World
	Player   *PlayerSystem
	Monster  *MonsterSystem
	Fireball *FireballSystem
	Visual   *VisualEffectSystem
	Camera   *Camera
}

// NewSimulation собирает все системы вокруг одного мира.
func NewSimulation(world World, fireballs bool) *Simulation {
	camera := NewCamera()
	return &Simulation{
		world:    world,
		Player:   NewPlayerSystem(world, camera, fireballs),
		Monster:  NewMonsterSystem(world),
		Fireball: NewFireballSystem(world, camera),
		Visual:   NewVisualEffectSystem(world),
		Camera:   camera,
	}
}

// Update выполняет один кадр оверворлда.
// Сущности, добавленные во время прохода (огненные шары), начинают двигаться со следующего кадра.
// Удаления применяются после прохода, события доставляются в самом конце.
func (s *Simulation) Update(deltaTime float64, in *input.Snapshot) StepResult {
	var result StepResult
	ents := s.world.Level().Entities

	count := ents.Len()
	for i := 0; i < count; i++ {
		if ents.IsMarked(i) {
			continue
		}
		e := ents.At(i)
		switch e.Brain {
		case component.BrainPlayer:
			s.Player.Update(deltaTime, in, i, e, &result)
		case component.BrainMonster:
			s.Monster.Update(deltaTime, e)
		case component.BrainFireball:
			s.Fireball.Update(deltaTime, i, e)
		case component.BrainTreasure:
			// сокровища стоят на месте
		}
	}

	result.Removed = ents.Flush()
	for _, gone := range result.Removed {
		logger.Log.WithFields(logrus.Fields{
			"id":    gone.ID,
			"brain": gone.Brain.String(),
		}).Debug("entity removed")
		s.world.Events().Queue(event.Event{Type: event.EntityRemoved, Data: gone})
	}

	s.Visual.Update(deltaTime)
	s.Camera.Update(deltaTime)
	s.world.Events().Flush()
	return result
}
