package entity

import (
	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/types"
	"go-cave-rhythm/pkg/geom"
)

// Entity — всё, что живёт на уровне: игрок, сокровища, монстры, огненные шары.
type Entity struct {
	ID       types.EntityID
	Brain    component.Brain
	Position geom.Vec2
	Velocity geom.Vec2
	Size     geom.Vec2
	Friendly bool
	Health   component.Health
	Damage   float64 // имеет смысл только для снарядов

	Charge     component.Charge
	Projectile component.Projectile
	Player     component.PlayerState
	Render     component.Renderable
}

// Bounds возвращает AABB сущности с центром в её позиции.
func (e *Entity) Bounds() geom.Rect {
	return geom.Centered(e.Position, e.Size)
}

// Overlaps сообщает, пересекаются ли AABB двух сущностей.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Bounds().Intersects(o.Bounds())
}

// Opposed: сущности из разных фракций.
func (e *Entity) Opposed(o *Entity) bool {
	return e.Friendly != o.Friendly
}
