// internal/component/projectile.go
package component

import "go-cave-rhythm/pkg/geom"

// Projectile — огненный шар: откуда вылетел и сколько пролетел.
type Projectile struct {
	Origin   geom.Vec2
	Traveled float64
}
