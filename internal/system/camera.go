// internal/system/camera.go
package system

import (
	"math"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/pkg/geom"
)

// Camera следует за целью с экспоненциальным сглаживанием, не зависящим от частоты кадров.
type Camera struct {
	Position geom.Vec2
	Target   geom.Vec2
}

func NewCamera() *Camera {
	return &Camera{}
}

// Snap ставит камеру сразу на точку (после генерации уровня).
func (c *Camera) Snap(pos geom.Vec2) {
	c.Position = pos
	c.Target = pos
}

func (c *Camera) Update(deltaTime float64) {
	t := math.Min(1, deltaTime*config.CameraSmoothing)
	c.Position = geom.Lerp(c.Position, c.Target, t)
}
