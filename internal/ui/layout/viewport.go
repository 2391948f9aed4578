// Package layout converts world and rhythm coordinates into screen pixels.
// It has no ebiten dependency so the math is testable headless.
package layout

import (
	"math"

	"go-cave-rhythm/pkg/geom"
)

// Viewport maps world units (y up) to screen pixels (y down) around a camera.
type Viewport struct {
	Width, Height float64 // экран в пикселях
	TilePixels    float64
	Camera        geom.Vec2
}

// WorldToScreen returns the pixel position of a world point.
func (v Viewport) WorldToScreen(p geom.Vec2) (x, y float64) {
	x = (p.X-v.Camera.X)*v.TilePixels + v.Width/2
	y = v.Height/2 - (p.Y-v.Camera.Y)*v.TilePixels
	return x, y
}

// RectToScreen returns the top-left corner and pixel size of a world box.
func (v Viewport) RectToScreen(r geom.Rect) (x, y, w, h float64) {
	x, y = v.WorldToScreen(geom.Vec2{X: r.Min.X, Y: r.Max.Y})
	size := r.Size()
	return x, y, size.X * v.TilePixels, size.Y * v.TilePixels
}

// VisibleTiles returns the half-open cell range [x0,x1)×[y0,y1) that can
// appear on screen, clamped to a width×height grid.
func (v Viewport) VisibleTiles(width, height int) (x0, y0, x1, y1 int) {
	halfW := v.Width / 2 / v.TilePixels
	halfH := v.Height / 2 / v.TilePixels
	x0 = clamp(int(math.Floor(v.Camera.X-halfW)), 0, width)
	x1 = clamp(int(math.Ceil(v.Camera.X+halfW))+1, 0, width)
	y0 = clamp(int(math.Floor(v.Camera.Y-halfH)), 0, height)
	y1 = clamp(int(math.Ceil(v.Camera.Y+halfH))+1, 0, height)
	return x0, y0, x1, y1
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
