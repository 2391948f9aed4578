// Package physics moves entities through the tile grid without tunnelling through walls.
package physics

import (
	"math"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/geom"
)

// TileGrid is the part of a level the movement code needs.
type TileGrid interface {
	GridWidth() int
	GridHeight() int
	Blocked(x, y int) bool
}

// MoveEntity displaces e by delta. Displacements longer than config.MaxStep are
// split into MaxStep-long steps, and every step is resolved against the grid.
func MoveEntity(grid TileGrid, e *entity.Entity, delta geom.Vec2) {
	dist := delta.Len()
	if dist > config.MaxStep {
		step := delta.Scale(config.MaxStep / dist)
		e.Position = e.Position.Add(step)
		ResolveTiles(grid, e)
		MoveEntity(grid, e, delta.Sub(step))
		return
	}
	e.Position = e.Position.Add(delta)
	ResolveTiles(grid, e)
}

// ResolveTiles pushes e out of every blocking tile its footprint overlaps.
// Tiles are visited in row-major order; each correction uses the cheaper axis,
// and later tiles see the already corrected position.
func ResolveTiles(grid TileGrid, e *entity.Entity) {
	x0, y0, x1, y1 := cellRange(grid, geom.Centered(e.Position, e.Size))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !grid.Blocked(x, y) {
				continue
			}
			push := geom.Centered(e.Position, e.Size).Separation(geom.Cell(x, y))
			e.Position = e.Position.Add(push)
		}
	}
}

// Overlaps reports whether a box of the given size at pos intersects any blocking tile.
func Overlaps(grid TileGrid, pos, size geom.Vec2) bool {
	box := geom.Centered(pos, size)
	x0, y0, x1, y1 := cellRange(grid, box)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if grid.Blocked(x, y) && box.Intersects(geom.Cell(x, y)) {
				return true
			}
		}
	}
	return false
}

// cellRange returns the inclusive cell range covered by box, clamped to the grid
// plus a one-cell ring outside it. The grid reports that ring as blocked.
func cellRange(grid TileGrid, box geom.Rect) (x0, y0, x1, y1 int) {
	maxX, maxY := grid.GridWidth(), grid.GridHeight()
	x0 = utils.ClampInt(int(math.Floor(box.Min.X)), -1, maxX)
	y0 = utils.ClampInt(int(math.Floor(box.Min.Y)), -1, maxY)
	x1 = utils.ClampInt(int(math.Floor(box.Max.X)), -1, maxX)
	y1 = utils.ClampInt(int(math.Floor(box.Max.Y)), -1, maxY)
	return x0, y0, x1, y1
}
