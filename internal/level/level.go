// Package level owns the tile grid and the entity list of one cave.
package level

import (
	"github.com/google/uuid"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/utils"
)

// Tile is the elevation/type code of one grid cell.
type Tile uint8

const (
	TileFloor  Tile = 0
	TileWall   Tile = 1
	TilePillar Tile = 2
)

// Blocks reports whether the tile stops movement. Only floor is walkable.
func (t Tile) Blocks() bool {
	return t != TileFloor
}

// Level is a width×height row-major tile grid plus the entities living on it.
type Level struct {
	ID       uuid.UUID
	Width    int
	Height   int
	Tiles    []Tile
	Entities *entity.List
}

// New builds a level from an already generated grid.
func New(width, height int, tiles []Tile, ents []*entity.Entity) *Level {
	l := &Level{Entities: entity.NewList()}
	l.Replace(width, height, tiles, ents)
	return l
}

// Replace swaps the grid and entity list wholesale and assigns a new level ID.
func (l *Level) Replace(width, height int, tiles []Tile, ents []*entity.Entity) {
	if len(tiles) != width*height {
		panic("level: tile count does not match dimensions")
	}
	l.ID = uuid.New()
	l.Width = width
	l.Height = height
	l.Tiles = tiles
	l.Entities.Reset(ents)
}

// TileAt returns the tile at (x, y) with the coordinates clamped into the grid.
func (l *Level) TileAt(x, y int) Tile {
	x = utils.ClampInt(x, 0, l.Width-1)
	y = utils.ClampInt(y, 0, l.Height-1)
	return l.Tiles[y*l.Width+x]
}

// InBounds reports whether (x, y) is a real cell.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// GridWidth and GridHeight satisfy physics.TileGrid.
func (l *Level) GridWidth() int  { return l.Width }
func (l *Level) GridHeight() int { return l.Height }

// Blocked reports whether the cell at (x, y) stops movement. Cells outside
// the grid are solid rock, as in the generator.
func (l *Level) Blocked(x, y int) bool {
	if !l.InBounds(x, y) {
		return true
	}
	return l.TileAt(x, y).Blocks()
}

// Player returns the single player entity, if present.
func (l *Level) Player() (*entity.Entity, bool) {
	for _, e := range l.Entities.All() {
		if e.Brain == component.BrainPlayer {
			return e, true
		}
	}
	return nil, false
}

// Count returns how many entities use the given brain.
func (l *Level) Count(b component.Brain) int {
	n := 0
	for _, e := range l.Entities.All() {
		if e.Brain == b {
			n++
		}
	}
	return n
}
