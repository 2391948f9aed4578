package main

import (
	"math"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/level"
)

// glyphs renders a level as text rows, top row first (world y points up).
func glyphs(lvl *level.Level) [][]rune {
	rows := make([][]rune, lvl.Height)
	for row := range rows {
		y := lvl.Height - 1 - row
		line := make([]rune, lvl.Width)
		for x := range line {
			line[x] = tileGlyph(lvl.TileAt(x, y))
		}
		rows[row] = line
	}
	for _, e := range lvl.Entities.All() {
		x := int(math.Floor(e.Position.X))
		y := int(math.Floor(e.Position.Y))
		if !lvl.InBounds(x, y) {
			continue
		}
		rows[lvl.Height-1-y][x] = brainGlyph(e.Brain)
	}
	return rows
}

func tileGlyph(t level.Tile) rune {
	switch t {
	case level.TileWall:
		return '#'
	case level.TilePillar:
		return 'o'
	default:
		return '.'
	}
}

func brainGlyph(b component.Brain) rune {
	switch b {
	case component.BrainPlayer:
		return '@'
	case component.BrainMonster:
		return 'm'
	case component.BrainTreasure:
		return '$'
	default:
		return '*'
	}
}
