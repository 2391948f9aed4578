package level

import (
	"errors"
	"fmt"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/geom"
)

// ErrNoFloor is returned when placement gives up looking for an open 2×2 block.
var ErrNoFloor = errors.New("no open floor found")

// GenOptions tunes the cave generator. DefaultGenOptions matches the game.
type GenOptions struct {
	WallChance           float64
	Iterations           int
	DeathLimit           int
	BirthLimit           int
	NookWalls            int
	TreasureChance       float64
	MonsterCount         int
	MaxPlacementAttempts int
}

func DefaultGenOptions() GenOptions {
	return GenOptions{
		WallChance:           config.WallChance,
		Iterations:           config.CaveIterations,
		DeathLimit:           config.DeathLimit,
		BirthLimit:           config.BirthLimit,
		NookWalls:            config.TreasureNookWalls,
		TreasureChance:       config.TreasureChance,
		MonsterCount:         config.DefaultMonsterCount,
		MaxPlacementAttempts: config.MaxPlacementAttempts,
	}
}

// GenerateCave carves a cave and populates it with treasure, the player and monsters.
func GenerateCave(width, height int, rng utils.Rand, opts GenOptions) ([]Tile, []*entity.Entity, error) {
	if width < 2 || height < 2 {
		return nil, nil, fmt.Errorf("cave must be at least 2x2, got %dx%d", width, height)
	}
	tiles := GenerateTiles(width, height, rng, opts)
	ents, err := Populate(tiles, width, height, rng, opts)
	if err != nil {
		return nil, nil, err
	}
	return tiles, ents, nil
}

// GenerateTiles seeds random walls and runs the cellular automaton.
func GenerateTiles(width, height int, rng utils.Rand, opts GenOptions) []Tile {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		if utils.Chance(rng, opts.WallChance) {
			tiles[i] = TileWall
		}
	}

	next := make([]Tile, width*height)
	for iter := 0; iter < opts.Iterations; iter++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				walls := wallNeighbours(tiles, width, height, x, y)
				i := y*width + x
				if tiles[i] == TileWall {
					if walls > opts.DeathLimit {
						next[i] = TileWall
					} else {
						next[i] = TileFloor
					}
				} else {
					if walls > opts.BirthLimit {
						next[i] = TileWall
					} else {
						next[i] = TileFloor
					}
				}
			}
		}
		tiles, next = next, tiles
	}
	return tiles
}

// wallNeighbours counts blocking cells in the Moore neighbourhood; out of bounds counts as wall.
func wallNeighbours(tiles []Tile, width, height, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				count++
				continue
			}
			if tiles[ny*width+nx].Blocks() {
				count++
			}
		}
	}
	return count
}

// Populate places treasure in nooks, then the player, then the monsters.
func Populate(tiles []Tile, width, height int, rng utils.Rand, opts GenOptions) ([]*entity.Entity, error) {
	var ents []*entity.Entity

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if tiles[y*width+x] != TileFloor {
				continue
			}
			if wallNeighbours(tiles, width, height, x, y) < opts.NookWalls {
				continue
			}
			if utils.Chance(rng, opts.TreasureChance) {
				ents = append(ents, NewTreasure(geom.V(float64(x)+0.5, float64(y)+0.5)))
			}
		}
	}

	pos, err := findOpenBlock(tiles, width, height, rng, opts.MaxPlacementAttempts, nil)
	if err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	player := NewPlayer(pos)
	ents = append(ents, player)

	avoid := player.Bounds()
	for i := 0; i < opts.MonsterCount; i++ {
		pos, err := findOpenBlock(tiles, width, height, rng, opts.MaxPlacementAttempts, &avoid)
		if err != nil {
			return nil, fmt.Errorf("place monster %d: %w", i, err)
		}
		ents = append(ents, NewMonster(pos))
	}
	return ents, nil
}

// findOpenBlock samples cells until it hits a 2×2 block of floor and returns
// the block centre. Blocks overlapping avoid are rejected.
func findOpenBlock(tiles []Tile, width, height int, rng utils.Rand, maxAttempts int, avoid *geom.Rect) (geom.Vec2, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		x := rng.Intn(width - 1)
		y := rng.Intn(height - 1)
		if tiles[y*width+x] != TileFloor ||
			tiles[y*width+x+1] != TileFloor ||
			tiles[(y+1)*width+x] != TileFloor ||
			tiles[(y+1)*width+x+1] != TileFloor {
			continue
		}
		block := geom.Rect{Min: geom.V(float64(x), float64(y)), Max: geom.V(float64(x+2), float64(y+2))}
		if avoid != nil && block.Intersects(*avoid) {
			continue
		}
		return geom.V(float64(x+1), float64(y+1)), nil
	}
	return geom.Vec2{}, ErrNoFloor
}

func NewPlayer(pos geom.Vec2) *entity.Entity {
	return &entity.Entity{
		Brain:    component.BrainPlayer,
		Position: pos,
		Size:     geom.V(config.PlayerSize, config.PlayerSize),
		Friendly: true,
		Health:   component.NewHealth(config.PlayerHealth),
		Player:   component.PlayerState{Facing: geom.V(1, 0)},
		Render:   component.Renderable{Color: config.PlayerColor},
	}
}

func NewMonster(pos geom.Vec2) *entity.Entity {
	return &entity.Entity{
		Brain:    component.BrainMonster,
		Position: pos,
		Size:     geom.V(config.MonsterSize, config.MonsterSize),
		Health:   component.NewHealth(config.MonsterHealth),
		Render:   component.Renderable{Color: config.MonsterColor},
	}
}

func NewTreasure(pos geom.Vec2) *entity.Entity {
	return &entity.Entity{
		Brain:    component.BrainTreasure,
		Position: pos,
		Size:     geom.V(config.TreasureSize, config.TreasureSize),
		Friendly: true,
		Render:   component.Renderable{Color: config.TreasureColor},
	}
}

// NewFireball creates a projectile owned by the given faction.
func NewFireball(pos, velocity geom.Vec2, friendly bool) *entity.Entity {
	return &entity.Entity{
		Brain:      component.BrainFireball,
		Position:   pos,
		Velocity:   velocity,
		Size:       geom.V(config.FireballSize, config.FireballSize),
		Friendly:   friendly,
		Damage:     config.FireballDamage,
		Projectile: component.Projectile{Origin: pos},
		Render:     component.Renderable{Color: config.FireballColor},
	}
}

// Regenerate builds a fresh cave and swaps it in only when generation succeeds.
func (l *Level) Regenerate(width, height int, rng utils.Rand, opts GenOptions) error {
	tiles, ents, err := GenerateCave(width, height, rng, opts)
	if err != nil {
		return err
	}
	l.Replace(width, height, tiles, ents)
	return nil
}
