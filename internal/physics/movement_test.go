package physics

import (
	"math"
	"testing"

	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/geom"
)

// testGrid: всё за пределами сетки считается стеной.
type testGrid struct {
	w, h  int
	walls map[[2]int]bool
}

func newGrid(w, h int) *testGrid {
	return &testGrid{w: w, h: h, walls: make(map[[2]int]bool)}
}

func (g *testGrid) GridWidth() int  { return g.w }
func (g *testGrid) GridHeight() int { return g.h }
func (g *testGrid) Blocked(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return true
	}
	return g.walls[[2]int{x, y}]
}

func (g *testGrid) wall(x, y int) {
	g.walls[[2]int{x, y}] = true
}

func near(a, b geom.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestMoveEntityPreservesDistanceInOpenSpace(t *testing.T) {
	grid := newGrid(1000, 1000)
	rng := utils.NewPRNGService(11)

	for i := 0; i < 500; i++ {
		start := geom.V(500, 500)
		angle := utils.Range(rng, 0, 2*math.Pi)
		length := utils.Range(rng, 1e-6, 10)
		delta := geom.V(math.Cos(angle)*length, math.Sin(angle)*length)

		e := &entity.Entity{Position: start, Size: geom.V(1.2, 1.2)}
		MoveEntity(grid, e, delta)

		if !near(e.Position.Sub(start), delta, 1e-9) {
			t.Fatalf("delta %+v moved by %+v", delta, e.Position.Sub(start))
		}
	}
}

func TestMoveEntityDoesNotTunnelThroughThinWall(t *testing.T) {
	grid := newGrid(20, 10)
	for y := 0; y < 10; y++ {
		grid.wall(5, y)
	}
	e := &entity.Entity{Position: geom.V(2.5, 5.5), Size: geom.V(0.5, 0.5)}
	MoveEntity(grid, e, geom.V(8, 0))

	if e.Position.X+0.25 > 5+1e-9 {
		t.Errorf("entity passed the wall: x = %f", e.Position.X)
	}
	if math.Abs(e.Position.X-4.75) > 1e-6 {
		t.Errorf("entity should rest against the wall, x = %f", e.Position.X)
	}
	if Overlaps(grid, e.Position, e.Size) {
		t.Error("entity overlaps the wall")
	}
}

func TestMoveEntityIntoConcaveCorner(t *testing.T) {
	grid := newGrid(10, 10)
	for i := 0; i < 10; i++ {
		grid.wall(5, i)
		grid.wall(i, 5)
	}
	e := &entity.Entity{Position: geom.V(3.5, 3.5), Size: geom.V(1, 1)}
	MoveEntity(grid, e, geom.V(3, 3))

	if Overlaps(grid, e.Position, e.Size) {
		t.Fatalf("entity stuck in the corner at %+v", e.Position)
	}
	if !near(e.Position, geom.V(4.5, 4.5), 1e-6) {
		t.Errorf("expected to settle in the corner, got %+v", e.Position)
	}
}

func TestMoveEntitySlidesAlongWall(t *testing.T) {
	grid := newGrid(20, 20)
	for x := 0; x < 20; x++ {
		grid.wall(x, 10)
	}
	e := &entity.Entity{Position: geom.V(3, 9), Size: geom.V(1.7, 1.7)}
	MoveEntity(grid, e, geom.V(4, 2))

	if Overlaps(grid, e.Position, e.Size) {
		t.Fatalf("entity overlaps the wall at %+v", e.Position)
	}
	// Корректировки по краю стены могут только подтолкнуть вперёд.
	if e.Position.X < 7-1e-6 || e.Position.X > 8 {
		t.Errorf("horizontal motion should be kept, x = %f", e.Position.X)
	}
	if math.Abs(e.Position.Y-9.15) > 1e-6 {
		t.Errorf("entity should rest under the wall row, y = %f", e.Position.Y)
	}
}

func TestMoveEntityNeverEndsInsidePillars(t *testing.T) {
	grid := newGrid(40, 40)
	for y := 6; y <= 34; y += 4 {
		for x := 6; x <= 34; x += 4 {
			grid.wall(x, y)
		}
	}
	rng := utils.NewPRNGService(3)
	size := geom.V(1, 1)

	for i := 0; i < 1000; i++ {
		var start geom.Vec2
		for {
			start = geom.V(utils.Range(rng, 5, 35), utils.Range(rng, 5, 35))
			if !Overlaps(grid, start, size) {
				break
			}
		}
		angle := utils.Range(rng, 0, 2*math.Pi)
		length := utils.Range(rng, 0.01, 10)
		e := &entity.Entity{Position: start, Size: size}
		MoveEntity(grid, e, geom.V(math.Cos(angle)*length, math.Sin(angle)*length))

		if Overlaps(grid, e.Position, e.Size) {
			t.Fatalf("move %d from %+v ended inside a wall at %+v", i, start, e.Position)
		}
	}
}

func TestGridEdgeIsSolid(t *testing.T) {
	grid := newGrid(5, 5)
	e := &entity.Entity{Position: geom.V(2.5, 2.5), Size: geom.V(1, 1)}
	MoveEntity(grid, e, geom.V(-9, 0))
	if e.Position.X < 0.5-1e-9 {
		t.Errorf("entity left the grid: x = %f", e.Position.X)
	}
}
