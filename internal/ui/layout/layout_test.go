package layout

import (
	"testing"

	"go-cave-rhythm/pkg/geom"
)

func TestWorldToScreenFlipsY(t *testing.T) {
	v := Viewport{Width: 800, Height: 600, TilePixels: 32, Camera: geom.V(10, 10)}

	tests := []struct {
		name   string
		p      geom.Vec2
		wx, wy float64
	}{
		{"camera is centre", geom.V(10, 10), 400, 300},
		{"up is up", geom.V(10, 11), 400, 268},
		{"right is right", geom.V(12, 10), 464, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.WorldToScreen(tt.p)
			if x != tt.wx || y != tt.wy {
				t.Errorf("WorldToScreen(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestRectToScreenUsesTopLeft(t *testing.T) {
	v := Viewport{Width: 100, Height: 100, TilePixels: 10}
	x, y, w, h := v.RectToScreen(geom.Cell(0, 0))
	if x != 50 || y != 40 || w != 10 || h != 10 {
		t.Errorf("RectToScreen(cell 0,0) = (%v, %v, %v, %v)", x, y, w, h)
	}
}

func TestVisibleTilesClamp(t *testing.T) {
	v := Viewport{Width: 320, Height: 320, TilePixels: 32, Camera: geom.V(2, 50)}
	x0, y0, x1, y1 := v.VisibleTiles(100, 100)
	if x0 != 0 {
		t.Errorf("x0 = %d, want clamp to 0", x0)
	}
	if x1 != 8 || y0 != 45 || y1 != 56 {
		t.Errorf("range = [%d,%d)x[%d,%d)", x0, x1, y0, y1)
	}

	_, _, x1, _ = Viewport{Width: 320, Height: 320, TilePixels: 32, Camera: geom.V(99, 0)}.VisibleTiles(100, 100)
	if x1 != 100 {
		t.Errorf("x1 = %d, want clamp to width", x1)
	}
}

func TestNoteSpan(t *testing.T) {
	l := Lanes{Y: 0, Height: 400, HitLine: 350, PixelsPerSecond: 100, Count: 4, Width: 200}

	top, bottom, ok := l.NoteSpan(2, 1, 0)
	if !ok || bottom != 150 || top != 50 {
		t.Errorf("NoteSpan = (%v, %v, %v)", top, bottom, ok)
	}

	// нота на хит-линии
	if _, bottom, _ := l.NoteSpan(3, 0.5, 3); bottom != 350 {
		t.Errorf("bottom at onset = %v, want hit line", bottom)
	}

	if _, _, ok := l.NoteSpan(10, 1, 0); ok {
		t.Error("note far in the future must be hidden")
	}

	top, _, ok = l.NoteSpan(1, 6, 0)
	if !ok || top != 0 {
		t.Errorf("long note top = %v, want clipped to board", top)
	}

	if x, w := l.Lane(2); x != 100 || w != 50 {
		t.Errorf("Lane(2) = (%v, %v)", x, w)
	}
}
