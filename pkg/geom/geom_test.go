package geom

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", n.Len())
	}
	if !V(0, 0).Normalize().IsZero() {
		t.Error("zero vector must normalize to zero")
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(V(0, 0), V(10, -4), 0.25)
	if got != V(2.5, -1) {
		t.Errorf("Lerp = %+v", got)
	}
}

func TestIntersectsTouchingIsNotOverlap(t *testing.T) {
	a := Cell(0, 0)
	b := Cell(1, 0)
	if a.Intersects(b) {
		t.Error("adjacent cells must not intersect")
	}
	if !Centered(V(1, 0.5), V(0.5, 0.5)).Intersects(b) {
		t.Error("box straddling the edge must intersect")
	}
}

func TestSeparationPicksSmallerAxis(t *testing.T) {
	wall := Cell(2, 2)

	tests := []struct {
		name string
		box  Rect
		want Vec2
	}{
		{"from the left", Centered(V(1.9, 2.5), V(0.4, 0.4)), V(-0.1, 0)},
		{"from above", Centered(V(2.5, 1.85), V(0.4, 0.4)), V(0, -0.05)},
		{"from the right", Centered(V(3.1, 2.6), V(0.4, 0.4)), V(0.1, 0)},
		{"from below", Centered(V(2.4, 3.15), V(0.4, 0.4)), V(0, 0.05)},
		{"no overlap", Centered(V(0.5, 0.5), V(0.4, 0.4)), V(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.box.Separation(wall)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Fatalf("Separation = %+v, want %+v", got, tt.want)
			}
			moved := Rect{Min: tt.box.Min.Add(got), Max: tt.box.Max.Add(got)}
			if moved.Intersects(wall) {
				t.Errorf("box still overlaps after separation: %+v", moved)
			}
		})
	}
}
