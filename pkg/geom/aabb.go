package geom

import "math"

// Skin is the gap Separation leaves between the boxes so rounding cannot
// leave them overlapping by a few ulps.
const Skin = 1e-10

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Vec2
}

// Centered builds the box of the given size around center.
func Centered(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Cell returns the unit box of the grid cell (x, y).
func Cell(x, y int) Rect {
	return Rect{
		Min: Vec2{float64(x), float64(y)},
		Max: Vec2{float64(x + 1), float64(y + 1)},
	}
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Center() Vec2 {
	return Lerp(r.Min, r.Max, 0.5)
}

// Intersects reports a strict overlap; boxes that only touch do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y && r.Max.Y > o.Min.Y
}

// Separation returns the displacement that moves r just clear of o along the
// axis needing the smaller push, plus Skin. It returns the zero vector when they do not overlap.
func (r Rect) Separation(o Rect) Vec2 {
	if !r.Intersects(o) {
		return Vec2{}
	}
	c, oc := r.Center(), o.Center()

	var dx, dy float64
	if c.X < oc.X {
		dx = o.Min.X - r.Max.X - Skin
	} else {
		dx = o.Max.X - r.Min.X + Skin
	}
	if c.Y < oc.Y {
		dy = o.Min.Y - r.Max.Y - Skin
	} else {
		dy = o.Max.Y - r.Min.Y + Skin
	}

	if math.Abs(dx) < math.Abs(dy) {
		return Vec2{X: dx}
	}
	return Vec2{Y: dy}
}
