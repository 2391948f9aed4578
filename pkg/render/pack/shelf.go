// Package pack places rectangles into a fixed-size sheet using rows ("shelves").
package pack

// Shelf is a simple shelf packer: rectangles fill the current row left to
// right; a new row opens below the tallest rectangle of the previous one.
type Shelf struct {
	width, height int
	padding       int

	x, y        int
	shelfHeight int
}

func NewShelf(width, height, padding int) *Shelf {
	return &Shelf{width: width, height: height, padding: padding}
}

// Place reserves a w×h rectangle and returns its top-left corner.
func (s *Shelf) Place(w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 || w > s.width || h > s.height {
		return 0, 0, false
	}
	if s.x+w > s.width {
		s.y += s.shelfHeight + s.padding
		s.x = 0
		s.shelfHeight = 0
	}
	if s.y+h > s.height {
		return 0, 0, false
	}
	x, y = s.x, s.y
	s.x += w + s.padding
	if h > s.shelfHeight {
		s.shelfHeight = h
	}
	return x, y, true
}
