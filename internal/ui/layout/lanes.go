package layout

// Lanes describes the rhythm board: Count vertical lanes inside a box.
// Notes fall towards the hit line at PixelsPerSecond.
type Lanes struct {
	X, Y, Width, Height float64
	Count               int
	HitLine             float64 // y хит-линии в пикселях
	PixelsPerSecond     float64
}

// Lane returns the left edge and width of lane i.
func (l Lanes) Lane(i int) (x, w float64) {
	w = l.Width / float64(l.Count)
	return l.X + float64(i)*w, w
}

// NoteSpan places a note of the given onset and duration at playback time
// current. top and bottom are clipped to the board; visible is false when
// nothing of the note is on the board.
func (l Lanes) NoteSpan(at, duration, current float64) (top, bottom float64, visible bool) {
	bottom = l.HitLine - (at-current)*l.PixelsPerSecond
	top = bottom - duration*l.PixelsPerSecond
	if bottom < l.Y || top > l.Y+l.Height {
		return 0, 0, false
	}
	return max(top, l.Y), min(bottom, l.Y+l.Height), true
}
