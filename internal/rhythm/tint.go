package rhythm

import (
	"image/color"
	"math"

	"go-cave-rhythm/internal/config"
)

// NoteTint cycles a note marker through red, yellow and green.
// The phase is offset by the note onset so neighbouring notes differ.
func NoteTint(at, t float64) color.RGBA {
	u := (math.Sin(t*config.NoteTintSpeed+at) + 1) / 2
	if u < 0.5 {
		return color.RGBA{R: 255, G: uint8(255 * u * 2), A: 255}
	}
	return color.RGBA{R: uint8(255 * (1 - u) * 2), G: 255, A: 255}
}
