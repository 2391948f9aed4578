// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font рисует строки bitmap-шрифтом basicfont.
type Font struct {
	face *text.GoXFace
}

// NewFont создаёт шрифт 7x13.
func NewFont() *Font {
	return &Font{face: text.NewGoXFace(basicfont.Face7x13)}
}

// LineHeight возвращает высоту строки в пикселях.
func (f *Font) LineHeight() float64 {
	return f.face.Metrics().HAscent + f.face.Metrics().HDescent + 2
}

// Width возвращает ширину строки.
func (f *Font) Width(s string) float64 {
	w, _ := text.Measure(s, f.face, f.LineHeight())
	return w
}

// Draw рисует строку с левым верхним углом в (x, y).
func (f *Font) Draw(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = f.LineHeight()
	text.Draw(dst, s, f.face, op)
}

// DrawCentered рисует строку по центру относительно cx.
func (f *Font) DrawCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	f.Draw(dst, s, cx-f.Width(s)/2, y, clr)
}

// DrawLines рисует строки одну под другой и возвращает y после последней.
func (f *Font) DrawLines(dst *ebiten.Image, lines []string, x, y float64, clr color.Color) float64 {
	for _, line := range lines {
		f.Draw(dst, line, x, y, clr)
		y += f.LineHeight()
	}
	return y
}
