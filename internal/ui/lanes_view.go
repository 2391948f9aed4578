// internal/ui/lanes_view.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/rhythm"
	"go-cave-rhythm/internal/ui/layout"
	"go-cave-rhythm/pkg/render"
)

// LanesView draws the rhythm board: lanes, falling notes and the hit line.
type LanesView struct {
	Board    layout.Lanes
	KeyNames []string
}

// NewLanesView places a board of the given size centred horizontally at top y.
func NewLanesView(y, width, height float64, keyNames []string) *LanesView {
	return &LanesView{
		Board: layout.Lanes{
			X:               (config.ScreenWidth - width) / 2,
			Y:               y,
			Width:           width,
			Height:          height,
			Count:           config.Lanes,
			HitLine:         y + height - 30,
			PixelsPerSecond: 90,
		},
		KeyNames: keyNames,
	}
}

// Draw рисует текущую секцию движка; t задаёт перелив цвета нот.
func (v *LanesView) Draw(screen *ebiten.Image, font *Font, e *rhythm.Engine, t float64) {
	b := v.Board
	drawPanel(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height))

	for lane := 0; lane < b.Count; lane++ {
		x, w := b.Lane(lane)
		laneColor := config.LaneColors[lane%len(config.LaneColors)]
		if e.HeldNote(lane) >= 0 {
			vector.DrawFilledRect(screen, float32(x), float32(b.Y), float32(w), float32(b.Height), render.WithAlpha(laneColor, 40), false)
		}
		vector.StrokeLine(screen, float32(x), float32(b.Y), float32(x), float32(b.Y+b.Height), 1, render.DarkenColor(laneColor), false)
		if lane < len(v.KeyNames) {
			font.DrawCentered(screen, strings.ToUpper(v.KeyNames[lane]), x+w/2, b.HitLine+8, laneColor)
		}
	}

	current := e.Current()
	for i := range e.Notes {
		n := &e.Notes[i]
		top, bottom, ok := b.NoteSpan(n.At, n.Duration, current)
		if !ok {
			continue
		}
		x, w := b.Lane(n.Lane)
		h := max(bottom-top, 4)
		vector.DrawFilledRect(screen, float32(x+4), float32(bottom-h), float32(w-8), float32(h), noteColor(n, t), false)
	}

	vector.StrokeLine(screen, float32(b.X), float32(b.HitLine), float32(b.X+b.Width), float32(b.HitLine), 2, config.UIBorderColor, false)

	status := fmt.Sprintf("score %.2f", e.Score())
	if current < 0 {
		status = fmt.Sprintf("get ready %.1f", -current)
	}
	font.DrawCentered(screen, status, b.X+b.Width/2, b.Y+6, config.TextLightColor)
}

// noteColor: ещё не сыгранные ноты переливаются, удерживаемые белые,
// сыгранные тускнеют по очку.
func noteColor(n *rhythm.Note, t float64) color.RGBA {
	switch {
	case n.Held:
		return color.RGBA{255, 255, 255, 255}
	case n.Resolved:
		return render.MixColor(config.HealthIndicatorEmptyColor, config.HealthIndicatorFullColor, n.Score)
	default:
		return rhythm.NoteTint(n.At, t)
	}
}
