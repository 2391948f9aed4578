// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// HealthIndicator рисует здоровье сеткой кружков, по кружку на единицу.
type HealthIndicator struct {
	X, Y  float32
	Label string
}

// NewHealthIndicator создаёт индикатор в точке (x, y).
func NewHealthIndicator(x, y float32, label string) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, Label: label}
}

// healthColor: зелёный при полном запасе, жёлтый до половины, красный ниже.
func healthColor(h component.Health) color.RGBA {
	switch f := h.Fraction(); {
	case f > 0.5:
		return config.HealthIndicatorFullColor
	case f > 0.25:
		return config.HealthIndicatorWarningColor
	default:
		return config.HealthIndicatorCriticalColor
	}
}

// Draw рисует подпись и кружки.
func (i *HealthIndicator) Draw(screen *ebiten.Image, font *Font, h component.Health) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	font.Draw(screen, fmt.Sprintf("%s %.1f/%.0f", i.Label, h.Current, h.Max), float64(i.X), float64(i.Y), config.TextLightColor)

	top := i.Y + float32(font.LineHeight()) + 2
	fill := healthColor(h)
	cells := int(h.Max)
	for j := 0; j < cells; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := top + float32(j/HealthCols)*step + HealthCircleRadius

		c := config.HealthIndicatorEmptyColor
		if float64(j) < h.Current {
			c = fill
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.UIBorderColor, true)
	}
}

// Height возвращает общую высоту индикатора для maxHealth единиц здоровья.
func (i *HealthIndicator) Height(font *Font, maxHealth float64) float32 {
	rows := (int(maxHealth) + HealthCols - 1) / HealthCols
	return float32(font.LineHeight()) + 2 + float32(rows)*(HealthCircleRadius*2+HealthCircleSpacing)
}
