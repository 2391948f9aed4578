package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cave-rhythm/internal/config"
)

// drawPanel рисует полупрозрачную плашку с рамкой.
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, config.UIPanelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.UIBorderColor, false)
}
