// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
)

// HUD показывает здоровье игрока и счётчик сокровищ в оверворлде.
type HUD struct {
	health *HealthIndicator
}

func NewHUD() *HUD {
	return &HUD{health: NewHealthIndicator(12, 10, "HP")}
}

func (h *HUD) Draw(screen *ebiten.Image, font *Font, player component.Health, treasure int, fireballs bool) {
	height := h.health.Height(font, player.Max)
	drawPanel(screen, 4, 4, HealthCols*(HealthCircleRadius*2+HealthCircleSpacing)+16, height+16)
	h.health.Draw(screen, font, player)

	font.Draw(screen, fmt.Sprintf("Treasure: %d", treasure), config.ScreenWidth-140, 12, config.TreasureColor)

	hint := "WASD move  R new cave  P pause"
	if fireballs {
		hint = "WASD move  Space fireball  R new cave  P pause"
	}
	font.Draw(screen, hint, 12, config.ScreenHeight-font.LineHeight()-8, config.TextLightColor)
}
