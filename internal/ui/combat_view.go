// internal/ui/combat_view.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-cave-rhythm/internal/combat"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/pkg/geom"
)

const (
	combatPanelHeight = 150
	combatPanelMargin = 10
)

// CombatView draws the combat menu over the world, the rhythm board while a
// sub-phase runs and the attack projectile.
type CombatView struct {
	lanes    *LanesView
	opponent *HealthIndicator
	player   *HealthIndicator
}

func NewCombatView(laneKeys []string) *CombatView {
	return &CombatView{
		lanes:    NewLanesView(40, 360, 380, laneKeys),
		player:   NewHealthIndicator(combatPanelMargin*2, config.ScreenHeight-combatPanelHeight+8, "You"),
		opponent: NewHealthIndicator(config.ScreenWidth-180, config.ScreenHeight-combatPanelHeight+8, "Monster"),
	}
}

// Draw рисует интерфейс боя. world нужен для снаряда в мировых координатах.
func (v *CombatView) Draw(screen *ebiten.Image, font *Font, world *WorldView, camera geom.Vec2, s *combat.Session, t float64) {
	if x, ok := s.ProjectileX(); ok {
		tint := config.FireballColor
		if spell, chosen := s.Spell(); chosen {
			tint = spell.Color.RGBA()
		}
		world.DrawMarker(screen, camera, geom.V(x, s.Player.Position.Y), config.FireballSize, tint)
	}

	top := float32(config.ScreenHeight - combatPanelHeight - combatPanelMargin)
	drawPanel(screen, combatPanelMargin, top, config.ScreenWidth-combatPanelMargin*2, combatPanelHeight)
	v.player.Draw(screen, font, s.Player.Health)
	v.opponent.Draw(screen, font, s.Opponent.Health)

	lines := v.menuLines(s)
	font.DrawLines(screen, lines, 260, float64(top)+12, config.TextLightColor)

	if s.RhythmActive() {
		v.lanes.Draw(screen, font, s.Rhythm, t)
	}
}

func (v *CombatView) menuLines(s *combat.Session) []string {
	switch s.State() {
	case combat.StateMain:
		return []string{"1 Attack", "2 Defend", "3 Examine", "4 Flee"}
	case combat.StateAttack:
		if s.ChoosingSpell() {
			lines := []string{"Choose a spell:"}
			for i, spell := range s.Spells().All() {
				if i >= 4 {
					break
				}
				lines = append(lines, fmt.Sprintf("%d %s (%.1f)", i+1, spell.Name, spell.BaseDamage))
			}
			return append(lines, "B back")
		}
		spell, _ := s.Spell()
		if s.RhythmActive() {
			return []string{"Casting " + spell.Name + "...", "Hold the notes!"}
		}
		return []string{fmt.Sprintf("%s hits for %.2f", spell.Name, spell.BaseDamage*s.LastScore())}
	case combat.StateDefend:
		if s.AwaitingConfirm() {
			return []string{"Brace for the strike", "Enter start  B back"}
		}
		if s.RhythmActive() {
			return []string{"Block the blow!"}
		}
		return []string{fmt.Sprintf("Blocked %.0f%%", s.LastScore()*100)}
	case combat.StateExamine:
		o := s.Opponent
		return []string{
			"A cave monster.",
			fmt.Sprintf("Health %.1f/%.0f", o.Health.Current, o.Health.Max),
			fmt.Sprintf("Strikes for up to %.1f", config.MonsterStrikeDamage),
			"B back",
		}
	case combat.StateFlee:
		return []string{"Run away?", "Enter confirm  B back"}
	}
	return nil
}
