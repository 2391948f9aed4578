// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/pkg/logger"
)

var _ State = (*MenuState)(nil)

// MenuState: титульный экран.
type MenuState struct {
	sm  *StateMachine
	svc *Services
}

func NewMenuState(sm *StateMachine, svc *Services) *MenuState {
	return &MenuState{sm: sm, svc: svc}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(in *input.Snapshot) {
	switch {
	case in.Pressed(input.KeySpace):
		gs, err := NewGameState(m.sm, m.svc)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to build the cave")
		}
		m.sm.SetState(gs)
	case in.Pressed(input.KeyT):
		m.sm.SetState(NewPracticeState(m.sm, m.svc))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	f := m.svc.Font
	cx := float64(config.ScreenWidth) / 2
	y := float64(config.ScreenHeight)/2 - 40
	f.DrawCentered(screen, "CAVE RHYTHM", cx, y, config.TreasureColor)
	f.DrawCentered(screen, "Space - explore the cave", cx, y+40, config.TextLightColor)
	f.DrawCentered(screen, "T - rhythm practice", cx, y+40+f.LineHeight(), config.TextLightColor)
}

func (m *MenuState) Exit() {}
