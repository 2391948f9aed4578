// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          *ui.Font
}

func NewPauseState(sm *StateMachine, prevState State, font *ui.Font) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          font,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(in *input.Snapshot) {
	if in.Pressed(input.KeyP) || in.Pressed(input.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	s.font.DrawCentered(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2-10, config.TextLightColor)
	s.font.DrawCentered(screen, "P / Esc to resume", config.ScreenWidth/2, config.ScreenHeight/2+10, config.TextLightColor)
}

func (s *PauseState) Exit() {}
