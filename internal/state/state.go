// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-cave-rhythm/internal/audio"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/defs"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/ui"
	"go-cave-rhythm/internal/utils"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(in *input.Snapshot)
	Draw(screen *ebiten.Image)
	Exit()
}

// Services собирает то, что состояния получают от точки входа.
type Services struct {
	Settings config.Settings
	Spells   *defs.SpellBook
	Rng      *utils.PRNGService
	Sink     audio.Sink
	Font     *ui.Font
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(in *input.Snapshot) {
	if sm.current != nil {
		sm.current.Update(in)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
