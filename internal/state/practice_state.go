// internal/state/practice_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/audio"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/rhythm"
	"go-cave-rhythm/internal/ui"
	"go-cave-rhythm/pkg/logger"
)

var _ State = (*PracticeState)(nil)

// PracticeState крутит ритм-секции без боя.
type PracticeState struct {
	sm     *StateMachine
	svc    *Services
	engine *rhythm.Engine
	events *event.Dispatcher
	lanes  *ui.LanesView

	clock    float64
	sections int
}

func NewPracticeState(sm *StateMachine, svc *Services) *PracticeState {
	engine := rhythm.NewEngine(svc.Rng)
	engine.Loop = true

	events := event.NewDispatcher()
	if svc.Sink != nil {
		audio.NewCueListener(svc.Sink, svc.Settings.Volume).Subscribe(events)
	}
	return &PracticeState{
		sm:     sm,
		svc:    svc,
		engine: engine,
		events: events,
		lanes:  ui.NewLanesView(60, 400, 440, svc.Settings.LaneKeys),
	}
}

func (p *PracticeState) Enter() {
	p.clock = 0
	p.engine.Start(p.clock)
}

func (p *PracticeState) Update(in *input.Snapshot) {
	if in.Pressed(input.KeyEscape) {
		p.sm.SetState(NewMenuState(p.sm, p.svc))
		return
	}
	p.clock += in.Delta
	for _, j := range p.engine.Update(p.clock, in) {
		p.events.Dispatch(event.Event{Type: event.NoteJudged, Data: event.NoteResult{Lane: j.Lane, Score: j.Score}})
	}
	if n := p.engine.Sections(); n != p.sections {
		p.sections = n
		logger.Log.WithFields(logrus.Fields{
			"section": n,
			"score":   p.engine.LastScore(),
		}).Info("practice section finished")
	}
}

func (p *PracticeState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	f := p.svc.Font
	p.lanes.Draw(screen, f, p.engine, p.clock)
	f.Draw(screen, fmt.Sprintf("Sections %d   last score %.2f", p.engine.Sections(), p.engine.LastScore()), 12, 12, config.TextLightColor)
	f.Draw(screen, "Esc - back to menu", 12, config.ScreenHeight-f.LineHeight()-8, config.TextLightColor)
}

func (p *PracticeState) Exit() {
	p.engine.Stop()
}
