package rhythm

import (
	"math"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/utils"
)

// Judgement reports a resolved hold.
type Judgement struct {
	Lane  int
	Score float64
}

// Engine runs rhythm sections. In one-shot mode (combat) it stops after the
// first section; with Loop set it keeps cycling and records each finished
// batch in LastScore.
type Engine struct {
	Clock Clock
	Notes []Note
	Loop  bool

	rng       utils.Rand
	startedAt float64
	cycle     int
	current   float64
	running   bool
	ended     bool
	lastScore float64
	sections  int
	held      [config.Lanes]int
}

// NewEngine creates an idle engine with the default section timing.
func NewEngine(rng utils.Rand) *Engine {
	e := &Engine{
		Clock: Clock{SectionLength: config.SectionLength, LeadIn: config.LeadIn},
		rng:   rng,
	}
	e.releaseAll()
	return e
}

// Start begins a new run at the given elapsed time. The first section starts
// after the lead-in.
func (e *Engine) Start(elapsed float64) {
	e.startedAt = elapsed
	e.cycle = 0
	e.current = -e.Clock.LeadIn
	e.running = true
	e.ended = false
	e.Notes = nil
	e.sections = 0
	e.lastScore = 0
	e.Clock.Reset()
	e.releaseAll()
}

// Stop halts the engine without finishing the section.
func (e *Engine) Stop() {
	e.running = false
}

func (e *Engine) Running() bool { return e.running }

// Ended reports that a one-shot run finished its section.
func (e *Engine) Ended() bool { return e.ended }

// Current is the section time of the last update.
func (e *Engine) Current() float64 { return e.current }

// Score is the aggregate of the current batch.
func (e *Engine) Score() float64 { return Aggregate(e.Notes) }

// LastScore is the aggregate of the most recently finished batch.
func (e *Engine) LastScore() float64 { return e.lastScore }

// Sections counts finished batches since Start.
func (e *Engine) Sections() int { return e.sections }

// HeldNote returns the index of the note held on lane, or -1.
func (e *Engine) HeldNote(lane int) int {
	if lane < 0 || lane >= config.Lanes {
		return -1
	}
	return e.held[lane]
}

// Update advances the engine to elapsed and judges lane input.
func (e *Engine) Update(elapsed float64, in *input.Snapshot) []Judgement {
	if !e.running {
		return nil
	}
	var out []Judgement

	local := elapsed - e.startedAt
	cycle := int(math.Floor(local / e.Clock.Period()))
	if cycle != e.cycle {
		out = append(out, e.finishSection()...)
		e.cycle = cycle
		if !e.Loop {
			e.running = false
			e.ended = true
			e.current = e.Clock.SectionLength
			return out
		}
		// сыгранная секция не должна всплывать на доске во время отсчёта
		e.Notes = nil
		e.Clock.Reset()
	}

	current, fresh := e.Clock.Tick(local)
	e.current = current
	if fresh {
		e.Notes = GenerateNotes(e.rng, config.NotesPerSection, e.Clock.SectionLength, config.MaxNoteDuration)
		e.releaseAll()
	}
	if current < 0 {
		return out
	}

	for lane := 0; lane < config.Lanes; lane++ {
		key := input.LaneKey(lane)
		if in.Pressed(key) && e.held[lane] < 0 {
			e.beginHold(lane, current)
		}
		if in.Released(key) && e.held[lane] >= 0 {
			out = append(out, e.endHold(lane, current))
		}
	}
	return out
}

// beginHold picks the earliest note on lane that accepts a key-down now.
func (e *Engine) beginHold(lane int, t float64) {
	best := -1
	for i := range e.Notes {
		n := &e.Notes[i]
		if n.Lane != lane || !n.Accepts(t) {
			continue
		}
		if best < 0 || n.At < e.Notes[best].At {
			best = i
		}
	}
	if best < 0 {
		return
	}
	n := &e.Notes[best]
	n.Engaged = true
	n.Held = true
	n.HoldStart = t
	e.held[lane] = best
}

func (e *Engine) endHold(lane int, t float64) Judgement {
	n := &e.Notes[e.held[lane]]
	e.held[lane] = -1
	n.Held = false
	n.Resolved = true
	n.HoldEnd = t
	n.Score = HoldScore(n.At, n.Duration, n.HoldStart, n.HoldEnd)
	return Judgement{Lane: lane, Score: n.Score}
}

// finishSection releases every still-held note at the section end and
// records the batch score.
func (e *Engine) finishSection() []Judgement {
	var out []Judgement
	for lane := 0; lane < config.Lanes; lane++ {
		if e.held[lane] >= 0 {
			out = append(out, e.endHold(lane, e.Clock.SectionLength))
		}
	}
	e.lastScore = Aggregate(e.Notes)
	e.sections++
	return out
}

func (e *Engine) releaseAll() {
	for i := range e.held {
		e.held[i] = -1
	}
}
