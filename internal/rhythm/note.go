// Package rhythm implements the timing minigame used by combat: note batches,
// the cycling playback clock, hold judging and scoring.
package rhythm

import (
	"math"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/utils"
)

// Note is a single hold prompt on one lane. Times are in section time.
type Note struct {
	Lane     int
	At       float64
	Duration float64

	HoldStart float64
	HoldEnd   float64
	Score     float64

	Engaged  bool // a hold was started on this note
	Held     bool // the hold is still in progress
	Resolved bool // the hold ended and Score is final
}

// End is the nominal release time.
func (n *Note) End() float64 {
	return n.At + n.Duration
}

// Accepts reports whether a key-down at time t may start a hold on n.
func (n *Note) Accepts(t float64) bool {
	return !n.Engaged && !n.Resolved &&
		t >= n.At-config.HitTolerance && t <= n.End()
}

// GenerateNotes draws count independent notes. Overlaps are allowed.
func GenerateNotes(rng utils.Rand, count int, sectionLength, maxDuration float64) []Note {
	notes := make([]Note, count)
	for i := range notes {
		notes[i] = Note{
			Lane:     rng.Intn(config.Lanes),
			At:       utils.Range(rng, 0, sectionLength),
			Duration: utils.Range(rng, 0, maxDuration),
		}
	}
	return notes
}

// HoldScore is the intersection over union of the held interval and the
// nominal interval, in [0, 1]. Two coinciding empty intervals score 1.
func HoldScore(at, duration, holdStart, holdEnd float64) float64 {
	if holdEnd < holdStart {
		holdStart, holdEnd = holdEnd, holdStart
	}
	end := at + duration
	inter := math.Max(0, math.Min(end, holdEnd)-math.Max(at, holdStart))
	union := duration + (holdEnd - holdStart) - inter
	if union <= 0 {
		if holdStart == at {
			return 1
		}
		return 0
	}
	return utils.Clamp(inter/union, 0, 1)
}

// Aggregate is the mean note score over the whole batch; notes never engaged count as zero.
func Aggregate(notes []Note) float64 {
	if len(notes) == 0 {
		return 0
	}
	sum := 0.0
	for i := range notes {
		if notes[i].Resolved {
			sum += notes[i].Score
		}
	}
	return sum / float64(len(notes))
}
