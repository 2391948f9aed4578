package audio

import (
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/pkg/logger"
)

// Sink plays rendered PCM.
type Sink interface {
	Play(pcm []byte)
}

// CueListener turns gameplay events into sounds.
type CueListener struct {
	sink   Sink
	volume float64
}

func NewCueListener(sink Sink, volume float64) *CueListener {
	return &CueListener{sink: sink, volume: volume}
}

// Subscribe registers the listener for every event it voices.
func (l *CueListener) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.NoteJudged,
		event.DamageApplied,
		event.TreasureCollected,
		event.FireballCast,
	} {
		d.Subscribe(t, l)
	}
}

func (l *CueListener) OnEvent(e event.Event) {
	cue, score, ok := cueFor(e)
	if !ok {
		return
	}
	pcm := Render(WithVolume(Tone(cue, score), l.volume))
	logger.Log.WithFields(logrus.Fields{"event": e.Type, "bytes": len(pcm)}).Trace("cue")
	l.sink.Play(pcm)
}

func cueFor(e event.Event) (Cue, float64, bool) {
	switch e.Type {
	case event.NoteJudged:
		res, _ := e.Data.(event.NoteResult)
		if res.Score > 0 {
			return CueHit, res.Score, true
		}
		return CueMiss, 0, true
	case event.DamageApplied:
		info, _ := e.Data.(event.DamageInfo)
		if info.Amount <= 0 {
			return 0, 0, false
		}
		return CueDamage, 0, true
	case event.TreasureCollected:
		return CueTreasure, 0, true
	case event.FireballCast:
		return CueCast, 0, true
	}
	return 0, 0, false
}
