// Package audio synthesizes the short cue tones played on gameplay events and
// renders them to PCM for the platform speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-cave-rhythm/internal/config"
)

// Rate is the sample rate of every cue.
const Rate = beep.SampleRate(config.SampleRate)

// Cue names a sound.
type Cue int

const (
	CueHit Cue = iota
	CueMiss
	CueDamage
	CueTreasure
	CueCast
)

// noise is an endless stream of white noise.
type noise struct {
	rng *rand.Rand
}

// NewNoise returns an infinite white noise streamer. Equal seeds give equal
// samples.
func NewNoise(seed int64) beep.Streamer {
	return &noise{rng: rand.New(rand.NewSource(seed))}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// envelope cuts an endless tone to d and fades the last third out linearly.
func envelope(tone beep.Streamer, d time.Duration) beep.Streamer {
	n := Rate.N(d)
	release := n / 3
	return beep.Seq(
		beep.Take(n-release, tone),
		effects.Transition(beep.Take(release, tone), release, 1, 0, effects.TransitionLinear),
	)
}

func sine(freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(Rate, freq)
	if err != nil {
		// частота выше Найквиста: вместо тона тишина той же длины
		return beep.Silence(Rate.N(d))
	}
	return envelope(tone, d)
}

func square(freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SquareTone(Rate, freq)
	if err != nil {
		return beep.Silence(Rate.N(d))
	}
	return envelope(tone, d)
}

// Tone builds the streamer for cue. score shifts the pitch of hits.
func Tone(cue Cue, score float64) beep.Streamer {
	switch cue {
	case CueHit:
		return sine(440+440*score, 120*time.Millisecond)
	case CueMiss:
		return square(110, 150*time.Millisecond)
	case CueDamage:
		return envelope(NewNoise(1), 180*time.Millisecond)
	case CueTreasure:
		return beep.Seq(sine(660, 80*time.Millisecond), sine(990, 80*time.Millisecond))
	case CueCast:
		return square(330, 60*time.Millisecond)
	}
	return beep.Silence(0)
}

// WithVolume scales s by a linear volume in [0, 1].
func WithVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(volume, 1))}
}
