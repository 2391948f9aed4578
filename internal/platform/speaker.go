package platform

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/pkg/logger"
)

// Speaker plays rendered PCM clips through ebiten's audio context.
// It satisfies audio.Sink from the game core.
type Speaker struct {
	ctx     *audio.Context
	players []*audio.Player
}

// NewSpeaker creates the process-wide audio context; ebiten allows only one.
func NewSpeaker() *Speaker {
	return &Speaker{ctx: audio.NewContext(config.SampleRate)}
}

// Play starts a clip of 16-bit little-endian stereo samples.
func (s *Speaker) Play(pcm []byte) {
	if len(pcm) == 0 {
		return
	}
	s.prune()
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	s.players = append(s.players, p)
	logger.Log.WithField("active", len(s.players)).Trace("clip started")
}

func (s *Speaker) prune() {
	live := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close audio player")
		}
	}
	s.players = live
}
