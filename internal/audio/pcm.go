package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

const blockSize = 512

// Render drains a finite streamer into 16-bit little-endian stereo PCM.
func Render(s beep.Streamer) []byte {
	buf := make([][2]float64, blockSize)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = appendSample(out, buf[i][0])
			out = appendSample(out, buf[i][1])
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

func appendSample(out []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	return binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
}
