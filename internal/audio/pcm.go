package audio

import (
	"encoding/binary"

	"github.com/gopxl/beep"
)

// Render drains a finite streamer into interleaved stereo s16le PCM.
// Output is soft limited and scaled by gain.
func Render(s beep.Streamer, gain float64) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0]*gain)))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1]*gain)))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// toInt16 soft limits above 0.8 and hard clips at full scale.
func toInt16(v float64) int16 {
	if v > 0.8 {
		v = 0.8 + 0.2*(1-1/(1+(v-0.8)*5))
	} else if v < -0.8 {
		v = -0.8 - 0.2*(1-1/(1+(-v-0.8)*5))
	}
	v = max(-1, min(1, v))
	return int16(v * 32767)
}
