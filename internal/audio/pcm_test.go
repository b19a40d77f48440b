package audio

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestRenderLength(t *testing.T) {
	d := 30 * time.Millisecond
	pcm := Render(Tone(440, d, WaveSine, testRate), 1)

	if want := testRate.N(d) * bytesPerFrame; len(pcm) != want {
		t.Errorf("rendered %d bytes, expected %d", len(pcm), want)
	}
}

func TestRenderGain(t *testing.T) {
	pcm := Render(Tone(440, 10*time.Millisecond, WaveSquare, testRate), 0)
	for i := 0; i < len(pcm); i += 2 {
		if v := int16(binary.LittleEndian.Uint16(pcm[i:])); v != 0 {
			t.Fatalf("zero gain produced %d at byte %d", v, i)
		}
	}
}

func TestToInt16Limits(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{0.5, 16383},
		{-0.5, -16383},
	}
	for _, tt := range tests {
		if got := toInt16(tt.in); got != tt.want {
			t.Errorf("toInt16(%v) = %d, expected %d", tt.in, got, tt.want)
		}
	}

	if hi, lo := toInt16(100), toInt16(-100); hi < 32700 || lo > -32700 {
		t.Errorf("large inputs should approach full scale, got %d and %d", hi, lo)
	}

	// Soft limiting keeps the curve monotonic above the knee.
	prev := toInt16(0.8)
	for _, v := range []float64{0.9, 1.0, 1.5, 3} {
		got := toInt16(v)
		if got < prev {
			t.Errorf("toInt16(%v) = %d dropped below %d", v, got, prev)
		}
		prev = got
	}
}
