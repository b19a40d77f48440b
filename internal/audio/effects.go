package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates a tone that glides linearly from one frequency to another.
type oscillator struct {
	from, to float64
	phase    float64
	total    int
	pos      int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// Tone returns a fixed-frequency streamer of the given length.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Glide(freq, freq, d, wave, rate)
}

// Glide returns a streamer sweeping from one frequency to another.
func Glide(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:  from,
		to:    to,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		noise: rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// Envelope shapes s so it fades in over attack and out over release.
func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.pos >= releaseStart {
			vol = math.Max(float64(e.total-e.pos)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales a stream linearly. Zero or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// note is one shaped tone of a cue.
func note(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Envelope(Glide(from, to, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// CueStreamer synthesizes a cue at unit volume.
func CueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueFlap:
		// Short upward chirp
		return note(320, 640, 70*time.Millisecond, WaveTriangle, rate)
	case CuePass:
		return volume(note(660, 660, 60*time.Millisecond, WaveSquare, rate), 0.4)
	case CueCoin:
		// Classic two-step coin blip
		return beep.Seq(
			volume(note(988, 988, 50*time.Millisecond, WaveSquare, rate), 0.5),
			volume(note(1319, 1319, 120*time.Millisecond, WaveSquare, rate), 0.5),
		)
	case CuePowerUp:
		return beep.Seq(
			note(523, 523, 60*time.Millisecond, WaveSine, rate),
			note(659, 659, 60*time.Millisecond, WaveSine, rate),
			note(784, 1047, 140*time.Millisecond, WaveSine, rate),
		)
	case CueCrash:
		return beep.Mix(
			volume(note(180, 60, 350*time.Millisecond, WaveSquare, rate), 0.5),
			volume(note(0, 0, 250*time.Millisecond, WaveNoise, rate), 0.4),
		)
	default:
		return beep.Silence(0)
	}
}
