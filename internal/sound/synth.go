package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(48000)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from start to end
// over its duration.
type sweep struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       WaveType
	rate       beep.SampleRate
	rng        *rand.Rand
}

// NewSweep creates an oscillator gliding from start to end Hz. A constant
// tone is a sweep with start == end.
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(start*1000+end), 0x5eed)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.start + (s.end-s.start)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a streamer of known length.
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	release  int
	position int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(duration),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		switch {
		case e.attack > 0 && e.position < e.attack:
			gain = float64(e.position) / float64(e.attack)
		case e.release > 0 && e.position > e.total-e.release:
			gain = float64(e.total-e.position) / float64(e.release)
			if gain < 0 {
				gain = 0
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales a streamer linearly; 0 silences it.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(start, end float64, d time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewSweep(start, end, d, wave, SampleRate), d, 5*time.Millisecond, d/2, SampleRate)
}

// Effect names one of the scene's sound effects.
type Effect int

const (
	EffectJump Effect = iota
	EffectScore
	EffectHit
)

var effectNames = [...]string{"jump", "score", "hit"}

func (e Effect) String() string {
	if e >= 0 && int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}

// Streamer builds a fresh streamer for the effect.
func (e Effect) Streamer() beep.Streamer {
	switch e {
	case EffectJump:
		return volume(tone(420, 860, 120*time.Millisecond, WaveSquare), 0.25)
	case EffectScore:
		return volume(beep.Seq(
			tone(880, 880, 70*time.Millisecond, WaveSine),
			tone(1320, 1320, 110*time.Millisecond, WaveSine),
		), 0.4)
	case EffectHit:
		return volume(beep.Mix(
			tone(0, 0, 220*time.Millisecond, WaveNoise),
			tone(140, 60, 220*time.Millisecond, WaveSquare),
		), 0.35)
	}
	return beep.Silence(0)
}

// Render drains s into 16-bit little-endian stereo PCM, the format the
// engine's audio players take.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				v = math.Max(-1, math.Min(1, v))
				x := int16(v * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
