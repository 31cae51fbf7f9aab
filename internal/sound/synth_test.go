package sound

import (
	"testing"
	"time"
)

func TestSweepLengthAndRange(t *testing.T) {
	s := NewSweep(200, 800, 50*time.Millisecond, WaveSine, SampleRate)
	total := 0
	buf := make([][2]float64, 300)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if want := SampleRate.N(50 * time.Millisecond); total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
}

func TestSquareWaveValues(t *testing.T) {
	s := NewSweep(440, 440, 10*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 100)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %v", i, v)
		}
	}
}

func TestNoiseIsRepeatable(t *testing.T) {
	a := make([][2]float64, 200)
	b := make([][2]float64, 200)
	NewSweep(1000, 100, 10*time.Millisecond, WaveNoise, SampleRate).Stream(a)
	NewSweep(1000, 100, 10*time.Millisecond, WaveNoise, SampleRate).Stream(b)
	distinct := map[float64]bool{}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between equal sweeps: %v vs %v", i, a[i], b[i])
		}
		if v := a[i][0]; v < -1 || v >= 1 {
			t.Fatalf("noise sample %d = %v", i, v)
		}
		distinct[a[i][0]] = true
	}
	if len(distinct) < 100 {
		t.Fatalf("only %d distinct noise values", len(distinct))
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	s := NewEnvelope(NewSweep(440, 440, d, WaveSquare, SampleRate), d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Fatalf("first sample = %v, want silent attack start", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1 && mid != -1 {
		t.Fatalf("middle sample = %v, want full gain", mid)
	}
	if last := buf[n-1][0]; last > 0.01 || last < -0.01 {
		t.Fatalf("last sample = %v, want faded out", last)
	}
}

func TestEffectsRender(t *testing.T) {
	for _, e := range []Effect{EffectJump, EffectScore, EffectHit} {
		t.Run(e.String(), func(t *testing.T) {
			pcm := Render(e.Streamer())
			if len(pcm) == 0 {
				t.Fatal("empty effect")
			}
			if len(pcm)%4 != 0 {
				t.Fatalf("%d bytes is not whole stereo 16-bit frames", len(pcm))
			}
			silent := true
			for _, b := range pcm {
				if b != 0 {
					silent = false
					break
				}
			}
			if silent {
				t.Fatal("effect rendered silence")
			}
		})
	}
}

func TestMutedBankPlaysNothing(t *testing.T) {
	b, err := NewBank(true)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Muted() {
		t.Fatal("bank must report muted")
	}
	if err := b.Play(EffectHit); err != nil {
		t.Fatalf("Play on muted bank: %v", err)
	}
}
