package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/world"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	rec := NewRecorder(1<<63+17, "abc123")
	rec.Jump(1)
	rec.Jump(30)
	rec.Jump(58)
	want := rec.Finish(240, 2, "tiki")

	path := filepath.Join(t.TempDir(), "runs", "run.replay")
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func compress(t *testing.T, raw string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write([]byte(raw)); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"version":`,
		"wrong version":  `{"version":2,"seed":1,"tuning":"x","jumps":[],"ticks":1,"score":0}`,
		"missing jumps":  `{"version":1,"seed":1,"tuning":"x","ticks":1,"score":0}`,
		"negative score": `{"version":1,"seed":1,"tuning":"x","jumps":[],"ticks":1,"score":-1}`,
		"zero tick jump": `{"version":1,"seed":1,"tuning":"x","jumps":[0],"ticks":1,"score":0}`,
		"unknown field":  `{"version":1,"seed":1,"tuning":"x","jumps":[],"ticks":1,"score":0,"cheat":true}`,
		"unknown cause":  `{"version":1,"seed":1,"tuning":"x","jumps":[],"ticks":1,"score":0,"cause":"meteor"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Read(compress(t, raw)); !errors.Is(err, ErrBadReplay) {
				t.Fatalf("err = %v, want ErrBadReplay", err)
			}
		})
	}
}

func TestReadRejectsUncompressed(t *testing.T) {
	raw := bytes.NewBufferString(`{"version":1,"seed":1,"tuning":"x","jumps":[],"ticks":1,"score":0}`)
	if _, err := Read(raw); err == nil {
		t.Fatal("expected error for a plain JSON file")
	}
}

func TestPlayerTouched(t *testing.T) {
	p := NewPlayer(Replay{Jumps: []int{2, 5, 6}, Ticks: 8})
	var got []int
	for tick := 1; !p.Done(tick - 1); tick++ {
		if p.Touched(tick) {
			got = append(got, tick)
		}
	}
	if !reflect.DeepEqual(got, []int{2, 5, 6}) {
		t.Fatalf("touched on %v", got)
	}
}

func TestSimulateReproducesRun(t *testing.T) {
	tun := config.Default()
	const seed = 2024

	// Live run: tap whenever the bird sinks below the middle of the next
	// opening, which keeps it alive for a while and scores.
	w := world.New(tun, seed)
	rec := NewRecorder(seed, tun.Digest())
	for !w.Crashed && w.Tick < 60*40 {
		target := tun.WorldHeight / 2
		if len(w.Tikis.Sets) > 0 {
			for _, s := range w.Tikis.Sets {
				if s.X+tun.TikiWidth/2 >= w.Bird.X-w.Bird.W/2 {
					target = s.Gate(tun).Y - 40
					break
				}
			}
		}
		touched := w.Bird.Y < target && w.Tick%8 == 0
		if ev := w.Step(touched); ev.Jumped {
			rec.Jump(w.Tick)
		}
	}
	r := rec.Finish(w.Tick, w.Score, w.Cause.String())

	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		t.Fatal(err)
	}
	loaded, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}

	replayed, err := Simulate(tun, loaded)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if replayed.Score != w.Score || replayed.Tick != w.Tick || replayed.Cause != w.Cause {
		t.Fatalf("replay (score %d, tick %d, %v) != live (score %d, tick %d, %v)",
			replayed.Score, replayed.Tick, replayed.Cause, w.Score, w.Tick, w.Cause)
	}
}

func TestSimulateRejectsOtherTuning(t *testing.T) {
	tun := config.Default()
	r := NewRecorder(1, tun.Digest()).Finish(10, 0, "none")
	tun.JumpVelocity = 900
	if _, err := Simulate(tun, r); !errors.Is(err, ErrBadReplay) {
		t.Fatalf("err = %v, want ErrBadReplay", err)
	}
}
