package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestDerivedValues(t *testing.T) {
	tun := Default()
	if got := tun.ScrollSpeed(); got != 175 {
		t.Errorf("ScrollSpeed = %v, want 175", got)
	}
	if got, want := tun.JumpInertiaTime(), 0.35*0.7; got != want {
		t.Errorf("JumpInertiaTime = %v, want %v", got, want)
	}
	if got, want := tun.FallInertiaTime(), 0.35*0.3; got != want {
		t.Errorf("FallInertiaTime = %v, want %v", got, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := "jump_velocity: 620\ntime_between_obstacles: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	tun, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tun.JumpVelocity != 620 {
		t.Errorf("JumpVelocity = %v, want 620", tun.JumpVelocity)
	}
	if tun.TimeBetweenObstacles != 2.5 {
		t.Errorf("TimeBetweenObstacles = %v, want 2.5", tun.TimeBetweenObstacles)
	}
	if tun.GroundPieces != Default().GroundPieces {
		t.Errorf("GroundPieces = %d, want default", tun.GroundPieces)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"tiki range":    "bottom_tiki_min_y: 400\nbottom_tiki_max_y: 300\n",
		"ground pieces": "ground_pieces: 1\n",
		"zero speed":    "ground_speed: 0\n",
		"destroy x":     "tiki_destroy_x: 900\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("Load err = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("tps: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestDigestTracksChanges(t *testing.T) {
	a := Default()
	b := Default()
	if a.Digest() != b.Digest() {
		t.Fatal("equal tunings must share a digest")
	}
	b.JumpVelocity++
	if a.Digest() == b.Digest() {
		t.Fatal("different tunings must not share a digest")
	}
}

func TestDigestIgnoresPresentation(t *testing.T) {
	a := Default()
	b := Default()
	b.WindowScale = 1
	b.RestartDelay = 2
	if a.Digest() != b.Digest() {
		t.Fatal("window scale and restart delay must not change the digest")
	}
	b.TPS = 30
	if a.Digest() == b.Digest() {
		t.Fatal("tps changes the simulation and must change the digest")
	}
}

func TestShippedTuningMatchesDefault(t *testing.T) {
	tun, err := Load(filepath.Join("..", "..", "configs", "tuning.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tun != Default() {
		t.Fatalf("configs/tuning.yaml drifted from Default():\n got %+v\nwant %+v", tun, Default())
	}
}
