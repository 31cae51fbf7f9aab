package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant of the scene. Units are world pixels
// (y up) and seconds.
type Tuning struct {
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`
	WindowScale float64 `yaml:"window_scale"`
	TPS         int     `yaml:"tps"`

	GroundPieces      int     `yaml:"ground_pieces"`
	GroundPieceWidth  float64 `yaml:"ground_piece_width"`
	GroundPieceHeight float64 `yaml:"ground_piece_height"`
	GroundSpeed       float64 `yaml:"ground_speed"`
	ActionStep        float64 `yaml:"action_step"`
	GroundResetX      float64 `yaml:"ground_reset_x"`

	JumpDuration     float64 `yaml:"jump_duration"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
	JumpInertiaRatio float64 `yaml:"jump_inertia_ratio"`
	FallInertiaRatio float64 `yaml:"fall_inertia_ratio"`
	MaxFallVelocity  float64 `yaml:"max_fall_velocity"`
	RotationRate     float64 `yaml:"rotation_rate"`
	MaxRotation      float64 `yaml:"max_rotation"`
	MinRotation      float64 `yaml:"min_rotation"`

	BirdWidth     float64 `yaml:"bird_width"`
	BirdHeight    float64 `yaml:"bird_height"`
	BirdFrames    int     `yaml:"bird_frames"`
	BirdFrameTime float64 `yaml:"bird_frame_time"`

	HeightBetweenObstacles float64 `yaml:"height_between_obstacles"`
	TimeBetweenObstacles   float64 `yaml:"time_between_obstacles"`
	BottomTikiMinY         float64 `yaml:"bottom_tiki_min_y"`
	BottomTikiMaxY         float64 `yaml:"bottom_tiki_max_y"`
	TikiStartX             float64 `yaml:"tiki_start_x"`
	TikiDestroyX           float64 `yaml:"tiki_destroy_x"`
	TikiWidth              float64 `yaml:"tiki_width"`
	TikiHeight             float64 `yaml:"tiki_height"`
	TikiVariants           int     `yaml:"tiki_variants"`

	MaxDelta     float64 `yaml:"max_delta"`
	RestartDelay float64 `yaml:"restart_delay"`
}

// Default returns the values the scene was originally tuned with.
func Default() Tuning {
	return Tuning{
		WorldWidth:  768,
		WorldHeight: 1024,
		WindowScale: 0.6,
		TPS:         60,

		GroundPieces:      5,
		GroundPieceWidth:  328,
		GroundPieceHeight: 128,
		GroundSpeed:       3.5,
		ActionStep:        0.02,
		GroundResetX:      -164,

		JumpDuration:     0.35,
		JumpVelocity:     500,
		JumpInertiaRatio: 0.7,
		FallInertiaRatio: 0.3,
		MaxFallVelocity:  1400,
		RotationRate:     2.0,
		MaxRotation:      0.5,
		MinRotation:      -1.0,

		BirdWidth:     68,
		BirdHeight:    48,
		BirdFrames:    3,
		BirdFrameTime: 0.2,

		HeightBetweenObstacles: 907,
		TimeBetweenObstacles:   3.0,
		BottomTikiMinY:         -76,
		BottomTikiMaxY:         308,
		TikiStartX:             830,
		TikiDestroyX:           -187,
		TikiWidth:              124,
		TikiHeight:             700,
		TikiVariants:           3,

		MaxDelta:     1.0,
		RestartDelay: 0.5,
	}
}

// Load reads a YAML tuning file on top of Default. Keys missing from the
// file keep their default value.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// ScrollSpeed is the ground and obstacle speed in px/s.
func (t Tuning) ScrollSpeed() float64 {
	return t.GroundSpeed / t.ActionStep
}

func (t Tuning) JumpInertiaTime() float64 { return t.JumpDuration * t.JumpInertiaRatio }
func (t Tuning) FallInertiaTime() float64 { return t.JumpDuration * t.FallInertiaRatio }

// TickDuration is the scene clock advance per engine tick.
func (t Tuning) TickDuration() float64 { return 1 / float64(t.TPS) }

func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world_width", t.WorldWidth},
		{"world_height", t.WorldHeight},
		{"window_scale", t.WindowScale},
		{"tps", float64(t.TPS)},
		{"ground_piece_width", t.GroundPieceWidth},
		{"ground_piece_height", t.GroundPieceHeight},
		{"ground_speed", t.GroundSpeed},
		{"action_step", t.ActionStep},
		{"jump_duration", t.JumpDuration},
		{"jump_velocity", t.JumpVelocity},
		{"rotation_rate", t.RotationRate},
		{"bird_width", t.BirdWidth},
		{"bird_height", t.BirdHeight},
		{"bird_frames", float64(t.BirdFrames)},
		{"bird_frame_time", t.BirdFrameTime},
		{"height_between_obstacles", t.HeightBetweenObstacles},
		{"time_between_obstacles", t.TimeBetweenObstacles},
		{"tiki_width", t.TikiWidth},
		{"tiki_height", t.TikiHeight},
		{"max_delta", t.MaxDelta},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}
	if t.GroundPieces < 2 {
		return fmt.Errorf("%w: ground_pieces must be at least 2, got %d", ErrInvalidTuning, t.GroundPieces)
	}
	if t.TikiVariants < 1 {
		return fmt.Errorf("%w: tiki_variants must be at least 1, got %d", ErrInvalidTuning, t.TikiVariants)
	}
	if t.BottomTikiMinY >= t.BottomTikiMaxY {
		return fmt.Errorf("%w: bottom_tiki_min_y (%v) must be below bottom_tiki_max_y (%v)",
			ErrInvalidTuning, t.BottomTikiMinY, t.BottomTikiMaxY)
	}
	if t.TikiDestroyX >= t.TikiStartX {
		return fmt.Errorf("%w: tiki_destroy_x (%v) must be left of tiki_start_x (%v)",
			ErrInvalidTuning, t.TikiDestroyX, t.TikiStartX)
	}
	if t.MinRotation >= t.MaxRotation {
		return fmt.Errorf("%w: min_rotation (%v) must be below max_rotation (%v)",
			ErrInvalidTuning, t.MinRotation, t.MaxRotation)
	}
	if t.MaxFallVelocity < 0 || t.RestartDelay < 0 {
		return fmt.Errorf("%w: max_fall_velocity and restart_delay must not be negative", ErrInvalidTuning)
	}
	return nil
}

// Digest identifies a tuning so replays are only played against the
// constants they were recorded with. Window size and restart delay do not
// change a run and are left out.
func (t Tuning) Digest() string {
	t.WindowScale = 0
	t.RestartDelay = 0
	raw, err := yaml.Marshal(t)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:8])
}
