package world

import (
	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/physics"
)

// Bird is the player avatar. Its frame cycles through the wing animation
// for as long as the scene runs.
type Bird struct {
	X, Y     float64
	W, H     float64
	Rotation float64
	Frame    int

	frames    int
	frameTime float64
	animClock float64
}

func NewBird(tun config.Tuning) *Bird {
	return &Bird{
		X:         tun.WorldWidth / 2,
		Y:         tun.WorldHeight / 2,
		W:         tun.BirdWidth,
		H:         tun.BirdHeight,
		frames:    tun.BirdFrames,
		frameTime: tun.BirdFrameTime,
	}
}

func (b *Bird) Animate(dt float64) {
	b.animClock += dt
	for b.animClock >= b.frameTime {
		b.animClock -= b.frameTime
		b.Frame = (b.Frame + 1) % b.frames
	}
}

// Body is the collision shape, slightly smaller than the sprite so that
// transparent corners do not count as hits.
func (b *Bird) Body() physics.Body {
	return physics.Body{
		Rect:        physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}.Inset(b.W*0.1, b.H*0.1),
		Category:    physics.CategoryBird,
		ContactMask: physics.CategoryGround | physics.CategoryTiki | physics.CategoryScore,
	}
}
