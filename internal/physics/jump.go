package physics

import "github.com/pleirosei/Flappy-Swift/internal/config"

// Clock turns absolute scene time into frame deltas. Deltas longer than
// MaxDelta (a stall, or the very first frame) are replaced by one 60 Hz frame.
type Clock struct {
	MaxDelta float64
	last     float64
}

func NewClock(maxDelta float64) *Clock {
	return &Clock{MaxDelta: maxDelta, last: -1}
}

func (c *Clock) Tick(now float64) float64 {
	dt := now - c.last
	c.last = now
	if dt > c.MaxDelta {
		dt = 1.0 / 60.0
		c.last = now
	}
	return dt
}

func (c *Clock) Reset() { c.last = -1 }

// Jump simulates the bird's jump arc. A touch starts a jump at full
// velocity; after the inertia time the velocity decays until the jump
// duration runs out, then the bird falls with a velocity that grows after
// a short float.
type Jump struct {
	tun config.Tuning

	jumping       bool
	touchDetected bool
	jumpStart     float64
	jumpEnd       float64
	velocity      float64
	rotation      float64
}

func NewJump(tun config.Tuning) *Jump {
	return &Jump{tun: tun}
}

// Touch registers input; the jump starts on the next Step.
func (j *Jump) Touch() {
	j.touchDetected = true
	j.jumping = true
}

// Step advances the simulation to now and returns the new y of the bird.
func (j *Jump) Step(now, dt, y float64) float64 {
	if j.touchDetected {
		j.touchDetected = false
		j.jumpStart = now
		j.velocity = j.tun.JumpVelocity
	}

	if j.jumping {
		d := now - j.jumpStart
		if d >= j.tun.JumpDuration {
			j.jumping = false
			j.jumpEnd = now
			return y
		}
		if j.rotation < j.tun.MaxRotation {
			j.rotation += j.tun.RotationRate * dt
		}
		y += j.velocity * dt
		if d > j.tun.JumpInertiaTime() {
			j.velocity -= j.velocity * dt * 2
		}
		return y
	}

	if j.rotation > j.tun.MinRotation {
		j.rotation -= j.tun.RotationRate * dt
	}
	y -= j.velocity * dt
	if now-j.jumpEnd > j.tun.FallInertiaTime() {
		j.velocity += j.velocity * dt
		if limit := j.tun.MaxFallVelocity; limit > 0 && j.velocity > limit {
			j.velocity = limit
		}
	}
	return y
}

func (j *Jump) Jumping() bool     { return j.jumping }
func (j *Jump) Velocity() float64 { return j.velocity }
func (j *Jump) Rotation() float64 { return j.rotation }

func (j *Jump) Reset() {
	*j = Jump{tun: j.tun}
}
