package replay

import (
	"fmt"

	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/world"
)

// Simulate replays r headless against tun and returns the world as it was
// when the recorded run ended.
func Simulate(tun config.Tuning, r Replay) (*world.World, error) {
	if r.Tuning != "" && r.Tuning != tun.Digest() {
		return nil, fmt.Errorf("%w: recorded with tuning %s, running %s", ErrBadReplay, r.Tuning, tun.Digest())
	}
	w := world.New(tun, r.Seed)
	p := NewPlayer(r)
	for !w.Crashed && !p.Done(w.Tick) {
		w.Step(p.Touched(w.Tick + 1))
	}
	return w, nil
}
