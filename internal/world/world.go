// Package world holds the scene state and its per-frame update: ground
// scrolling, bird jump physics, obstacle spawning and contact handling.
// Nothing here depends on the engine, so a run can be stepped headless and
// replayed from a seed and the list of ticks on which the player tapped.
package world

import (
	"math/rand/v2"

	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/physics"
)

// Cause tells what ended a run.
type Cause int

const (
	CauseNone Cause = iota
	CauseGround
	CauseTiki
	CauseCeiling
)

func (c Cause) String() string {
	switch c {
	case CauseGround:
		return "ground"
	case CauseTiki:
		return "tiki"
	case CauseCeiling:
		return "ceiling"
	}
	return "none"
}

// Events reports what happened during one Step.
type Events struct {
	Scored  int
	Jumped  bool
	Crashed bool
	Cause   Cause
}

type World struct {
	Tun    config.Tuning
	Seed   uint64
	Ground *Ground
	Tikis  *Tikis
	Bird   *Bird

	Score   int
	Tick    int
	Crashed bool
	Cause   Cause

	clock *physics.Clock
	jump  *physics.Jump
}

func New(tun config.Tuning, seed uint64) *World {
	w := &World{
		Tun:   tun,
		clock: physics.NewClock(tun.MaxDelta),
		jump:  physics.NewJump(tun),
	}
	w.Reset(seed)
	return w
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Reset starts a fresh run with the given seed.
func (w *World) Reset(seed uint64) {
	w.Seed = seed
	w.Ground = NewGround(w.Tun)
	w.Bird = NewBird(w.Tun)
	if w.Tikis == nil {
		w.Tikis = NewTikis(w.Tun, newRand(seed))
	} else {
		w.Tikis.Reset(newRand(seed))
	}
	w.Score = 0
	w.Tick = 0
	w.Crashed = false
	w.Cause = CauseNone
	w.clock.Reset()
	w.jump.Reset()
}

// Now is the scene time of the current tick.
func (w *World) Now() float64 {
	return float64(w.Tick) * w.Tun.TickDuration()
}

// Step advances the scene by one engine tick. touched reports a tap since
// the previous tick. A crashed world does not move until Reset.
func (w *World) Step(touched bool) Events {
	var ev Events
	if w.Crashed {
		return ev
	}
	w.Tick++
	now := w.Now()

	// The ground is moved by its own action at a fixed rate, independent of
	// the frame delta the bird uses.
	scroll := -w.Tun.ScrollSpeed() * w.Tun.TickDuration()
	w.Ground.Move(scroll)
	w.Ground.Recycle()

	dt := w.clock.Tick(now)

	if touched {
		w.jump.Touch()
		ev.Jumped = true
	}
	w.Bird.Y = w.jump.Step(now, dt, w.Bird.Y)
	w.Bird.Rotation = w.jump.Rotation()
	w.Bird.Animate(dt)

	w.Tikis.Update(w.Tun.TickDuration(), scroll)

	w.contacts(&ev)
	if !ev.Crashed && w.Bird.Y-w.Bird.H/2 > w.Tun.WorldHeight+w.Bird.H {
		ev.Crashed = true
		ev.Cause = CauseCeiling
	}
	if ev.Crashed {
		w.Crashed = true
		w.Cause = ev.Cause
	}
	return ev
}

// Bodies lists the static collision shapes of the scene. Tiki bodies use
// their set ID so a score gate can be traced back to its set.
func (w *World) Bodies() []physics.Body {
	bodies := make([]physics.Body, 0, len(w.Ground.Pieces)+3*len(w.Tikis.Sets))
	for _, p := range w.Ground.Pieces {
		bodies = append(bodies, physics.Body{Rect: p.Rect(), Category: physics.CategoryGround})
	}
	for _, s := range w.Tikis.Sets {
		bodies = append(bodies,
			physics.Body{ID: s.ID, Rect: s.Bottom(w.Tun), Category: physics.CategoryTiki, ContactMask: physics.CategoryBird},
			physics.Body{ID: s.ID, Rect: s.Top(w.Tun), Category: physics.CategoryTiki, ContactMask: physics.CategoryBird},
		)
		if !s.Scored {
			bodies = append(bodies, physics.Body{ID: s.ID, Rect: s.Gate(w.Tun), Category: physics.CategoryScore, ContactMask: physics.CategoryBird})
		}
	}
	return bodies
}

func (w *World) contacts(ev *Events) {
	for _, b := range physics.Contacts(w.Bird.Body(), w.Bodies()) {
		switch b.Category {
		case physics.CategoryGround:
			if !ev.Crashed {
				ev.Crashed, ev.Cause = true, CauseGround
			}
		case physics.CategoryTiki:
			if !ev.Crashed {
				ev.Crashed, ev.Cause = true, CauseTiki
			}
		case physics.CategoryScore:
			w.markScored(b.ID)
			w.Score++
			ev.Scored++
		}
	}
}

func (w *World) markScored(id int) {
	for i := range w.Tikis.Sets {
		if w.Tikis.Sets[i].ID == id {
			w.Tikis.Sets[i].Scored = true
			return
		}
	}
}
