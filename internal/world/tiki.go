package world

import (
	"math/rand/v2"

	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/physics"
)

// Timer fires every Interval seconds of scene time.
type Timer struct {
	Interval float64
	elapsed  float64
}

// Advance moves the timer forward by dt and reports how many times it fired.
func (t *Timer) Advance(dt float64) int {
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		fired++
	}
	return fired
}

func (t *Timer) Reset() { t.elapsed = 0 }

// TikiSet is a pair of tikis with the score gate between them. BottomY and
// TopY are offsets from the set's origin, like children of a node.
type TikiSet struct {
	ID      int
	Variant int
	X       float64
	BottomY float64
	TopY    float64
	Scored  bool
}

func (s TikiSet) Bottom(tun config.Tuning) physics.Rect {
	return physics.Rect{X: s.X, Y: s.BottomY, W: tun.TikiWidth, H: tun.TikiHeight}
}

func (s TikiSet) Top(tun config.Tuning) physics.Rect {
	return physics.Rect{X: s.X, Y: s.TopY, W: tun.TikiWidth, H: tun.TikiHeight}
}

// Gate spans the opening between the two tikis. It is thin so a pass is
// counted once the bird reaches the middle of the set.
func (s TikiSet) Gate(tun config.Tuning) physics.Rect {
	lo := s.BottomY + tun.TikiHeight/2
	hi := s.TopY - tun.TikiHeight/2
	return physics.Rect{X: s.X, Y: (lo + hi) / 2, W: 2, H: hi - lo}
}

// Tikis spawns, moves and destroys obstacle sets.
type Tikis struct {
	Sets []TikiSet

	tun    config.Tuning
	rng    *rand.Rand
	timer  Timer
	nextID int
}

func NewTikis(tun config.Tuning, rng *rand.Rand) *Tikis {
	return &Tikis{
		tun:   tun,
		rng:   rng,
		timer: Timer{Interval: tun.TimeBetweenObstacles},
	}
}

// Create adds a new set at the spawn line with a random graphic and height.
func (t *Tikis) Create() TikiSet {
	span := t.tun.BottomTikiMaxY - t.tun.BottomTikiMinY
	y := t.tun.BottomTikiMinY + t.rng.Float64()*span
	t.nextID++
	s := TikiSet{
		ID:      t.nextID,
		Variant: 1 + t.rng.IntN(t.tun.TikiVariants),
		X:       t.tun.TikiStartX,
		BottomY: y,
		TopY:    y + t.tun.HeightBetweenObstacles,
	}
	t.Sets = append(t.Sets, s)
	return s
}

// Update scrolls every set by dx, drops those past the destroy line, then
// runs the spawn timer. A new set starts moving on the next tick.
func (t *Tikis) Update(dt, dx float64) {
	kept := t.Sets[:0]
	for _, s := range t.Sets {
		s.X += dx
		if s.X <= t.tun.TikiDestroyX {
			continue
		}
		kept = append(kept, s)
	}
	t.Sets = kept
	for n := t.timer.Advance(dt); n > 0; n-- {
		t.Create()
	}
}

func (t *Tikis) Reset(rng *rand.Rand) {
	t.Sets = nil
	t.rng = rng
	t.timer.Reset()
	t.nextID = 0
}
