// Package game is the Ebitengine scene: it reads input, steps the world once
// per tick, plays sounds, keeps scores and draws the result.
package game

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/render"
	"github.com/pleirosei/Flappy-Swift/internal/replay"
	"github.com/pleirosei/Flappy-Swift/internal/scores"
	"github.com/pleirosei/Flappy-Swift/internal/sound"
	"github.com/pleirosei/Flappy-Swift/internal/world"
)

type Mode int

const (
	ModeTitle Mode = iota
	ModeGame
	ModeOver
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeGame:
		return "game"
	case ModeOver:
		return "over"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type Options struct {
	Tuning   config.Tuning
	Store    scores.Store
	Sounds   *sound.Bank
	Renderer *render.Renderer
	Input    Input

	// Seed fixes the seed of every run; zero picks a new one per run.
	Seed uint64
	// RecordDir receives a replay file for every finished run when set.
	RecordDir string
	// Replay, when set, drives the bird instead of live input.
	Replay *replay.Replay
}

// Game implements ebiten.Game.
type Game struct {
	tun      config.Tuning
	mode     Mode
	world    *world.World
	store    scores.Store
	sounds   *sound.Bank
	renderer *render.Renderer
	input    Input

	seed      uint64
	recordDir string
	replay    *replay.Replay
	recorder  *replay.Recorder
	player    *replay.Player

	pendingTap bool
	overTicks  int
	best       int
	last       scores.Run
}

func NewGame(opts Options) (*Game, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	if opts.Replay != nil && opts.Replay.Tuning != "" && opts.Replay.Tuning != opts.Tuning.Digest() {
		return nil, fmt.Errorf("%w: recorded with tuning %s, running %s",
			replay.ErrBadReplay, opts.Replay.Tuning, opts.Tuning.Digest())
	}
	g := &Game{
		tun:       opts.Tuning,
		mode:      ModeTitle,
		store:     opts.Store,
		sounds:    opts.Sounds,
		renderer:  opts.Renderer,
		input:     opts.Input,
		seed:      opts.Seed,
		recordDir: opts.RecordDir,
		replay:    opts.Replay,
	}
	if g.store == nil {
		g.store = &scores.Nop{}
	}
	if g.input == nil {
		g.input = EbitenInput{}
	}
	if g.sounds == nil {
		g.sounds, _ = sound.NewBank(true)
	}
	g.world = world.New(g.tun, g.nextSeed())

	best, err := g.store.Best(context.Background())
	if err != nil {
		return nil, err
	}
	g.best = best
	return g, nil
}

func (g *Game) nextSeed() uint64 {
	if g.replay != nil {
		return g.replay.Seed
	}
	if g.seed != 0 {
		return g.seed
	}
	return uint64(time.Now().UnixNano())
}

// start begins a new run. The tap that started it is also the first jump.
func (g *Game) start() {
	seed := g.nextSeed()
	g.world.Reset(seed)
	g.recorder = replay.NewRecorder(seed, g.tun.Digest())
	g.player = nil
	if g.replay != nil {
		g.player = replay.NewPlayer(*g.replay)
	}
	g.pendingTap = g.player == nil
	g.overTicks = 0
	g.mode = ModeGame
}

func (g *Game) Update() error {
	switch g.mode {
	case ModeTitle:
		if g.input.Tapped() {
			g.start()
		}

	case ModeGame:
		var touched bool
		if g.player != nil {
			touched = g.player.Touched(g.world.Tick + 1)
		} else {
			touched = g.pendingTap || g.input.Tapped()
		}
		g.pendingTap = false

		ev := g.world.Step(touched)
		if ev.Jumped {
			g.recorder.Jump(g.world.Tick)
			if err := g.sounds.Play(sound.EffectJump); err != nil {
				return err
			}
		}
		if ev.Scored > 0 {
			if err := g.sounds.Play(sound.EffectScore); err != nil {
				return err
			}
		}
		if ev.Crashed {
			if err := g.sounds.Play(sound.EffectHit); err != nil {
				return err
			}
			g.finish()
		} else if g.player != nil && g.player.Done(g.world.Tick) {
			g.finish()
		}

	case ModeOver:
		g.overTicks++
		if float64(g.overTicks) >= g.tun.RestartDelay*float64(g.tun.TPS) && g.input.Restart() {
			g.start()
		}
	}
	return nil
}

func (g *Game) finish() {
	w := g.world
	g.last = scores.Run{
		Score:    w.Score,
		Seed:     w.Seed,
		Ticks:    w.Tick,
		Duration: time.Duration(w.Now() * float64(time.Second)),
		Cause:    w.Cause.String(),
		EndedAt:  time.Now(),
	}
	g.mode = ModeOver
	g.overTicks = 0

	if g.player != nil {
		log.Printf("replay finished: score %d after %d ticks (recorded %d)", w.Score, w.Tick, g.player.Replay().Score)
		return
	}
	log.Printf("run finished: score %d, %s, %v", w.Score, w.Cause, g.last.Duration.Round(time.Millisecond))

	ctx := context.Background()
	if err := g.store.Record(ctx, g.last); err != nil {
		log.Printf("saving run: %v", err)
	}
	if best, err := g.store.Best(ctx); err != nil {
		log.Printf("reading best score: %v", err)
	} else {
		g.best = best
	}

	if g.recordDir != "" {
		r := g.recorder.Finish(w.Tick, w.Score, w.Cause.String())
		name := fmt.Sprintf("run-%s-%d.replay", g.last.EndedAt.Format("20060102-150405"), w.Seed)
		if err := replay.Save(filepath.Join(g.recordDir, name), r); err != nil {
			log.Printf("saving replay: %v", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		return
	}
	r := g.renderer
	r.DrawWorld(screen, g.world)

	switch g.mode {
	case ModeTitle:
		if g.replay != nil {
			r.Text(screen, "Tap to watch the replay", g.tun.WorldHeight/3, 20)
		} else {
			r.Text(screen, "Tap or press Space", g.tun.WorldHeight/3, 24)
			r.Text(screen, "to start", g.tun.WorldHeight/3+40, 24)
		}
		if g.best > 0 {
			r.Text(screen, fmt.Sprintf("Best: %d", g.best), g.tun.WorldHeight/3+120, 20)
		}

	case ModeGame:
		r.Text(screen, fmt.Sprintf("%d", g.world.Score), 100, 50)

	case ModeOver:
		r.Text(screen, fmt.Sprintf("Final Score : %d", g.last.Score), 100, 30)
		r.Text(screen, fmt.Sprintf("Best : %d", g.best), 150, 24)
		r.Text(screen, "Tap or press Enter to restart", 300, 16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.tun.WorldWidth), int(g.tun.WorldHeight)
}

func (g *Game) Mode() Mode          { return g.mode }
func (g *Game) World() *world.World { return g.world }
func (g *Game) Best() int           { return g.best }
func (g *Game) LastRun() scores.Run { return g.last }
