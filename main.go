package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pleirosei/Flappy-Swift/internal/config"
	"github.com/pleirosei/Flappy-Swift/internal/game"
	"github.com/pleirosei/Flappy-Swift/internal/render"
	"github.com/pleirosei/Flappy-Swift/internal/replay"
	"github.com/pleirosei/Flappy-Swift/internal/scores"
	"github.com/pleirosei/Flappy-Swift/internal/sound"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML tuning file")
		dbPath     = flag.String("db", "flappy.db", "SQLite score database, empty to disable")
		seed       = flag.Uint64("seed", 0, "fixed obstacle seed, 0 for a new one every run")
		mute       = flag.Bool("mute", false, "disable sound")
		recordDir  = flag.String("record", "", "directory to save a replay of every run")
		replayPath = flag.String("replay", "", "watch a recorded replay instead of playing")
	)
	flag.Parse()
	log.SetPrefix("flappy: ")

	tun := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tun = t
	}

	var store scores.Store = &scores.Nop{}
	if *dbPath != "" {
		s, err := scores.Open(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer s.Close()
		store = s
	}

	var rep *replay.Replay
	if *replayPath != "" {
		r, err := replay.Load(*replayPath)
		if err != nil {
			log.Fatal(err)
		}
		rep = &r
	}

	sounds, err := sound.NewBank(*mute)
	if err != nil {
		log.Fatal(err)
	}
	renderer, err := render.NewRenderer(tun)
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.NewGame(game.Options{
		Tuning:    tun,
		Store:     store,
		Sounds:    sounds,
		Renderer:  renderer,
		Seed:      *seed,
		RecordDir: *recordDir,
		Replay:    rep,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetTPS(tun.TPS)
	ebiten.SetWindowSize(int(tun.WorldWidth*tun.WindowScale), int(tun.WorldHeight*tun.WindowScale))
	ebiten.SetWindowTitle("Flappy Swift")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
