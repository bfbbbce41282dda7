package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Battle-City/internal/game"
	"github.com/Garsondee/Battle-City/internal/logging"
	"github.com/Garsondee/Battle-City/internal/sim"
)

func main() {
	cfg := sim.DefaultConfig()
	logOpts := logging.DefaultOptions()
	var opts game.Options

	flag.IntVar(&cfg.EnemyCount, "enemies", cfg.EnemyCount, "enemies per round")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "simulation ticks per second")
	flag.DurationVar(&cfg.DwellDuration, "dwell", cfg.DwellDuration, "pause on the victory/defeat screen before replaying (0 waits for input)")
	flag.Int64Var(&opts.Seed, "seed", 0, "RNG seed (0 = random)")
	flag.BoolVar(&opts.Muted, "mute", false, "start with sound effects off")
	flag.BoolVar(&opts.NoAudio, "no-audio", false, "do not open an audio device")
	flag.BoolVar(&opts.Autopilot, "autopilot", false, "let the computer drive the player tank")
	flag.StringVar(&logOpts.File, "log", "", "rotating log file (default stderr)")
	flag.StringVar(&logOpts.Level, "log-level", logOpts.Level, "log level: debug, info, warn, error")
	flag.Parse()

	log, err := logging.New(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	opts.Config = cfg
	opts.Logger = log
	g, err := game.New(opts)
	if err != nil {
		log.Error("cannot start", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("Battle City")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Error("game loop failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
