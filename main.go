package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/04pril/go-tilematch/internal/config"
	"github.com/04pril/go-tilematch/internal/layout"
	"github.com/04pril/go-tilematch/internal/scores"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		mute        bool
		envFile     string
	)
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&mute, "mute", false, "start with the music paused")
	flag.StringVar(&envFile, "env", ".env", "optional file with TILEMATCH_* settings")
	flag.Parse()

	if showVersion {
		fmt.Printf("go-tilematch %s (%s) %s\n", version, commit, date)
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if mute {
		cfg.Mute = true
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	a, err := loadAssets(cfg.AssetsDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.AssetsDir).Msg("failed to load assets")
	}
	m, err := newMusic(a.music)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start music")
	}

	store := scores.NewStore(cfg.ScoreFile, scores.WithLogger(log.Logger))
	g := newGame(cfg, a, m, store, log.Logger)

	ebiten.SetWindowSize(layout.ScreenWidth, layout.ScreenHeight)
	ebiten.SetWindowTitle("Tile Match")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	log.Info().Str("scores", cfg.ScoreFile).Int("tps", cfg.TPS).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
