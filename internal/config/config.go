// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/04pril/go-tilematch/internal/scores"
	"github.com/04pril/go-tilematch/internal/tiles"
)

type Config struct {
	AssetsDir  string
	ScoreFile  string
	LogLevel   zerolog.Level
	TPS        int
	PairTime   time.Duration
	TripleTime time.Duration
	Seed       int64
	Mute       bool
}

// Load reads envFile if it exists and then the TILEMATCH_* variables.
// Variables already present in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	pair, _ := tiles.RulesFor(tiles.ModePair)
	triple, _ := tiles.RulesFor(tiles.ModeTriple)

	cfg := Config{
		AssetsDir: getEnv("TILEMATCH_ASSETS", "assets"),
		ScoreFile: getEnv("TILEMATCH_SCORES", scores.DefaultPath()),
	}

	var err error
	if cfg.LogLevel, err = zerolog.ParseLevel(getEnv("TILEMATCH_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("TILEMATCH_LOG_LEVEL: %w", err)
	}
	if cfg.TPS, err = strconv.Atoi(getEnv("TILEMATCH_TPS", "30")); err != nil || cfg.TPS < 1 {
		return Config{}, fmt.Errorf("TILEMATCH_TPS must be a positive integer, got %q", os.Getenv("TILEMATCH_TPS"))
	}
	if cfg.PairTime, err = duration("TILEMATCH_PAIR_TIME", pair.TimeLimit); err != nil {
		return Config{}, err
	}
	if cfg.TripleTime, err = duration("TILEMATCH_TRIPLE_TIME", triple.TimeLimit); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = strconv.ParseInt(getEnv("TILEMATCH_SEED", "0"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("TILEMATCH_SEED: %w", err)
	}
	if cfg.Mute, err = strconv.ParseBool(getEnv("TILEMATCH_MUTE", "false")); err != nil {
		return Config{}, fmt.Errorf("TILEMATCH_MUTE: %w", err)
	}
	return cfg, nil
}

// Rules returns the rules for m with the configured time limit applied.
func (c Config) Rules(m tiles.Mode) (tiles.Rules, error) {
	r, err := tiles.RulesFor(m)
	if err != nil {
		return tiles.Rules{}, err
	}
	switch m {
	case tiles.ModePair:
		r.TimeLimit = c.PairTime
	case tiles.ModeTriple:
		r.TimeLimit = c.TripleTime
	}
	return r, nil
}

func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func duration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", k, d)
	}
	return d, nil
}
