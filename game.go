package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/04pril/go-tilematch/internal/config"
	"github.com/04pril/go-tilematch/internal/layout"
	"github.com/04pril/go-tilematch/internal/scores"
	"github.com/04pril/go-tilematch/internal/tiles"
)

type screen int

const (
	screenMenu screen = iota
	screenPlay
)

type game struct {
	cfg    config.Config
	assets *assets
	faces  faces
	music  *music
	store  *scores.Store
	rng    *rand.Rand
	log    zerolog.Logger
	input  *pointer

	screen  screen
	menu    *menuScreen
	play    *playScreen
	musicOn bool
}

func newGame(cfg config.Config, a *assets, m *music, store *scores.Store, log zerolog.Logger) *game {
	g := &game{
		cfg:     cfg,
		assets:  a,
		faces:   newFaces(a.font),
		music:   m,
		store:   store,
		rng:     tiles.NewRand(cfg.Seed),
		log:     log,
		input:   newPointer(),
		musicOn: !cfg.Mute,
	}
	g.music.set(g.musicOn)
	g.openMenu()
	return g
}

func (g *game) openMenu() {
	g.screen = screenMenu
	g.play = nil
	g.menu = newMenuScreen(g.store.Load())
}

func (g *game) startSession(mode tiles.Mode) error {
	rules, err := g.cfg.Rules(mode)
	if err != nil {
		return err
	}
	s, err := tiles.NewSession(rules, g.store,
		tiles.WithRand(g.rng),
		tiles.WithLogger(g.log),
		tiles.WithMusic(g.musicOn),
	)
	if err != nil {
		return fmt.Errorf("start %s game: %w", mode, err)
	}
	g.screen = screenPlay
	g.play = &playScreen{s: s}
	return nil
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	clicks := g.input.clicks()

	switch g.screen {
	case screenMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if mode, ok := g.menu.update(clicks); ok {
			return g.startSession(mode)
		}
	case screenPlay:
		done, err := g.play.update(clicks, g.cfg.FrameDuration(), g.music)
		g.musicOn = g.play.s.MusicOn()
		if err != nil {
			return err
		}
		if done {
			g.openMenu()
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case screenMenu:
		g.menu.draw(screen, g.assets, g.faces)
	case screenPlay:
		g.play.draw(screen, g.assets, g.faces)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return layout.ScreenWidth, layout.ScreenHeight
}
