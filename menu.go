package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/04pril/go-tilematch/internal/layout"
	"github.com/04pril/go-tilematch/internal/tiles"
)

type menuScreen struct {
	leaderboard []int
}

// newMenuScreen snapshots the leaderboard; it is not refreshed while the
// menu is open.
func newMenuScreen(leaderboard []int) *menuScreen {
	return &menuScreen{leaderboard: leaderboard}
}

func (m *menuScreen) update(clicks []image.Point) (tiles.Mode, bool) {
	for _, c := range clicks {
		switch {
		case layout.Hit(layout.PairButton, c.X, c.Y):
			return tiles.ModePair, true
		case layout.Hit(layout.TripleButton, c.X, c.Y):
			return tiles.ModeTriple, true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		return tiles.ModePair, true
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		return tiles.ModeTriple, true
	}
	return 0, false
}

func (m *menuScreen) draw(screen *ebiten.Image, a *assets, f faces) {
	drawImageIn(screen, a.background, screen.Bounds())

	drawText(screen, "Easy mode (pairs)", f.title, layout.PairButton.Min.X-40, layout.PairButton.Min.Y, th.Text)
	drawText(screen, "Hard mode (triples)", f.title, layout.TripleButton.Min.X-40, layout.TripleButton.Min.Y, th.Text)

	at := layout.LeaderboardAt
	drawText(screen, "Leaderboard:", f.title, at.X, at.Y, th.Text)
	for i, s := range m.leaderboard {
		drawText(screen, fmt.Sprintf("%d. %d", i+1, s), f.label, at.X, at.Y+50+i*30, th.Text)
	}

	drawText(screen, "1/2: start  Esc: quit", f.small, at.X, layout.ScreenHeight-30, th.Text)
}
