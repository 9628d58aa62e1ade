package main

import (
	"bytes"
	"fmt"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/04pril/go-tilematch/internal/tiles"
)

type assets struct {
	background *ebiten.Image
	patterns   [tiles.PatternCount + 1]*ebiten.Image
	font       *text.GoTextFaceSource
	music      []byte
}

// loadAssets reads everything up front so a missing file stops the game
// before the menu opens.
//
//	<dir>/images/background.png
//	<dir>/images/1.png .. 4.png
//	<dir>/font.ttf
//	<dir>/music.mp3
func loadAssets(dir string) (*assets, error) {
	a := &assets{}
	var err error

	if a.background, _, err = ebitenutil.NewImageFromFile(filepath.Join(dir, "images", "background.png")); err != nil {
		return nil, fmt.Errorf("load background: %w", err)
	}
	for p := 1; p <= tiles.PatternCount; p++ {
		path := filepath.Join(dir, "images", strconv.Itoa(p)+".png")
		if a.patterns[p], _, err = ebitenutil.NewImageFromFile(path); err != nil {
			return nil, fmt.Errorf("load pattern %d: %w", p, err)
		}
	}

	ttf, err := os.ReadFile(filepath.Join(dir, "font.ttf"))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	if a.font, err = text.NewGoTextFaceSource(bytes.NewReader(ttf)); err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	if a.music, err = os.ReadFile(filepath.Join(dir, "music.mp3")); err != nil {
		return nil, fmt.Errorf("load music: %w", err)
	}
	return a, nil
}

func (a *assets) pattern(p tiles.Pattern) *ebiten.Image {
	if int(p) < 1 || int(p) >= len(a.patterns) {
		return nil
	}
	return a.patterns[p]
}
