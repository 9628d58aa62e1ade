// Package layout holds the fixed screen geometry shared by drawing and
// pointer hit-testing.
package layout

import (
	"fmt"
	"image"
	"time"

	"github.com/04pril/go-tilematch/internal/tiles"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TileSize     = 100
)

var (
	// Menu buttons.
	PairButton   = image.Rect(ScreenWidth/2-80, ScreenHeight/2-50, ScreenWidth/2+80, ScreenHeight/2+10)
	TripleButton = image.Rect(ScreenWidth/2-80, ScreenHeight/2+60, ScreenWidth/2+80, ScreenHeight/2+120)

	// Side panel of the play screen.
	TimerAt     = image.Pt(ScreenWidth-150, 10)
	BackButton  = image.Rect(ScreenWidth-150, 60, ScreenWidth-50, 100)
	ScoreAt     = image.Pt(ScreenWidth-150, 110)
	MusicButton = image.Rect(ScreenWidth-150, 160, ScreenWidth-70, 190)
	ModeLabelAt = image.Pt(ScreenWidth-150, 210)

	LeaderboardAt = image.Pt(50, 50)
)

// Hit reports whether (x, y) lies in r, edges included.
func Hit(r image.Rectangle, x, y int) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// CellAt maps a pixel to a board cell.
func CellAt(x, y, rows, cols int) (tiles.Pos, bool) {
	if x < 0 || y < 0 {
		return tiles.Pos{}, false
	}
	p := tiles.Pos{Row: y / TileSize, Col: x / TileSize}
	if p.Row >= rows || p.Col >= cols {
		return tiles.Pos{}, false
	}
	return p, true
}

func CellRect(p tiles.Pos) image.Rectangle {
	x, y := p.Col*TileSize, p.Row*TileSize
	return image.Rect(x, y, x+TileSize, y+TileSize)
}

// Clock formats a countdown as H:MM:SS, rounding partial seconds down.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
}

// Target is what a click on the play screen lands on.
type Target int

const (
	TargetNone Target = iota
	TargetMusic
	TargetCell
	TargetBack
)

// Route resolves a play-screen click on a rows x cols board. The music
// button is checked first, then the grid, then Back.
func Route(x, y, rows, cols int) (Target, tiles.Pos) {
	if Hit(MusicButton, x, y) {
		return TargetMusic, tiles.Pos{}
	}
	if p, ok := CellAt(x, y, rows, cols); ok {
		return TargetCell, p
	}
	if Hit(BackButton, x, y) {
		return TargetBack, tiles.Pos{}
	}
	return TargetNone, tiles.Pos{}
}
