package main

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/04pril/go-tilematch/internal/layout"
	"github.com/04pril/go-tilematch/internal/play"
	"github.com/04pril/go-tilematch/internal/tiles"
)

const (
	msgTimeUp   = "Time's up! Click back to try again."
	msgComplete = "Stage clear! Returning to menu..."
)

type playScreen struct {
	s *tiles.Session
}

// update feeds this frame's input to the session and advances it by dt.
// It reports true once the session wants the menu back.
func (p *playScreen) update(clicks []image.Point, dt time.Duration, m *music) (bool, error) {
	done, err := play.Step(p.s, play.Input{
		Clicks:      clicks,
		ToggleMusic: inpututil.IsKeyJustPressed(ebiten.KeyM),
		Back:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}, dt)
	m.set(p.s.MusicOn())
	return done, err
}

func (p *playScreen) draw(screen *ebiten.Image, a *assets, f faces) {
	s := p.s
	drawImageIn(screen, a.background, screen.Bounds())

	b := s.Board()
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			pos := tiles.Pos{Row: r, Col: c}
			if img := a.pattern(b.At(pos)); img != nil {
				drawImageIn(screen, img, layout.CellRect(pos))
			}
		}
	}
	for _, pos := range s.Selection() {
		r := layout.CellRect(pos)
		vector.StrokeRect(screen, float32(r.Min.X+2), float32(r.Min.Y+2), float32(r.Dx()-4), float32(r.Dy()-4), 4, th.Selected, false)
	}

	// The side panel stays uncovered so Back and BGM remain usable.
	grid := image.Rect(0, 0, b.Cols*layout.TileSize, b.Rows*layout.TileSize)
	var msg string
	switch {
	case s.GameOver():
		msg = msgTimeUp
	case s.Complete():
		msg = msgComplete
	}
	if msg != "" {
		drawBanner(screen, grid, msg, f.label)
		secs := int((s.GraceRemaining() + time.Second - 1) / time.Second)
		below := image.Rect(grid.Min.X, grid.Dy()/2+30, grid.Max.X, grid.Dy()/2+50)
		drawTextCentered(screen, fmt.Sprintf("Menu in %d", secs), f.small, below, th.BannerText)
	}

	drawText(screen, layout.Clock(s.Remaining()), f.title, layout.TimerAt.X, layout.TimerAt.Y, th.Text)

	drawRaisedRect(screen, layout.BackButton, th.Button)
	drawTextCentered(screen, "Back", f.label, layout.BackButton, th.TextLight)

	drawText(screen, fmt.Sprintf("Score: %d", s.Score()), f.label, layout.ScoreAt.X, layout.ScoreAt.Y, th.TextLight)

	musicColor := th.MusicOff
	if s.MusicOn() {
		musicColor = th.MusicOn
	}
	fillRect(screen, layout.MusicButton, musicColor)
	drawTextCentered(screen, "BGM", f.label, layout.MusicButton, th.TextLight)

	drawText(screen, fmt.Sprintf("%s mode, match %d", s.Mode(), s.Rules().GroupSize), f.small, layout.ModeLabelAt.X, layout.ModeLabelAt.Y, th.Text)
}
