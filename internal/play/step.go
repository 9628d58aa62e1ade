// Package play feeds one frame of player input into a tiles.Session.
package play

import (
	"fmt"
	"image"
	"time"

	"github.com/04pril/go-tilematch/internal/layout"
	"github.com/04pril/go-tilematch/internal/tiles"
)

// Input is one frame of play-screen input.
type Input struct {
	Clicks      []image.Point
	ToggleMusic bool
	Back        bool
}

// Step routes in to s, then advances s by dt. It reports true once s wants
// the menu back. Score-recording failures come back wrapped with the
// session ID.
func Step(s *tiles.Session, in Input, dt time.Duration) (bool, error) {
	rows, cols := s.Board().Rows, s.Board().Cols
	for _, c := range in.Clicks {
		switch target, pos := layout.Route(c.X, c.Y, rows, cols); target {
		case layout.TargetMusic:
			s.ToggleMusic()
		case layout.TargetCell:
			s.Select(pos)
		case layout.TargetBack:
			return true, wrap(s, s.Back())
		}
	}
	if in.ToggleMusic {
		s.ToggleMusic()
	}
	if in.Back {
		return true, wrap(s, s.Back())
	}

	if err := s.Tick(dt); err != nil {
		return s.State() == tiles.StateReturnToMenu, wrap(s, err)
	}
	return s.State() == tiles.StateReturnToMenu, nil
}

func wrap(s *tiles.Session, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("session %s: %w", s.ID(), err)
}
