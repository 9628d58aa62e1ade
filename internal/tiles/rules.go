package tiles

import (
	"errors"
	"fmt"
	"time"
)

type Mode int

const (
	ModePair Mode = iota + 2
	ModeTriple
)

func (m Mode) String() string {
	switch m {
	case ModePair:
		return "pair"
	case ModeTriple:
		return "triple"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrInvalidMode is returned for any mode outside the rules table.
var ErrInvalidMode = errors.New("tiles: unsupported mode")

// Rules is the per-mode configuration record.
type Rules struct {
	Mode       Mode
	GroupSize  int
	GroupSizes []int
	Points     int
	TimeLimit  time.Duration
}

var presets = map[Mode]Rules{
	ModePair: {
		Mode:       ModePair,
		GroupSize:  2,
		GroupSizes: []int{2, 4, 6, 8},
		Points:     1,
		TimeLimit:  120 * time.Second,
	},
	ModeTriple: {
		Mode:       ModeTriple,
		GroupSize:  3,
		GroupSizes: []int{3, 6, 9},
		Points:     3,
		TimeLimit:  60 * time.Second,
	},
}

func RulesFor(m Mode) (Rules, error) {
	r, ok := presets[m]
	if !ok {
		return Rules{}, fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
	r.GroupSizes = append([]int(nil), r.GroupSizes...)
	return r, nil
}

func (r Rules) Validate() error {
	if _, ok := presets[r.Mode]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMode, r.Mode)
	}
	if r.GroupSize < 1 {
		return fmt.Errorf("tiles: invalid group size %d", r.GroupSize)
	}
	if len(r.GroupSizes) == 0 {
		return fmt.Errorf("tiles: no group sizes for %s", r.Mode)
	}
	for _, n := range r.GroupSizes {
		if n < 1 {
			return fmt.Errorf("tiles: invalid group size %d for %s", n, r.Mode)
		}
	}
	if r.TimeLimit <= 0 {
		return fmt.Errorf("tiles: time limit must be positive, got %s", r.TimeLimit)
	}
	return nil
}
