// Package tiles holds the rules of the matching game: board generation,
// match checking and the per-play session state machine.
package tiles

import (
	"fmt"
	"math/rand/v2"
)

const (
	Rows         = 6
	Cols         = 6
	PatternCount = 4
)

// Pattern identifies a tile face. Empty marks a cleared cell.
type Pattern uint8

const Empty Pattern = 0

type Pos struct {
	Row, Col int
}

type Board struct {
	Rows, Cols int
	cells      [][]Pattern
}

func NewBoard(rows, cols int) *Board {
	b := &Board{Rows: rows, Cols: cols}
	b.cells = make([][]Pattern, rows)
	for r := range b.cells {
		b.cells[r] = make([]Pattern, cols)
	}
	return b
}

func (b *Board) In(p Pos) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < b.Rows && p.Col < b.Cols
}

func (b *Board) At(p Pos) Pattern {
	if !b.In(p) {
		return Empty
	}
	return b.cells[p.Row][p.Col]
}

func (b *Board) Set(p Pos, v Pattern) {
	if b.In(p) {
		b.cells[p.Row][p.Col] = v
	}
}

// Remaining counts cells that still hold a pattern.
func (b *Board) Remaining() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

func (b *Board) Cleared() bool {
	return b.Remaining() == 0
}

// Counts returns how many cells hold each pattern.
func (b *Board) Counts() map[Pattern]int {
	out := map[Pattern]int{}
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				out[c]++
			}
		}
	}
	return out
}

type GenerationError struct {
	Want, Got int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("tiles: generated %d tiles, board needs %d", e.Got, e.Want)
}

// Generate fills a rows×cols board with whole groups of patterns and
// shuffles them into place, so every tile belongs to a group sized for the
// mode.
func Generate(rules Rules, rows, cols int, rng *rand.Rand) (*Board, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("tiles: invalid board size %dx%d", rows, cols)
	}
	total := rows * cols

	flat := make([]Pattern, 0, total)
	remaining := total
	for remaining > 0 {
		p := Pattern(rng.IntN(PatternCount) + 1)
		n := rules.GroupSizes[rng.IntN(len(rules.GroupSizes))]
		if n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			flat = append(flat, p)
		}
		remaining -= n
	}
	if len(flat) != total {
		return nil, &GenerationError{Want: total, Got: len(flat)}
	}

	rng.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	b := NewBoard(rows, cols)
	for i, p := range flat {
		b.cells[i/cols][i%cols] = p
	}
	return b, nil
}
