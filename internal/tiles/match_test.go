package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board from rows of pattern numbers, 0 meaning empty.
func boardFrom(rows ...[]Pattern) *Board {
	b := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, p := range row {
			b.Set(Pos{r, c}, p)
		}
	}
	return b
}

func snapshot(b *Board) [][]Pattern {
	out := make([][]Pattern, b.Rows)
	for r := range out {
		out[r] = make([]Pattern, b.Cols)
		for c := range out[r] {
			out[r][c] = b.At(Pos{r, c})
		}
	}
	return out
}

func TestCheckMatchClearsEqualPatterns(t *testing.T) {
	b := boardFrom(
		[]Pattern{1, 2, 1},
		[]Pattern{3, 1, 4},
	)
	sel := []Pos{{0, 0}, {0, 2}, {1, 1}}
	require.True(t, CheckMatch(sel, b, 3))
	for _, p := range sel {
		assert.Equal(t, Empty, b.At(p))
	}
	assert.Equal(t, 3, b.Remaining())
}

func TestCheckMatchMismatchLeavesBoard(t *testing.T) {
	b := boardFrom(
		[]Pattern{1, 2},
		[]Pattern{1, 1},
	)
	before := snapshot(b)
	assert.False(t, CheckMatch([]Pos{{0, 0}, {0, 1}}, b, 2))
	assert.Equal(t, before, snapshot(b))
}

func TestCheckMatchEmptyCellFailsSafely(t *testing.T) {
	b := boardFrom(
		[]Pattern{0, 0},
		[]Pattern{2, 2},
	)
	before := snapshot(b)
	assert.False(t, CheckMatch([]Pos{{0, 0}, {0, 1}}, b, 2))
	assert.False(t, CheckMatch([]Pos{{1, 0}, {0, 1}}, b, 2))
	assert.Equal(t, before, snapshot(b))
}

func TestCheckMatchWrongLengthOrOutOfRange(t *testing.T) {
	b := boardFrom([]Pattern{1, 1, 1})
	assert.False(t, CheckMatch([]Pos{{0, 0}, {0, 1}}, b, 3))
	assert.False(t, CheckMatch(nil, b, 0))
	assert.False(t, CheckMatch([]Pos{{0, 0}, {5, 5}}, b, 2))
	assert.Equal(t, 3, b.Remaining())
}

func TestSelectionIgnoresRepeatedClicks(t *testing.T) {
	s := NewSelection(3)
	require.True(t, s.Add(Pos{0, 0}))
	assert.False(t, s.Add(Pos{0, 0}), "immediate re-click")
	require.True(t, s.Add(Pos{0, 1}))
	assert.False(t, s.Add(Pos{0, 0}), "already pending")
	require.True(t, s.Add(Pos{0, 2}))
	assert.True(t, s.Full())
	assert.False(t, s.Add(Pos{1, 0}), "full")

	s.Reset()
	assert.Zero(t, s.Len())
	assert.False(t, s.Add(Pos{0, 2}), "last click survives reset")
	assert.True(t, s.Add(Pos{0, 0}))
}
