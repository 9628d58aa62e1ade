package tiles

// CheckMatch clears the selected cells and reports true when all of them
// hold the same pattern. Any empty or out-of-range cell fails the match and
// leaves the board untouched.
func CheckMatch(sel []Pos, b *Board, groupSize int) bool {
	if groupSize < 1 || len(sel) != groupSize {
		return false
	}
	first := b.At(sel[0])
	if first == Empty {
		return false
	}
	for _, p := range sel[1:] {
		if b.At(p) != first {
			return false
		}
	}
	for _, p := range sel {
		b.Set(p, Empty)
	}
	return true
}

// Selection accumulates clicked cells until a group is complete.
type Selection struct {
	size    int
	cells   []Pos
	last    Pos
	hasLast bool
}

func NewSelection(size int) *Selection {
	return &Selection{size: size, cells: make([]Pos, 0, size)}
}

// Add appends p unless it repeats the previous click or is already pending.
// The previous click is remembered across Reset.
func (s *Selection) Add(p Pos) bool {
	if s.hasLast && s.last == p {
		return false
	}
	if len(s.cells) >= s.size || s.Contains(p) {
		return false
	}
	s.cells = append(s.cells, p)
	s.last, s.hasLast = p, true
	return true
}

func (s *Selection) Contains(p Pos) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
	}
	return false
}

func (s *Selection) Full() bool {
	return len(s.cells) == s.size
}

func (s *Selection) Len() int {
	return len(s.cells)
}

func (s *Selection) Cells() []Pos {
	return append([]Pos(nil), s.cells...)
}

func (s *Selection) Reset() {
	s.cells = s.cells[:0]
}
