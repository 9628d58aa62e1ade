package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const touchMoveSlopPx = 10

type touchStart struct {
	X, Y         int
	LastX, LastY int
}

// pointer turns left clicks and short taps into click positions, one batch
// per frame.
type pointer struct {
	touchStarts map[ebiten.TouchID]touchStart
	buf         []image.Point
}

func newPointer() *pointer {
	return &pointer{touchStarts: map[ebiten.TouchID]touchStart{}}
}

func (p *pointer) clicks() []image.Point {
	p.buf = p.buf[:0]

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.buf = append(p.buf, image.Pt(x, y))
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p.touchStarts[id] = touchStart{X: x, Y: y, LastX: x, LastY: y}
	}
	for id, st := range p.touchStarts {
		if inpututil.IsTouchJustReleased(id) {
			continue
		}
		st.LastX, st.LastY = ebiten.TouchPosition(id)
		p.touchStarts[id] = st
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		st, ok := p.touchStarts[id]
		if !ok {
			continue
		}
		delete(p.touchStarts, id)
		if absInt(st.LastX-st.X) > touchMoveSlopPx || absInt(st.LastY-st.Y) > touchMoveSlopPx {
			continue
		}
		p.buf = append(p.buf, image.Pt(st.LastX, st.LastY))
	}
	return p.buf
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
