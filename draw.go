package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	titleFontSize = 36
	labelFontSize = 28
)

type theme struct {
	Text       color.Color
	TextLight  color.Color
	Button     color.Color
	Light      color.Color
	Dark       color.Color
	MusicOn    color.Color
	MusicOff   color.Color
	Selected   color.Color
	Overlay    color.Color
	BannerText color.Color
}

var th = theme{
	Text:       rgb(0, 0, 0),
	TextLight:  rgb(255, 255, 255),
	Button:     rgb(100, 100, 100),
	Light:      rgb(160, 160, 160),
	Dark:       rgb(50, 50, 50),
	MusicOn:    rgb(0, 255, 0),
	MusicOff:   rgb(255, 0, 0),
	Selected:   rgb(255, 215, 0),
	Overlay:    color.RGBA{0, 0, 0, 140},
	BannerText: rgb(255, 255, 255),
}

type faces struct {
	title text.Face
	label text.Face
	small text.Face
}

func newFaces(src *text.GoTextFaceSource) faces {
	return faces{
		title: &text.GoTextFace{Source: src, Size: titleFontSize},
		label: &text.GoTextFace{Source: src, Size: labelFontSize},
		small: text.NewGoXFace(basicfont.Face7x13),
	}
}

func drawText(dst *ebiten.Image, s string, f text.Face, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, f, op)
}

func drawTextCentered(dst *ebiten.Image, s string, f text.Face, r image.Rectangle, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, f, op)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func drawRaisedRect(dst *ebiten.Image, r image.Rectangle, fill color.Color) {
	fillRect(dst, r, fill)
	x0, y0, x1, y1 := float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y)
	vector.StrokeLine(dst, x0, y0, x1, y0, 2, th.Light, false)
	vector.StrokeLine(dst, x0, y0, x0, y1, 2, th.Light, false)
	vector.StrokeLine(dst, x1, y0, x1, y1, 2, th.Dark, false)
	vector.StrokeLine(dst, x0, y1, x1, y1, 2, th.Dark, false)
}

func drawImageIn(dst, img *ebiten.Image, r image.Rectangle) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	dst.DrawImage(img, op)
}

// drawBanner dims area and shows label in a strip across its middle.
func drawBanner(dst *ebiten.Image, area image.Rectangle, label string, f text.Face) {
	fillRect(dst, area, th.Overlay)
	mid := area.Min.Y + area.Dy()/2
	strip := image.Rect(area.Min.X, mid-30, area.Max.X, mid+30)
	fillRect(dst, strip, th.Dark)
	drawTextCentered(dst, label, f, strip, th.BannerText)
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
