package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bitmapfont glyphs are 16px tall at scale 1
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// TextWidth is the width of str drawn at the given pixel size.
func TextWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size / glyphHeight
}

// DrawText draws str centred on (centerX, centerY) at the given pixel size.
func DrawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	DrawTextAt(screen, str, centerX-TextWidth(str, size)/2, centerY, size, clr)
}

// DrawTextAt draws str with its left edge at x, vertically centred on y.
func DrawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawPanel fills a rectangle and outlines it with a 2px border.
func DrawPanel(screen *ebiten.Image, x, y, width, height float64, bg, border color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, border, false)
}

// drawButton draws a panel with a label centred on it
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	DrawPanel(screen, x, y, width, height, bgColor, color.RGBA{80, 80, 100, 255})
	DrawText(screen, label, x+width/2, y+height/2, glyphHeight, textColor)
}
