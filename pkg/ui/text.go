package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Face is the bitmap font every screen and the HUD draw with
var Face = text.NewGoXFace(bitmapfont.Face)

// DrawText draws text centered on (centerX, centerY). size is the glyph
// height in pixels, the bitmap font is 16px tall.
func DrawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	textWidth := text.Advance(str, Face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-textWidth/2, centerY-8*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// DrawTextAt draws text with its left edge at x, vertically centered on y
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-8*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// DrawPanel draws a filled box with a 2px border
func DrawPanel(screen *ebiten.Image, x, y, width, height float64, bgColor, borderColor color.Color) {
	if width <= 4 || height <= 4 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), borderColor, false)
	vector.DrawFilledRect(screen, float32(x+2), float32(y+2), float32(width-4), float32(height-4), bgColor, false)
}

// drawButton draws a button with background and centered label
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	DrawPanel(screen, x, y, width, height, bgColor, color.RGBA{80, 80, 100, 255})
	DrawText(screen, label, x+width/2, y+height/2, 16, textColor)
}

// FormatLapTime renders seconds as m:ss.cc
func FormatLapTime(seconds float64) string {
	if seconds <= 0 {
		return "-:--.--"
	}
	hundredths := int(math.Round(seconds * 100))
	return fmt.Sprintf("%d:%02d.%02d", hundredths/6000, hundredths/100%60, hundredths%100)
}

// Ordinal renders a placement as 1st, 2nd, 3rd, 4th...
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float32 {
	return float32(math.Sin(t))
}
