package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// CountdownLabel is the text shown while the race has not started.
// remaining is the number of seconds left on the lights.
func CountdownLabel(remaining float64) string {
	if remaining <= 0 {
		return "GO!"
	}
	return strconv.Itoa(int(math.Ceil(remaining)))
}

// DrawCountdown draws the start lights over the road. sinceStart is used to
// keep "GO!" on screen for a second after the start.
func DrawCountdown(screen *ebiten.Image, remaining, sinceStart float64) {
	if remaining <= 0 && sinceStart > 1 {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	clr := color.RGBA{255, 60, 60, 255}
	if remaining <= 0 {
		clr = color.RGBA{60, 255, 60, 255}
	}
	DrawText(screen, CountdownLabel(remaining), float64(width)/2, float64(height)/3, 96, clr)
}
