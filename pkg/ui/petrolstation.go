package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PetrolStationNotice flashes a banner after driving through a fuel station
type PetrolStationNotice struct {
	remaining float64 // seconds left on screen
	fuel      float64 // tank level after refuelling
}

// noticeDuration is how long the banner stays up
const noticeDuration = 2.0

// Show starts the banner for the given tank level
func (n *PetrolStationNotice) Show(fuel float64) {
	n.remaining = noticeDuration
	n.fuel = fuel
}

// Update counts the banner down
func (n *PetrolStationNotice) Update(dt float64) {
	n.remaining = max(n.remaining-dt, 0)
}

// Visible reports whether the banner is on screen
func (n *PetrolStationNotice) Visible() bool {
	return n.remaining > 0
}

// Draw renders the banner, fading out over its last half second
func (n *PetrolStationNotice) Draw(screen *ebiten.Image) {
	if !n.Visible() {
		return
	}
	width := screen.Bounds().Dx()
	alpha := min(n.remaining/0.5, 1)

	DrawPanel(screen, float64(width)/2-180, 150, 360, 70,
		fade(color.RGBA{40, 40, 50, 255}, alpha), fade(color.RGBA{255, 200, 0, 255}, alpha))
	DrawText(screen, "PETROL STATION", float64(width)/2, 172, 24, fade(color.RGBA{255, 200, 0, 255}, alpha))
	DrawText(screen, fmt.Sprintf("Fuel %.0f%%", n.fuel), float64(width)/2, 202, 18, fade(color.RGBA{200, 200, 200, 255}, alpha))
}

// fade scales a color by alpha, color.RGBA is premultiplied
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		uint8(float64(c.R) * alpha),
		uint8(float64(c.G) * alpha),
		uint8(float64(c.B) * alpha),
		uint8(float64(c.A) * alpha),
	}
}
