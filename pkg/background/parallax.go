package background

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Parallax scrolls the horizon against the direction of the curve
type Parallax struct {
	Offset float64 // left edge of the visible part, in [0, Width)
	Rate   float64 // pixels per second per unit of curve
	Width  float64 // width of the panorama
}

// NewParallax creates a scroller for a panorama of the given width
func NewParallax(width int, rate float64) *Parallax {
	return &Parallax{Rate: rate, Width: float64(width)}
}

// Update moves the panorama for the current curve. It only moves while the
// car is moving, and backwards when the car reverses.
func (p *Parallax) Update(curve, speed, dt float64) {
	switch {
	case speed > 0:
		p.Offset -= curve * p.Rate * dt
	case speed < 0:
		p.Offset += curve * p.Rate * dt
	default:
		return
	}
	p.Offset = math.Mod(p.Offset, p.Width)
	if p.Offset < 0 {
		p.Offset += p.Width
	}
}

// Draw tiles the panorama across the top of the screen so its bottom edge
// sits on the horizon line.
func (p *Parallax) Draw(screen, panorama *ebiten.Image, horizon float64) {
	h := float64(panorama.Bounds().Dy())
	sw := float64(screen.Bounds().Dx())
	for x := -p.Offset; x < sw; x += p.Width {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, horizon-h)
		screen.DrawImage(panorama, op)
	}
}
