package background

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallax_Update(t *testing.T) {
	tests := []struct {
		name   string
		curve  float64
		speed  float64
		offset float64
	}{
		{"right hander scrolls left", 0.5, 100, 1000 - 60},
		{"left hander scrolls right", -0.5, 100, 60},
		{"standing still", 0.5, 0, 0},
		{"reversing", 0.5, -10, 60},
		{"straight", 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParallax(1000, 120)
			p.Update(tt.curve, tt.speed, 1)
			assert.InDelta(t, tt.offset, p.Offset, 1e-9)
		})
	}
}

func TestParallax_StaysInRange(t *testing.T) {
	p := NewParallax(1000, 120)
	for i := 0; i < 1000; i++ {
		p.Update(-0.7, 200, 0.5)
		assert.GreaterOrEqual(t, p.Offset, 0.0)
		assert.Less(t, p.Offset, 1000.0)
	}
}

func TestGenerator_Paint(t *testing.T) {
	g := NewGenerator(200, 100)
	a := image.NewRGBA(image.Rect(0, 0, 200, 100))
	b := image.NewRGBA(image.Rect(0, 0, 200, 100))
	g.Paint(a, 7)
	g.Paint(b, 7)

	assert.Equal(t, a.Pix, b.Pix, "same seed, same panorama")
	// sky at the top, ground at the bottom
	assert.Equal(t, skyTop, a.RGBAAt(0, 0))
	assert.NotEqual(t, color.RGBA{}, a.RGBAAt(199, 99))
	assert.Equal(t, uint8(255), a.RGBAAt(100, 50).A)
}

func TestGenerator_RidgeWraps(t *testing.T) {
	g := NewGenerator(360, 100)
	assert.InDelta(t, g.ridgeY(0, 0.5, 0.2), g.ridgeY(360, 0.5, 0.2), 1)
}
