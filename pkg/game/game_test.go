package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/topgear/pkg/road"
	"github.com/golangdaddy/topgear/pkg/vehicle"
)

func TestKeyMap_Controls(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyArrowLeft: true, ebiten.KeyZ: true}
	ctl := defaultKeys.controls(func(k ebiten.Key) bool { return held[k] })

	assert.Equal(t, vehicle.Controls{Accelerate: true, Left: true, ShiftDown: true}, ctl)
	assert.Equal(t, vehicle.Controls{}, defaultKeys.controls(func(ebiten.Key) bool { return false }))
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		last time.Time
		want float64
	}{
		{"first tick", time.Time{}, 0},
		{"normal tick", now.Add(-16 * time.Millisecond), 0.016},
		{"stall is clamped", now.Add(-2 * time.Second), 0.1},
		{"clock going back", now.Add(time.Second), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, frameDelta(tt.last, now, 0.1), 1e-9)
		})
	}
}

func TestPlayerRect(t *testing.T) {
	r := playerRect(1024, 768, 160, 84)
	assert.Equal(t, road.Rect{X: 432, Y: 668, W: 160, H: 84}, r)
}

func TestGaugeColors(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 255, 100, 255}, speedColor(0))
	assert.Equal(t, color.RGBA{255, 255, 100, 255}, speedColor(0.5))
	assert.Equal(t, color.RGBA{255, 100, 0, 255}, speedColor(1))
	assert.Equal(t, speedColor(1), speedColor(3))
	assert.Equal(t, speedColor(0), fuelColor(1))
	assert.Equal(t, speedColor(1), fuelColor(0))
}
