package sprites

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/topgear/pkg/road"
	"github.com/golangdaddy/topgear/pkg/track"
	"github.com/golangdaddy/topgear/pkg/vehicle"
)

func opaquePixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestPaintDecoration(t *testing.T) {
	for _, d := range track.Decorations {
		t.Run(d.String(), func(t *testing.T) {
			img := PaintDecoration(d)
			assert.Equal(t, decorationSizes[d], img.Bounds().Size())
			assert.Greater(t, opaquePixels(img), 0)
			// sprites stand on their bottom row
			bottom := 0
			for x := 0; x < img.Bounds().Dx(); x++ {
				if img.RGBAAt(x, img.Bounds().Dy()-1).A != 0 {
					bottom++
				}
			}
			assert.Greater(t, bottom, 0)
		})
	}
}

func TestPaintCar_Lean(t *testing.T) {
	straight := PaintCar(PlayerSize, PlayerColor, vehicle.SteerNone)
	left := PaintCar(PlayerSize, PlayerColor, vehicle.SteerLeft)
	right := PaintCar(PlayerSize, PlayerColor, vehicle.SteerRight)

	assert.Equal(t, PlayerSize, straight.Bounds().Size())
	assert.NotEqual(t, straight.Pix, left.Pix)
	assert.NotEqual(t, left.Pix, right.Pix)
	assert.Equal(t, PlayerColor, straight.RGBAAt(PlayerSize.X/2, PlayerSize.Y*3/4))
}

func TestCarColor(t *testing.T) {
	assert.Equal(t, CarColors[0], CarColor(1))
	assert.Equal(t, CarColors[0], CarColor(0))
	assert.Equal(t, CarColors[1], CarColor(len(CarColors)+2))
	assert.NotEqual(t, PlayerColor, CarColor(1))
	assert.IsType(t, color.RGBA{}, CarColor(3))
}

func TestSpriteFiles(t *testing.T) {
	files := SpriteFiles(2)
	require.Len(t, files, len(track.Decorations)+2)
	assert.Equal(t, road.Scenery(track.DecorationFuel), files["fuel.png"])
	assert.Equal(t, road.CarSprite(2), files["car2.png"])
	assert.Len(t, PlayerFiles(), 3)
}
