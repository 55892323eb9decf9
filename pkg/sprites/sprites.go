// Package sprites paints the built in sprites of the game
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golangdaddy/topgear/pkg/road"
	"github.com/golangdaddy/topgear/pkg/track"
	"github.com/golangdaddy/topgear/pkg/vehicle"
)

// Source sizes of the procedural sprites
var (
	decorationSizes = map[track.Decoration]image.Point{
		track.DecorationHouse: {200, 160},
		track.DecorationTree:  {120, 220},
		track.DecorationPalm:  {120, 240},
		track.DecorationBush:  {110, 70},
		track.DecorationFuel:  {220, 160},
	}
	OpponentSize = image.Point{120, 64}
	PlayerSize   = image.Point{160, 84}
)

// CarColors are the opponent liveries, variant n uses CarColors[(n-1)%len]
var CarColors = []color.RGBA{
	{30, 80, 220, 255},
	{240, 200, 30, 255},
	{30, 170, 70, 255},
	{140, 60, 190, 255},
	{250, 130, 20, 255},
}

// PlayerColor is the livery of the player car
var PlayerColor = color.RGBA{220, 20, 20, 255}

var (
	outline    = color.RGBA{0, 0, 0, 255}
	tyre       = color.RGBA{40, 40, 40, 255}
	glass      = color.RGBA{100, 180, 220, 255}
	taillight  = color.RGBA{255, 0, 0, 255}
	trunkBrown = color.RGBA{90, 60, 30, 255}
)

// CarColor returns the livery of an opponent colour variant
func CarColor(variant int) color.RGBA {
	if variant < 1 {
		variant = 1
	}
	return CarColors[(variant-1)%len(CarColors)]
}

// PaintDecoration draws a roadside sprite into a new image of its source size
func PaintDecoration(d track.Decoration) *image.RGBA {
	size := decorationSizes[d]
	img := image.NewRGBA(image.Rectangle{Max: size})
	switch d {
	case track.DecorationHouse:
		paintHouse(img)
	case track.DecorationTree:
		paintTree(img)
	case track.DecorationPalm:
		paintPalm(img)
	case track.DecorationBush:
		paintBush(img)
	case track.DecorationFuel:
		paintFuel(img)
	}
	return img
}

// PaintCar draws the rear view of a car. steer leans the cabin into the turn.
func PaintCar(size image.Point, body color.RGBA, steer vehicle.Steer) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	w, h := size.X, size.Y
	lean := 0
	switch steer {
	case vehicle.SteerLeft:
		lean = -w / 20
	case vehicle.SteerRight:
		lean = w / 20
	}
	roof := darken(body, 0.8)

	// wheels
	fill(img, image.Rect(w/20, h*5/8, w/5, h), tyre)
	fill(img, image.Rect(w*4/5, h*5/8, w*19/20, h), tyre)
	// body
	fill(img, image.Rect(0, h*3/8, w, h*7/8), body)
	// cabin and rear window
	fill(img, image.Rect(w/5+lean, h/16, w*4/5+lean, h*3/8), roof)
	fill(img, image.Rect(w/4+lean, h/8, w*3/4+lean, h*5/16), glass)
	// tail lights
	fill(img, image.Rect(w/16, h/2, w/4, h*5/8), taillight)
	fill(img, image.Rect(w*3/4, h/2, w*15/16, h*5/8), taillight)
	// bumper line
	fill(img, image.Rect(0, h*7/8-2, w, h*7/8), outline)
	return img
}

func paintHouse(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	wall := color.RGBA{230, 220, 190, 255}
	roofC := color.RGBA{170, 60, 40, 255}
	fill(img, image.Rect(w/10, h*2/5, w*9/10, h), wall)
	// gable roof
	for y := 0; y < h*2/5; y++ {
		half := (w / 2) * y / (h * 2 / 5)
		fill(img, image.Rect(w/2-half, y, w/2+half, y+1), roofC)
	}
	fill(img, image.Rect(w*2/5, h*3/5, w*3/5, h), trunkBrown)
	fill(img, image.Rect(w/5, h/2, w/3, h*13/20), glass)
	fill(img, image.Rect(w*2/3, h/2, w*4/5, h*13/20), glass)
}

func paintTree(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	fill(img, image.Rect(w*2/5, h*3/4, w*3/5, h), trunkBrown)
	leaves := color.RGBA{30, 120, 40, 255}
	crown := h * 3 / 4
	for y := 0; y < crown; y++ {
		half := (w / 2) * (y + 1) / crown
		fill(img, image.Rect(w/2-half, y, w/2+half, y+1), leaves)
	}
}

func paintPalm(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	// slightly bent trunk
	for y := h / 5; y < h; y++ {
		x := w/2 + (h-y)*w/(8*h)
		fill(img, image.Rect(x-w/20, y, x+w/20, y+1), trunkBrown)
	}
	frond := color.RGBA{40, 150, 50, 255}
	top := image.Pt(w/2+w/10, h/5)
	for _, dir := range []int{-1, 1} {
		for i := 0; i < w/2; i++ {
			y := top.Y + i*i/(w/2) - i/2
			fill(img, image.Rect(top.X+dir*i-1, y, top.X+dir*i+2, y+h/40+2), frond)
		}
	}
}

func paintBush(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	c := color.RGBA{60, 130, 50, 255}
	rx, ry := w/2, h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-rx, y-ry
			if dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func paintFuel(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	canopy := color.RGBA{240, 240, 240, 255}
	stripe := color.RGBA{220, 30, 30, 255}
	pump := color.RGBA{250, 200, 20, 255}
	fill(img, image.Rect(0, 0, w, h/5), canopy)
	fill(img, image.Rect(0, h/5, w, h/4), stripe)
	fill(img, image.Rect(w/10, h/4, w/10+w/20, h), canopy)
	fill(img, image.Rect(w*17/20, h/4, w*9/10, h), canopy)
	fill(img, image.Rect(w*3/10, h*3/5, w*2/5, h), pump)
	fill(img, image.Rect(w*3/5, h*3/5, w*7/10, h), pump)
}

func fill(img draw.Image, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

// SpriteFiles maps asset file names to billboard sprites
func SpriteFiles(variants int) map[string]road.Sprite {
	files := make(map[string]road.Sprite)
	for _, d := range track.Decorations {
		files[d.String()+".png"] = road.Scenery(d)
	}
	for v := 1; v <= variants; v++ {
		files[fmt.Sprintf("car%d.png", v)] = road.CarSprite(v)
	}
	return files
}

// PlayerFiles maps asset file names to the player car variants
func PlayerFiles() map[string]vehicle.Steer {
	return map[string]vehicle.Steer{
		"player.png":       vehicle.SteerNone,
		"player_left.png":  vehicle.SteerLeft,
		"player_right.png": vehicle.SteerRight,
	}
}
