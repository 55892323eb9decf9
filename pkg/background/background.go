package background

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	skyTop     = color.RGBA{40, 90, 200, 255}
	skyHorizon = color.RGBA{150, 200, 250, 255}
	farHills   = color.RGBA{90, 110, 150, 255}
	nearHills  = color.RGBA{40, 110, 60, 255}
)

// Generator creates the horizon panorama behind the road
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateHorizon creates a seamless sky and hills panorama. The image is
// twice the screen width so it can scroll in both directions.
func (g *Generator) GenerateHorizon(seed int64) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	g.Paint(img, seed)
	return ebiten.NewImageFromImage(img)
}

// Paint draws the panorama into img
func (g *Generator) Paint(img draw.Image, seed int64) {
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		c := lerp(skyTop, skyHorizon, float64(y)/float64(g.Height))
		for x := 0; x < g.Width; x++ {
			img.Set(x, y, c)
		}
	}

	g.drawRidge(img, farHills, 0.55, 0.25, rng)
	g.drawRidge(img, nearHills, 0.75, 0.15, rng)

	// tree line along the near ridge
	for x := 0; x < g.Width; x += 6 + rng.Intn(18) {
		y := g.ridgeY(x, 0.75, 0.15)
		if rng.Float64() < 0.35 {
			g.drawTree(img, x, y+2, rng)
		} else {
			g.drawBush(img, x, y+2, rng)
		}
	}
}

// ridgeY is the top of a ridge at column x. Only whole sine periods over the
// image width are summed so the left and right edges meet.
func (g *Generator) ridgeY(x int, base, amplitude float64) int {
	t := 2 * math.Pi * float64(x) / float64(g.Width)
	h := 0.5*math.Sin(2*t) + 0.3*math.Sin(5*t+1) + 0.2*math.Sin(11*t+2)
	return int(float64(g.Height) * (base - amplitude*h))
}

func (g *Generator) drawRidge(img draw.Image, c color.RGBA, base, amplitude float64, rng *rand.Rand) {
	for x := 0; x < g.Width; x++ {
		top := g.ridgeY(x, base, amplitude)
		for y := max(top, 0); y < g.Height; y++ {
			shade := c
			if rng.Intn(12) == 0 {
				shade.G = uint8(min(int(shade.G)+15, 255))
			}
			img.Set(x, y, shade)
		}
	}
}

// drawTree draws a simple pine tree standing on (x, y)
func (g *Generator) drawTree(img draw.Image, x, y int, rng *rand.Rand) {
	height := 14 + rng.Intn(12)
	width := 8 + rng.Intn(6)

	trunkColor := color.RGBA{60, 40, 20, 255}
	for ty := 0; ty < height/4; ty++ {
		g.set(img, x, y-ty, trunkColor)
	}

	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	crown := height - height/4
	for ly := 0; ly < crown; ly++ {
		rowW := width * (crown - ly) / crown
		for lx := -rowW / 2; lx <= rowW/2; lx++ {
			g.set(img, x+lx, y-height/4-ly, leavesColor)
		}
	}
}

// drawBush draws a half buried round bush
func (g *Generator) drawBush(img draw.Image, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(5)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= 0; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

// set wraps x around the panorama and drops pixels outside of it vertically
func (g *Generator) set(img draw.Image, x, y int, c color.Color) {
	if y < 0 || y >= g.Height {
		return
	}
	img.Set(((x%g.Width)+g.Width)%g.Width, y, c)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
