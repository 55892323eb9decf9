package render

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/golangdaddy/topgear/pkg/road"
	"github.com/golangdaddy/topgear/pkg/sprites"
	"github.com/golangdaddy/topgear/pkg/track"
	"github.com/golangdaddy/topgear/pkg/vehicle"
)

// Atlas holds every sprite the game draws
type Atlas struct {
	sprites map[road.Sprite]*ebiten.Image
	player  map[vehicle.Steer]*ebiten.Image
}

// NewAtlas paints the built in sprites for the given number of opponent liveries
func NewAtlas(variants int) *Atlas {
	a := &Atlas{
		sprites: make(map[road.Sprite]*ebiten.Image),
		player:  make(map[vehicle.Steer]*ebiten.Image),
	}
	for _, d := range track.Decorations {
		a.sprites[road.Scenery(d)] = ebiten.NewImageFromImage(sprites.PaintDecoration(d))
	}
	for v := 1; v <= variants; v++ {
		a.sprites[road.CarSprite(v)] = ebiten.NewImageFromImage(sprites.PaintCar(sprites.OpponentSize, sprites.CarColor(v), vehicle.SteerNone))
	}
	for _, s := range []vehicle.Steer{vehicle.SteerNone, vehicle.SteerLeft, vehicle.SteerRight} {
		a.player[s] = ebiten.NewImageFromImage(sprites.PaintCar(sprites.PlayerSize, sprites.PlayerColor, s))
	}
	return a
}

// LoadAtlas reads every sprite from PNG files in dir. A missing or broken file
// is an error, there is no fallback to the built in sprites.
func LoadAtlas(dir string, variants int) (*Atlas, error) {
	a := &Atlas{
		sprites: make(map[road.Sprite]*ebiten.Image),
		player:  make(map[vehicle.Steer]*ebiten.Image),
	}
	for name, sprite := range sprites.SpriteFiles(variants) {
		img, err := loadImage(dir, name)
		if err != nil {
			return nil, err
		}
		a.sprites[sprite] = img
	}
	for name, steer := range sprites.PlayerFiles() {
		img, err := loadImage(dir, name)
		if err != nil {
			return nil, err
		}
		a.player[steer] = img
	}
	return a, nil
}

func loadImage(dir, name string) (*ebiten.Image, error) {
	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %s: %w", path, err)
	}
	return img, nil
}

// SpriteSize implements road.Atlas
func (a *Atlas) SpriteSize(s road.Sprite) (int, int) {
	img, ok := a.sprites[s]
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Sprite returns the image of a billboard sprite, nil if unknown
func (a *Atlas) Sprite(s road.Sprite) *ebiten.Image {
	return a.sprites[s]
}

// Player returns the player car image for a steering state
func (a *Atlas) Player(s vehicle.Steer) *ebiten.Image {
	return a.player[s]
}
