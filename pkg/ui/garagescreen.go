package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/topgear/pkg/models"
	"github.com/golangdaddy/topgear/pkg/models/car"
)

// GarageScreen lets the player pick a car before the race
type GarageScreen struct {
	inventory        *models.CarInventory
	preview          *ebiten.Image
	selectedCarIndex int
	onCarSelected    func(*car.Car) // Callback when car is selected
}

// NewGarageScreen creates a new garage selection screen. preview is drawn
// above the car list.
func NewGarageScreen(inventory *models.CarInventory, preview *ebiten.Image, onCarSelected func(*car.Car)) *GarageScreen {
	return &GarageScreen{
		inventory:     inventory,
		preview:       preview,
		onCarSelected: onCarSelected,
	}
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	cars := gs.inventory.GetAllCars()
	if len(cars) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		gs.selectedCarIndex = (gs.selectedCarIndex - 1 + len(cars)) % len(cars)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		gs.selectedCarIndex = (gs.selectedCarIndex + 1) % len(cars)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onCarSelected != nil {
			gs.onCarSelected(gs.inventory.Get(gs.selectedCarIndex))
		}
	}
	return nil
}

// Draw renders the garage screen
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 40, 255})

	DrawText(screen, "SELECT YOUR CAR", float64(width)/2, 60, 48, color.White)

	if gs.preview != nil {
		b := gs.preview.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1.5, 1.5)
		op.GeoM.Translate(float64(width)/2-float64(b.Dx())*0.75, 110)
		screen.DrawImage(gs.preview, op)
	}

	buttonWidth, buttonHeight := 420.0, 60.0
	buttonX := float64(width)/2 - buttonWidth/2
	y := 280.0
	for i, c := range gs.inventory.GetAllCars() {
		bg := color.RGBA{40, 40, 60, 255}
		fg := color.RGBA{255, 255, 255, 255}
		if i == gs.selectedCarIndex {
			bg = color.RGBA{60, 100, 140, 255}
			fg = color.RGBA{200, 240, 255, 255}
		}
		label := fmt.Sprintf("%s %s  %.0f km/h  %d gears", c.Make, c.Model, c.TopSpeed(), c.MaxGear())
		drawButton(screen, label, buttonX, y, buttonWidth, buttonHeight, bg, fg)
		y += buttonHeight + 20
	}

	DrawText(screen, "ARROWS to Select   ENTER to Confirm", float64(width)/2, float64(height)-50, 24, color.RGBA{200, 200, 200, 255})
}
