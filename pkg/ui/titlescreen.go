package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	bestPlacement  int    // 0 when no race has been stored yet
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(bestPlacement int, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		bestPlacement:  bestPlacement,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// pulsing title
	pulse := 1.0 + 0.1*float64(sinWave(elapsed*2.0))
	brightness := min(1.0+0.2*float64(sinWave(elapsed*1.5)), 1.0)
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawText(screen, "TOP GEAR", centerX, centerY, 128*pulse, titleColor)
	DrawText(screen, "Pseudo 3D Racing", centerX, centerY+110, 32, color.RGBA{180, 180, 200, 255})

	if ts.bestPlacement > 0 {
		best := fmt.Sprintf("Best finish: %s", Ordinal(ts.bestPlacement))
		DrawText(screen, best, centerX, centerY+160, 20, color.RGBA{120, 220, 120, 255})
	}

	// blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height)
}

// drawDecorativeElements draws the two horizontal rules of the title screen
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	line := ebiten.NewImage(width, 2)
	line.Fill(lineColor)

	for _, y := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(line, op)
	}
}
