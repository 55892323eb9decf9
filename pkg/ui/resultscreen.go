package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/topgear/pkg/models"
)

// ResultScreen shows the classification after a race
type ResultScreen struct {
	result     *models.RaceResult
	onContinue func() // Callback when the player leaves the screen
}

// NewResultScreen creates the screen for a finished race
func NewResultScreen(result *models.RaceResult, onContinue func()) *ResultScreen {
	return &ResultScreen{
		result:     result,
		onContinue: onContinue,
	}
}

// Update handles input for the result screen
func (rs *ResultScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if rs.onContinue != nil {
			rs.onContinue()
		}
	}
	return nil
}

// Draw renders the result screen
func (rs *ResultScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})
	centerX := float64(width) / 2
	r := rs.result

	headline := fmt.Sprintf("YOU FINISHED %s", Ordinal(r.Placement))
	headColor := color.RGBA{255, 200, 50, 255}
	if r.Placement != 1 {
		headColor = color.RGBA{200, 200, 220, 255}
	}
	DrawText(screen, headline, centerX, 80, 64, headColor)
	DrawText(screen, fmt.Sprintf("%s  -  %d laps  -  total %s", r.Car, r.Laps, FormatLapTime(r.TotalTime.Seconds())),
		centerX, 140, 20, color.RGBA{180, 180, 200, 255})

	// classification
	x := centerX - 260
	y := 200.0
	for _, s := range r.Standings {
		clr := color.Color(color.RGBA{220, 220, 220, 255})
		if s.Player {
			clr = color.RGBA{120, 220, 255, 255}
		}
		DrawTextAt(screen, fmt.Sprintf("%-4s %-12s lap %d", Ordinal(s.Place), s.Name, s.Laps), x, y, 20, clr)
		y += 32
	}

	// lap times
	x = centerX + 80
	y = 200.0
	for i, lt := range r.LapTimes {
		clr := color.Color(color.RGBA{220, 220, 220, 255})
		if lt == r.BestLap {
			clr = color.RGBA{120, 255, 120, 255}
		}
		DrawTextAt(screen, fmt.Sprintf("Lap %d  %s", i+1, FormatLapTime(lt.Seconds())), x, y, 20, clr)
		y += 32
	}

	DrawText(screen, "Press ENTER to continue", centerX, float64(height)-50, 20, color.RGBA{150, 150, 150, 255})
}
