package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/topgear/pkg/race"
	"github.com/golangdaddy/topgear/pkg/ui"
)

var (
	panelColor  = color.RGBA{20, 20, 30, 200}
	borderColor = color.RGBA{100, 100, 120, 255}
	labelColor  = color.RGBA{200, 200, 200, 255}
	warnColor   = color.RGBA{255, 80, 60, 255}
)

// drawUI draws the dashboard and the race overlays
func (gs *GameplayScreen) drawUI(screen *ebiten.Image) {
	gs.drawSpeedometer(screen)
	gs.drawRaceInfo(screen)
	gs.drawLapTimes(screen)

	p := gs.race.Player
	if p.OnGrass && gs.race.Phase == race.PhaseRacing {
		ui.DrawText(screen, "OFF ROAD", gs.screenWidth/2, gs.screenHeight-140, 24, warnColor)
	}
	if p.Fuel <= 0 && gs.race.Phase == race.PhaseRacing {
		ui.DrawText(screen, "OUT OF FUEL", gs.screenWidth/2, gs.screenHeight/3, 40, warnColor)
	}

	ui.DrawCountdown(screen, gs.race.Countdown, gs.race.Elapsed)
	gs.notice.Draw(screen)

	if gs.race.Phase == race.PhaseFinished {
		ui.DrawPanel(screen, gs.screenWidth/2-220, gs.screenHeight/3-50, 440, 100, panelColor, color.RGBA{255, 200, 0, 255})
		ui.DrawText(screen, "FINISH", gs.screenWidth/2, gs.screenHeight/3-18, 40, color.RGBA{255, 200, 0, 255})
		ui.DrawText(screen, fmt.Sprintf("%s of %d", ui.Ordinal(gs.race.Placement()), gs.race.FieldSize()),
			gs.screenWidth/2, gs.screenHeight/3+25, 24, color.White)
	}
}

// drawSpeedometer draws the speed in km/h with the gear and the fuel gauge
func (gs *GameplayScreen) drawSpeedometer(screen *ebiten.Image) {
	p := gs.race.Player
	x, y := 20.0, 20.0
	width, height := 200.0, 150.0

	ui.DrawPanel(screen, x, y, width, height, panelColor, borderColor)

	ui.DrawText(screen, fmt.Sprintf("%.0f", p.Speed), x+width/2-20, y+40, 42, speedColor(p.Speed/p.Car.TopSpeed()))
	ui.DrawTextAt(screen, "KM/H", x+width/2+35, y+48, 14, labelColor)

	ui.DrawTextAt(screen, "GEAR", x+12, y+78, 14, labelColor)
	ui.DrawTextAt(screen, fmt.Sprintf("%d", p.Gear), x+60, y+72, 24, color.White)

	drawGauge(screen, x+10, y+104, width-20, 12, p.Speed/p.Car.TopSpeed(), speedColor)
	ui.DrawTextAt(screen, "FUEL", x+12, y+124, 12, labelColor)
	drawGauge(screen, x+50, y+126, width-60, 10, p.Fuel/p.Car.FuelCapacity, fuelColor)
}

// drawRaceInfo shows lap and position in the top right corner
func (gs *GameplayScreen) drawRaceInfo(screen *ebiten.Image) {
	width := 200.0
	x, y := gs.screenWidth-width-20, 20.0
	ui.DrawPanel(screen, x, y, width, 90, panelColor, borderColor)

	ui.DrawTextAt(screen, "LAP", x+12, y+14, 14, labelColor)
	ui.DrawTextAt(screen, fmt.Sprintf("%d/%d", gs.race.Lap(), gs.race.TotalLaps), x+70, y+10, 22, color.White)
	ui.DrawTextAt(screen, "POS", x+12, y+52, 14, labelColor)
	ui.DrawTextAt(screen, fmt.Sprintf("%d/%d", gs.race.Placement(), gs.race.FieldSize()), x+70, y+48, 22, color.White)
}

// drawLapTimes shows the running, last and best lap below the race info
func (gs *GameplayScreen) drawLapTimes(screen *ebiten.Image) {
	width := 200.0
	x, y := gs.screenWidth-width-20, 120.0
	ui.DrawPanel(screen, x, y, width, 80, panelColor, borderColor)

	last := 0.0
	if n := len(gs.race.LapTimes); n > 0 {
		last = gs.race.LapTimes[n-1]
	}
	rows := []struct {
		label string
		time  float64
	}{
		{"TIME", gs.race.LapTime},
		{"LAST", last},
		{"BEST", gs.race.BestLap},
	}
	for i, row := range rows {
		ui.DrawTextAt(screen, row.label, x+12, y+10+float64(i)*22, 14, labelColor)
		ui.DrawTextAt(screen, ui.FormatLapTime(row.time), x+80, y+10+float64(i)*22, 14, color.White)
	}
}

// drawGauge draws a horizontal bar filled to ratio, colored by colorFor
func drawGauge(screen *ebiten.Image, x, y, width, height, ratio float64, colorFor func(float64) color.RGBA) {
	ratio = math.Max(0, math.Min(ratio, 1))
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)
	if filled := width * ratio; filled > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), colorFor(ratio), false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}

// speedColor runs green -> yellow -> red as ratio goes to 1
func speedColor(ratio float64) color.RGBA {
	ratio = math.Max(0, math.Min(ratio, 1))
	if ratio < 0.5 {
		t := ratio / 0.5
		return color.RGBA{uint8(100 + t*155), 255, 100, 255}
	}
	t := (ratio - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - t*155), uint8(100 - t*100), 255}
}

// fuelColor runs red -> yellow -> green as the tank fills
func fuelColor(ratio float64) color.RGBA {
	return speedColor(1 - ratio)
}
