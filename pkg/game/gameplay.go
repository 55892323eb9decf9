package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/topgear/pkg/background"
	"github.com/golangdaddy/topgear/pkg/config"
	"github.com/golangdaddy/topgear/pkg/models"
	"github.com/golangdaddy/topgear/pkg/models/car"
	"github.com/golangdaddy/topgear/pkg/projection"
	"github.com/golangdaddy/topgear/pkg/race"
	"github.com/golangdaddy/topgear/pkg/render"
	"github.com/golangdaddy/topgear/pkg/road"
	"github.com/golangdaddy/topgear/pkg/track"
	"github.com/golangdaddy/topgear/pkg/ui"
)

const (
	// finishHold is how long the finished race stays on screen before the results
	finishHold = 4.0
	// carBottomMargin is the gap between the player car and the screen bottom
	carBottomMargin = 16.0
)

var skyColor = color.RGBA{40, 90, 200, 255}

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	race       *race.Race
	rasterizer *road.Rasterizer
	renderer   *render.Renderer
	atlas      *render.Atlas
	parallax   *background.Parallax
	horizon    *ebiten.Image
	notice     ui.PetrolStationNotice

	frame       *road.Frame // last drawn frame, its billboards feed pickups
	maxDelta    float64
	lastTick    time.Time
	finishedFor float64
	result      *models.RaceResult

	screenWidth  float64
	screenHeight float64
	onRaceEnd    func(result *models.RaceResult)
}

// NewGameplayScreen puts the selected car on the grid. onFinish is called once
// the moment the player takes the flag, onRaceEnd when the race leaves the screen.
func NewGameplayScreen(cfg *config.Config, tr *track.Track, selected *car.Car, atlas *render.Atlas,
	horizon *ebiten.Image, onFinish, onRaceEnd func(result *models.RaceResult)) *GameplayScreen {
	t := &cfg.Tuning
	gs := &GameplayScreen{
		race: race.New(cfg, tr, selected),
		rasterizer: &road.Rasterizer{
			Track:        tr,
			Projector:    projection.NewProjector(t.CameraDepth, t.RoadWidth, cfg.Width, cfg.Height),
			Palette:      road.DefaultPalette,
			DrawDistance: t.DrawDistance,
			RumbleFactor: t.RumbleFactor,
			SpriteScale:  t.SpriteScale,
			SpriteLift:   t.SpriteLift,
		},
		renderer:     render.NewRenderer(atlas),
		atlas:        atlas,
		parallax:     background.NewParallax(horizon.Bounds().Dx(), t.ParallaxRate),
		horizon:      horizon,
		maxDelta:     t.MaxFrameDelta,
		screenWidth:  float64(cfg.Width),
		screenHeight: float64(cfg.Height),
		onRaceEnd:    onRaceEnd,
	}
	gs.race.OnFinish = func(r *race.Race) {
		gs.result = r.Result(time.Now())
		if onFinish != nil {
			onFinish(gs.result)
		}
	}
	return gs
}

// Update advances the race by the wall clock time since the last tick
func (gs *GameplayScreen) Update() error {
	now := time.Now()
	dt := frameDelta(gs.lastTick, now, gs.maxDelta)
	gs.lastTick = now

	gs.race.Step(dt, readControls())

	p := gs.race.Player
	gs.parallax.Update(gs.race.Track.SegmentAt(p.Position).Curve, p.Speed, dt)

	if gs.frame != nil && gs.race.ApplyPickups(gs.frame.Billboards, gs.carRect()) > 0 {
		gs.notice.Show(p.Fuel)
	}
	gs.notice.Update(dt)

	if gs.race.Phase == race.PhaseFinished {
		gs.finishedFor += dt
		skip := gs.finishedFor > 1 && inpututil.IsKeyJustPressed(ebiten.KeyEnter)
		if (gs.finishedFor >= finishHold || skip) && gs.onRaceEnd != nil {
			gs.onRaceEnd(gs.result)
			gs.onRaceEnd = nil
		}
	}
	return nil
}

// Draw renders sky, road, cars and HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	gs.parallax.Draw(screen, gs.horizon, gs.screenHeight/2)

	gs.renderer.SetTarget(screen)
	gs.frame = gs.rasterizer.Render(gs.race.Camera(), gs.atlas, gs.race.Cars(), gs.renderer)

	gs.drawCar(screen)
	gs.drawUI(screen)
}

// drawCar draws the player's car centered at the bottom of the screen
func (gs *GameplayScreen) drawCar(screen *ebiten.Image) {
	img := gs.atlas.Player(gs.race.Player.Steer)
	r := gs.carRect()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}

// carRect is where the player's car sits on screen
func (gs *GameplayScreen) carRect() road.Rect {
	b := gs.atlas.Player(gs.race.Player.Steer).Bounds()
	return playerRect(gs.screenWidth, gs.screenHeight, float64(b.Dx()), float64(b.Dy()))
}

func playerRect(screenW, screenH, w, h float64) road.Rect {
	return road.Rect{X: (screenW - w) / 2, Y: screenH - h - carBottomMargin, W: w, H: h}
}

// frameDelta is the simulation step for a tick, clamped so a stalled frame
// cannot teleport the cars
func frameDelta(last, now time.Time, maxDelta float64) float64 {
	if last.IsZero() {
		return 0
	}
	return min(max(now.Sub(last).Seconds(), 0), maxDelta)
}
