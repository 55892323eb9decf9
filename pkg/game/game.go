package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/topgear/pkg/background"
	"github.com/golangdaddy/topgear/pkg/config"
	"github.com/golangdaddy/topgear/pkg/log"
	"github.com/golangdaddy/topgear/pkg/models"
	"github.com/golangdaddy/topgear/pkg/models/car"
	"github.com/golangdaddy/topgear/pkg/render"
	"github.com/golangdaddy/topgear/pkg/track"
	"github.com/golangdaddy/topgear/pkg/ui"
	"github.com/golangdaddy/topgear/pkg/vehicle"
)

// ResultStore keeps finished races
type ResultStore interface {
	SaveResult(r *models.RaceResult) error
	BestPlacement() (int, error)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg       *config.Config
	track     *track.Track
	atlas     *render.Atlas
	horizon   *ebiten.Image
	inventory *models.CarInventory
	results   ResultStore // nil when results are not kept

	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame builds the track and the horizon and opens on the title screen.
// results may be nil.
func NewGame(cfg *config.Config, atlas *render.Atlas, results ResultStore) *Game {
	t := &cfg.Tuning
	g := &Game{
		cfg:       cfg,
		track:     track.Build(track.DefaultRecipe(t.SegmentLength, t.RoadWidth, t.FinishLineSegments)),
		atlas:     atlas,
		horizon:   background.NewGenerator(2*cfg.Width, cfg.Height/2).GenerateHorizon(cfg.Seed),
		inventory: models.NewCarInventory(t.Gears),
		results:   results,
	}
	log.Info("track ready",
		zap.Int("segments", g.track.Len()),
		zap.Float64("length", g.track.Length()))
	g.showTitle()
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the logical screen size, the window scales it
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.bestPlacement(), func() {
		g.currentScreen = ui.NewGarageScreen(g.inventory, g.atlas.Player(vehicle.SteerNone), g.startRace)
	})
}

// startRace transitions to the actual gameplay
func (g *Game) startRace(selected *car.Car) {
	log.Info("car selected", zap.String("make", selected.Make), zap.String("model", selected.Model))
	g.currentScreen = NewGameplayScreen(g.cfg, g.track, selected, g.atlas, g.horizon, g.saveResult, func(result *models.RaceResult) {
		g.currentScreen = ui.NewResultScreen(result, g.showTitle)
	})
}

// saveResult stores a finished race. A failure is logged and the game goes on.
func (g *Game) saveResult(result *models.RaceResult) {
	if g.results == nil {
		return
	}
	if err := g.results.SaveResult(result); err != nil {
		log.Warn("could not save race result", zap.String("id", result.ID), log.ErrorField(err))
		return
	}
	log.Info("race result saved", zap.String("id", result.ID), zap.Int("position", result.Placement))
}

func (g *Game) bestPlacement() int {
	if g.results == nil {
		return 0
	}
	best, err := g.results.BestPlacement()
	if err != nil {
		log.Warn("could not read race results", log.ErrorField(err))
		return 0
	}
	return best
}
