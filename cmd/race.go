package cmd

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/golangdaddy/topgear/pkg/game"
	"github.com/golangdaddy/topgear/pkg/log"
	"github.com/golangdaddy/topgear/pkg/models"
	"github.com/golangdaddy/topgear/pkg/render"
	"github.com/golangdaddy/topgear/pkg/storage"
)

func newRaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Start the game (default command)",
		RunE:  runRace,
	}
	addRaceFlags(cmd.Flags())
	return cmd
}

func addRaceFlags(fs *pflag.FlagSet) {
	fs.IntVar(&cfg.Laps, "laps", cfg.Laps, "Laps needed to finish")
	fs.IntVar(&cfg.Opponents, "opponents", cfg.Opponents, "Number of AI cars")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for opponent names and the background")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "Directory with sprite PNGs, built in sprites when empty")
	fs.BoolVar(&cfg.NoResults, "no-results", cfg.NoResults, "Do not store race results")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Logical screen width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Logical screen height")
}

func runRace(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	atlas, err := loadAtlas()
	if err != nil {
		return err
	}

	var results game.ResultStore
	if !cfg.NoResults {
		db, err := storage.Open(cfg.ResultsDir)
		if err != nil {
			return err
		}
		defer db.Close()
		results = storage.NewStorage(models.ResultEntity, db)
	}

	log.Info("starting race",
		zap.Int("laps", cfg.Laps),
		zap.Int("opponents", cfg.Opponents),
		zap.Int64("seed", cfg.Seed),
		zap.Bool("store_results", results != nil))

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Top Gear")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.NewGame(cfg, atlas, results)); err != nil {
		return fmt.Errorf("game loop stopped: %w", err)
	}
	return nil
}

func loadAtlas() (*render.Atlas, error) {
	if cfg.AssetsDir == "" {
		return render.NewAtlas(cfg.Opponents), nil
	}
	atlas, err := render.LoadAtlas(cfg.AssetsDir, cfg.Opponents)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprites from %s: %w", cfg.AssetsDir, err)
	}
	log.Info("sprites loaded", zap.String("dir", cfg.AssetsDir))
	return atlas, nil
}
