package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/topgear/pkg/models/car"
)

// Reference viewport of the game
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Config holds the resolved configuration values from CLI, env and config file
type Config struct {
	Width      int    `mapstructure:"width"`       // logical screen width
	Height     int    `mapstructure:"height"`      // logical screen height
	Laps       int    `mapstructure:"laps"`        // laps needed to finish
	Opponents  int    `mapstructure:"opponents"`   // number of AI cars
	Seed       int64  `mapstructure:"seed"`        // seed for procedural sprites and background
	AssetsDir  string `mapstructure:"assets"`      // optional directory with sprite PNGs
	ResultsDir string `mapstructure:"results-dir"` // badger directory for race results
	NoResults  bool   `mapstructure:"no-results"`  // do not persist results
	LogLevel   string `mapstructure:"log-level"`   // zap log level
	LogFormat  string `mapstructure:"log-format"`  // console vs json
	Tuning     Tuning `mapstructure:"tuning"`
}

// Tuning collects every empirically tuned constant of the projection and the
// simulation. None of them is derived from a physical model.
type Tuning struct {
	// track and projection
	SegmentLength      float64 `mapstructure:"segment_length"`
	RoadWidth          float64 `mapstructure:"road_width"` // half-width of the road in world units
	CameraDepth        float64 `mapstructure:"camera_depth"`
	CameraHeight       float64 `mapstructure:"camera_height"`
	DrawDistance       int     `mapstructure:"draw_distance"` // visible window in segments
	FinishLineSegments int     `mapstructure:"finish_line_segments"`
	RumbleFactor       float64 `mapstructure:"rumble_factor"`
	SpriteScale        float64 `mapstructure:"sprite_scale"` // divisor mapping road half-width to sprite size
	SpriteLift         float64 `mapstructure:"sprite_lift"`  // pixels a billboard base sits below the segment line
	ParallaxRate       float64 `mapstructure:"parallax_rate"`

	// player
	DistanceScale    float64    `mapstructure:"distance_scale"` // world units per km/h per second
	CurvePull        float64    `mapstructure:"curve_pull"`
	MinSteerSpeed    float64    `mapstructure:"min_steer_speed"`
	SteerRate        float64    `mapstructure:"steer_rate"`
	Overhang         float64    `mapstructure:"overhang"`
	GrassAccelFactor float64    `mapstructure:"grass_accel_factor"`
	GrassSpeedFactor float64    `mapstructure:"grass_speed_factor"`
	GrassDrag        float64    `mapstructure:"grass_drag"`
	Deceleration     float64    `mapstructure:"deceleration"`
	Braking          float64    `mapstructure:"braking"`
	MaxLateral       float64    `mapstructure:"max_lateral"`
	UpshiftRatio     float64    `mapstructure:"upshift_ratio"`
	FuelRate         float64    `mapstructure:"fuel_rate"`
	FuelPickup       float64    `mapstructure:"fuel_pickup"`
	Gears            []car.Gear `mapstructure:"gears"`

	// opponents
	OpponentInsideBias float64   `mapstructure:"opponent_inside_bias"`
	OpponentLaneBound  float64   `mapstructure:"opponent_lane_bound"`
	OpponentSteerRate  float64   `mapstructure:"opponent_steer_rate"`
	OpponentBaseSpeeds []float64 `mapstructure:"opponent_base_speeds"`
	OpponentGap        float64   `mapstructure:"opponent_gap"` // grid spacing in segments
	StartOffset        float64   `mapstructure:"start_offset"` // segments between the player's grid slot and the line

	// loop
	CountdownSeconds float64 `mapstructure:"countdown_seconds"`
	MaxFrameDelta    float64 `mapstructure:"max_frame_delta"`
}

// Default returns the configuration the game ships with
func Default() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Laps:       3,
		Opponents:  4,
		Seed:       42,
		ResultsDir: "results",
		LogLevel:   "info",
		LogFormat:  "console",
		Tuning:     DefaultTuning(),
	}
}

// DefaultTuning returns the constants the reference game was tuned with at ~60 FPS
func DefaultTuning() Tuning {
	return Tuning{
		SegmentLength:      200,
		RoadWidth:          2000,
		CameraDepth:        0.84,
		CameraHeight:       900,
		DrawDistance:       300,
		FinishLineSegments: 3,
		RumbleFactor:       1.2,
		SpriteScale:        266,
		SpriteLift:         4,
		ParallaxRate:       120,

		DistanceScale:    30,
		CurvePull:        100,
		MinSteerSpeed:    5,
		SteerRate:        2,
		Overhang:         2.2,
		GrassAccelFactor: 0.5,
		GrassSpeedFactor: 0.5,
		GrassDrag:        30,
		Deceleration:     40,
		Braking:          120,
		MaxLateral:       2,
		UpshiftRatio:     0.8,
		FuelRate:         0.0007,
		FuelPickup:       40,
		Gears: []car.Gear{
			{MaxSpeed: 80, Acceleration: 60},
			{MaxSpeed: 130, Acceleration: 45},
			{MaxSpeed: 180, Acceleration: 35},
			{MaxSpeed: 230, Acceleration: 25},
			{MaxSpeed: 280, Acceleration: 18},
		},

		OpponentInsideBias: 1.2,
		OpponentLaneBound:  0.8,
		OpponentSteerRate:  1.5,
		OpponentBaseSpeeds: []float64{262, 255, 248, 240, 232},
		OpponentGap:        8,
		StartOffset:        40,

		CountdownSeconds: 3,
		MaxFrameDelta:    0.1,
	}
}

// Validate rejects configurations the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid viewport %dx%d", c.Width, c.Height))
	}
	if c.Laps < 1 {
		errs = append(errs, fmt.Errorf("laps must be at least 1, got %d", c.Laps))
	}
	if c.Opponents < 0 || c.Opponents > len(c.Tuning.OpponentBaseSpeeds) {
		errs = append(errs, fmt.Errorf("opponents must be within [0, %d], got %d",
			len(c.Tuning.OpponentBaseSpeeds), c.Opponents))
	}
	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks the constants that guard divisions and clamps
func (t *Tuning) Validate() error {
	var errs []error
	if t.SegmentLength <= 0 {
		errs = append(errs, errors.New("segment_length must be positive"))
	}
	if t.CameraDepth <= 0 {
		errs = append(errs, errors.New("camera_depth must be positive"))
	}
	if t.DrawDistance < 2 {
		errs = append(errs, errors.New("draw_distance must be at least 2"))
	}
	if t.SpriteScale <= 0 {
		errs = append(errs, errors.New("sprite_scale must be positive"))
	}
	if t.CurvePull <= 0 {
		errs = append(errs, errors.New("curve_pull must be positive"))
	}
	if len(t.Gears) == 0 {
		errs = append(errs, errors.New("gears must not be empty"))
	}
	for i, g := range t.Gears {
		if g.MaxSpeed <= 0 || g.Acceleration < 0 {
			errs = append(errs, fmt.Errorf("gear %d: invalid max_speed/acceleration", i+1))
		}
	}
	if t.FuelRate < 0 || t.Deceleration < 0 || t.Braking < 0 || t.GrassDrag < 0 {
		errs = append(errs, errors.New("rates must not be negative"))
	}
	if t.StartOffset < 0 || t.OpponentGap < 0 {
		errs = append(errs, errors.New("grid offsets must not be negative"))
	}
	if t.MaxLateral <= 0 || t.OpponentLaneBound <= 0 {
		errs = append(errs, errors.New("lateral bounds must be positive"))
	}
	return errors.Join(errs...)
}
