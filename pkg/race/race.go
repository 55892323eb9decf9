package race

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/golangdaddy/topgear/pkg/config"
	"github.com/golangdaddy/topgear/pkg/data"
	"github.com/golangdaddy/topgear/pkg/log"
	"github.com/golangdaddy/topgear/pkg/models"
	"github.com/golangdaddy/topgear/pkg/models/car"
	"github.com/golangdaddy/topgear/pkg/projection"
	"github.com/golangdaddy/topgear/pkg/road"
	"github.com/golangdaddy/topgear/pkg/track"
	"github.com/golangdaddy/topgear/pkg/vehicle"
)

// Phase is the stage of a race
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseRacing
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRacing:
		return "racing"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// opponentLanes are the preferred lines of the field, repeated when there
// are more opponents than lanes
var opponentLanes = []float64{-0.4, 0.4, -0.15, 0.15, 0}

// Race owns all mutable state of one race. Step is the only mutator.
type Race struct {
	Track     *track.Track
	Tuning    *config.Tuning
	TotalLaps int
	Player    *vehicle.Player
	Opponents []*vehicle.Opponent

	Phase     Phase
	Countdown float64 // seconds until the start
	Elapsed   float64 // seconds since the start
	LapTime   float64 // running time of the current lap
	LapTimes  []float64
	BestLap   float64 // 0 until the first lap is complete
	Standings []Standing

	// OnFinish is called once when the player completes the last lap
	OnFinish func(r *Race)

	participants   []vehicle.Vehicle
	finalPlacement int
}

// New puts the player and cfg.Opponents AI cars on the grid. The seed picks
// the opponents' names.
func New(cfg *config.Config, tr *track.Track, c *car.Car) *Race {
	tuning := &cfg.Tuning
	rng := rand.New(rand.NewSource(cfg.Seed))
	names := data.DriverNames(rng, cfg.Opponents)
	driver := vehicle.NewScriptedDriver(tuning)

	opponents := lo.Map(tuning.OpponentBaseSpeeds[:cfg.Opponents], func(speed float64, i int) *vehicle.Opponent {
		pos, laps := vehicle.GridSlot(tr, -tuning.StartOffset+float64(i+1)*tuning.OpponentGap)
		lane := opponentLanes[i%len(opponentLanes)]
		return &vehicle.Opponent{
			ID:            i + 1,
			DriverName:    names[i],
			Position:      pos,
			Lateral:       lane,
			TargetLateral: lane,
			BaseSpeed:     speed,
			Lane:          lane,
			Laps:          laps,
			TotalLaps:     cfg.Laps,
			Driver:        driver,
		}
	})

	r := &Race{
		Track:     tr,
		Tuning:    tuning,
		TotalLaps: cfg.Laps,
		Player:    vehicle.NewPlayer(c, tuning, tr, cfg.Laps),
		Opponents: opponents,
		Phase:     PhaseCountdown,
		Countdown: tuning.CountdownSeconds,
		LapTimes:  []float64{},
	}
	r.participants = append([]vehicle.Vehicle{r.Player},
		lo.Map(opponents, func(o *vehicle.Opponent, _ int) vehicle.Vehicle { return o })...)
	r.rank()
	return r
}

// Step advances the race by dt seconds
func (r *Race) Step(dt float64, ctl vehicle.Controls) {
	switch r.Phase {
	case PhaseCountdown:
		r.Countdown -= dt
		if r.Countdown <= 0 {
			r.Countdown = 0
			r.Phase = PhaseRacing
			log.Info("race started", zap.Int("laps", r.TotalLaps), zap.Int("opponents", len(r.Opponents)))
		}
		return
	case PhaseRacing:
		r.Elapsed += dt
		r.LapTime += dt
	}

	if crossed := r.Player.Update(dt, ctl, r.Track); crossed > 0 && r.Phase == PhaseRacing {
		r.lineCrossed()
	}
	for _, o := range r.Opponents {
		if crossed := o.Update(dt, r.Track); crossed > 0 && o.Laps == o.TotalLaps {
			log.Debug("opponent finished", zap.String("name", o.DriverName), zap.Float64("elapsed", r.Elapsed))
		}
	}
	r.rank()

	if r.Phase == PhaseRacing && r.Player.Finished {
		r.finish()
	}
}

// lineCrossed closes the running lap. The first crossing comes from the grid
// and only starts the lap clock.
func (r *Race) lineCrossed() {
	if r.Player.Laps >= 1 {
		r.LapTimes = append(r.LapTimes, r.LapTime)
		if r.BestLap == 0 || r.LapTime < r.BestLap {
			r.BestLap = r.LapTime
		}
		log.Info("lap complete",
			zap.Int("lap", r.Player.Laps),
			zap.Float64("time", r.LapTime),
			zap.Int("position", r.Placement()))
	}
	r.LapTime = 0
}

func (r *Race) finish() {
	r.Phase = PhaseFinished
	r.finalPlacement = Placement(r.Standings, r.Player)
	log.Info("race finished",
		zap.Int("position", r.finalPlacement),
		zap.Int("field", len(r.participants)),
		zap.Float64("total", r.Elapsed),
		zap.Float64("best_lap", r.BestLap))
	if r.OnFinish != nil {
		r.OnFinish(r)
	}
}

func (r *Race) rank() {
	r.Standings = Rank(r.participants, r.Track.Length())
}

// Placement is the player's position, frozen once the race is finished
func (r *Race) Placement() int {
	if r.Phase == PhaseFinished {
		return r.finalPlacement
	}
	return Placement(r.Standings, r.Player)
}

// FieldSize is the number of cars in the race
func (r *Race) FieldSize() int {
	return len(r.participants)
}

// Lap is the 1-based lap the player is on, capped at the race distance
func (r *Race) Lap() int {
	return min(max(r.Player.Laps+1, 1), r.TotalLaps)
}

// Camera returns the view from behind the player car
func (r *Race) Camera() projection.Camera {
	return projection.Camera{
		X: r.Player.Lateral * r.Track.RoadWidth,
		Y: r.Track.SegmentAt(r.Player.Position).Y + r.Tuning.CameraHeight,
		Z: r.Player.Position,
	}
}

// Cars returns the opponents relative to the player's camera
func (r *Race) Cars() []road.Car {
	return lo.Map(r.Opponents, func(o *vehicle.Opponent, _ int) road.Car {
		return road.Car{
			Distance: r.Track.Gap(r.Player.Position, o.Position),
			Lateral:  o.Lateral,
			Sprite:   road.CarSprite(o.ID),
		}
	})
}

// Result builds the record that is persisted after the race
func (r *Race) Result(finishedAt time.Time) *models.RaceResult {
	res := models.NewRaceResult(finishedAt)
	res.Car = r.Player.Car.Make + " " + r.Player.Car.Model
	res.Laps = r.TotalLaps
	res.Placement = r.Placement()
	res.FieldSize = r.FieldSize()
	res.TotalTime = seconds(r.Elapsed)
	res.LapTimes = lo.Map(r.LapTimes, func(t float64, _ int) time.Duration { return seconds(t) })
	res.BestLap = seconds(r.BestLap)
	res.Standings = lo.Map(r.Standings, func(s Standing, _ int) models.Standing {
		return models.Standing{
			Place:    s.Place,
			Name:     s.Vehicle.Name(),
			Laps:     max(s.Vehicle.CompletedLaps(), 0),
			Progress: s.Progress,
			Player:   s.Vehicle == vehicle.Vehicle(r.Player),
		}
	})
	return res
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
