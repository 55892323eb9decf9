package vehicle

import (
	"math"

	"github.com/golangdaddy/topgear/pkg/config"
	"github.com/golangdaddy/topgear/pkg/models/car"
	"github.com/golangdaddy/topgear/pkg/track"
)

// PlayerName is how the player is listed in rankings and results
const PlayerName = "You"

// Player is the car driven from the keyboard
type Player struct {
	Car       *car.Car
	Tuning    *config.Tuning
	TotalLaps int

	Position float64 // distance from the start line, wrapped to the track length
	Lateral  float64 // offset from the center line in road half-widths
	Speed    float64 // km/h
	Gear     int     // 1..Car.MaxGear()
	Fuel     float64 // 0..Car.FuelCapacity
	Laps     int     // completed laps, -1 until the start line is crossed
	OnGrass  bool
	Finished bool
	Steer    Steer

	shiftDownHeld bool
	refuelled     map[int]int // fuel segment -> lap it was last used on
}

// NewPlayer puts the player on the back of the grid with a full tank
func NewPlayer(c *car.Car, tuning *config.Tuning, tr *track.Track, totalLaps int) *Player {
	pos, laps := GridSlot(tr, -tuning.StartOffset)
	return &Player{
		Car:       c,
		Tuning:    tuning,
		TotalLaps: totalLaps,
		Position:  pos,
		Laps:      laps,
		Gear:      1,
		Fuel:      c.FuelCapacity,
		refuelled: make(map[int]int),
	}
}

func (p *Player) Name() string {
	return PlayerName
}

func (p *Player) Progress(trackLength float64) float64 {
	return float64(p.Laps)*trackLength + p.Position
}

func (p *Player) CompletedLaps() int {
	return p.Laps
}

func (p *Player) IsFinished() bool {
	return p.Finished
}

// Ceiling is the top speed of the current gear, halved on grass
func (p *Player) Ceiling() float64 {
	ceiling := p.Car.Ceiling(p.Gear)
	if p.OnGrass {
		ceiling *= p.Tuning.GrassSpeedFactor
	}
	return ceiling
}

// Update advances the player by dt seconds and returns how many times the
// start line was crossed.
func (p *Player) Update(dt float64, ctl Controls, tr *track.Track) int {
	t := p.Tuning
	seg := tr.SegmentAt(p.Position)

	// the faster the car, the harder a curve pushes it outwards
	p.Lateral -= seg.Curve * dt * p.Speed / t.CurvePull

	// the sprite follows the keys, the car only turns once it is rolling
	p.Steer = SteerNone
	switch {
	case ctl.Left && !ctl.Right:
		p.Steer = SteerLeft
	case ctl.Right && !ctl.Left:
		p.Steer = SteerRight
	}
	if p.Speed > t.MinSteerSpeed {
		switch p.Steer {
		case SteerLeft:
			p.Lateral -= t.SteerRate * dt
		case SteerRight:
			p.Lateral += t.SteerRate * dt
		}
	}

	p.OnGrass = math.Abs(p.Lateral*tr.RoadWidth) > tr.RoadWidth/2*t.Overhang

	switch {
	case p.Fuel <= 0:
		p.Speed -= t.Deceleration * dt
	case ctl.Accelerate && !p.Finished:
		accel := p.Car.Acceleration(p.Gear)
		if p.OnGrass {
			accel *= t.GrassAccelFactor
		}
		if p.Speed < p.Ceiling() {
			p.Speed = math.Min(p.Speed+accel*dt, p.Ceiling())
		}
	case ctl.Brake:
		p.Speed -= t.Braking * dt
	default:
		p.Speed -= t.Deceleration * dt
	}
	if p.OnGrass {
		p.Speed -= t.GrassDrag * dt
	}
	p.Speed = math.Max(p.Speed, 0)

	p.Lateral = clamp(p.Lateral, -t.MaxLateral, t.MaxLateral)

	p.shift(ctl)

	crossed := p.advance(tr, p.Speed*dt*t.DistanceScale)

	if p.Speed > 0 && p.Fuel > 0 {
		p.Fuel -= p.Speed * dt * float64(p.Gear) * t.FuelRate
	}
	p.Fuel = clamp(p.Fuel, 0, p.Car.FuelCapacity)

	return crossed
}

// shift handles the gearbox. Up-shifts need 80% of the current ceiling,
// down-shifts fire once per key press.
func (p *Player) shift(ctl Controls) {
	if ctl.ShiftUp && p.Gear < p.Car.MaxGear() &&
		p.Speed >= p.Tuning.UpshiftRatio*p.Car.Ceiling(p.Gear) {
		p.Gear++
	}
	if ctl.ShiftDown && !p.shiftDownHeld && p.Gear > 1 {
		p.Gear--
	}
	p.shiftDownHeld = ctl.ShiftDown
	p.Gear = p.Car.ClampGear(p.Gear)
	p.Speed = math.Min(p.Speed, p.Ceiling())
}

// advance moves the car forward and counts laps
func (p *Player) advance(tr *track.Track, distance float64) int {
	var crossed int
	p.Position, crossed = tr.Advance(p.Position, distance)
	p.Laps += crossed
	if p.Laps >= p.TotalLaps {
		p.Finished = true
	}
	return crossed
}

// Refuel applies a fuel station pickup. Every station can be used once per lap.
func (p *Player) Refuel(segment int) bool {
	if lap, ok := p.refuelled[segment]; ok && lap == p.Laps {
		return false
	}
	p.refuelled[segment] = p.Laps
	p.Fuel = math.Min(p.Fuel+p.Tuning.FuelPickup, p.Car.FuelCapacity)
	return true
}
