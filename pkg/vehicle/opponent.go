package vehicle

import (
	"github.com/golangdaddy/topgear/pkg/config"
	"github.com/golangdaddy/topgear/pkg/track"
)

// Driver moves an opponent. Implementations own the behavior, the opponent
// only holds state.
type Driver interface {
	// UpdatePosition advances the opponent and returns the start line crossings
	UpdatePosition(o *Opponent, dt float64, tr *track.Track) int
	UpdateLateral(o *Opponent, dt float64, seg *track.SegmentGeometry)
}

// Opponent is an AI car
type Opponent struct {
	ID            int // 1-based, also the colour variant of the sprite
	DriverName    string
	Position      float64
	Lateral       float64
	TargetLateral float64
	Speed         float64 // km/h, only for display
	BaseSpeed     float64
	Lane          float64 // preferred lateral offset on straights
	Laps          int
	TotalLaps     int
	Finished      bool
	Driver        Driver
}

func (o *Opponent) Name() string {
	return o.DriverName
}

func (o *Opponent) Progress(trackLength float64) float64 {
	return float64(o.Laps)*trackLength + o.Position
}

func (o *Opponent) CompletedLaps() int {
	return o.Laps
}

func (o *Opponent) IsFinished() bool {
	return o.Finished
}

// Update runs the opponent's driver for one tick
func (o *Opponent) Update(dt float64, tr *track.Track) int {
	crossed := o.Driver.UpdatePosition(o, dt, tr)
	o.Driver.UpdateLateral(o, dt, tr.SegmentAt(o.Position))
	return crossed
}

// ScriptedDriver drives at a constant speed and cuts to the inside of curves
type ScriptedDriver struct {
	DistanceScale float64
	InsideBias    float64
	LaneBound     float64
	SteerRate     float64
}

// NewScriptedDriver creates the default opponent behavior from the tuning
func NewScriptedDriver(t *config.Tuning) *ScriptedDriver {
	return &ScriptedDriver{
		DistanceScale: t.DistanceScale,
		InsideBias:    t.OpponentInsideBias,
		LaneBound:     t.OpponentLaneBound,
		SteerRate:     t.OpponentSteerRate,
	}
}

// UpdatePosition keeps driving after the finish so the field does not pile up
// on the line.
func (d *ScriptedDriver) UpdatePosition(o *Opponent, dt float64, tr *track.Track) int {
	o.Speed = o.BaseSpeed
	var crossed int
	o.Position, crossed = tr.Advance(o.Position, o.BaseSpeed*dt*d.DistanceScale)
	o.Laps += crossed
	if o.Laps >= o.TotalLaps {
		o.Finished = true
	}
	return crossed
}

// UpdateLateral eases towards the inside of the current curve. A positive
// curve bends right, so its inside is at positive lateral offsets.
func (d *ScriptedDriver) UpdateLateral(o *Opponent, dt float64, seg *track.SegmentGeometry) {
	o.TargetLateral = clamp(o.Lane+seg.Curve*d.InsideBias, -d.LaneBound, d.LaneBound)
	o.Lateral += (o.TargetLateral - o.Lateral) * d.SteerRate * dt
}
