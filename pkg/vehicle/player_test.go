package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/topgear/pkg/config"
	"github.com/golangdaddy/topgear/pkg/models/car"
	"github.com/golangdaddy/topgear/pkg/track"
)

const dt = 1.0 / 60

func straightTrack(n int) *track.Track {
	segs := make([]track.SegmentGeometry, n)
	for i := range segs {
		segs[i] = track.SegmentGeometry{Index: i, Z: float64(i) * 200}
	}
	return track.New(segs, 200, 2000)
}

func newTestPlayer(tr *track.Track) *Player {
	tuning := config.DefaultTuning()
	c := car.NewCar("Test", "Roadster", tuning.Gears)
	return NewPlayer(c, &tuning, tr, 3)
}

func TestNewPlayer_StartsBehindLine(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)

	assert.Equal(t, -1, p.Laps)
	assert.Equal(t, tr.Length()-40*200, p.Position)
	assert.Equal(t, 1, p.Gear)
	assert.Equal(t, 100.0, p.Fuel)
	assert.Equal(t, -40*200.0, p.Progress(tr.Length()))
}

func TestPlayer_WrapIdempotence(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)
	p.Position = 1234
	p.Laps = 0
	p.Lateral = 0.3
	p.Speed = 150
	p.Gear = 3

	crossed := p.advance(tr, tr.Length())

	assert.Equal(t, 1, crossed)
	assert.Equal(t, 1, p.Laps)
	assert.InDelta(t, 1234, p.Position, 1e-6)
	assert.Equal(t, 0.3, p.Lateral)
	assert.Equal(t, 150.0, p.Speed)
	assert.Equal(t, 3, p.Gear)
}

func TestPlayer_GearAndSpeedBounds(t *testing.T) {
	tr := straightTrack(200)
	p := newTestPlayer(tr)

	inputs := []Controls{
		{Accelerate: true, ShiftUp: true},
		{Accelerate: true, ShiftUp: true, Right: true},
		{Accelerate: true, ShiftDown: true},
		{Accelerate: true},
		{Brake: true, ShiftDown: true},
		{ShiftDown: true},
		{},
	}
	for i := 0; i < 3000; i++ {
		ctl := inputs[(i/40)%len(inputs)]
		p.Update(dt, ctl, tr)
		require.GreaterOrEqual(t, p.Gear, 1)
		require.LessOrEqual(t, p.Gear, p.Car.MaxGear())
		require.LessOrEqual(t, p.Speed, p.Ceiling()+1e-9)
		require.GreaterOrEqual(t, p.Speed, 0.0)
		require.LessOrEqual(t, p.Lateral, p.Tuning.MaxLateral)
		require.GreaterOrEqual(t, p.Lateral, -p.Tuning.MaxLateral)
	}
}

func TestPlayer_UpshiftNeedsSpeed(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)

	p.Speed = 50
	p.Update(dt, Controls{ShiftUp: true}, tr)
	assert.Equal(t, 1, p.Gear)

	p.Speed = 70
	p.Update(dt, Controls{Accelerate: true, ShiftUp: true}, tr)
	assert.Equal(t, 2, p.Gear)
}

func TestPlayer_DownshiftLatch(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)
	p.Gear = 4
	p.Speed = 200

	p.Update(dt, Controls{ShiftDown: true}, tr)
	assert.Equal(t, 3, p.Gear)
	assert.LessOrEqual(t, p.Speed, 180.0)

	// held key does not shift again
	p.Update(dt, Controls{ShiftDown: true}, tr)
	p.Update(dt, Controls{ShiftDown: true}, tr)
	assert.Equal(t, 3, p.Gear)

	p.Update(dt, Controls{}, tr)
	p.Update(dt, Controls{ShiftDown: true}, tr)
	assert.Equal(t, 2, p.Gear)
}

func TestPlayer_FuelBounds(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)
	p.Gear = 5
	p.Speed = 270
	p.Fuel = 0.001

	p.Update(1, Controls{Accelerate: true}, tr)
	assert.Equal(t, 0.0, p.Fuel)

	p.Fuel = 99
	p.Refuel(400)
	assert.Equal(t, 100.0, p.Fuel)
}

func TestPlayer_NoFuelNeverSpeedsUp(t *testing.T) {
	tests := []struct {
		name string
		ctl  Controls
	}{
		{"accelerate", Controls{Accelerate: true}},
		{"accelerate and shift", Controls{Accelerate: true, ShiftUp: true}},
		{"brake", Controls{Brake: true}},
		{"nothing", Controls{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := straightTrack(100)
			p := newTestPlayer(tr)
			p.Fuel = 0
			p.Speed = 60
			for i := 0; i < 10; i++ {
				before := p.Speed
				p.Update(dt, tt.ctl, tr)
				assert.LessOrEqual(t, p.Speed, before)
				assert.Equal(t, 0.0, p.Fuel)
			}
		})
	}
}

func TestPlayer_FinishCondition(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)
	p.Laps = p.TotalLaps - 1
	p.Speed = 60
	p.Position = tr.Length() - 1

	crossed := p.Update(dt, Controls{Accelerate: true}, tr)

	assert.Equal(t, 1, crossed)
	assert.Equal(t, p.TotalLaps, p.Laps)
	assert.True(t, p.Finished)

	for i := 0; i < 10; i++ {
		before := p.Speed
		p.Update(dt, Controls{Accelerate: true}, tr)
		assert.Less(t, p.Speed, before+1e-9)
	}
}

func TestPlayer_OffRoadPenalty(t *testing.T) {
	tr := straightTrack(100)

	onRoad := newTestPlayer(tr)
	onRoad.Speed = 30
	onRoad.Update(dt, Controls{Accelerate: true}, tr)
	require.False(t, onRoad.OnGrass)

	offRoad := newTestPlayer(tr)
	offRoad.Speed = 30
	offRoad.Lateral = 1.5
	offRoad.Update(dt, Controls{Accelerate: true}, tr)
	require.True(t, offRoad.OnGrass)

	assert.Less(t, offRoad.Speed, onRoad.Speed)
}

func TestPlayer_OffRoadThreshold(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)

	p.Lateral = 1.09
	p.Update(dt, Controls{}, tr)
	assert.False(t, p.OnGrass)

	p.Lateral = 1.11
	p.Update(dt, Controls{}, tr)
	assert.True(t, p.OnGrass)
}

func TestPlayer_CurvePushesOutwards(t *testing.T) {
	segs := make([]track.SegmentGeometry, 100)
	for i := range segs {
		segs[i] = track.SegmentGeometry{Index: i, Z: float64(i) * 200, Curve: 0.5}
	}
	tr := track.New(segs, 200, 2000)
	p := newTestPlayer(tr)
	p.Speed = 200

	p.Update(dt, Controls{Accelerate: true}, tr)

	assert.Less(t, p.Lateral, 0.0)
}

func TestPlayer_Steering(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)

	// too slow to turn, the wheels still show the held key
	p.Speed = 1
	p.Update(dt, Controls{Left: true}, tr)
	assert.Equal(t, 0.0, p.Lateral)
	assert.Equal(t, SteerLeft, p.Steer)

	p.Speed = 0
	p.Update(dt, Controls{Right: true}, tr)
	assert.Equal(t, 0.0, p.Lateral)
	assert.Equal(t, SteerRight, p.Steer)

	p.Update(dt, Controls{Left: true, Right: true}, tr)
	assert.Equal(t, SteerNone, p.Steer)

	p.Speed = 100
	p.Update(dt, Controls{Left: true}, tr)
	assert.Less(t, p.Lateral, 0.0)
	assert.Equal(t, SteerLeft, p.Steer)

	p.Update(dt, Controls{Right: true}, tr)
	assert.Equal(t, SteerRight, p.Steer)

	p.Update(dt, Controls{}, tr)
	assert.Equal(t, SteerNone, p.Steer)
}

func TestPlayer_RefuelOncePerLap(t *testing.T) {
	tr := straightTrack(100)
	p := newTestPlayer(tr)
	p.Laps = 0
	p.Fuel = 10

	assert.True(t, p.Refuel(40))
	assert.Equal(t, 50.0, p.Fuel)
	assert.False(t, p.Refuel(40))
	assert.Equal(t, 50.0, p.Fuel)

	p.Laps = 1
	assert.True(t, p.Refuel(40))
	assert.Equal(t, 90.0, p.Fuel)
}

func TestGridSlot(t *testing.T) {
	tr := straightTrack(100)

	pos, laps := GridSlot(tr, -8)
	assert.Equal(t, tr.Length()-1600, pos)
	assert.Equal(t, -1, laps)

	pos, laps = GridSlot(tr, 2)
	assert.Equal(t, 400.0, pos)
	assert.Equal(t, 0, laps)
}
