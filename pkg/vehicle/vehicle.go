package vehicle

import (
	"github.com/golangdaddy/topgear/pkg/track"
)

// Vehicle is anything that races around the track
type Vehicle interface {
	Name() string
	// Progress is the distance driven since the start line, laps included
	Progress(trackLength float64) float64
	CompletedLaps() int
	IsFinished() bool
}

// Controls is the input snapshot of one tick
type Controls struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
	ShiftUp    bool
	ShiftDown  bool
	Confirm    bool
}

// Steer selects the sprite variant of the player car
type Steer int

const (
	SteerNone Steer = iota
	SteerLeft
	SteerRight
)

func (s Steer) String() string {
	switch s {
	case SteerLeft:
		return "left"
	case SteerRight:
		return "right"
	}
	return "straight"
}

// GridSlot places a vehicle start segments ahead of the line (negative is
// behind it). A grid slot behind the line starts on lap -1 so that crossing
// the line for the first time begins lap 0.
func GridSlot(tr *track.Track, start float64) (position float64, laps int) {
	distance := start * tr.SegmentLength
	if distance < 0 {
		return tr.Wrap(distance), -1
	}
	return tr.Wrap(distance), 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
