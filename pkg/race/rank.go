package race

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/golangdaddy/topgear/pkg/vehicle"
)

// Standing is one participant's place in the running order
type Standing struct {
	Place    int
	Vehicle  vehicle.Vehicle
	Progress float64
}

// Rank orders participants by distance driven. The sort is stable, so on a
// tie the participant listed first stays ahead.
func Rank(participants []vehicle.Vehicle, trackLength float64) []Standing {
	standings := lo.Map(participants, func(v vehicle.Vehicle, _ int) Standing {
		return Standing{Vehicle: v, Progress: v.Progress(trackLength)}
	})
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return cmp.Compare(b.Progress, a.Progress)
	})
	for i := range standings {
		standings[i].Place = i + 1
	}
	return standings
}

// Placement returns the 1-based place of v, 0 if v is not in the standings
func Placement(standings []Standing, v vehicle.Vehicle) int {
	s, ok := lo.Find(standings, func(s Standing) bool { return s.Vehicle == v })
	if !ok {
		return 0
	}
	return s.Place
}
