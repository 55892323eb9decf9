package track

import "math"

// Recipe holds the rules the procedural track is built from
type Recipe struct {
	Segments           int
	SegmentLength      float64
	RoadWidth          float64
	FinishLineSegments int
}

// DefaultRecipe is the 1600 segment circuit the game ships with
func DefaultRecipe(segmentLength, roadWidth float64, finishLine int) Recipe {
	return Recipe{
		Segments:           1600,
		SegmentLength:      segmentLength,
		RoadWidth:          roadWidth,
		FinishLineSegments: finishLine,
	}
}

// Build creates the circuit: a right-hander, a long hilly section and a
// closing left-hander, with roadside scenery placed by index rules.
func Build(r Recipe) *Track {
	segments := make([]SegmentGeometry, r.Segments)
	for i := range segments {
		s := SegmentGeometry{
			Index:      i,
			Z:          float64(i) * r.SegmentLength,
			FinishLine: i < r.FinishLineSegments,
		}

		if i > 300 && i < 700 {
			s.Curve = 0.5
		}
		if i > 1100 {
			s.Curve = -0.7
		}

		// later rules win, like layers painted over each other
		if i < 300 && i%20 == 0 {
			s.DecorationOffset, s.Decoration = -2.5, DecorationPalm
		}
		if i%17 == 0 {
			s.DecorationOffset, s.Decoration = 2.0, DecorationBush
		}
		if i > 300 && i%20 == 0 {
			s.DecorationOffset, s.Decoration = -0.7, DecorationTree
		}
		if i > 800 && i%20 == 0 {
			s.DecorationOffset, s.Decoration = -1.2, DecorationHouse
		}
		if i == 400 {
			s.DecorationOffset, s.Decoration = -1.2, DecorationFuel
		}

		if i > 750 {
			s.Y = math.Sin(float64(i)/30.0) * 1500
		}

		segments[i] = s
	}
	return New(segments, r.SegmentLength, r.RoadWidth)
}
