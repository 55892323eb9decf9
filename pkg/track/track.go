package track

// Decoration identifies a roadside billboard sprite
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationHouse
	DecorationTree
	DecorationPalm
	DecorationBush
	DecorationFuel // fuel station, driving through it refuels the car
)

// Decorations lists every drawable decoration kind
var Decorations = []Decoration{
	DecorationHouse, DecorationTree, DecorationPalm, DecorationBush, DecorationFuel,
}

func (d Decoration) String() string {
	switch d {
	case DecorationHouse:
		return "house"
	case DecorationTree:
		return "tree"
	case DecorationPalm:
		return "palm"
	case DecorationBush:
		return "bush"
	case DecorationFuel:
		return "fuel"
	}
	return "none"
}

// SegmentGeometry is one fixed-length slice of the road. It never changes after
// the track is built; screen data lives in projection.ProjectedSegment.
type SegmentGeometry struct {
	Index            int
	X, Y, Z          float64 // 3d center line, Z = Index*SegmentLength
	Curve            float64 // steering delta that bends the road
	Decoration       Decoration
	DecorationOffset float64 // lateral billboard offset in road half-widths
	FinishLine       bool
}

// Track is a closed loop of segments, index order is distance order
type Track struct {
	segments      []SegmentGeometry
	SegmentLength float64
	RoadWidth     float64
}

// New wraps prepared segments into a track
func New(segments []SegmentGeometry, segmentLength, roadWidth float64) *Track {
	return &Track{
		segments:      segments,
		SegmentLength: segmentLength,
		RoadWidth:     roadWidth,
	}
}

// Len returns the number of segments
func (t *Track) Len() int {
	return len(t.segments)
}

// Length returns the distance covered by one lap
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * t.SegmentLength
}

// Segment returns the segment at index n, wrapping around the loop in both directions
func (t *Track) Segment(n int) *SegmentGeometry {
	m := n % len(t.segments)
	if m < 0 {
		m += len(t.segments)
	}
	return &t.segments[m]
}

// IndexAt returns the index of the segment that contains the given track position
func (t *Track) IndexAt(position float64) int {
	return t.Segment(int(t.Wrap(position) / t.SegmentLength)).Index
}

// SegmentAt returns the segment that contains the given track position
func (t *Track) SegmentAt(position float64) *SegmentGeometry {
	return t.Segment(t.IndexAt(position))
}

// Wrap maps a position into [0, Length())
func (t *Track) Wrap(position float64) float64 {
	length := t.Length()
	for position >= length {
		position -= length
	}
	for position < 0 {
		position += length
	}
	return position
}

// Advance moves a position forward by distance and reports how many times the
// finish line was crossed in the forward direction.
func (t *Track) Advance(position, distance float64) (float64, int) {
	length := t.Length()
	next := position + distance
	laps := 0
	for next >= length {
		next -= length
		laps++
	}
	for next < 0 {
		next += length
	}
	return next, laps
}

// Gap returns the forward distance from -> to, corrected for the wrap so the
// result lies in (-Length()/2, Length()/2].
func (t *Track) Gap(from, to float64) float64 {
	length := t.Length()
	d := to - from
	for d > length/2 {
		d -= length
	}
	for d <= -length/2 {
		d += length
	}
	return d
}
