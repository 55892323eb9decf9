package road

import (
	"cmp"
	"math"
	"slices"

	"github.com/golangdaddy/topgear/pkg/projection"
	"github.com/golangdaddy/topgear/pkg/track"
)

// Order is the direction a visibility pass walks the visible window
type Order int

const (
	// NearToFar is the road pass: nearer segments occlude the ones behind them
	NearToFar Order = iota
	// FarToNear is the sprite pass: nearer billboards are painted last
	FarToNear
)

// Slot is one visible segment of a frame
type Slot struct {
	N         int // unwrapped segment number, N*SegmentLength is its z
	Segment   *track.SegmentGeometry
	Camera    projection.Camera // camera shifted by the curve accumulated so far
	Projected projection.ProjectedSegment
	Prev      projection.ProjectedSegment // edge the quad starts from
	Drawn     bool
}

// Frame is the per-frame projection of the visible window. It is rebuilt every
// frame and never written back into the track.
type Frame struct {
	Camera     projection.Camera
	Base       int // segment the camera is in
	Slots      []Slot
	Billboards []Billboard
}

// Visit calls fn for every slot in the given order
func (f *Frame) Visit(order Order, fn func(s *Slot)) {
	switch order {
	case NearToFar:
		for i := range f.Slots {
			fn(&f.Slots[i])
		}
	case FarToNear:
		for i := len(f.Slots) - 1; i >= 0; i-- {
			fn(&f.Slots[i])
		}
	}
}

// Slot returns the slot of unwrapped segment number n
func (f *Frame) Slot(n int) (*Slot, bool) {
	i := n - f.Base - 1
	if i < 0 || i >= len(f.Slots) {
		return nil, false
	}
	return &f.Slots[i], true
}

// Car is an opponent to place into the sprite pass
type Car struct {
	Distance float64 // wrap corrected distance ahead of the camera
	Lateral  float64 // in road half-widths
	Sprite   Sprite
}

// Rasterizer turns the track into quads and billboards for one camera position
type Rasterizer struct {
	Track        *track.Track
	Projector    *projection.Projector
	Palette      Palette
	DrawDistance int
	RumbleFactor float64
	SpriteScale  float64
	SpriteLift   float64
}

// FarCutoff is the distance beyond which nothing is drawn
func (r *Rasterizer) FarCutoff() float64 {
	return float64(r.DrawDistance) * r.Track.SegmentLength
}

// Project computes the screen data of the visible window. cam.Z is the wrapped
// track position and cam.X the lateral camera position in world units; cam.Y
// is the camera height above the world origin.
func (r *Rasterizer) Project(cam projection.Camera) *Frame {
	base := int(cam.Z / r.Track.SegmentLength)
	f := &Frame{
		Camera: cam,
		Base:   base,
		Slots:  make([]Slot, r.DrawDistance),
	}

	maxY := r.Projector.Height
	var x, dx float64
	for i := range f.Slots {
		n := base + 1 + i
		seg := r.Track.Segment(n)
		shifted := projection.Camera{X: cam.X - x, Y: cam.Y, Z: cam.Z}
		p := r.Projector.Project(seg.X, seg.Y, float64(n)*r.Track.SegmentLength, shifted)
		x += dx
		dx += seg.Curve

		prev := projection.ProjectedSegment{X: p.X, Y: r.Projector.Height, W: p.W}
		if i > 0 {
			prev = f.Slots[i-1].Projected
		}

		p.Clip = maxY
		s := Slot{N: n, Segment: seg, Camera: shifted, Projected: p, Prev: prev}
		if p.Y < maxY {
			s.Drawn = true
			maxY = p.Y
		}
		f.Slots[i] = s
	}
	return f
}

// DrawRoad paints grass, rumble strip and road of every visible slot, nearest first
func (r *Rasterizer) DrawRoad(f *Frame, out Renderer) {
	width := r.Projector.Width
	f.Visit(NearToFar, func(s *Slot) {
		if !s.Drawn {
			return
		}
		p, l := s.Prev, s.Projected
		band := r.Palette.BandFor(s.Segment.Index, s.Segment.FinishLine)
		out.FillQuad(Quad{X1: 0, Y1: p.Y, W1: width, X2: 0, Y2: l.Y, W2: width}, band.Grass)
		out.FillQuad(Quad{
			X1: p.X, Y1: p.Y, W1: p.W * r.RumbleFactor,
			X2: l.X, Y2: l.Y, W2: l.W * r.RumbleFactor,
		}, band.Rumble)
		out.FillQuad(Quad{X1: p.X, Y1: p.Y, W1: p.W, X2: l.X, Y2: l.Y, W2: l.W}, band.Road)
	})
}

// DrawSprites paints decorations and cars farthest first and records every
// billboard that is at least partially visible in f.Billboards.
func (r *Rasterizer) DrawSprites(f *Frame, atlas Atlas, cars []Car, out Renderer) {
	bySlot := make(map[int][]Car)
	for _, c := range cars {
		if c.Distance <= 0 || c.Distance > r.FarCutoff() {
			continue
		}
		// a car still inside the camera's segment is drawn with the first slot
		n := max(int((f.Camera.Z+c.Distance)/r.Track.SegmentLength), f.Base+1)
		if _, ok := f.Slot(n); !ok {
			continue
		}
		bySlot[n] = append(bySlot[n], c)
	}

	f.Billboards = f.Billboards[:0]
	f.Visit(FarToNear, func(s *Slot) {
		inSlot := bySlot[s.N]
		slices.SortStableFunc(inSlot, func(a, b Car) int { return cmp.Compare(b.Distance, a.Distance) })
		for _, c := range inSlot {
			if b, ok := r.carBillboard(f, s, c, atlas); ok {
				out.DrawBillboard(b)
				f.Billboards = append(f.Billboards, b)
			}
		}
		if s.Segment.Decoration == track.DecorationNone {
			return
		}
		if b, ok := r.decorationBillboard(s, atlas); ok {
			out.DrawBillboard(b)
			f.Billboards = append(f.Billboards, b)
		}
	})
}

// Render runs the full pipeline for one camera position
func (r *Rasterizer) Render(cam projection.Camera, atlas Atlas, cars []Car, out Renderer) *Frame {
	f := r.Project(cam)
	r.DrawRoad(f, out)
	r.DrawSprites(f, atlas, cars, out)
	return f
}

func (r *Rasterizer) decorationBillboard(s *Slot, atlas Atlas) (Billboard, bool) {
	sprite := Scenery(s.Segment.Decoration)
	w, h := atlas.SpriteSize(sprite)
	p := s.Projected
	offset := s.Segment.DecorationOffset

	destW := float64(w) * p.W / r.SpriteScale
	destH := float64(h) * p.W / r.SpriteScale
	destX := p.X + p.Scale*offset*r.Projector.Width/2 + destW*offset
	destY := p.Y + r.SpriteLift - destH

	return clipBillboard(sprite, s.Segment.Index, w, h, destX, destY, destW, destH, p.Clip)
}

func (r *Rasterizer) carBillboard(f *Frame, s *Slot, c Car, atlas Atlas) (Billboard, bool) {
	w, h := atlas.SpriteSize(c.Sprite)
	seg := s.Segment
	p := r.Projector.Project(seg.X+c.Lateral*r.Track.RoadWidth, seg.Y, f.Camera.Z+c.Distance, s.Camera)

	destW := float64(w) * p.W / r.SpriteScale
	destH := float64(h) * p.W / r.SpriteScale
	destX := p.X - destW/2
	destY := p.Y + r.SpriteLift - destH

	return clipBillboard(c.Sprite, seg.Index, w, h, destX, destY, destW, destH, s.Projected.Clip)
}

// clipBillboard cuts the part of a sprite that lies below the clip line
func clipBillboard(sprite Sprite, segment, w, h int, destX, destY, destW, destH, clip float64) (Billboard, bool) {
	if w <= 0 || h <= 0 || destW <= 0 || destH <= 0 {
		return Billboard{}, false
	}
	clipH := math.Max(destY+destH-clip, 0)
	if clipH >= destH {
		return Billboard{}, false
	}
	crop := h - int(float64(h)*clipH/destH)
	if crop <= 0 {
		return Billboard{}, false
	}
	return Billboard{
		Sprite:  sprite,
		Segment: segment,
		Dest:    Rect{X: destX, Y: destY, W: destW, H: destH - clipH},
		Scale:   destW / float64(w),
		SrcW:    w,
		SrcH:    h,
		CropH:   crop,
	}, true
}
