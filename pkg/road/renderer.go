package road

import (
	"image/color"

	"github.com/golangdaddy/topgear/pkg/track"
)

// Point is a screen space position
type Point struct {
	X, Y float64
}

// Quad is a trapezoid between a near edge (X1,Y1) and a far edge (X2,Y2),
// each centered on X with the given half-width.
type Quad struct {
	X1, Y1, W1 float64
	X2, Y2, W2 float64
}

// Points returns the four corners in drawing order
func (q Quad) Points() [4]Point {
	return [4]Point{
		{q.X1 - q.W1, q.Y1},
		{q.X2 - q.W2, q.Y2},
		{q.X2 + q.W2, q.Y2},
		{q.X1 + q.W1, q.Y1},
	}
}

// Rect is an axis aligned screen rectangle
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether both rectangles share any area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Sprite identifies what a billboard shows
type Sprite struct {
	Decoration track.Decoration // roadside scenery, DecorationNone for cars
	Car        int              // 1-based opponent colour variant, 0 for scenery
}

// Scenery returns the sprite of a decoration
func Scenery(d track.Decoration) Sprite {
	return Sprite{Decoration: d}
}

// CarSprite returns the sprite of an opponent colour variant
func CarSprite(variant int) Sprite {
	return Sprite{Car: variant}
}

// Billboard is a sprite scaled into screen space. Only the top CropH source
// rows are drawn, the rest is hidden behind nearer road.
type Billboard struct {
	Sprite  Sprite
	Segment int     // track index the billboard stands on
	Dest    Rect    // visible destination area
	Scale   float64 // destination pixels per source pixel
	SrcW    int
	SrcH    int
	CropH   int
}

// Renderer draws what the rasterizer emits. It does not depth sort, the
// rasterizer calls it in painter's order.
type Renderer interface {
	FillQuad(q Quad, c color.RGBA)
	DrawBillboard(b Billboard)
}

// Atlas reports the source size of every sprite
type Atlas interface {
	SpriteSize(s Sprite) (w, h int)
}
