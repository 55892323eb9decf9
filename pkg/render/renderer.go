package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/topgear/pkg/road"
)

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is an internal sub image of whiteImage.
// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws road quads and billboards onto an ebiten image
type Renderer struct {
	target   *ebiten.Image
	atlas    *Atlas
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer(atlas *Atlas) *Renderer {
	return &Renderer{atlas: atlas}
}

// SetTarget selects the image the next draw calls go to
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// FillQuad implements road.Renderer
func (r *Renderer) FillQuad(q road.Quad, c color.RGBA) {
	cr := float32(c.R) / 255
	cg := float32(c.G) / 255
	cb := float32(c.B) / 255
	ca := float32(c.A) / 255

	r.vertices = r.vertices[:0]
	for _, p := range q.Points() {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.indices = append(r.indices[:0], 0, 1, 2, 0, 2, 3)
	r.target.DrawTriangles(r.vertices, r.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// DrawBillboard implements road.Renderer. Only the top CropH rows of the
// sprite are drawn.
func (r *Renderer) DrawBillboard(b road.Billboard) {
	img := r.atlas.Sprite(b.Sprite)
	if img == nil {
		return
	}
	src := img.SubImage(image.Rect(0, 0, b.SrcW, b.CropH)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(b.Dest.X, b.Dest.Y)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(src, op)
}
