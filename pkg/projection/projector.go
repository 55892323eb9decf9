package projection

// Camera is the eye position in world space
type Camera struct {
	X, Y, Z float64
}

// ProjectedSegment is the per-frame screen data of one segment
type ProjectedSegment struct {
	X, Y  float64 // screen position of the segment center line
	W     float64 // road half-width in pixels
	Scale float64 // perspective divide result
	Clip  float64 // lowest screen Y already covered by nearer road, billboards are cut at it
}

// Projector maps world positions onto a viewport. It is a planar projection:
// only forward distance produces depth scaling.
type Projector struct {
	CameraDepth float64
	RoadWidth   float64
	Width       float64
	Height      float64
}

// NewProjector creates a projector for the given viewport
func NewProjector(cameraDepth, roadWidth float64, width, height int) *Projector {
	return &Projector{
		CameraDepth: cameraDepth,
		RoadWidth:   roadWidth,
		Width:       float64(width),
		Height:      float64(height),
	}
}

// Scale returns the perspective divide for a point dz in front of the camera.
// dz must be positive.
func (p *Projector) Scale(dz float64) float64 {
	return p.CameraDepth / dz
}

// Project maps the world point (x, y, z) onto the screen. z must be strictly
// greater than cam.Z; callers never project points at or behind the camera.
func (p *Projector) Project(x, y, z float64, cam Camera) ProjectedSegment {
	scale := p.Scale(z - cam.Z)
	return ProjectedSegment{
		X:     (1 + scale*(x-cam.X)) * p.Width / 2,
		Y:     (1 - scale*(y-cam.Y)) * p.Height / 2,
		W:     scale * p.RoadWidth * p.Width / 2,
		Scale: scale,
	}
}
