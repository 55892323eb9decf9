package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProjector() *Projector {
	return NewProjector(0.84, 2000, 1024, 768)
}

func TestProjector_Project(t *testing.T) {
	p := sampleProjector()
	cam := Camera{X: 0, Y: 900, Z: 0}

	s := p.Project(0, 0, 200, cam)
	assert.InDelta(t, 0.0042, s.Scale, 1e-12)
	assert.InDelta(t, 512.0, s.X, 1e-9)
	assert.InDelta(t, (1+0.0042*900)*384, s.Y, 1e-9)
	assert.InDelta(t, 0.0042*2000*512, s.W, 1e-9)
}

func TestProjector_LateralShear(t *testing.T) {
	p := sampleProjector()
	cam := Camera{X: 1000, Y: 900, Z: 0}

	s := p.Project(0, 0, 4200, cam)
	// a camera to the right moves the road to the left of center
	assert.Less(t, s.X, 512.0)
	assert.InDelta(t, (1-0.0002*1000)*512, s.X, 1e-9)
}

func TestProjector_ScaleGrowsTowardsCamera(t *testing.T) {
	p := sampleProjector()
	cam := Camera{Y: 900, Z: 1000}

	prev := 0.0
	prevY := 0.0
	for _, dz := range []float64{60000, 10000, 1000, 100, 1, 1e-3, 1e-6} {
		s := p.Project(0, 0, cam.Z+dz, cam)
		assert.Greater(t, s.Scale, 0.0)
		assert.Greater(t, s.Scale, prev, "scale must grow as the segment approaches")
		assert.Greater(t, s.Y, prevY, "nearer segments sit lower on screen")
		prev, prevY = s.Scale, s.Y
	}
	assert.Greater(t, prev, 1e5)
}
