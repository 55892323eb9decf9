package road

import "image/color"

// Palette holds the two alternating shades of every band and the finish line colours
type Palette struct {
	GrassLight, GrassDark   color.RGBA
	RumbleLight, RumbleDark color.RGBA
	RoadLight, RoadDark     color.RGBA
	FinishRumble            color.RGBA
	FinishRoad              color.RGBA
}

// DefaultPalette is the classic green/grey look
var DefaultPalette = Palette{
	GrassLight:   color.RGBA{16, 200, 16, 255},
	GrassDark:    color.RGBA{0, 154, 0, 255},
	RumbleLight:  color.RGBA{255, 255, 255, 255},
	RumbleDark:   color.RGBA{0, 0, 0, 255},
	RoadLight:    color.RGBA{107, 107, 107, 255},
	RoadDark:     color.RGBA{105, 105, 105, 255},
	FinishRumble: color.RGBA{220, 20, 20, 255},
	FinishRoad:   color.RGBA{255, 255, 255, 255},
}

// Band is the set of colours used for one segment
type Band struct {
	Grass, Rumble, Road color.RGBA
}

// BandFor picks the colours of a segment. Shades flip every 3 segments so the
// stripes appear to move as the camera advances.
func (p Palette) BandFor(index int, finishLine bool) Band {
	light := (index/3)%2 == 1
	b := Band{
		Grass:  p.GrassDark,
		Rumble: p.RumbleDark,
		Road:   p.RoadDark,
	}
	if light {
		b = Band{Grass: p.GrassLight, Rumble: p.RumbleLight, Road: p.RoadLight}
	}
	if finishLine {
		b.Rumble = p.FinishRumble
		b.Road = p.FinishRoad
	}
	return b
}
