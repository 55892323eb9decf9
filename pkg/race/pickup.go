package race

import (
	"go.uber.org/zap"

	"github.com/golangdaddy/topgear/pkg/log"
	"github.com/golangdaddy/topgear/pkg/road"
	"github.com/golangdaddy/topgear/pkg/track"
)

// ApplyPickups refuels the player for every fuel station billboard that
// overlaps the car on screen and returns how many were collected.
func (r *Race) ApplyPickups(billboards []road.Billboard, car road.Rect) int {
	collected := 0
	for _, b := range billboards {
		if b.Sprite.Decoration != track.DecorationFuel || !b.Dest.Overlaps(car) {
			continue
		}
		if r.Player.Refuel(b.Segment) {
			collected++
			log.Debug("fuel collected", zap.Int("segment", b.Segment), zap.Float64("fuel", r.Player.Fuel))
		}
	}
	return collected
}
