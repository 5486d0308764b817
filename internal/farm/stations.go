package farm

import (
	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/economy"
)

// Station is one spot on the field that yields produce: a coop, a cow, a
// vegetable patch. Walking onto a ready station harvests one item; the
// station then needs its cooldown to replenish.
type Station struct {
	Item     economy.Item
	Area     core.Rect
	Cooldown int // Ticks from harvest until ready again

	readyIn int // 0 = ready to harvest
}

// Ready reports whether the station has produce waiting.
func (s *Station) Ready() bool {
	return s.readyIn == 0
}

// Harvest takes the produce and starts the replenish timer.
func (s *Station) Harvest() {
	s.readyIn = s.Cooldown
}

// Tick advances the replenish timer by one simulation tick.
func (s *Station) Tick() {
	if s.readyIn > 0 {
		s.readyIn--
	}
}

// Progress returns how far the replenish timer has come, 0.0 just after a
// harvest and 1.0 when ready.
func (s *Station) Progress() float64 {
	if s.Cooldown <= 0 || s.readyIn <= 0 {
		return 1.0
	}
	return 1.0 - float64(s.readyIn)/float64(s.Cooldown)
}
