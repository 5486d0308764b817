package farm

import (
	"fmt"
	"strings"

	"github.com/bryomx12/farmstand/internal/economy"
)

// StateName labels the coarse game state for snapshots and debugging.
type StateName string

const (
	StateDayBreak StateName = "day_break"
	StateOpen     StateName = "open"
	StateShop     StateName = "shop"
	StateGameOver StateName = "game_over"
	StatePaused   StateName = "paused"
	StateTooSmall StateName = "too_small"
)

// Snapshot is a comparable summary of the full game state. Two runs with
// the same seed and inputs produce equal snapshots at every tick.
type Snapshot struct {
	Tick         uint64
	Mode         Mode
	State        StateName
	Day          int
	Money        int
	ServedToday  int
	TotalServed  int
	Holding      string
	Capacity     int
	PlayerX      int
	PlayerY      int
	Customer     string
	Wants        string
	PatienceLeft int
	Unlocked     string
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Mode:         g.mode,
		State:        g.stateName(),
		Day:          g.eco.Day(),
		Money:        g.eco.Money(),
		ServedToday:  g.eco.CustomersServed(),
		TotalServed:  g.totalServed,
		Holding:      joinItems(g.eco.Inventory()),
		Capacity:     g.eco.MaxCapacity(),
		PlayerX:      g.player.X,
		PlayerY:      g.player.Y,
		Customer:     g.customer.Name,
		Wants:        g.customer.Wants.String(),
		PatienceLeft: g.patienceLeft,
		Unlocked:     joinItems(g.eco.Unlocked()),
	}
}

func (g *Game) stateName() StateName {
	switch {
	case g.tooSmall:
		return StateTooSmall
	case g.gameOver:
		return StateGameOver
	case g.paused:
		return StatePaused
	}
	switch g.eco.Phase() {
	case economy.PhaseStart:
		return StateDayBreak
	case economy.PhaseShop:
		return StateShop
	default:
		return StateOpen
	}
}

// DebugState returns a compact one-line description of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	return fmt.Sprintf("tick=%d state=%s day=%d money=%d served=%d/%d held=[%s] pos=(%d,%d) customer=%s wants=%s",
		s.Tick, s.State, s.Day, s.Money, s.ServedToday, s.TotalServed,
		s.Holding, s.PlayerX, s.PlayerY, s.Customer, s.Wants)
}

func joinItems(items []economy.Item) string {
	if len(items) == 0 {
		return ""
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return strings.Join(names, ",")
}
