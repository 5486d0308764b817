package core

// RuntimeConfig carries the runtime parameters a game mode needs to set
// itself up. The platform layer fills it in from terminal size and CLI flags
// and passes it to Reset; modes should not read flags or the environment
// themselves.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // Random seed (0 = use time-based seed)
}

// DefaultConfig returns a config suitable for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the platform-visible summary of a run. The TUI reads it every
// tick to drive the HUD, detect the end of a run, and record results.
type GameState struct {
	Money     int    // Coins held right now
	Day       int    // Current in-game day, starting at 1
	Customers int    // Customers served across the whole run
	GameOver  bool   // True when the run has ended
	Paused    bool   // True while the game is paused
	EndReason string // Why the run ended; empty while GameOver is false
}

// End reasons reported through GameState.EndReason.
const (
	EndSeasonComplete = "season_complete"
	EndRetired        = "retired"
)

// Event is a notable thing that happened during a single step. Events let the
// platform layer react (sound cues, for now) without inspecting game
// internals.
type Event uint8

const (
	EventNone Event = iota
	EventDayStarted
	EventDayEnded
	EventPickup
	EventPickupRejected
	EventServe
	EventServeRejected
	EventCustomerLeft
	EventShopOpened
	EventUpgradeBought
	EventUpgradeRejected
	EventRunEnded
)

// StepResult is what a game mode returns from each Step call.
type StepResult struct {
	State  GameState
	Events []Event // Events raised during this step, in order
}
