// Package farm implements the farm stand game: walk the field, harvest
// produce, sell it at the counter, and grow the farm through the evening
// shop. All timing is tick-based and all randomness flows from the seed, so
// a run can be replayed exactly.
package farm

import (
	"fmt"
	"math/rand"

	"github.com/bryomx12/farmstand/internal/config"
	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/economy"
	"github.com/bryomx12/farmstand/internal/registry"
	"github.com/bryomx12/farmstand/internal/session"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // One season, fixed number of days
	ModeEndless Mode = "endless" // Play until retirement
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y int
}

// Pacing constants, in ticks at the standard 60/s rate.
const (
	moveEveryTicks  = 3   // Player walks one cell per this many ticks
	serveEveryTicks = 30  // Minimum gap between two sales
	noticeTicks     = 120 // How long a notice stays on screen
)

// Minimum terminal size the field layout needs.
const (
	minScreenW = 60
	minScreenH = 18
)

// Game implements the farm stand for the mode registry.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	// Economy
	eco     *economy.State
	catalog economy.Catalog
	orders  *economy.OrderBook

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.FarmConfig
	pace    *config.Pace

	// World
	player     Point
	moveTicker int
	stations   []*Station

	// Layout (computed from screen size)
	field      core.Rect
	counter    core.Rect
	serveZone  core.Rect
	hudHeight  int
	animalRowY int
	cropRowY   int

	// Day flow
	customer     economy.Customer
	patienceMax  int
	patienceLeft int
	serveTicker  int
	earnedToday  int
	totalServed  int
	dayLog       []session.DayRecord

	// Shop overlay
	shopOpen    bool
	shopCursor  int
	shopEntries []shopEntry

	// Transient message above the field
	notice     string
	noticeLeft int

	// Game state flags
	gameOver  bool
	endReason string
	paused    bool
	tooSmall  bool

	// Events raised during the current step
	events []core.Event
}

// Package-level variables set from CLI flags before the game starts.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// New creates a classic, one-season game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Farm Stand (Endless)"
	}
	return "Farm Stand"
}

// Reset initializes/restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFarm(configPath)
	if err != nil {
		cfg = config.DefaultFarmConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFarmPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.pace = config.NewPace(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.eco = economy.NewState(cfg.Rules.ToRules())
	g.catalog = cfg.Shop.ToCatalog()
	g.orders = economy.NewOrderBook(g.rng, g.eco)

	g.tick = 0
	g.moveTicker = 0
	g.serveTicker = 0
	g.earnedToday = 0
	g.totalServed = 0
	g.dayLog = nil
	g.customer = economy.Customer{}
	g.patienceMax = 0
	g.patienceLeft = 0
	g.shopOpen = false
	g.shopCursor = 0
	g.shopEntries = nil
	g.notice = ""
	g.noticeLeft = 0
	g.gameOver = false
	g.endReason = ""
	g.paused = false
	g.events = nil

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.calculateLayout()
	g.placeStations()
	g.player = g.startingPlayerPos()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), Events: g.events}
	}

	if g.noticeLeft > 0 {
		g.noticeLeft--
		if g.noticeLeft == 0 {
			g.notice = ""
		}
	}

	switch g.eco.Phase() {
	case economy.PhaseStart:
		g.stepDayBreak(input)
	case economy.PhasePlaying:
		g.stepOpenStand(input)
	case economy.PhaseShop:
		g.stepShop(input)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// stepDayBreak waits on the morning banner until the player moves.
func (g *Game) stepDayBreak(input core.InputFrame) {
	if input.Has(core.ActionConfirm) || input.Has(core.ActionUp) || input.Has(core.ActionDown) ||
		input.Has(core.ActionLeft) || input.Has(core.ActionRight) {
		g.openStand()
	}
}

// openStand starts the working day.
func (g *Game) openStand() {
	g.eco.StartDay()
	g.placeStations()
	g.earnedToday = 0
	g.serveTicker = 0
	g.nextCustomer()
	g.emit(core.EventDayStarted)
}

// stepOpenStand runs one tick of the working day.
func (g *Game) stepOpenStand(input core.InputFrame) {
	for _, st := range g.stations {
		st.Tick()
	}

	if g.patienceMax > 0 && g.customer.Wants != economy.ItemNone {
		g.patienceLeft--
		if g.patienceLeft <= 0 {
			g.say(g.customer.Name + " walked away")
			g.emit(core.EventCustomerLeft)
			g.nextCustomer()
		}
	}

	g.movePlayer(input)

	if g.serveTicker > 0 {
		g.serveTicker--
	}
	if g.serveTicker == 0 && g.serveZone.Contains(g.player.X, g.player.Y) {
		g.tryServe()
	}
}

// movePlayer walks the player one cell on the movement cadence.
func (g *Game) movePlayer(input core.InputFrame) {
	g.moveTicker++
	if g.moveTicker < moveEveryTicks {
		return
	}
	g.moveTicker = 0

	dx, dy := 0, 0
	if input.Has(core.ActionLeft) {
		dx--
	}
	if input.Has(core.ActionRight) {
		dx++
	}
	if input.Has(core.ActionUp) {
		dy--
	}
	if input.Has(core.ActionDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}

	walk := g.field.Inset(1)
	next := Point{
		X: core.Clamp(g.player.X+dx, walk.X, walk.Right()-1),
		Y: core.Clamp(g.player.Y+dy, walk.Y, walk.Bottom()-1),
	}
	if next == g.player {
		return
	}

	prev := g.player
	g.player = next
	g.checkPickup(prev)
	g.checkCounterHint(prev)
}

// checkPickup harvests a station the player just stepped onto.
func (g *Game) checkPickup(prev Point) {
	for _, st := range g.stations {
		if !st.Area.Contains(g.player.X, g.player.Y) || st.Area.Contains(prev.X, prev.Y) {
			continue
		}
		if !st.Ready() {
			continue
		}
		switch g.eco.AddItem(st.Item) {
		case economy.OutcomeOK:
			st.Harvest()
			g.say("Picked up " + st.Item.Title())
			g.emit(core.EventPickup)
		case economy.OutcomeInventoryFull:
			// Produce stays on the station
			g.say("The basket is full")
			g.emit(core.EventPickupRejected)
		}
	}
}

// checkCounterHint reminds the player what the customer wants when they
// arrive at the counter empty-handed.
func (g *Game) checkCounterHint(prev Point) {
	if !g.serveZone.Contains(g.player.X, g.player.Y) || g.serveZone.Contains(prev.X, prev.Y) {
		return
	}
	want := g.customer.Wants
	if want == economy.ItemNone || g.eco.Holds(want) {
		return
	}
	g.say(g.customer.Name + " wants " + want.Title())
	g.emit(core.EventServeRejected)
}

// tryServe sells to the waiting customer if the stand holds their item.
func (g *Game) tryServe() {
	want := g.customer.Wants
	if want == economy.ItemNone || !g.eco.Holds(want) {
		return
	}

	reward := g.eco.Reward(want)
	if g.eco.Serve(want) != economy.OutcomeOK {
		return
	}

	g.earnedToday += reward
	g.totalServed++
	g.serveTicker = serveEveryTicks
	g.say(fmt.Sprintf("Sold %s for %d coins", want.Title(), reward))
	g.emit(core.EventServe)

	if g.eco.Phase() == economy.PhaseShop {
		g.closeDay()
		return
	}
	g.nextCustomer()
}

// nextCustomer draws a fresh order and resets its patience timer.
func (g *Game) nextCustomer() {
	g.customer = g.orders.Next()
	g.patienceMax = g.pace.Patience(g.cfg.Orders.PatienceTicks, g.eco.Day())
	g.patienceLeft = g.patienceMax
}

// closeDay records the day's takings and opens the evening shop.
func (g *Game) closeDay() {
	g.dayLog = append(g.dayLog, session.DayRecord{
		Day:    g.eco.Day(),
		Earned: g.earnedToday,
		Served: g.eco.CustomersServed(),
	})
	g.customer = economy.Customer{}
	g.patienceLeft = 0
	g.openShop()
	g.emit(core.EventDayEnded)
	g.emit(core.EventShopOpened)
}

// endRun finishes the run for the given reason.
func (g *Game) endRun(reason string) {
	g.gameOver = true
	g.endReason = reason
	g.shopOpen = false
	g.emit(core.EventRunEnded)
}

// say posts a transient notice above the field.
func (g *Game) say(msg string) {
	g.notice = msg
	g.noticeLeft = noticeTicks
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	if g.eco == nil {
		return core.GameState{}
	}
	return core.GameState{
		Money:     g.eco.Money(),
		Day:       g.eco.Day(),
		Customers: g.totalServed,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		EndReason: g.endReason,
	}
}

// DayLog returns the per-day takings recorded so far.
func (g *Game) DayLog() []session.DayRecord {
	out := make([]session.DayRecord, len(g.dayLog))
	copy(out, g.dayLog)
	return out
}
