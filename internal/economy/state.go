package economy

// Phase is where the day cycle currently stands. A day always moves
// START -> PLAYING and then, once enough customers are served, PLAYING ->
// SHOP; NextDay returns to START.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseShop
)

// String returns the phase name used in snapshots and logs.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseShop:
		return "shop"
	default:
		return "unknown"
	}
}

// Outcome reports whether an operation applied. Operations never panic and
// never partially apply: on any outcome other than OutcomeOK the state is
// exactly as it was before the call.
type Outcome uint8

const (
	OutcomeOK Outcome = iota
	OutcomeInventoryFull
	OutcomeItemNotHeld
	OutcomeInsufficientFunds
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInventoryFull:
		return "inventory_full"
	case OutcomeItemNotHeld:
		return "item_not_held"
	case OutcomeInsufficientFunds:
		return "insufficient_funds"
	default:
		return "unknown"
	}
}

// UpgradeKind selects what a purchase changes.
type UpgradeKind uint8

const (
	UpgradeAnimal   UpgradeKind = iota // unlocks an animal product
	UpgradeCrop                        // unlocks a crop
	UpgradeCapacity                    // raises the stand capacity by one
)

// String returns the lowercase kind name used in configs.
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeAnimal:
		return "animal"
	case UpgradeCrop:
		return "crop"
	case UpgradeCapacity:
		return "capacity"
	default:
		return "unknown"
	}
}

// Rules holds the numeric tuning of a run. The state copies it at
// construction, so later edits to a Rules value do not affect a live run.
type Rules struct {
	Rewards         map[Item]int // Coins paid per item
	FallbackReward  int          // Paid for items missing from Rewards
	StartingMoney   int
	MaxCapacity     int // Stand slots at the start of a run
	CustomersPerDay int // Serves needed to close the day
	StartingAnimals []Item
	StartingCrops   []Item
}

// DefaultRules returns the standard tuning: a three-slot stand, ten
// customers a day, and one starting product of each category.
func DefaultRules() Rules {
	return Rules{
		Rewards: map[Item]int{
			ItemEgg:     25,
			ItemMilk:    30,
			ItemWool:    40,
			ItemHoney:   45,
			ItemCarrot:  15,
			ItemTomato:  20,
			ItemPumpkin: 35,
			ItemCorn:    20,
		},
		FallbackReward:  20,
		StartingMoney:   0,
		MaxCapacity:     3,
		CustomersPerDay: 10,
		StartingAnimals: []Item{ItemEgg},
		StartingCrops:   []Item{ItemCarrot},
	}
}

// State is the full economic state of one run. Construct it with NewState;
// the zero value is not usable. All mutation goes through the five
// operations below, which keep the invariants: money never drops below zero,
// the inventory never exceeds capacity, and unlock sets only grow.
type State struct {
	rules Rules

	money       int
	day         int
	served      int // customers served today
	phase       Phase
	inventory   []Item
	maxCapacity int

	unlockedAnimals []Item
	unlockedCrops   []Item
}

// NewState creates a run at day 1 in the START phase with the starting
// unlocks from the rules.
func NewState(rules Rules) *State {
	s := &State{
		rules:       rules,
		money:       rules.StartingMoney,
		day:         1,
		phase:       PhaseStart,
		maxCapacity: rules.MaxCapacity,
	}
	s.rules.Rewards = make(map[Item]int, len(rules.Rewards))
	for item, reward := range rules.Rewards {
		s.rules.Rewards[item] = reward
	}
	for _, it := range rules.StartingAnimals {
		s.unlock(UpgradeAnimal, it)
	}
	for _, it := range rules.StartingCrops {
		s.unlock(UpgradeCrop, it)
	}
	return s
}

// StartDay opens the stand: the phase becomes PLAYING, today's customer
// count resets, and unsold stock from yesterday is discarded.
func (s *State) StartDay() {
	s.phase = PhasePlaying
	s.served = 0
	s.inventory = s.inventory[:0]
}

// AddItem puts one item on the stand. A full stand rejects the item and
// changes nothing.
func (s *State) AddItem(item Item) Outcome {
	if len(s.inventory) >= s.maxCapacity {
		return OutcomeInventoryFull
	}
	s.inventory = append(s.inventory, item)
	return OutcomeOK
}

// Serve sells one item to the current customer. If the stand does not hold
// the item, nothing happens. Otherwise the first matching slot is emptied,
// the reward is paid, and today's served count advances; reaching the daily
// target while the stand is open closes the day into the SHOP phase.
func (s *State) Serve(item Item) Outcome {
	idx := -1
	for i, held := range s.inventory {
		if held == item {
			idx = i
			break
		}
	}
	if idx < 0 {
		return OutcomeItemNotHeld
	}

	s.inventory = append(s.inventory[:idx], s.inventory[idx+1:]...)
	s.money += s.Reward(item)
	s.served++
	if s.phase == PhasePlaying && s.served >= s.rules.CustomersPerDay {
		s.phase = PhaseShop
	}
	return OutcomeOK
}

// BuyUpgrade spends money on a shop upgrade. Purchases the run cannot
// afford are rejected without any change. Unlock purchases are idempotent:
// buying an already-owned product charges the cost but leaves the unlock
// sets as they were.
func (s *State) BuyUpgrade(kind UpgradeKind, cost int, unlock Item) Outcome {
	if cost > s.money {
		return OutcomeInsufficientFunds
	}
	s.money -= cost

	switch kind {
	case UpgradeAnimal, UpgradeCrop:
		s.unlock(kind, unlock)
	case UpgradeCapacity:
		s.maxCapacity++
	}
	return OutcomeOK
}

// NextDay advances the calendar and returns the run to the START phase.
// It is valid from any phase.
func (s *State) NextDay() {
	s.day++
	s.phase = PhaseStart
}

// Reward returns the coins one sale of the item pays. Items missing from
// the reward table pay the fallback reward.
func (s *State) Reward(item Item) int {
	if r, ok := s.rules.Rewards[item]; ok {
		return r
	}
	return s.rules.FallbackReward
}

func (s *State) unlock(kind UpgradeKind, item Item) {
	if item == ItemNone || s.HasUnlocked(item) {
		return
	}
	if kind == UpgradeAnimal {
		s.unlockedAnimals = append(s.unlockedAnimals, item)
	} else {
		s.unlockedCrops = append(s.unlockedCrops, item)
	}
}

// Money returns the coins currently held.
func (s *State) Money() int { return s.money }

// Day returns the current day, starting at 1.
func (s *State) Day() int { return s.day }

// CustomersServed returns how many customers were served today.
func (s *State) CustomersServed() int { return s.served }

// CustomersPerDay returns how many serves close the day.
func (s *State) CustomersPerDay() int { return s.rules.CustomersPerDay }

// Phase returns the current phase of the day cycle.
func (s *State) Phase() Phase { return s.phase }

// MaxCapacity returns the current number of stand slots.
func (s *State) MaxCapacity() int { return s.maxCapacity }

// Inventory returns a copy of the stand contents in pickup order.
func (s *State) Inventory() []Item {
	out := make([]Item, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// Holds reports whether at least one of the item is on the stand.
func (s *State) Holds(item Item) bool {
	for _, held := range s.inventory {
		if held == item {
			return true
		}
	}
	return false
}

// HasUnlocked reports whether the run can produce the item.
func (s *State) HasUnlocked(item Item) bool {
	for _, it := range s.unlockedAnimals {
		if it == item {
			return true
		}
	}
	for _, it := range s.unlockedCrops {
		if it == item {
			return true
		}
	}
	return false
}

// Unlocked returns every product the run can produce, animals first, each
// category in unlock order.
func (s *State) Unlocked() []Item {
	out := make([]Item, 0, len(s.unlockedAnimals)+len(s.unlockedCrops))
	out = append(out, s.unlockedAnimals...)
	out = append(out, s.unlockedCrops...)
	return out
}
