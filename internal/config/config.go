// Package config provides YAML-based configuration loading and day-by-day
// pacing for the farm stand.
package config

import (
	"github.com/bryomx12/farmstand/internal/economy"
)

// FarmConfig contains every tunable of a farm run. All modes share one
// config file; the endless mode simply ignores the season length.
type FarmConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Stations   StationsConfig   `yaml:"stations"`
	Orders     OrdersConfig     `yaml:"orders"`
	Shop       ShopConfig       `yaml:"shop"`
	Season     SeasonConfig     `yaml:"season"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RulesConfig is the YAML shape of the economy rules. Item names are the
// lowercase forms ("egg", "carrot").
type RulesConfig struct {
	StartingMoney   int            `yaml:"starting_money"`
	MaxCapacity     int            `yaml:"max_capacity"`
	CustomersPerDay int            `yaml:"customers_per_day"`
	FallbackReward  int            `yaml:"fallback_reward"`
	Rewards         map[string]int `yaml:"rewards"`
	StartingAnimals []string       `yaml:"starting_animals"`
	StartingCrops   []string       `yaml:"starting_crops"`
}

// StationsConfig tunes how quickly stations replenish, in ticks.
type StationsConfig struct {
	DefaultCooldown int            `yaml:"default_cooldown"`
	Cooldowns       map[string]int `yaml:"cooldowns"`
}

// OrdersConfig tunes customer behavior.
type OrdersConfig struct {
	// PatienceTicks is how long a customer waits at the counter before
	// walking off. 0 means customers wait forever.
	PatienceTicks int `yaml:"patience_ticks"`
}

// SeasonConfig sets the length of a classic run.
type SeasonConfig struct {
	Days int `yaml:"days"`
}

// ShopConfig lists the purchasable upgrades.
type ShopConfig struct {
	Upgrades []UpgradeConfig `yaml:"upgrades"`
}

// UpgradeConfig is the YAML shape of one shop entry. Kind is "animal",
// "crop", or "capacity"; Item applies to unlock kinds and Capacity to
// capacity kinds.
type UpgradeConfig struct {
	ID       string `yaml:"id"`
	Kind     string `yaml:"kind"`
	Cost     int    `yaml:"cost"`
	Item     string `yaml:"item,omitempty"`
	Capacity int    `yaml:"capacity,omitempty"`
	Label    string `yaml:"label"`
}

// DifficultyConfig defines how the farm tightens as days pass.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0 easy, 1 hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig sets how fast the farm tightens as days pass.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "day" or "none"
	MaxAt int    `yaml:"max_at"` // Days until max difficulty is reached
}

// ScalingConfig sets how hard max difficulty bites.
type ScalingConfig struct {
	PatienceReduction int     `yaml:"patience_reduction"` // Ticks removed from patience at max difficulty
	CooldownIncrease  float64 `yaml:"cooldown_increase"`  // Fraction added to station cooldowns at max
}

// DifficultyPreset is a named starting point on the difficulty curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset maps a preset onto the curve's starting level.
// Easy and unknown presets start at the bottom.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0
	}
}

// IsFixedPreset reports whether the preset freezes the difficulty curve.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ToRules converts the YAML rules into economy rules. Unknown item names
// are dropped so a typo in a custom config degrades to the fallback reward
// instead of breaking the run.
func (rc RulesConfig) ToRules() economy.Rules {
	rules := economy.Rules{
		Rewards:         make(map[economy.Item]int, len(rc.Rewards)),
		FallbackReward:  rc.FallbackReward,
		StartingMoney:   rc.StartingMoney,
		MaxCapacity:     rc.MaxCapacity,
		CustomersPerDay: rc.CustomersPerDay,
	}
	for name, reward := range rc.Rewards {
		if item, ok := economy.ParseItem(name); ok {
			rules.Rewards[item] = reward
		}
	}
	for _, name := range rc.StartingAnimals {
		if item, ok := economy.ParseItem(name); ok {
			rules.StartingAnimals = append(rules.StartingAnimals, item)
		}
	}
	for _, name := range rc.StartingCrops {
		if item, ok := economy.ParseItem(name); ok {
			rules.StartingCrops = append(rules.StartingCrops, item)
		}
	}
	return rules
}

// ToCatalog converts the YAML shop into an economy catalog, dropping
// entries with unknown kinds or item names.
func (sc ShopConfig) ToCatalog() economy.Catalog {
	var cat economy.Catalog
	for _, uc := range sc.Upgrades {
		up := economy.Upgrade{
			ID:       uc.ID,
			Cost:     uc.Cost,
			Capacity: uc.Capacity,
			Label:    uc.Label,
		}
		switch uc.Kind {
		case "animal":
			up.Kind = economy.UpgradeAnimal
		case "crop":
			up.Kind = economy.UpgradeCrop
		case "capacity":
			up.Kind = economy.UpgradeCapacity
		default:
			continue
		}
		if up.Kind != economy.UpgradeCapacity {
			item, ok := economy.ParseItem(uc.Item)
			if !ok {
				continue
			}
			up.Unlock = item
		}
		cat = append(cat, up)
	}
	return cat
}

// CooldownFor returns the replenish time for one item's station.
func (sc StationsConfig) CooldownFor(item economy.Item) int {
	if ticks, ok := sc.Cooldowns[item.String()]; ok {
		return ticks
	}
	return sc.DefaultCooldown
}
