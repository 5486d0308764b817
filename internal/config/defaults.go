package config

import (
	_ "embed"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultFarmConfig returns the standard farm tuning. It mirrors the
// embedded defaults/farm.yaml and is the fallback of last resort if the
// embedded copy fails to parse.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		Rules: RulesConfig{
			StartingMoney:   0,
			MaxCapacity:     3,
			CustomersPerDay: 10,
			FallbackReward:  20,
			Rewards: map[string]int{
				"egg":     25,
				"milk":    30,
				"wool":    40,
				"honey":   45,
				"carrot":  15,
				"tomato":  20,
				"pumpkin": 35,
				"corn":    20,
			},
			StartingAnimals: []string{"egg"},
			StartingCrops:   []string{"carrot"},
		},
		Stations: StationsConfig{
			DefaultCooldown: 180, // 3 seconds at 60 ticks
			Cooldowns: map[string]int{
				"egg":     150,
				"milk":    240,
				"wool":    300,
				"honey":   270,
				"carrot":  150,
				"tomato":  210,
				"pumpkin": 330,
				"corn":    240,
			},
		},
		Orders: OrdersConfig{
			PatienceTicks: 900, // 15 seconds at 60 ticks
		},
		Shop: ShopConfig{
			Upgrades: []UpgradeConfig{
				{ID: "tomato_patch", Kind: "crop", Cost: 80, Item: "tomato", Label: "Tomato patch"},
				{ID: "dairy_cow", Kind: "animal", Cost: 100, Item: "milk", Label: "Dairy cow"},
				{ID: "baskets_1", Kind: "capacity", Cost: 150, Capacity: 4, Label: "Extra basket"},
				{ID: "corn_field", Kind: "crop", Cost: 180, Item: "corn", Label: "Corn field"},
				{ID: "beehive", Kind: "animal", Cost: 250, Item: "honey", Label: "Beehive"},
				{ID: "baskets_2", Kind: "capacity", Cost: 300, Capacity: 5, Label: "Market baskets"},
				{ID: "pumpkin_plot", Kind: "crop", Cost: 320, Item: "pumpkin", Label: "Pumpkin plot"},
				{ID: "wool_shed", Kind: "animal", Cost: 400, Item: "wool", Label: "Wool shed"},
			},
		},
		Season: SeasonConfig{
			Days: 7,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "day",
				MaxAt: 14,
			},
			Scaling: ScalingConfig{
				PatienceReduction: 420,
				CooldownIncrease:  0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default config, for exporting a starting
// point users can edit.
func DefaultYAML() []byte {
	return defaultFarmYAML
}
