package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bryomx12/farmstand/internal/economy"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded FarmConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &embedded))

	assert.Equal(t, DefaultFarmConfig(), embedded,
		"defaults/farm.yaml and DefaultFarmConfig must describe the same tuning")
}

func TestDefaultRulesConversion(t *testing.T) {
	rules := DefaultFarmConfig().Rules.ToRules()

	assert.Equal(t, 0, rules.StartingMoney)
	assert.Equal(t, 3, rules.MaxCapacity)
	assert.Equal(t, 10, rules.CustomersPerDay)
	assert.Equal(t, 20, rules.FallbackReward)
	assert.Equal(t, 25, rules.Rewards[economy.ItemEgg])
	assert.Equal(t, 15, rules.Rewards[economy.ItemCarrot])
	assert.Equal(t, []economy.Item{economy.ItemEgg}, rules.StartingAnimals)
	assert.Equal(t, []economy.Item{economy.ItemCarrot}, rules.StartingCrops)
}

func TestRulesConversionDropsUnknownNames(t *testing.T) {
	rc := RulesConfig{
		FallbackReward:  20,
		Rewards:         map[string]int{"egg": 25, "dragonfruit": 999},
		StartingAnimals: []string{"egg", "unicorn"},
	}

	rules := rc.ToRules()

	assert.Equal(t, map[economy.Item]int{economy.ItemEgg: 25}, rules.Rewards)
	assert.Equal(t, []economy.Item{economy.ItemEgg}, rules.StartingAnimals)
}

func TestDefaultCatalogConversion(t *testing.T) {
	cat := DefaultFarmConfig().Shop.ToCatalog()
	require.Len(t, cat, 8)

	cow, ok := cat.Find("dairy_cow")
	require.True(t, ok)
	assert.Equal(t, economy.UpgradeAnimal, cow.Kind)
	assert.Equal(t, economy.ItemMilk, cow.Unlock)
	assert.Equal(t, 100, cow.Cost)

	baskets, ok := cat.Find("baskets_1")
	require.True(t, ok)
	assert.Equal(t, economy.UpgradeCapacity, baskets.Kind)
	assert.Equal(t, 4, baskets.Capacity)
}

func TestCatalogConversionDropsBadEntries(t *testing.T) {
	sc := ShopConfig{Upgrades: []UpgradeConfig{
		{ID: "ok", Kind: "crop", Cost: 10, Item: "tomato", Label: "Tomato patch"},
		{ID: "bad_kind", Kind: "building", Cost: 10, Item: "tomato", Label: "x"},
		{ID: "bad_item", Kind: "crop", Cost: 10, Item: "dragonfruit", Label: "x"},
	}}

	cat := sc.ToCatalog()

	require.Len(t, cat, 1)
	assert.Equal(t, "ok", cat[0].ID)
}

func TestCooldownForFallsBack(t *testing.T) {
	sc := StationsConfig{
		DefaultCooldown: 180,
		Cooldowns:       map[string]int{"egg": 150},
	}

	assert.Equal(t, 150, sc.CooldownFor(economy.ItemEgg))
	assert.Equal(t, 180, sc.CooldownFor(economy.ItemWool))
}

func TestPaceLevelProgression(t *testing.T) {
	pace := NewPace(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "day", MaxAt: 10},
		Scaling:      ScalingConfig{PatienceReduction: 400, CooldownIncrease: 0.5},
	})

	assert.InDelta(t, 0.0, pace.Level(1), 0.001, "day one is the baseline")
	assert.InDelta(t, 0.5, pace.Level(6), 0.001)
	assert.InDelta(t, 1.0, pace.Level(11), 0.001)
	assert.InDelta(t, 1.0, pace.Level(30), 0.001, "level is capped at 1.0")
}

func TestPaceRespectsInitialLevel(t *testing.T) {
	pace := NewPace(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "day", MaxAt: 10},
	})
	pace.SetInitialLevel(0.7)

	assert.InDelta(t, 0.7, pace.Level(1), 0.001)
	assert.Greater(t, pace.Level(6), 0.7)

	pace.SetEnabled(false)
	assert.InDelta(t, 0.7, pace.Level(20), 0.001, "disabled pace stays at the initial level")
}

func TestPacePatienceFloorsAndCooldownGrows(t *testing.T) {
	pace := NewPace(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "day", MaxAt: 10},
		Scaling:      ScalingConfig{PatienceReduction: 10000, CooldownIncrease: 0.5},
	})

	assert.Equal(t, 180, pace.Patience(900, 5), "patience never drops below the floor")
	assert.Equal(t, 0, pace.Patience(0, 5), "zero base keeps patience disabled")
	assert.Equal(t, 270, pace.Cooldown(180, 5))
}

func TestApplyFarmPreset(t *testing.T) {
	base := DefaultFarmConfig()

	easy := base
	ApplyFarmPreset(&easy, DifficultyEasy)
	assert.True(t, easy.Difficulty.Enabled)
	assert.InDelta(t, 0.0, easy.Difficulty.InitialLevel, 0.001)
	assert.Greater(t, easy.Orders.PatienceTicks, base.Orders.PatienceTicks)
	assert.Equal(t, base.Rules.StartingMoney+50, easy.Rules.StartingMoney)

	hard := base
	ApplyFarmPreset(&hard, DifficultyHard)
	assert.InDelta(t, 0.7, hard.Difficulty.InitialLevel, 0.001)
	assert.Less(t, hard.Orders.PatienceTicks, base.Orders.PatienceTicks)

	fixed := base
	ApplyFarmPreset(&fixed, DifficultyFixed)
	assert.False(t, fixed.Difficulty.Enabled)
}

func TestLoadFarmCustomPathErrors(t *testing.T) {
	_, err := LoadFarm("/does/not/exist.yaml")
	assert.Error(t, err, "an explicit config path must not fall back silently")
}
