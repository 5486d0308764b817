package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(DefaultRules())

	assert.Equal(t, 0, s.Money())
	assert.Equal(t, 1, s.Day())
	assert.Equal(t, 0, s.CustomersServed())
	assert.Equal(t, PhaseStart, s.Phase())
	assert.Equal(t, 3, s.MaxCapacity())
	assert.Empty(t, s.Inventory())
	assert.Equal(t, []Item{ItemEgg, ItemCarrot}, s.Unlocked())
}

func TestStartDayOpensTheStand(t *testing.T) {
	s := NewState(DefaultRules())
	s.StartDay()
	require.Equal(t, PhasePlaying, s.Phase())

	// Leave stock and progress behind, then roll into the next morning.
	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))
	require.Equal(t, OutcomeOK, s.AddItem(ItemCarrot))
	require.Equal(t, OutcomeOK, s.Serve(ItemEgg))
	s.NextDay()
	s.StartDay()

	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 0, s.CustomersServed(), "served count resets each morning")
	assert.Empty(t, s.Inventory(), "unsold stock is discarded overnight")
	assert.Equal(t, 2, s.Day())
}

func TestAddItemRespectsCapacity(t *testing.T) {
	s := NewState(DefaultRules())
	s.StartDay()

	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))
	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))
	require.Equal(t, OutcomeOK, s.AddItem(ItemCarrot))

	// Fourth pickup bounces off a three-slot stand.
	assert.Equal(t, OutcomeInventoryFull, s.AddItem(ItemEgg))
	assert.Equal(t, []Item{ItemEgg, ItemEgg, ItemCarrot}, s.Inventory())
}

func TestServeRequiresTheItem(t *testing.T) {
	s := NewState(DefaultRules())
	s.StartDay()
	require.Equal(t, OutcomeOK, s.AddItem(ItemCarrot))

	got := s.Serve(ItemEgg)

	assert.Equal(t, OutcomeItemNotHeld, got)
	assert.Equal(t, 0, s.Money(), "a refused sale pays nothing")
	assert.Equal(t, 0, s.CustomersServed())
	assert.Equal(t, []Item{ItemCarrot}, s.Inventory())
}

func TestServePaysAndRemovesFirstMatch(t *testing.T) {
	s := NewState(DefaultRules())
	s.StartDay()
	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))
	require.Equal(t, OutcomeOK, s.AddItem(ItemCarrot))
	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))

	require.Equal(t, OutcomeOK, s.Serve(ItemEgg))

	assert.Equal(t, 25, s.Money())
	assert.Equal(t, 1, s.CustomersServed())
	assert.Equal(t, []Item{ItemCarrot, ItemEgg}, s.Inventory(), "only the first egg leaves the stand")
}

func TestServeTenthCustomerClosesTheDay(t *testing.T) {
	s := NewState(DefaultRules())
	s.StartDay()

	// Walk through a whole day of carrot customers.
	for i := 0; i < 9; i++ {
		require.Equal(t, OutcomeOK, s.AddItem(ItemCarrot))
		require.Equal(t, OutcomeOK, s.Serve(ItemCarrot))
		require.Equal(t, PhasePlaying, s.Phase(), "stand stays open after customer %d", i+1)
	}

	require.Equal(t, OutcomeOK, s.AddItem(ItemCarrot))
	require.Equal(t, OutcomeOK, s.Serve(ItemCarrot))

	assert.Equal(t, PhaseShop, s.Phase())
	assert.Equal(t, 10, s.CustomersServed())
	assert.Equal(t, 150, s.Money())
}

func TestEveningRushScenario(t *testing.T) {
	// Nine served, 50 coins in the till, one egg customer to go.
	s := NewState(DefaultRules())
	s.StartDay()
	s.money = 50
	s.served = 9

	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))
	require.Equal(t, OutcomeOK, s.Serve(ItemEgg))

	assert.Equal(t, 75, s.Money())
	assert.Equal(t, 10, s.CustomersServed())
	assert.Equal(t, PhaseShop, s.Phase())
	assert.Empty(t, s.Inventory())
}

func TestRewardFallsBackForUnpricedItems(t *testing.T) {
	rules := DefaultRules()
	delete(rules.Rewards, ItemWool)
	s := NewState(rules)

	assert.Equal(t, 20, s.Reward(ItemWool), "unpriced items pay the fallback")
	assert.Equal(t, 25, s.Reward(ItemEgg))

	s.StartDay()
	require.Equal(t, OutcomeOK, s.AddItem(ItemWool))
	require.Equal(t, OutcomeOK, s.Serve(ItemWool))
	assert.Equal(t, 20, s.Money())
}

func TestServeBeyondTheTargetKeepsShopPhase(t *testing.T) {
	s := NewState(DefaultRules())
	s.StartDay()
	s.served = 10
	s.phase = PhaseShop

	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))
	require.Equal(t, OutcomeOK, s.Serve(ItemEgg))

	assert.Equal(t, PhaseShop, s.Phase())
	assert.Equal(t, 11, s.CustomersServed())
}

func TestServeBeforeOpeningDoesNotSkipAhead(t *testing.T) {
	// Serving while the stand is closed is a no-op path the farm never
	// takes, but the phase must not jump straight from START to SHOP.
	s := NewState(DefaultRules())
	s.served = 9
	s.inventory = append(s.inventory, ItemEgg)

	require.Equal(t, OutcomeOK, s.Serve(ItemEgg))

	assert.Equal(t, 10, s.CustomersServed())
	assert.Equal(t, PhaseStart, s.Phase())
}

func TestBuyUpgradeNeedsTheCoins(t *testing.T) {
	s := NewState(DefaultRules())
	s.money = 99

	got := s.BuyUpgrade(UpgradeAnimal, 100, ItemMilk)

	assert.Equal(t, OutcomeInsufficientFunds, got)
	assert.Equal(t, 99, s.Money(), "a refused purchase costs nothing")
	assert.False(t, s.HasUnlocked(ItemMilk))
}

func TestBuyUpgradeUnlocksProducts(t *testing.T) {
	s := NewState(DefaultRules())
	s.money = 500

	require.Equal(t, OutcomeOK, s.BuyUpgrade(UpgradeAnimal, 100, ItemMilk))
	require.Equal(t, OutcomeOK, s.BuyUpgrade(UpgradeCrop, 80, ItemTomato))

	assert.Equal(t, 320, s.Money())
	assert.True(t, s.HasUnlocked(ItemMilk))
	assert.True(t, s.HasUnlocked(ItemTomato))
	assert.Equal(t, []Item{ItemEgg, ItemMilk, ItemCarrot, ItemTomato}, s.Unlocked(),
		"animals come first, each category in unlock order")
}

func TestBuyUpgradeUnlockIsIdempotent(t *testing.T) {
	s := NewState(DefaultRules())
	s.money = 200

	require.Equal(t, OutcomeOK, s.BuyUpgrade(UpgradeAnimal, 100, ItemMilk))
	require.Equal(t, OutcomeOK, s.BuyUpgrade(UpgradeAnimal, 100, ItemMilk))

	assert.Equal(t, 0, s.Money(), "the coins are spent either way")
	assert.Len(t, s.Unlocked(), 3, "the unlock set does not grow twice")
}

func TestBuyUpgradeRaisesCapacity(t *testing.T) {
	s := NewState(DefaultRules())
	s.StartDay()
	s.money = 150

	require.Equal(t, OutcomeOK, s.BuyUpgrade(UpgradeCapacity, 150, ItemNone))
	require.Equal(t, 4, s.MaxCapacity())

	for i := 0; i < 4; i++ {
		require.Equal(t, OutcomeOK, s.AddItem(ItemCarrot), "slot %d", i+1)
	}
	assert.Equal(t, OutcomeInventoryFull, s.AddItem(ItemCarrot))
}

func TestNextDayFromAnyPhase(t *testing.T) {
	s := NewState(DefaultRules())

	s.StartDay()
	s.NextDay()
	assert.Equal(t, 2, s.Day())
	assert.Equal(t, PhaseStart, s.Phase())

	s.StartDay()
	s.served = 10
	s.phase = PhaseShop
	s.NextDay()
	assert.Equal(t, 3, s.Day())
	assert.Equal(t, PhaseStart, s.Phase())
}

func TestRulesCopiedAtConstruction(t *testing.T) {
	rules := DefaultRules()
	s := NewState(rules)

	rules.CustomersPerDay = 1
	s.StartDay()
	require.Equal(t, OutcomeOK, s.AddItem(ItemEgg))
	require.Equal(t, OutcomeOK, s.Serve(ItemEgg))

	assert.Equal(t, PhasePlaying, s.Phase(), "editing the caller's rules must not retune a live run")
}
