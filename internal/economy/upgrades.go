package economy

// Upgrade is one purchasable entry in the shop. For unlock kinds, Unlock
// names the product gained; for capacity kinds, Capacity is the slot count
// the stand has after buying it, which lets the catalog offer basket
// upgrades one step at a time.
type Upgrade struct {
	ID       string
	Kind     UpgradeKind
	Cost     int
	Unlock   Item
	Capacity int
	Label    string
}

// Catalog is the full list of upgrades a run can ever buy.
type Catalog []Upgrade

// DefaultCatalog returns the standard shop: three animal unlocks, three
// crop unlocks, and two basket upgrades.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "tomato_patch", Kind: UpgradeCrop, Cost: 80, Unlock: ItemTomato, Label: "Tomato patch"},
		{ID: "dairy_cow", Kind: UpgradeAnimal, Cost: 100, Unlock: ItemMilk, Label: "Dairy cow"},
		{ID: "baskets_1", Kind: UpgradeCapacity, Cost: 150, Capacity: 4, Label: "Extra basket"},
		{ID: "corn_field", Kind: UpgradeCrop, Cost: 180, Unlock: ItemCorn, Label: "Corn field"},
		{ID: "beehive", Kind: UpgradeAnimal, Cost: 250, Unlock: ItemHoney, Label: "Beehive"},
		{ID: "baskets_2", Kind: UpgradeCapacity, Cost: 300, Capacity: 5, Label: "Market baskets"},
		{ID: "pumpkin_plot", Kind: UpgradeCrop, Cost: 320, Unlock: ItemPumpkin, Label: "Pumpkin plot"},
		{ID: "wool_shed", Kind: UpgradeAnimal, Cost: 400, Unlock: ItemWool, Label: "Wool shed"},
	}
}

// Available filters the catalog down to what the state can still buy:
// unlocks not yet owned, and the next basket step only. Affordability is
// not checked here; the shop shows unaffordable entries greyed out.
func (c Catalog) Available(s *State) []Upgrade {
	var out []Upgrade
	for _, up := range c {
		switch up.Kind {
		case UpgradeAnimal, UpgradeCrop:
			if !s.HasUnlocked(up.Unlock) {
				out = append(out, up)
			}
		case UpgradeCapacity:
			if s.MaxCapacity() == up.Capacity-1 {
				out = append(out, up)
			}
		}
	}
	return out
}

// Find returns the upgrade with the given ID.
func (c Catalog) Find(id string) (Upgrade, bool) {
	for _, up := range c {
		if up.ID == id {
			return up, true
		}
	}
	return Upgrade{}, false
}
