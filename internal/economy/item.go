// Package economy implements the money, inventory, and day-cycle rules of the
// farm stand. It is deliberately free of rendering, input, and timing
// concerns: the farm game drives it, tests poke it directly, and every
// operation is a total function that either applies or reports why it did not.
package economy

// Item is a kind of produce the farm can hold and sell. The zero value
// ItemNone means "no item" and is never stocked or sold.
type Item uint8

const (
	ItemNone Item = iota

	// Animal produce
	ItemEgg
	ItemMilk
	ItemWool
	ItemHoney

	// Crops
	ItemCarrot
	ItemTomato
	ItemPumpkin
	ItemCorn
)

// Category groups items by the kind of station that yields them.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryAnimal
	CategoryCrop
)

// String returns the lowercase item name used in configs and records.
func (i Item) String() string {
	switch i {
	case ItemEgg:
		return "egg"
	case ItemMilk:
		return "milk"
	case ItemWool:
		return "wool"
	case ItemHoney:
		return "honey"
	case ItemCarrot:
		return "carrot"
	case ItemTomato:
		return "tomato"
	case ItemPumpkin:
		return "pumpkin"
	case ItemCorn:
		return "corn"
	default:
		return "none"
	}
}

// Title returns the item name capitalized for HUD and shop labels.
func (i Item) Title() string {
	switch i {
	case ItemEgg:
		return "Egg"
	case ItemMilk:
		return "Milk"
	case ItemWool:
		return "Wool"
	case ItemHoney:
		return "Honey"
	case ItemCarrot:
		return "Carrot"
	case ItemTomato:
		return "Tomato"
	case ItemPumpkin:
		return "Pumpkin"
	case ItemCorn:
		return "Corn"
	default:
		return "None"
	}
}

// Category returns which station family produces the item.
func (i Item) Category() Category {
	switch i {
	case ItemEgg, ItemMilk, ItemWool, ItemHoney:
		return CategoryAnimal
	case ItemCarrot, ItemTomato, ItemPumpkin, ItemCorn:
		return CategoryCrop
	default:
		return CategoryNone
	}
}

// AllItems lists every sellable item in declaration order.
func AllItems() []Item {
	return []Item{
		ItemEgg, ItemMilk, ItemWool, ItemHoney,
		ItemCarrot, ItemTomato, ItemPumpkin, ItemCorn,
	}
}

// ParseItem maps a lowercase name back to an Item. The second return value
// is false for unknown names.
func ParseItem(name string) (Item, bool) {
	for _, it := range AllItems() {
		if it.String() == name {
			return it, true
		}
	}
	return ItemNone, false
}
