package economy

import "math/rand"

// Customer is one visitor at the counter wanting a single item.
type Customer struct {
	Name  string
	Wants Item
}

// customerNames is the pool of visitor names shown at the counter.
var customerNames = []string{
	"Ada", "Bjorn", "Clara", "Dmitri", "Edna", "Fergus",
	"Greta", "Hank", "Ingrid", "Jasper", "Klara", "Lars",
	"Marta", "Nils", "Oskar", "Petra", "Quinn", "Rosa",
	"Sven", "Tilda", "Ulf", "Vera", "Wim", "Yrsa",
}

// OrderBook produces the stream of customers for a run. Orders are drawn
// only from products the state has unlocked, so every order is fulfillable
// in principle. The book reads the state but never mutates it.
type OrderBook struct {
	rng   *rand.Rand
	state *State
}

// NewOrderBook creates an order book over the given state. The rng drives
// which item and name each customer gets; share the game's seeded source to
// keep runs reproducible.
func NewOrderBook(rng *rand.Rand, state *State) *OrderBook {
	return &OrderBook{rng: rng, state: state}
}

// Next draws the next customer. With nothing unlocked (an empty rules set)
// the customer wants nothing and the farm should treat the day as idle.
func (b *OrderBook) Next() Customer {
	name := customerNames[b.rng.Intn(len(customerNames))]

	unlocked := b.state.Unlocked()
	if len(unlocked) == 0 {
		return Customer{Name: name}
	}
	return Customer{
		Name:  name,
		Wants: unlocked[b.rng.Intn(len(unlocked))],
	}
}
