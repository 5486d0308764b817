package farm

import (
	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/economy"
)

// entryKind tells the shop rows apart.
type entryKind int

const (
	entryUpgrade entryKind = iota
	entryNextDay
	entryRetire
)

// shopEntry is one selectable row in the evening shop.
type shopEntry struct {
	kind    entryKind
	upgrade economy.Upgrade
}

// openShop builds the shop menu and shows the overlay.
func (g *Game) openShop() {
	g.shopOpen = true
	g.shopCursor = 0
	g.rebuildShopEntries()
}

// rebuildShopEntries refreshes the rows after a purchase.
func (g *Game) rebuildShopEntries() {
	entries := make([]shopEntry, 0, len(g.catalog)+2)
	for _, up := range g.catalog.Available(g.eco) {
		entries = append(entries, shopEntry{kind: entryUpgrade, upgrade: up})
	}
	entries = append(entries, shopEntry{kind: entryNextDay})
	entries = append(entries, shopEntry{kind: entryRetire})
	g.shopEntries = entries
	if g.shopCursor >= len(entries) {
		g.shopCursor = len(entries) - 1
	}
}

// stepShop handles input while the evening shop is open.
func (g *Game) stepShop(input core.InputFrame) {
	if !g.shopOpen {
		// Shop phase without the overlay happens only transiently; reopen.
		g.openShop()
	}

	if input.Has(core.ActionUp) && g.shopCursor > 0 {
		g.shopCursor--
	}
	if input.Has(core.ActionDown) && g.shopCursor < len(g.shopEntries)-1 {
		g.shopCursor++
	}
	if input.Has(core.ActionConfirm) {
		g.selectShopEntry()
		return
	}
	if input.Has(core.ActionBack) {
		g.startNextDay()
	}
}

// selectShopEntry activates the row under the cursor.
func (g *Game) selectShopEntry() {
	if g.shopCursor < 0 || g.shopCursor >= len(g.shopEntries) {
		return
	}
	entry := g.shopEntries[g.shopCursor]

	switch entry.kind {
	case entryUpgrade:
		up := entry.upgrade
		switch g.eco.BuyUpgrade(up.Kind, up.Cost, up.Unlock) {
		case economy.OutcomeOK:
			g.say("Bought " + up.Label)
			g.emit(core.EventUpgradeBought)
			g.rebuildShopEntries()
		case economy.OutcomeInsufficientFunds:
			g.say("Not enough coins")
			g.emit(core.EventUpgradeRejected)
		}
	case entryNextDay:
		g.startNextDay()
	case entryRetire:
		g.endRun(core.EndRetired)
	}
}

// startNextDay leaves the shop, ending the season when its last day is done.
func (g *Game) startNextDay() {
	g.shopOpen = false
	if g.mode == ModeClassic && g.eco.Day() >= g.cfg.Season.Days {
		g.endRun(core.EndSeasonComplete)
		return
	}
	g.eco.NextDay()
}
