package farm

import (
	"fmt"

	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/economy"
)

// Render draws the current game state to the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.eco == nil {
		return
	}

	g.renderHUD(screen)

	if g.tooSmall {
		screen.DrawTextCentered(screen.Height()/2, "Terminal too small")
		screen.DrawTextCentered(screen.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	screen.DrawBoxColored(g.field, core.ColorGray)
	g.renderStations(screen)
	g.renderCounter(screen)

	screen.SetCell(g.player.X, g.player.Y, '@', core.ColorBrightWhite)

	if g.notice != "" && !g.shopOpen && !g.gameOver {
		x := (screen.Width() - len([]rune(g.notice))) / 2
		screen.DrawTextColored(x, g.field.Y+1, g.notice, core.ColorBrightWhite)
	}

	switch {
	case g.gameOver:
		g.renderRunOver(screen)
	case g.paused:
		g.renderOverlay(screen, "PAUSED", "Press P to resume")
	case g.eco.Phase() == economy.PhaseStart:
		g.renderDayBreak(screen)
	case g.shopOpen:
		g.renderShop(screen)
	}
}

// renderHUD draws the status line and its separator.
func (g *Game) renderHUD(screen *core.Screen) {
	x := 0
	draw := func(text string, c core.Color) {
		screen.DrawTextColored(x, 0, text, c)
		x += len([]rune(text))
	}

	draw(" "+g.Title(), core.ColorBrightGreen)
	if g.mode == ModeClassic {
		draw(fmt.Sprintf("   Day %d/%d", g.eco.Day(), g.cfg.Season.Days), core.ColorDefault)
	} else {
		draw(fmt.Sprintf("   Day %d", g.eco.Day()), core.ColorDefault)
	}
	draw(fmt.Sprintf("   Coins %d", g.eco.Money()), core.ColorBrightYellow)
	draw(fmt.Sprintf("   Served %d/%d", g.eco.CustomersServed(), g.eco.CustomersPerDay()), core.ColorDefault)

	draw("   Basket ", core.ColorDefault)
	held := g.eco.Inventory()
	for i := 0; i < g.eco.MaxCapacity(); i++ {
		draw("[", core.ColorGray)
		if i < len(held) {
			screen.SetCell(x, 0, itemGlyph(held[i]), itemColor(held[i]))
		} else {
			screen.SetCell(x, 0, ' ', core.ColorDefault)
		}
		x++
		draw("]", core.ColorGray)
	}

	screen.DrawHLine(0, 1, screen.Width(), '─', core.ColorGray)
}

// renderStations draws the produce spots, dimming the ones replenishing.
func (g *Game) renderStations(screen *core.Screen) {
	for _, st := range g.stations {
		border := core.ColorGreen
		if st.Item.Category() == economy.CategoryAnimal {
			border = core.ColorYellow
		}
		screen.DrawBoxColored(st.Area, border)

		cx := st.Area.X + st.Area.W/2
		cy := st.Area.Y + st.Area.H/2
		if st.Ready() {
			screen.SetCell(cx, cy, itemGlyph(st.Item), itemColor(st.Item))
		} else {
			screen.SetCell(cx, cy, itemGlyph(st.Item), core.ColorGray)
		}
	}
}

// renderCounter draws the stand counter and the waiting customer.
func (g *Game) renderCounter(screen *core.Screen) {
	screen.DrawBoxColored(g.counter, core.ColorCyan)

	text := "Closed"
	c := core.ColorGray
	if g.customer.Wants != economy.ItemNone {
		text = g.customer.Name + ": " + g.customer.Wants.Title()
		c = core.ColorDefault
		if g.patienceMax > 0 {
			rate := g.runtime.TickRate
			if rate <= 0 {
				rate = 60
			}
			secs := (g.patienceLeft + rate - 1) / rate
			text = fmt.Sprintf("%s %ds", text, secs)
			switch {
			case g.patienceLeft*2 >= g.patienceMax:
				c = core.ColorBrightGreen
			case g.patienceLeft*4 >= g.patienceMax:
				c = core.ColorBrightYellow
			default:
				c = core.ColorBrightRed
			}
		}
	}

	if n := len([]rune(text)); n > g.counter.W-4 {
		text = string([]rune(text)[:g.counter.W-4])
	}
	screen.DrawTextColored(g.counter.X+2, g.counter.Y+1, text, c)
}

// renderDayBreak draws the morning banner.
func (g *Game) renderDayBreak(screen *core.Screen) {
	title := fmt.Sprintf("Day %d", g.eco.Day())
	if g.mode == ModeClassic {
		title = fmt.Sprintf("Day %d of %d", g.eco.Day(), g.cfg.Season.Days)
	}
	g.renderOverlay(screen, title, "Press any arrow to open the stand")
}

// renderRunOver draws the end-of-run banner.
func (g *Game) renderRunOver(screen *core.Screen) {
	title := "RUN OVER"
	switch g.endReason {
	case core.EndSeasonComplete:
		title = "SEASON COMPLETE"
	case core.EndRetired:
		title = "STAND RETIRED"
	}
	g.renderOverlay(screen,
		title,
		fmt.Sprintf("%d coins banked over %d days", g.eco.Money(), g.eco.Day()),
		fmt.Sprintf("%d customers served", g.totalServed),
		"Press R to restart")
}

// renderShop draws the evening shop overlay.
func (g *Game) renderShop(screen *core.Screen) {
	boxW := core.Min(44, screen.Width()-2)
	boxH := len(g.shopEntries) + 8
	boxX := (screen.Width() - boxW) / 2
	boxY := core.Max((screen.Height()-boxH)/2, g.hudHeight)
	box := core.NewRect(boxX, boxY, boxW, boxH)

	screen.DrawRect(box, ' ')
	screen.DrawBox(box)

	screen.DrawTextCentered(boxY+1, fmt.Sprintf("Day %d closed", g.eco.Day()))
	screen.DrawTextColored((screen.Width()-len([]rune(fmt.Sprintf("Coins: %d", g.eco.Money()))))/2,
		boxY+2, fmt.Sprintf("Coins: %d", g.eco.Money()), core.ColorBrightYellow)

	for i, entry := range g.shopEntries {
		y := boxY + 4 + i
		label, cost := g.shopEntryText(entry)

		c := core.ColorDefault
		if entry.kind == entryUpgrade && entry.upgrade.Cost > g.eco.Money() {
			c = core.ColorGray
		}
		if i == g.shopCursor {
			screen.SetCell(boxX+2, y, '>', core.ColorBrightYellow)
			if c == core.ColorDefault {
				c = core.ColorBrightWhite
			}
		}

		line := fmt.Sprintf("%-*s %5s", boxW-12, label, cost)
		screen.DrawTextColored(boxX+4, y, line, c)
	}

	if g.notice != "" {
		x := (screen.Width() - len([]rune(g.notice))) / 2
		screen.DrawTextColored(x, boxY+boxH-3, g.notice, core.ColorBrightWhite)
	}
	screen.DrawTextColored(boxX+2, boxY+boxH-2, "↑/↓ choose  Enter select  Esc next day", core.ColorGray)
}

// shopEntryText returns the label and cost column for a shop row.
func (g *Game) shopEntryText(entry shopEntry) (string, string) {
	switch entry.kind {
	case entryUpgrade:
		return entry.upgrade.Label, fmt.Sprintf("%dc", entry.upgrade.Cost)
	case entryNextDay:
		if g.mode == ModeClassic && g.eco.Day() >= g.cfg.Season.Days {
			return "End the season", ""
		}
		return "Open tomorrow", ""
	case entryRetire:
		return "Retire the stand", ""
	}
	return "", ""
}

// itemGlyph is the single-rune field symbol for a produce item.
func itemGlyph(item economy.Item) rune {
	switch item {
	case economy.ItemEgg:
		return 'E'
	case economy.ItemMilk:
		return 'M'
	case economy.ItemWool:
		return 'W'
	case economy.ItemHoney:
		return 'H'
	case economy.ItemCarrot:
		return 'C'
	case economy.ItemTomato:
		return 'T'
	case economy.ItemPumpkin:
		return 'P'
	case economy.ItemCorn:
		return 'N'
	}
	return '?'
}

func itemColor(item economy.Item) core.Color {
	switch item {
	case economy.ItemEgg:
		return core.ColorBrightYellow
	case economy.ItemMilk:
		return core.ColorBrightWhite
	case economy.ItemWool:
		return core.ColorBrightCyan
	case economy.ItemHoney:
		return core.ColorYellow
	case economy.ItemCarrot:
		return core.ColorOrange
	case economy.ItemTomato:
		return core.ColorBrightRed
	case economy.ItemPumpkin:
		return core.ColorMagenta
	case economy.ItemCorn:
		return core.ColorBrightGreen
	}
	return core.ColorDefault
}
