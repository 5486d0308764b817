package farm

import (
	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/economy"
)

// Station footprint and row placement inside the field.
const (
	stationW      = 5
	stationH      = 3
	stationStride = 9 // Left edge to left edge
	counterW      = 22
)

// calculateLayout computes the field, counter, and serve zone from the
// screen size. Station rects are placed separately because they change as
// products unlock.
func (g *Game) calculateLayout() {
	g.hudHeight = 2
	g.field = core.NewRect(0, g.hudHeight, g.runtime.ScreenW, g.runtime.ScreenH-g.hudHeight)

	g.animalRowY = g.field.Y + 2
	g.cropRowY = g.field.Y + 6

	cw := core.Min(counterW, g.field.W-4)
	g.counter = core.NewRect(g.field.X+(g.field.W-cw)/2, g.field.Bottom()-3, cw, 3)

	// Standing next to the counter counts as being at it
	g.serveZone = core.NewRect(g.counter.X-1, g.counter.Y-1, g.counter.W+2, g.counter.H+1)
}

// placeStations rebuilds the station list from the current unlocks. Animals
// line up on the top row, crops below, both in unlock order. Cooldowns pick
// up the current day's pace.
func (g *Game) placeStations() {
	g.stations = g.stations[:0]

	animalX := g.field.X + 3
	cropX := g.field.X + 3
	for _, item := range g.eco.Unlocked() {
		st := &Station{
			Item:     item,
			Cooldown: g.pace.Cooldown(g.cfg.Stations.CooldownFor(item), g.eco.Day()),
		}
		if item.Category() == economy.CategoryAnimal {
			st.Area = core.NewRect(animalX, g.animalRowY, stationW, stationH)
			animalX += stationStride
		} else {
			st.Area = core.NewRect(cropX, g.cropRowY, stationW, stationH)
			cropX += stationStride
		}
		g.stations = append(g.stations, st)
	}
}

// startingPlayerPos picks a spot in the open ground between the crop row
// and the counter.
func (g *Game) startingPlayerPos() Point {
	cx, _ := g.field.Center()
	walk := g.field.Inset(1)
	y := core.Clamp(g.cropRowY+stationH+2, walk.Y, walk.Bottom()-1)
	return Point{X: core.Clamp(cx, walk.X, walk.Right()-1), Y: y}
}
