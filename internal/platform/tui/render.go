package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bryomx12/farmstand/internal/core"
)

// palette maps core colors to ANSI 256 codes. The farm picks colors from
// core's palette; only this table knows what they look like in a terminal.
var palette = map[core.Color]string{
	core.ColorGreen:        "2",
	core.ColorBrightGreen:  "10",
	core.ColorYellow:       "3",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorBrightCyan:   "14",
	core.ColorGray:         "245",
	core.ColorBrightRed:    "9",
	core.ColorBrightWhite:  "15",
}

var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	m := make(map[core.Color]lipgloss.Style, len(palette)+1)
	m[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return m
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are emitted as one styled run to keep the
// ANSI escape overhead down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
