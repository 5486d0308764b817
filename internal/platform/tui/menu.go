package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/registry"
)

// Title screen styles. The records browser carries its own set.
var (
	menuSignStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 3).
			Foreground(lipgloss.Color("11")).
			Bold(true)
	menuPickedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	menuIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuBlurbStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// modeBlurbs is the one-line pitch under each mode on the title screen.
var modeBlurbs = map[string]string{
	"classic": "A short season to make the stand's name",
	"endless": "Keep the gate open as long as it pays",
}

// MenuItem is one selectable mode on the title screen.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items  []MenuItem
	cursor int

	config core.RuntimeConfig
	width  int
	height int

	keyMapper   *KeyMapper
	selected    *MenuItem
	openRecords bool
	quitting    bool
}

// NewMenuModel builds the title screen from the registered modes.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, 2)
	for _, info := range registry.List() {
		items = append(items, MenuItem{
			GameID: info.ID,
			Title:  info.Title,
			Blurb:  modeBlurbs[info.ID],
		})
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init is a no-op; the title screen only reacts to keys.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and tracks terminal resizes.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = core.Min(m.cursor+1, len(m.items)-1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			picked := m.items[m.cursor]
			m.selected = &picked
			return m, tea.Quit
		}

	case MenuActionRecords:
		m.openRecords = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the title screen centered in the terminal.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var rows []string
	rows = append(rows, menuSignStyle.Render("F A R M   S T A N D"))
	rows = append(rows, "")

	for i, item := range m.items {
		line := "  " + item.Title
		style := menuIdleStyle
		if i == m.cursor {
			line = "▶ " + item.Title
			style = menuPickedStyle
		}
		rows = append(rows, style.Render(line))
		if item.Blurb != "" {
			rows = append(rows, menuBlurbStyle.Render("    "+item.Blurb))
		}
		rows = append(rows, "")
	}

	rows = append(rows, menuFooterStyle.Render("↑/↓ choose   Enter start   Tab records   Q quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Selected returns the chosen mode, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the farmer quit from the title screen.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords reports whether the farmer asked for the past runs view.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// Config returns the runtime config, which tracks terminal resizes while
// the menu is up.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text to sit mid-line. Text at least as wide as the
// line passes through untouched.
func centerText(text string, width int) string {
	pad := (width - len(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what the farmer chose on the title screen.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsRecords bool
	Quit         bool
}

// RunMenu runs the title screen and reports what the farmer picked.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsRecords():
		result.WantsRecords = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
