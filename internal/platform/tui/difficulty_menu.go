package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bryomx12/farmstand/internal/core"
)

// difficultyOption pairs a pace preset with its menu line.
type difficultyOption struct {
	Preset string
	Title  string
	Blurb  string
}

var difficultyOptions = []difficultyOption{
	{Preset: "normal", Title: "Normal", Blurb: "Steady trade, the usual crowd"},
	{Preset: "easy", Title: "Easy", Blurb: "Patient customers, spare coins"},
	{Preset: "hard", Title: "Hard", Blurb: "Brisk trade from day one"},
	{Preset: "fixed", Title: "Fixed pace", Blurb: "The same crowd every day"},
}

// DifficultyModel lets the farmer choose a pace preset before a run.
type DifficultyModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	preset    string
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a pace selector sized to the terminal.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init is a no-op; the selector only reacts to keys.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and tracks terminal resizes.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = core.Min(m.cursor+1, len(difficultyOptions)-1)

	case MenuActionSelect:
		m.choosing = false
		m.preset = difficultyOptions[m.cursor].Preset
		return m, tea.Quit

	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the pace list centered in the terminal.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	rows := []string{
		menuSignStyle.Render("SEASON PACE"),
		"",
		menuBlurbStyle.Render("How busy should the stand get?"),
		"",
	}

	for i, opt := range difficultyOptions {
		line := fmt.Sprintf("  %-12s %s", opt.Title, opt.Blurb)
		style := menuIdleStyle
		if i == m.cursor {
			line = fmt.Sprintf("▶ %-12s %s", opt.Title, opt.Blurb)
			style = menuPickedStyle
		}
		rows = append(rows, style.Render(line))
	}

	rows = append(rows, "", menuFooterStyle.Render("↑/↓ choose   Enter start   Esc back   Q quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Preset returns the chosen preset, or "" if still choosing.
func (m DifficultyModel) Preset() string {
	if m.choosing {
		return ""
	}
	return m.preset
}

// IsQuitting reports whether the farmer quit outright.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports whether the farmer backed out to the title screen.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector shows the pace list and returns the chosen
// preset. An empty preset with back=true means the farmer went back.
func RunDifficultySelector(cfg core.RuntimeConfig) (preset string, back bool, err error) {
	finalModel, err := tea.NewProgram(
		NewDifficultyModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", true, nil
	}

	return m.Preset(), false, nil
}
