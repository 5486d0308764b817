package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/registry"
	"github.com/bryomx12/farmstand/internal/storage"
)

const (
	minWidthForSidebar = 80  // Below this the season panel is folded into one line
	sidebarWidth       = 24  // Width of the season stats panel
	maxRuns            = 100 // Max runs to load per mode
)

// Records screen styles.
var (
	recordsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)
	recordsPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	recordsStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	recordsEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true).
				Padding(2, 4)
	recordsHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	recordsActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
}

// ShortHelp is the single-line hint row under the table.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp is the expanded help grid.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap binds scrolling, season switching, and exit keys.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev season")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next season")),
		NextMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next season")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev season")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// RecordsModel is the Bubble Tea model for the past runs screen. It shows
// the best runs of one mode at a time, with season totals alongside.
type RecordsModel struct {
	modes      []registry.Info
	modeCursor int
	store      *storage.Store
	runs       []storage.RunEntry
	stats      map[string]*storage.ModeStats
	table      table.Model
	help       help.Model
	keys       RecordsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewRecordsModel creates a records model sized to the terminal.
func NewRecordsModel(store *storage.Store, width, height int) RecordsModel {
	m := RecordsModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultRecordsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadStats()
	if len(m.modes) > 0 {
		m.loadRuns(m.modes[0].ID)
	}
	return m
}

func (m RecordsModel) sidebarFits() bool {
	return m.width >= minWidthForSidebar
}

// createTable builds the run table sized to the current layout.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Days", Width: 5},
		{Title: "Coins", Width: 7},
		{Title: "Served", Width: 6},
		{Title: "End", Width: 9},
		{Title: "When", Width: 13},
	}

	tableWidth := m.width - 4
	if m.sidebarFits() {
		tableWidth -= sidebarWidth + 3
	}

	// Spare room goes to the player column
	if extra := tableWidth - 55; extra > 0 {
		columns[1].Width = core.Min(columns[1].Width+extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("65")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// loadStats fetches per-mode season totals for the side panel.
func (m *RecordsModel) loadStats() {
	if m.store == nil {
		return
	}
	stats, err := m.store.AllRunStats()
	if err != nil {
		return
	}
	m.stats = stats
}

// loadRuns loads the leaderboard for one mode.
func (m *RecordsModel) loadRuns(mode string) {
	m.runs = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(mode, maxRuns); err == nil {
			m.runs = runs
		}
	}
	m.refreshRows()
}

// endLabel condenses a stored end reason into a table cell.
func endLabel(reason string) string {
	switch reason {
	case core.EndSeasonComplete:
		return "complete"
	case core.EndRetired:
		return "retired"
	}
	return "-"
}

func (m *RecordsModel) refreshRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", r.Days),
			fmt.Sprintf("%d", r.Money),
			fmt.Sprintf("%d", r.Customers),
			endLabel(r.EndReason),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init is a no-op; rows are loaded when the model is built.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update routes keys it owns and hands the rest to the table.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.refreshRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RecordsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.NextMode), key.Matches(msg, m.keys.Right):
		m.switchMode(1)
		return m, nil, true

	case key.Matches(msg, m.keys.PrevMode), key.Matches(msg, m.keys.Left):
		m.switchMode(-1)
		return m, nil, true
	}
	return m, nil, false
}

func (m *RecordsModel) switchMode(dir int) {
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (m.modeCursor + dir + len(m.modes)) % len(m.modes)
	m.loadRuns(m.modes[m.modeCursor].ID)
}

// View lays out the title, the season panel, and the run table.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "PAST RUNS"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("PAST RUNS - %s", m.modes[m.modeCursor].Title)
	}
	b.WriteString(recordsTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	runPane := recordsPaneStyle.Render(m.renderRuns())
	if m.sidebarFits() {
		seasonPane := recordsPaneStyle.Width(sidebarWidth).Render(m.renderSeasonPanel())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, seasonPane, "  ", runPane))
	} else {
		b.WriteString(centerText(m.seasonSummaryLine(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(runPane, m.width))
	}

	b.WriteString("\n")
	b.WriteString(recordsHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSeasonPanel lists both seasons with their lifetime totals and marks
// the one on screen.
func (m RecordsModel) renderSeasonPanel() string {
	var b strings.Builder
	b.WriteString("Seasons\n")
	b.WriteString(strings.Repeat("─", sidebarWidth-4))
	b.WriteString("\n")

	for i, info := range m.modes {
		marker := "  "
		style := lipgloss.NewStyle()
		if i == m.modeCursor {
			marker = "▶ "
			style = recordsActiveStyle
		}
		b.WriteString(style.Render(marker + info.Title))
		b.WriteString("\n")

		if st := m.stats[info.ID]; st != nil && st.RunsCount > 0 {
			b.WriteString(recordsStatStyle.Render(fmt.Sprintf("   %d runs", st.RunsCount)))
			b.WriteString("\n")
			b.WriteString(recordsStatStyle.Render(fmt.Sprintf("   best %d coins", st.BestMoney)))
			b.WriteString("\n")
			b.WriteString(recordsStatStyle.Render(fmt.Sprintf("   %d served", st.TotalServed)))
		} else {
			b.WriteString(recordsStatStyle.Render("   no runs yet"))
		}
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// seasonSummaryLine is the one-line stand-in for the panel on narrow terminals.
func (m RecordsModel) seasonSummaryLine() string {
	if len(m.modes) == 0 {
		return ""
	}
	info := m.modes[m.modeCursor]
	line := fmt.Sprintf("◀ %s ▶", info.Title)
	if st := m.stats[info.ID]; st != nil && st.RunsCount > 0 {
		line += recordsStatStyle.Render(fmt.Sprintf("  %d runs · best %d", st.RunsCount, st.BestMoney))
	}
	return line
}

// renderRuns renders the run table or the empty-state message.
func (m RecordsModel) renderRuns() string {
	if len(m.runs) == 0 {
		return recordsEmptyStyle.Render("No runs recorded yet.\nClose out a season to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the farmer backed out to the menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the farmer quit outright.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords shows the past runs screen standalone. It reports whether
// the farmer backed out rather than quitting.
func RunRecords(store *storage.Store, width, height int) (bool, error) {
	finalModel, err := tea.NewProgram(NewRecordsModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	return ok && m.IsGoingBack(), nil
}
