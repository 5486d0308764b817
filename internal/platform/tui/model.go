// Package tui is the Bubble Tea front end for the farm stand: the terminal
// loop, key mapping, menus, the records browser, and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryomx12/farmstand/internal/audio"
	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/registry"
	"github.com/bryomx12/farmstand/internal/session"
)

// defaultTickRate is the simulation rate, in ticks per second, used when
// a config leaves it unset.
const defaultTickRate = 60

// TickMsg drives one simulation step. The timestamp is unused; the game
// advances exactly one tick per message regardless of delivery jitter.
type TickMsg time.Time

func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model that runs one farm game. The same model
// serves the local CLI and SSH sessions; allowBack controls whether Esc
// after a run ends returns to the menu instead of doing nothing.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   session.Recorder
	sound      *audio.Player
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	allowBack  bool
	backToMenu bool
	quitting   bool
	runSaved   bool
}

// NewModel creates a model for the given game. recorder and sound may be
// nil; runs are then not persisted and cues not played.
func NewModel(game registry.Game, recorder session.Recorder, sound *audio.Player, cfg core.RuntimeConfig, player string) Model {
	// A zero seed means a fresh run each time
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   recorder,
		sound:      sound,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update routes input, resize, and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds keys into the current input frame. Quit and screenshot
// keys act immediately; everything else waits for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// After the run ends (or while paused) Esc leaves for the menu when the
	// session has one to go back to.
	if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
		if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rebuilds the screen buffer for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The field layout depends on the screen, so a live run restarts at the
	// new size. A finished run keeps its end screen.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the game one step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.playCues(result.Events)

	if m.gameState.GameOver {
		m.saveRunOnce()
	} else {
		// The game restarts itself on R, so re-arm the save
		m.runSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// playCues maps step events to sound cues.
func (m *Model) playCues(events []core.Event) {
	if m.sound == nil {
		return
	}
	for _, ev := range events {
		switch ev {
		case core.EventServe:
			m.sound.PlayCoin()
		case core.EventPickup:
			m.sound.PlayPickup()
		case core.EventPickupRejected, core.EventServeRejected,
			core.EventUpgradeRejected, core.EventCustomerLeft:
			m.sound.PlayBuzz()
		case core.EventUpgradeBought:
			m.sound.PlayChime()
		case core.EventDayStarted, core.EventDayEnded, core.EventRunEnded:
			m.sound.PlayBell()
		}
	}
}

// saveRunOnce persists the finished run exactly once per game over.
func (m *Model) saveRunOnce() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.recorder == nil {
		return
	}
	runID, err := m.recorder.SaveRun(session.RunSummary{
		Mode:      m.game.ID(),
		Player:    m.player,
		Days:      m.gameState.Day,
		Money:     m.gameState.Money,
		Customers: m.gameState.Customers,
		EndReason: m.gameState.EndReason,
	})
	if err != nil {
		return
	}
	if logger, ok := m.game.(session.DayLogger); ok {
		if days := logger.DayLog(); len(days) > 0 {
			//nolint:errcheck // Best-effort save, the run already ended on screen
			m.recorder.SaveDays(runID, days)
		}
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.farmstand/screenshots. A screenshot is never worth interrupting
// play, so failures are silently dropped.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".farmstand", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View draws the game into the frame buffer and returns it as ANSI text.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, recorder session.Recorder, sound *audio.Player, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, recorder, sound, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
