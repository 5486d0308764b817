package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/registry"
	"github.com/bryomx12/farmstand/internal/session"
	"github.com/bryomx12/farmstand/internal/storage"
)

// SSHServerConfig describes how the stand listens for farmers.
type SSHServerConfig struct {
	// Address is the listen address, host:port.
	Address string

	// HostKeyPath is the host key file. Empty means auto-generate one
	// under ~/.farmstand/host_key.
	HostKeyPath string

	// DBPath is the runs database. Sessions still work if it cannot be
	// opened; runs are just not recorded.
	DBPath string

	// IdleTimeout closes connections with no activity.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig is the stock setup: port 23234, half an hour of
// idle grace, runs kept under the home directory.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.farmstand/farmstand.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the farm stand over SSH using Wish. Every connection
// gets its own SessionModel; they all share one run store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer wires up the Wish server, the run store, and the logger.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "farmstand-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("runs database unavailable, not recording", "error", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("configure ssh server: %w", err)
	}

	return srv, nil
}

// resolveHostKeyPath fills in the default key location and makes sure its
// directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve host key path: %w", err)
		}
		path = filepath.Join(home, ".farmstand", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the Bubble Tea program for one SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("session has no PTY, nothing to draw on", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: defaultTickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, sshSession.User())
	s.logger.Info("session started", "session", model.SessionID(),
		"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs farmers coming and going.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		addr := sshSession.RemoteAddr().String()
		s.logger.Info("farmer connected", "user", sshSession.User(), "addr", addr)
		next(sshSession)
		s.logger.Info("farmer left", "user", sshSession.User(), "addr", addr)
	}
}

// ListenAndServe runs the server until SIGINT/SIGTERM or a listener
// failure, whichever comes first.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("opening the stand over SSH", "address", s.config.Address)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if s.store != nil {
			s.store.Close()
		}
		return fmt.Errorf("ssh listener: %w", err)
	case <-sigCh:
		s.logger.Info("closing the stand")
		return s.Shutdown()
	}
}

// shutdownGrace is how long Shutdown waits for live sessions to finish.
const shutdownGrace = 10 * time.Second

// Shutdown stops accepting connections, waits briefly for live sessions,
// and closes the run store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is which surface an SSH session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRecords
)

// SessionModel routes one SSH session between the title screen, a run, and
// the records browser. It is the top-level model for SSH connections; the
// local CLI runs the same child models directly.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	username  string
	sessionID session.SessionID
	screen    sessionScreen
	menu      MenuModel
	records   *RecordsModel
	game      *Model
	quitting  bool
}

// NewSessionModel creates a session model starting at the title screen.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: session.NewSessionID(username),
		menu:      NewMenuModel(cfg),
	}
}

// SessionID identifies this sitting in the server logs.
func (m SessionModel) SessionID() session.SessionID {
	return m.sessionID
}

// Init boots the title screen.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update dispatches messages to whichever screen is up.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track the terminal size across screen switches
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = wsm.Width, wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRecords():
		records := NewRecordsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.records = &records
		m.screen = screenRecords
		return m, records.Init()

	case m.menu.Selected() != nil:
		return m.startRun(m.menu.Selected().GameID)
	}

	return m, cmd
}

// startRun boots the chosen mode inside this session.
func (m SessionModel) startRun(modeID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(modeID)
	if err != nil {
		// The menu only offers registered modes
		return m, nil
	}

	m.config = m.menu.Config()

	// Runs over SSH are recorded under the SSH username. There is no
	// speaker on the far end, so no sound player either.
	var recorder session.Recorder
	if m.store != nil {
		recorder = m.store
	}
	run := NewModel(game, recorder, nil, m.config, m.username)
	run.allowBack = true

	m.game = &run
	m.screen = screenGame
	return m, run.Init()
}

// backToMenu tears down the child screen and shows a fresh title screen.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.records = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.game == nil {
		return m.backToMenu()
	}

	next, cmd := m.game.Update(msg)
	if run, ok := next.(Model); ok {
		m.game = &run
	}

	switch {
	case m.game.BackToMenu():
		return m.backToMenu()
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.records == nil {
		return m.backToMenu()
	}

	next, cmd := m.records.Update(msg)
	if records, ok := next.(RecordsModel); ok {
		m.records = &records
	}

	switch {
	case m.records.IsGoingBack():
		return m.backToMenu()
	case m.records.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders whichever screen is up.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenRecords:
		if m.records != nil {
			return m.records.View()
		}
	}
	return m.menu.View()
}
