package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ocean-run/internal/core"
	"github.com/vovakirdan/ocean-run/internal/games/flappy"
	"github.com/vovakirdan/ocean-run/internal/loop"
)

// helpRows is the space reserved below the playfield for the help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for one play session.
// Tick messages are the frame callbacks: each one applies the collected
// input and drives one frame. Once the run ends no further tick is
// scheduled until a restart re-arms the loop.
type Model struct {
	game       *flappy.Game
	driver     *loop.Driver
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	logger     *log.Logger
	sessionID  string
	ticking    bool
	quitting   bool
}

// NewModel creates a model driving game. logger may be nil.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpRows))
	game.Reset(cfg)

	return Model{
		game:       game,
		driver:     loop.NewDriver(game, screen, game.Tuning().Physics.MaxStep),
		screen:     screen,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		sessionID:  uuid.NewString(),
		ticking:    true,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "session", m.sessionID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isPress(msg) {
			m.inputFrame.Set(core.ActionFlap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("session quit", "session", m.sessionID, "run", m.game.String())
		return m, tea.Quit

	case core.ActionFlap:
		m.inputFrame.Set(core.ActionFlap)

	case core.ActionRestart:
		// The loop is stopped once a run ends, so restart is applied here
		// rather than on the next tick.
		if m.game.Restart() {
			m.inputFrame.Clear()
			m.driver.Rearm()
			if !m.ticking {
				m.ticking = true
				return m, tickCmd(m.config.TickRate)
			}
		}
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// world units, so only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies input and drives one frame.
func (m Model) handleTick(ts time.Time) (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	m.game.Apply(m.inputFrame)
	m.inputFrame.Clear()

	if m.driver.Frame(ts) {
		return m, tickCmd(m.config.TickRate)
	}

	m.ticking = false
	m.logger.Info("run ended",
		"session", m.sessionID,
		"score", m.game.Score(),
		"best", m.game.Best(),
	)
	return m, nil
}

// saveScreenshot saves the current screen to a file. Failures are logged.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".oceanrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// The driver renders while ticking; outside the loop draw on demand.
	if !m.ticking || m.driver.Frames() == 0 {
		m.game.Render(m.screen)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Ticking reports whether the frame loop is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// Run starts a local Bubble Tea program for game.
func Run(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses flap
	)

	_, err := p.Run()
	return err
}
