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

	"github.com/vovakirdan/cricket-arcade/internal/core"
	"github.com/vovakirdan/cricket-arcade/internal/cricket"
)

// footerRows is the terminal space reserved under the field for short help.
const footerRows = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Options configures the terminal front-end.
type Options struct {
	Logger        *log.Logger // Nil means log.Default()
	ScreenshotDir string      // Empty means DefaultScreenshotDir()
}

// Model is the Bubble Tea model for a cricket session.
type Model struct {
	game     *cricket.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	latch    *HoldLatch
	pending  *core.InputFrame // Single-tick presses since the last tick
	logger   *log.Logger
	shots    string
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *cricket.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	shots := opts.ScreenshotDir
	if shots == "" {
		shots = DefaultScreenshotDir()
	}

	pending := core.NewInputFrame()
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		latch:   NewHoldLatch(cfg.TickRate),
		pending: &pending,
		logger:  logger,
		shots:   shots,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "seed", m.config.Seed, "tick_rate", m.config.TickRate,
		"difficulty", m.game.Difficulty().Name)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
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

// handleKey records a key for the next tick. Held actions go to the latch,
// everything else is a single-tick press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case Holdable(action):
		m.latch.Press(action)
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize adapts the canvas. The match carries on untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the canvas to the terminal minus the help footer.
func (m *Model) fitScreen() {
	rows := footerRows
	if m.help.ShowAll {
		rows = max(rows, lipgloss.Height(m.help.View(m.keys)))
	}
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-rows)
}

// handleTick steps the simulation once with this tick's input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.latch.Apply(&frame)

	result := m.game.Step(frame)
	m.logEvents()

	// Clear input for next frame
	m.pending.Clear()
	m.latch.Advance()
	if !result.State.Paused && m.game.Phase() != cricket.StatePlaying {
		m.latch.Reset()
	}

	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents() {
	for _, e := range m.game.Events() {
		switch e.Kind {
		case cricket.EventGameOver, cricket.EventHighScore, cricket.EventMilestone:
			m.logger.Info(string(e.Kind), "score", e.Score, "detail", e.Detail)
		default:
			m.logger.Debug(string(e.Kind), "runs", e.Runs, "score", e.Score, "detail", e.Detail)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := SaveScreenshot(m.shots, m.game.ID(), m.screen)
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// DefaultScreenshotDir returns ~/.cricket/screenshots.
func DefaultScreenshotDir() string {
	return filepath.Join(os.Getenv("HOME"), ".cricket", "screenshots")
}

// SaveScreenshot writes the plain-text screen to dir and returns the path.
func SaveScreenshot(dir, name string, s *core.Screen) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program for the given game.
func Run(game *cricket.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
