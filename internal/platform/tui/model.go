package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

// MaxFrameStep caps the delta of a single frame so a suspended terminal
// does not move every rock at once on resume.
const MaxFrameStep = 250 * time.Millisecond

// Rows below the game reserved for the status bar, short and full help
const (
	statusLines     = 1
	fullStatusLines = 3
)

// Options configures the host.
type Options struct {
	Logger *log.Logger

	// Pilot, when set, can replace keyboard input (tab toggles it).
	Pilot func() core.InputFrame

	// Autopilot starts the run with the pilot engaged.
	Autopilot bool
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	clock  *core.Clock
	held   *HeldKeys
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	pilot  func() core.InputFrame

	gameState core.GameState
	autopilot bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-statusLines),
		config:    cfg,
		clock:     core.NewClock(MaxFrameStep),
		held:      NewHeldKeys(),
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
		pilot:     opts.Pilot,
		autopilot: opts.Autopilot && opts.Pilot != nil,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Controls are recorded as held and
// sampled on the next tick; commands act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit

	case core.ActionUp, core.ActionLeft, core.ActionRight:
		// Space doubles as restart once the run is over
		if m.gameState.GameOver && msg.Type == tea.KeySpace {
			m.restart()
			break
		}
		m.held.Press(a, time.Now())

	case core.ActionRestart:
		m.restart()

	case core.ActionPause:
		if m.gameState.GameOver {
			break
		}
		if m.clock.Paused() {
			m.clock.Resume()
		} else {
			m.clock.Pause()
			m.held.Release()
		}
		m.logger.Debug("pause toggled", "paused", m.clock.Paused())

	case core.ActionAutopilot:
		if m.pilot != nil {
			m.autopilot = !m.autopilot
			m.logger.Debug("autopilot toggled", "on", m.autopilot)
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH-m.reservedLines())
	}

	return m, nil
}

func (m *Model) restart() {
	if m.game.Restart() {
		m.gameState = m.game.State()
		m.held.Release()
		m.logger.Info("restarted")
	}
}

// handleResize processes window resize events. The scene is projected to
// whatever size the terminal has, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-m.reservedLines())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the real time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt, elapsed := m.clock.Tick(now)
	if m.clock.Paused() {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.held.Frame(now)
	if m.autopilot {
		in = m.pilot()
	}

	result := m.game.Step(in, dt, elapsed)
	m.gameState = result.State
	if result.Collided {
		m.held.Release()
		m.logger.Info("crashed", "score", result.State.Score, "elapsed", elapsed)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".flyer", "screenshots")
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

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) reservedLines() int {
	if m.help.ShowAll {
		return fullStatusLines
	}
	return statusLines
}

// statusLine shows the flight time and mode badges followed by the key help.
func (m Model) statusLine() string {
	line := timeStyle.Render(fmt.Sprintf("%.1fs", m.clock.Elapsed())) + " "
	switch {
	case m.clock.Paused():
		line += statusStyle.Render("PAUSED") + " "
	case m.autopilot:
		line += statusStyle.Render("AUTOPILOT") + " "
	}
	return line + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
