package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the contract between the terminal front end and a game.
// The platform samples input, calls Step once per tick, and renders.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(screenW, screenH int)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	TickRate() int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model and starts a fresh game.
// A nil logger discards all output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(m.width, m.boardHeight())

	cfg.ScreenH = m.boardHeight()
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"game", m.game.ID(),
		"title", m.game.Title(),
		"seed", m.config.Seed,
		"tick_rate", m.game.TickRate(),
	)
	return tickCmd(m.game.TickRate())
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

// handleKey records the key as pending input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.applySize()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit", "score", m.gameState.Score, "length", m.gameState.Length)
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)

	return m, nil
}

// handleResize resizes the screen buffer; the running game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.applySize()
	return m, nil
}

// handleTick advances the game by exactly one step using the pending input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case result.Died:
		m.logger.Info("game over", "score", m.gameState.Score, "length", m.gameState.Length)
	case m.gameState.Won && !prev.Won:
		m.logger.Info("grid filled", "score", m.gameState.Score, "length", m.gameState.Length)
	case prev.GameOver && !m.gameState.GameOver:
		m.logger.Info("restart", "previous_score", prev.Score)
	case result.Ate:
		m.logger.Debug("food eaten", "score", m.gameState.Score, "tick_rate", m.game.TickRate())
	}
	if prev.Paused != m.gameState.Paused {
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.game.TickRate())
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight() int {
	return max(m.height-lipgloss.Height(m.helpView()), 0)
}

func (m *Model) applySize() {
	h := m.boardHeight()
	m.config.ScreenW = m.width
	m.config.ScreenH = h
	m.screen.Resize(m.width, h)
	m.game.Resize(m.width, h)
}

func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
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
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
