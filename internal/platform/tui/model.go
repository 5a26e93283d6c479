package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catcher/internal/core"
	"github.com/vovakirdan/tui-catcher/internal/game"
)

// helpRows is the number of terminal rows reserved under the game screen.
const helpRows = 1

// Model is the Bubble Tea model for running a catcher session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model driving the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  session.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	gameCfg := m.session.Config()
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
	m.logger.Debug("game config",
		"playfield", fmt.Sprintf("%gx%g", gameCfg.Playfield.Width, gameCfg.Playfield.Height),
		"lives", gameCfg.Session.Lives,
		"base_interval", gameCfg.Spawn.BaseInterval,
		"ramp", gameCfg.Spawn.Ramp.Enabled)
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

// handleKey records the pressed action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.logger.Info("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
// The playfield is scaled to the screen, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.session.Reset(m.config.Seed)
		m.gameState = m.session.State()
		m.keys.SetGameOver(false)
		m.inputFrame.Clear()
		m.logger.Info("session restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.session.Step(m.inputFrame)
	m.gameState = result.State

	if result.Caught > 0 {
		m.logger.Debug("caught", "count", result.Caught, "score", result.State.Score)
	}
	if result.Missed > 0 {
		m.logger.Debug("missed", "count", result.Missed, "lives", result.State.Lives)
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
		m.keys.SetGameOver(true)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
