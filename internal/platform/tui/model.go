package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/streamline/internal/core"
	"github.com/vovakirdan/streamline/internal/registry"
	"github.com/vovakirdan/streamline/internal/storage"
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for playing a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	runID     string
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	cleared   int // levels cleared this run
	storeErr  error
	quitting  bool
}

// NewModel creates a model for the given game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:     store,
		runID:     storage.NewRunID(),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeScreen()
		return m, nil

	case TickMsg:
		m = m.step(core.NewInputFrame())
		if m.quitting {
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey steps the game once per key press so no move is lost between
// ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	m = m.step(frame)
	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) step(frame core.InputFrame) Model {
	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Completed != nil {
		m.cleared++
		m.recordCompletion(*result.Completed)
	}
	if result.Quit {
		m.quitting = true
	}
	return m
}

func (m *Model) recordCompletion(c core.Completion) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveCompletion(storage.Completion{
		RunID:   m.runID,
		LevelID: c.LevelID,
		Moves:   c.Moves,
		Undos:   c.Undos,
	})
	changed := (err == nil) != (m.storeErr == nil)
	m.storeErr = err
	if changed {
		m.resizeScreen()
	}
}

// resizeScreen fits the game screen above the help footer.
func (m *Model) resizeScreen() {
	footer := lipgloss.Height(m.footer())
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 1))
}

func (m Model) footer() string {
	var b strings.Builder
	if m.storeErr != nil {
		b.WriteString(errorStyle.Render(m.storeErr.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// View renders the game screen and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// RunID returns the identifier stored with this run's completions.
func (m Model) RunID() string { return m.runID }

// Cleared returns how many levels were cleared.
func (m Model) Cleared() int { return m.cleared }

// Run starts the Bubble Tea program and returns the final model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}
