package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/streamline/internal/storage"
)

const maxCompletions = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "level records"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows per-level statistics and, for a selected level,
// its best completions.
type ScoreboardModel struct {
	store    *storage.Store
	stats    []storage.LevelStat
	level    string // selected level; empty shows the summary
	records  []storage.Completion
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewScoreboardModel creates a scoreboard. A non-empty level opens
// directly on that level's records.
func NewScoreboardModel(store *storage.Store, level string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		level:  level,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) reload() {
	m.err = nil
	if m.store == nil {
		m.stats, m.records = nil, nil
	} else if m.level == "" {
		m.stats, m.err = m.store.LevelStats()
	} else {
		m.records, m.err = m.store.BestCompletions(m.level, maxCompletions)
	}
	m.table = m.createTable()
}

func (m ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	if m.level == "" {
		columns = []table.Column{
			{Title: "Level", Width: 20},
			{Title: "Clears", Width: 8},
			{Title: "Best", Width: 6},
			{Title: "Last played", Width: 16},
		}
		for _, st := range m.stats {
			rows = append(rows, table.Row{
				st.LevelID,
				fmt.Sprintf("%d", st.Clears),
				fmt.Sprintf("%d", st.BestMoves),
				st.LastPlayed.Format("Jan 02 15:04"),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Moves", Width: 7},
			{Title: "Undos", Width: 7},
			{Title: "Run", Width: 10},
			{Title: "Date", Width: 16},
		}
		for i, c := range m.records {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", c.Moves),
				fmt.Sprintf("%d", c.Undos),
				shortRunID(c.RunID),
				c.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.level == "" {
				m.quitting = true
				return m, tea.Quit
			}
			m.level = ""
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.level == "" && len(m.stats) > 0 {
				m.level = m.stats[m.table.Cursor()].LevelID
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "STREAMLINE RECORDS"
	if m.level != "" {
		title = "BEST CLEARS - " + m.level
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.content())))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) content() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.level == "" && len(m.stats) == 0:
		return emptyStyle.Render("No levels cleared yet.\nPlay a level to set a record!")
	case m.level != "" && len(m.records) == 0:
		return emptyStyle.Render("No clears recorded for this level.")
	}
	return m.table.View()
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, level string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, level, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
