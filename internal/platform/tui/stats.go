package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkulagin/dots-tui/internal/level"
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the level-set stats screen: one
// row per set with its level count and difficulty histogram.
type StatsModel struct {
	manager   *level.Manager
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewStatsModel creates a stats model over the given manager.
func NewStatsModel(manager *level.Manager, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		manager: manager,
		keys:    DefaultStatsKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Set", Width: 18},
		{Title: "Levels", Width: 7},
	}
	for _, d := range level.Difficulties() {
		columns = append(columns, table.Column{Title: string(d), Width: 7})
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
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

// updateTableRows fills the table from the manager's stats.
func (m *StatsModel) updateTableRows() {
	ids := m.manager.LevelSetIDs()
	rows := make([]table.Row, 0, len(ids))

	for _, id := range ids {
		stats, ok := m.manager.LevelSetStats(id)
		if !ok {
			continue
		}
		set, _ := m.manager.LevelSet(id)
		row := table.Row{set.Name(), fmt.Sprintf("%d", stats.Total)}
		for _, d := range level.Difficulties() {
			row = append(row, fmt.Sprintf("%d", stats.ByDifficulty[d]))
		}
		rows = append(rows, row)
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(header.Render(centerText("LEVEL SETS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsQuitting returns true if user requested to quit.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// GoingBack returns true if user requested to go back to the browser.
func (m StatsModel) GoingBack() bool {
	return m.goingBack
}
