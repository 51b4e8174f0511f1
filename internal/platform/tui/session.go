package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkulagin/dots-tui/internal/level"
	"github.com/vkulagin/dots-tui/internal/settings"
)

// SessionModel manages the full browsing flow: browser <-> stats.
// This is the top-level model used for both local and SSH sessions.
type SessionModel struct {
	manager  *level.Manager
	settings *settings.Manager
	browser  BrowserModel
	stats    *StatsModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(manager *level.Manager, sm *settings.Manager, width, height int) SessionModel {
	return SessionModel{
		manager:  manager,
		settings: sm,
		browser:  NewBrowserModel(manager, sm, width, height),
		width:    width,
		height:   height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.browser.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.stats != nil {
		return m.updateStats(msg)
	}
	return m.updateBrowser(msg)
}

// updateBrowser handles updates when in browser mode.
func (m SessionModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.browser.Update(msg)
	if browser, ok := newModel.(BrowserModel); ok {
		m.browser = browser
	}

	if m.browser.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.browser.WantsStats() {
		stats := NewStatsModel(m.manager, m.width, m.height)
		m.stats = &stats
		// Fresh browser next time so the stats request is not sticky
		m.browser = NewBrowserModel(m.manager, m.settings, m.width, m.height)
		return m, m.stats.Init()
	}

	return m, cmd
}

// updateStats handles updates when in stats mode.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if stats, ok := newModel.(StatsModel); ok {
		m.stats = &stats
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stats.GoingBack() {
		m.stats = nil
		return m, m.browser.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.stats != nil {
		return m.stats.View()
	}
	return m.browser.View()
}

// RunBrowser runs the browser session in the local terminal and blocks
// until the user quits.
func RunBrowser(manager *level.Manager, sm *settings.Manager, width, height int) error {
	model := NewSessionModel(manager, sm, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: browser failed: %w", err)
	}
	return nil
}
