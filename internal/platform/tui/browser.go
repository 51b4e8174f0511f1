// Package tui provides the terminal UI for browsing level sets and editing
// player settings, including SSH server support via Wish.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkulagin/dots-tui/internal/level"
	"github.com/vkulagin/dots-tui/internal/settings"
	"github.com/vkulagin/dots-tui/internal/signal"
)

// browserScreen identifies which list the browser is showing.
type browserScreen int

const (
	screenSets browserScreen = iota
	screenLevels
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// BrowserModel is the Bubble Tea model for browsing level sets and their
// levels. Selecting a set makes it the active one through the settings
// manager; the model then consumes the level-set dirty flag and rebinds
// the progression manager, the same way the game loop would.
type BrowserModel struct {
	manager  *level.Manager
	settings *settings.Manager
	changes  *signal.Slot

	screen      browserScreen
	setCursor   int
	levelCursor int
	current     settings.Settings
	status      string
	width       int
	height      int
	keyMapper   *KeyMapper
	quitting    bool
	wantsStats  bool
}

// NewBrowserModel creates a browser over the given managers.
func NewBrowserModel(manager *level.Manager, sm *settings.Manager, width, height int) BrowserModel {
	return BrowserModel{
		manager:   manager,
		settings:  sm,
		changes:   sm.Subscribe(),
		current:   sm.CurrentSettings(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Pick up settings saved by anyone, including ourselves
	if saved, ok := m.changes.Take(); ok {
		if s, ok := saved.(settings.Settings); ok {
			m.current = s
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for browser navigation.
func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.moveCursor(-1)

	case MenuActionDown:
		m.moveCursor(1)

	case MenuActionSelect:
		return m.handleSelect()

	case MenuActionBack:
		if m.screen == screenLevels {
			m.screen = screenSets
			m.levelCursor = 0
		}

	case MenuActionStats:
		m.wantsStats = true
		return m, nil

	case MenuActionToggleSound:
		if err := m.settings.UpdateSetting(settings.KeySoundEffects, !m.current.SoundEffects); err != nil {
			m.status = err.Error()
		}

	case MenuActionCycleColor:
		next := settings.ColorRed
		if m.current.PlayerColor == settings.ColorRed {
			next = settings.ColorBlue
		}
		if err := m.settings.UpdateSetting(settings.KeyPlayerColor, next); err != nil {
			m.status = err.Error()
		}
	}

	return m, nil
}

func (m *BrowserModel) moveCursor(delta int) {
	switch m.screen {
	case screenSets:
		m.setCursor = clamp(m.setCursor+delta, 0, len(m.manager.LevelSetIDs())-1)
	case screenLevels:
		if s := m.selectedSet(); s != nil {
			m.levelCursor = clamp(m.levelCursor+delta, 0, s.Len()-1)
		}
	}
}

func (m BrowserModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenSets:
		s := m.selectedSet()
		if s == nil {
			return m, nil
		}
		if err := m.settings.UpdateSetting(settings.KeyLevelSetID, s.ID()); err != nil {
			m.status = err.Error()
			return m, nil
		}
		// Consume the dirty flag and rebind to the newly chosen set,
		// loading its first level, just as the game loop does.
		if m.manager.HasLevelSetChanged() {
			m.manager.SetCurrentLevelSetByID(s.ID())
			m.manager.LevelToLoad()
		}
		m.status = fmt.Sprintf("Active set: %s", s.Name())
		m.screen = screenLevels
		m.levelCursor = 0

	case screenLevels:
		s := m.selectedSet()
		if s == nil {
			return m, nil
		}
		lv := s.Level(m.levelCursor)
		if lv == nil {
			return m, nil
		}
		if m.manager.SetCurrentLevel(lv) {
			m.status = fmt.Sprintf("Current level: %s", lv.Name())
		} else {
			m.status = fmt.Sprintf("%s is not in the active set", lv.Name())
		}
	}

	return m, nil
}

// selectedSet returns the set under the cursor.
func (m BrowserModel) selectedSet() *level.Set {
	sets := m.manager.AllLevelSets()
	if m.setCursor < 0 || m.setCursor >= len(sets) {
		return nil
	}
	return sets[m.setCursor]
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  D O T S  "), m.width))
	b.WriteString("\n\n")

	switch m.screen {
	case screenSets:
		m.viewSets(&b)
	case screenLevels:
		m.viewLevels(&b)
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.settingsLine(), m.width))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(statusStyle.Render(m.status), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.controlsLine()), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m BrowserModel) viewSets(b *strings.Builder) {
	b.WriteString(centerText("Select a level set", m.width))
	b.WriteString("\n\n")

	active := m.manager.CurrentLevelSet()
	for i, s := range m.manager.AllLevelSets() {
		cursor := "  "
		if i == m.setCursor {
			cursor = "> "
		}
		marker := ""
		if active != nil && s.ID() == active.ID() {
			marker = activeStyle.Render(" *")
		}
		line := fmt.Sprintf("%s%s (%d levels)%s", cursor, s.Name(), s.Len(), marker)
		if i == m.setCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
}

func (m BrowserModel) viewLevels(b *strings.Builder) {
	s := m.selectedSet()
	if s == nil {
		return
	}

	b.WriteString(centerText(s.Name(), m.width))
	b.WriteString("\n\n")

	current := s.CurrentLevel()
	for i, lv := range s.AllLevels() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		marker := ""
		if lv == current {
			marker = activeStyle.Render(" *")
		}
		line := fmt.Sprintf("%s%d. %s [%s]%s", cursor, lv.Index()+1, lv.Name(), lv.AIDifficulty(), marker)
		if i == m.levelCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if lv := s.Level(m.levelCursor); lv != nil {
		b.WriteString("\n")
		for _, row := range strings.Split(RenderGridPreview(lv), "\n") {
			b.WriteString(centerText(row, m.width))
			b.WriteString("\n")
		}
	}
}

func (m BrowserModel) settingsLine() string {
	sound := "off"
	if m.current.SoundEffects {
		sound = "on"
	}
	return fmt.Sprintf("Sound: %s  |  Color: %s  |  Set: %s",
		sound, m.current.PlayerColor, m.current.LevelSetID)
}

func (m BrowserModel) controlsLine() string {
	if m.screen == screenLevels {
		return "Up/Down: Navigate  |  Enter: Set current  |  Esc: Back  |  Tab: Stats  |  Q: Quit"
	}
	return "Up/Down: Navigate  |  Enter: Activate  |  M: Sound  |  C: Color  |  Tab: Stats  |  Q: Quit"
}

// IsQuitting returns true if user requested to quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the stats screen.
func (m BrowserModel) WantsStats() bool {
	return m.wantsStats
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	plain := lipgloss.Width(text)
	if plain >= width {
		return text
	}
	padding := (width - plain) / 2
	return strings.Repeat(" ", padding) + text
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
