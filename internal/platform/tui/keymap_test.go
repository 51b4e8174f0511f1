package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkulagin/dots-tui/internal/level"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"w", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"s", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"b", MenuActionBack},
		{"tab", MenuActionStats},
		{"m", MenuActionToggleSound},
		{"c", MenuActionCycleColor},
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tc := range cases {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("key %q: got action %d, want %d", tc.key, got, tc.want)
		}
	}
}

func TestRenderGridPreview(t *testing.T) {
	def := level.Definition{
		ID:       "tiny",
		Name:     "Tiny",
		GridSize: 3,
		BlockedCells: []level.Cell{
			{Row: 1, Col: 1},
		},
	}
	catalog := map[string]level.Definition{"tiny": def}
	set := level.NewSet(level.SetDefinition{
		ID:      "s",
		Entries: []level.SetEntry{{LevelID: "tiny", Difficulty: level.DifficultyEasy}},
	}, catalogFunc(func(id string) (level.Definition, bool) {
		d, ok := catalog[id]
		return d, ok
	}), nil)

	out := RenderGridPreview(set.First())

	rows := strings.Split(out, "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !strings.Contains(rows[1], "█") {
		t.Errorf("middle row should contain a blocked cell: %q", rows[1])
	}
	if strings.Contains(rows[0], "█") {
		t.Errorf("top row should have no blocked cells: %q", rows[0])
	}
}

// catalogFunc adapts a function to the level.DefinitionCatalog interface.
type catalogFunc func(id string) (level.Definition, bool)

func (f catalogFunc) Definition(id string) (level.Definition, bool) { return f(id) }
