package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vkulagin/dots-tui/internal/level"
)

const sampleYAML = `
levels:
  - id: a
    name: Alpha
    grid_size: 6
    blocked:
      - { row: 1, col: 2 }
  - id: b
    name: Beta
    description: second one
    grid_size: 8
sets:
  - id: default
    name: Starter
    levels:
      - { level: a, difficulty: easy }
      - { level: b, difficulty: hard }
`

func discard() *log.Logger {
	return log.New(io.Discard)
}

func TestParseSample(t *testing.T) {
	c, err := Parse([]byte(sampleYAML), discard())
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	d, ok := c.Definition("a")
	if !ok {
		t.Fatal("Definition(a) should be found")
	}
	if d.Name != "Alpha" || d.GridSize != 6 {
		t.Errorf("Definition(a) = %+v", d)
	}
	if len(d.BlockedCells) != 1 || d.BlockedCells[0] != (level.Cell{Row: 1, Col: 2}) {
		t.Errorf("BlockedCells = %v", d.BlockedCells)
	}

	if _, ok := c.Definition("nope"); ok {
		t.Error("Definition() should reject unknown ids")
	}

	levels := c.Levels()
	if len(levels) != 2 || levels[0].ID != "a" || levels[1].ID != "b" {
		t.Errorf("Levels() should preserve file order, got %v", levels)
	}

	sets := c.Sets()
	if len(sets) != 1 {
		t.Fatalf("Sets() returned %d sets, want 1", len(sets))
	}
	set := sets[0]
	if set.ID != "default" || len(set.Entries) != 2 {
		t.Errorf("Sets()[0] = %+v", set)
	}
	if set.Entries[1] != (level.SetEntry{LevelID: "b", Difficulty: level.DifficultyHard}) {
		t.Errorf("Entries[1] = %+v", set.Entries[1])
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("levels: ["), discard()); err == nil {
		t.Error("malformed YAML should be a hard error")
	}
}

func TestParseDuplicateLevelID(t *testing.T) {
	data := `
levels:
  - { id: twice, name: First, grid_size: 6 }
  - { id: twice, name: Second, grid_size: 9 }
`
	var buf bytes.Buffer
	c, err := Parse([]byte(data), log.New(&buf))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if len(c.Levels()) != 1 {
		t.Errorf("duplicate ids should be skipped, got %d levels", len(c.Levels()))
	}
	d, _ := c.Definition("twice")
	if d.Name != "First" {
		t.Error("the first definition should win")
	}
	if got := strings.Count(buf.String(), "twice"); got != 1 {
		t.Errorf("expected exactly one warning naming the duplicate id, got %d", got)
	}
}

func TestParseUnknownDifficulty(t *testing.T) {
	data := `
levels:
  - { id: a, name: Alpha, grid_size: 6 }
sets:
  - id: default
    levels:
      - { level: a, difficulty: nightmare }
`
	var buf bytes.Buffer
	c, err := Parse([]byte(data), log.New(&buf))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	entry := c.Sets()[0].Entries[0]
	if entry.Difficulty != level.DifficultyEasy {
		t.Errorf("unknown difficulty should coerce to easy, got %q", entry.Difficulty)
	}
	if !strings.Contains(buf.String(), "nightmare") {
		t.Errorf("warning should name the bad difficulty, got %q", buf.String())
	}
}

func TestEmbeddedDefaultCatalog(t *testing.T) {
	c, err := Parse(DefaultYAML(), discard())
	if err != nil {
		t.Fatalf("embedded catalog should parse: %v", err)
	}

	if len(c.Levels()) == 0 || len(c.Sets()) == 0 {
		t.Fatal("embedded catalog should ship levels and sets")
	}

	// The default set must exist and every entry must resolve
	var hasDefault bool
	for _, set := range c.Sets() {
		if set.ID == "default" {
			hasDefault = true
		}
		for _, e := range set.Entries {
			if _, ok := c.Definition(e.LevelID); !ok {
				t.Errorf("set %q references unknown level %q", set.ID, e.LevelID)
			}
			if !e.Difficulty.Valid() {
				t.Errorf("set %q has invalid difficulty %q", set.ID, e.Difficulty)
			}
		}
	}
	if !hasDefault {
		t.Error(`embedded catalog should carry a "default" set`)
	}

	// Authoring sanity: blocked cells in bounds, no duplicates
	for _, d := range c.Levels() {
		if d.GridSize <= 0 {
			t.Errorf("level %q has grid size %d", d.ID, d.GridSize)
		}
		seen := make(map[level.Cell]bool)
		for _, cell := range d.BlockedCells {
			if cell.Row < 0 || cell.Row >= d.GridSize || cell.Col < 0 || cell.Col >= d.GridSize {
				t.Errorf("level %q blocked cell %v out of bounds", d.ID, cell)
			}
			if seen[cell] {
				t.Errorf("level %q has duplicate blocked cell %v", d.ID, cell)
			}
			seen[cell] = true
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	c, err := Load(path, discard())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, ok := c.Definition("a"); !ok {
		t.Error("custom catalog should be loaded")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), discard()); err == nil {
		t.Error("an explicit path that cannot be read should be a hard error")
	}
}
