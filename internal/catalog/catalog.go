// Package catalog provides YAML-based loading of the level and level-set
// catalogs consumed by the progression core, with an embedded default
// catalog as the final fallback.
package catalog

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vkulagin/dots-tui/internal/level"
)

// yamlCatalog is the on-disk structure of a catalog file.
type yamlCatalog struct {
	Levels []yamlLevel `yaml:"levels"`
	Sets   []yamlSet   `yaml:"sets"`
}

// yamlLevel is a single level definition in YAML form.
type yamlLevel struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	GridSize    int        `yaml:"grid_size"`
	Blocked     []yamlCell `yaml:"blocked,omitempty"`
}

// yamlCell is a blocked-cell coordinate in YAML form.
type yamlCell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// yamlSet is a single level-set definition in YAML form.
type yamlSet struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Levels      []yamlEntry `yaml:"levels"`
}

// yamlEntry references a level by id and assigns its difficulty.
type yamlEntry struct {
	Level      string `yaml:"level"`
	Difficulty string `yaml:"difficulty"`
}

// Catalog holds the parsed level definitions and level-set definitions.
// It implements level.DefinitionCatalog for set construction.
type Catalog struct {
	levels map[string]level.Definition
	order  []string
	sets   []level.SetDefinition
}

// Parse decodes a YAML catalog. Malformed YAML is a hard error; soft
// authoring mistakes (duplicate level ids, unknown difficulty labels) are
// logged and tolerated. Dangling level references are left in place for
// set construction to warn about and skip.
func Parse(data []byte, logger *log.Logger) (*Catalog, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: yaml unmarshal: %w", err)
	}

	c := &Catalog{levels: make(map[string]level.Definition, len(raw.Levels))}

	for _, yl := range raw.Levels {
		if _, dup := c.levels[yl.ID]; dup {
			logger.Warn("skipping duplicate level id", "levelId", yl.ID)
			continue
		}
		blocked := make([]level.Cell, 0, len(yl.Blocked))
		for _, cell := range yl.Blocked {
			blocked = append(blocked, level.Cell{Row: cell.Row, Col: cell.Col})
		}
		c.levels[yl.ID] = level.Definition{
			ID:           yl.ID,
			Name:         yl.Name,
			Description:  yl.Description,
			GridSize:     yl.GridSize,
			BlockedCells: blocked,
		}
		c.order = append(c.order, yl.ID)
	}

	for _, ys := range raw.Sets {
		entries := make([]level.SetEntry, 0, len(ys.Levels))
		for _, e := range ys.Levels {
			difficulty, ok := level.ParseDifficulty(e.Difficulty)
			if !ok {
				logger.Warn("unknown difficulty label, using easy",
					"set", ys.ID, "levelId", e.Level, "difficulty", e.Difficulty)
				difficulty = level.DifficultyEasy
			}
			entries = append(entries, level.SetEntry{LevelID: e.Level, Difficulty: difficulty})
		}
		c.sets = append(c.sets, level.SetDefinition{
			ID:          ys.ID,
			Name:        ys.Name,
			Description: ys.Description,
			Entries:     entries,
		})
	}

	return c, nil
}

// Definition returns the level definition for id.
func (c *Catalog) Definition(id string) (level.Definition, bool) {
	d, ok := c.levels[id]
	return d, ok
}

// Levels returns every level definition in file order.
func (c *Catalog) Levels() []level.Definition {
	out := make([]level.Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.levels[id])
	}
	return out
}

// Sets returns every level-set definition in file order.
func (c *Catalog) Sets() []level.SetDefinition {
	out := make([]level.SetDefinition, len(c.sets))
	copy(out, c.sets)
	return out
}
