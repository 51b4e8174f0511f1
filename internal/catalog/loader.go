package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Load loads the catalog.
// Search order: customPath -> ~/.dots/catalogs/catalog.yaml -> ./catalogs/catalog.yaml -> embedded default
func Load(customPath string, logger *log.Logger) (*Catalog, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot read %s: %w", customPath, err)
		}
		c, err := Parse(data, logger)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot parse %s: %w", customPath, err)
		}
		return c, nil
	}

	// Try user catalog directory
	if userPath := userCatalogPath("catalog.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := Parse(data, logger); err == nil {
				return c, nil
			}
		}
	}

	// Try local catalogs directory
	if data, err := os.ReadFile(filepath.Join("catalogs", "catalog.yaml")); err == nil {
		if c, err := Parse(data, logger); err == nil {
			return c, nil
		}
	}

	// Use embedded default catalog
	c, err := Parse(defaultCatalogYAML, logger)
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded default is broken: %w", err)
	}
	return c, nil
}

// userCatalogPath returns the path to the user catalog file, or empty if
// home is unavailable.
func userCatalogPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dots", "catalogs", filename)
}
