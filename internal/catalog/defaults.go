package catalog

import (
	_ "embed"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// DefaultYAML returns the embedded default catalog, byte for byte. The
// CLI uses it to seed a user catalog file for editing.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultCatalogYAML))
	copy(out, defaultCatalogYAML)
	return out
}
