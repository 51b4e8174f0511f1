// dots manages level sets and player settings for the dots game.
//
// Usage:
//
//	dots sets                - List available level sets
//	dots levels <set>        - List the levels of a set
//	dots stats [set]         - Show level set statistics
//	dots settings            - Show or change player settings
//	dots browse              - Interactive level browser
//	dots serve               - Start SSH server for remote browsing
//	dots catalog export      - Write the built-in catalog to a file
//
// Global flags:
//
//	--db <path>       - Settings database path (default: ~/.dots/settings.db)
//	--catalog <path>  - Custom level catalog (YAML)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vkulagin/dots-tui/internal/catalog"
	"github.com/vkulagin/dots-tui/internal/level"
	"github.com/vkulagin/dots-tui/internal/registry"
	"github.com/vkulagin/dots-tui/internal/settings"
	"github.com/vkulagin/dots-tui/internal/storage"
)

var (
	// Global flags
	flagDBPath  string
	flagCatalog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dots",
	Short: "Dots - browse level sets and manage game settings",
	Long: `dots is a terminal companion for the dots game. It tracks which
level set you are playing, which level comes next, and your player
settings, either locally or served over SSH.

Available commands:
  sets      - Show all level sets
  levels    - Show the levels of a set
  stats     - Level set statistics
  settings  - Show or change player settings
  browse    - Interactive level browser
  serve     - Start SSH server for remote browsing
  catalog   - Work with level catalogs

Examples:
  dots sets
  dots levels default
  dots settings set playerColor red
  dots browse
  dots serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dots/settings.db", "Path to settings database")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to a custom level catalog (YAML)")

	// Add subcommands
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "dots"})
}

// openManagers wires a catalog, registry, level manager and settings
// manager for a local command. The returned closer releases the
// settings database; call it when the command is done.
func openManagers(logger *log.Logger) (*level.Manager, *settings.Manager, func(), error) {
	cat, err := catalog.Load(flagCatalog, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	var store settings.Store
	closer := func() {}
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("settings database unavailable, changes will not persist", "err", err)
		store = storage.NewMemory()
	} else {
		store = db
		closer = func() { db.Close() }
	}

	reg := registry.New()
	sm := settings.NewManager(reg, store, logger)
	mgr := level.NewManager(cat.Sets(), cat, reg, logger)
	mgr.SetCurrentLevelSetByID(sm.CurrentSettings().LevelSetID)
	return mgr, sm, closer, nil
}
