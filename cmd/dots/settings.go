package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vkulagin/dots-tui/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player settings",
	Long: `Display the current player settings, or read and change a single
setting with the get/set subcommands.

Settings:
  soundEffects  - Sound effects on or off (true/false)
  playerColor   - Player dot color (blue/red)
  levelSetId    - Active level set

Examples:
  dots settings
  dots settings get playerColor
  dots settings set soundEffects false
  dots settings set levelSetId expert`,
	Run: runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	Run:   runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) {
	logger := newLogger()
	_, sm, closer, err := openManagers(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	s := sm.CurrentSettings()
	fmt.Printf("  %-14s  %t\n", settings.KeySoundEffects, s.SoundEffects)
	fmt.Printf("  %-14s  %s\n", settings.KeyPlayerColor, s.PlayerColor)
	fmt.Printf("  %-14s  %s\n", settings.KeyLevelSetID, s.LevelSetID)
}

func runSettingsGet(cmd *cobra.Command, args []string) {
	logger := newLogger()
	_, sm, closer, err := openManagers(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	value, err := sm.Setting(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Known settings: %v\n", settings.Keys())
		os.Exit(1)
	}
	fmt.Println(value)
}

func runSettingsSet(cmd *cobra.Command, args []string) {
	key, raw := args[0], args[1]

	logger := newLogger()
	mgr, sm, closer, err := openManagers(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	var value any = raw
	if key == settings.KeySoundEffects {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s wants true or false, got %q\n", key, raw)
			os.Exit(1)
		}
		value = b
	}
	if key == settings.KeyLevelSetID && !mgr.HasLevelSet(raw) {
		fmt.Fprintf(os.Stderr, "Error: unknown level set %q\n", raw)
		fmt.Fprintln(os.Stderr, "Run 'dots sets' to see available level sets.")
		os.Exit(1)
	}

	if err := sm.UpdateSetting(key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s = %s\n", key, raw)
}
