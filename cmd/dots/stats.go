package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkulagin/dots-tui/internal/level"
)

var statsCmd = &cobra.Command{
	Use:   "stats [set]",
	Short: "Show level set statistics",
	Long: `Display the level count per difficulty for one set, or for every
set when no set is given.

Examples:
  dots stats
  dots stats default`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	logger := newLogger()
	mgr, _, closer, err := openManagers(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	ids := mgr.LevelSetIDs()
	if len(args) == 1 {
		if !mgr.HasLevelSet(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown level set %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'dots sets' to see available level sets.")
			os.Exit(1)
		}
		ids = []string{args[0]}
	}

	diffs := level.Difficulties()

	// Print header
	fmt.Printf("  %-12s  %-6s", "Set", "Total")
	for _, d := range diffs {
		fmt.Printf("  %-8s", d)
	}
	fmt.Println()
	fmt.Printf("  %-12s  %-6s", "---", "-----")
	for range diffs {
		fmt.Printf("  %-8s", "------")
	}
	fmt.Println()

	for _, id := range ids {
		stats, ok := mgr.LevelSetStats(id)
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d", id, stats.Total)
		for _, d := range diffs {
			fmt.Printf("  %-8d", stats.ByDifficulty[d])
		}
		fmt.Println()
	}
}
