package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <set>",
	Short: "List the levels of a level set",
	Long: `Display the levels of the specified set in play order.

Examples:
  dots levels default
  dots levels expert`,
	Args: cobra.ExactArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	setID := args[0]

	logger := newLogger()
	mgr, _, closer, err := openManagers(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	set, ok := mgr.LevelSet(setID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level set %q\n", setID)
		fmt.Fprintln(os.Stderr, "Run 'dots sets' to see available level sets.")
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", set.ID(), set.Name())
	if set.Description() != "" {
		fmt.Println(set.Description())
	}
	fmt.Println()

	if set.IsEmpty() {
		fmt.Println("This set has no levels.")
		return
	}

	current := set.CurrentLevel()

	// Print header
	fmt.Printf("  %-3s  %-16s  %-6s  %-10s  %s\n", "#", "ID", "Grid", "Difficulty", "Name")
	fmt.Printf("  %-3s  %-16s  %-6s  %-10s  %s\n", "-", "--", "----", "----------", "----")

	for _, l := range set.AllLevels() {
		marker := ""
		if l == current {
			marker = "  (current)"
		}
		grid := fmt.Sprintf("%dx%d", l.GridSize(), l.GridSize())
		fmt.Printf("  %-3d  %-16s  %-6s  %-10s  %s%s\n",
			l.Index()+1, l.ID(), grid, l.AIDifficulty(), l.Name(), marker)
	}
}
