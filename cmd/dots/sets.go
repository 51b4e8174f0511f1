package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List all available level sets",
	Long:  `Shows every level set in the catalog and which one is active.`,
	Run:   runSets,
}

func runSets(cmd *cobra.Command, args []string) {
	logger := newLogger()
	mgr, _, closer, err := openManagers(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	sets := mgr.AllLevelSets()
	if len(sets) == 0 {
		fmt.Println("No level sets available.")
		return
	}

	current := mgr.CurrentLevelSet()

	fmt.Println("Available level sets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sets {
		if len(s.ID()) > maxIDLen {
			maxIDLen = len(s.ID())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Name")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "----")

	for _, s := range sets {
		marker := ""
		if current != nil && s.ID() == current.ID() {
			marker = "  (active)"
		}
		fmt.Printf("  %-*s  %-6d  %s%s\n", maxIDLen, s.ID(), s.Len(), s.Name(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'dots levels <id>' to see the levels of a set.")
}
