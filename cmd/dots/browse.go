package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkulagin/dots-tui/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive level browser",
	Long: `Browse level sets and levels interactively, preview level grids
and change settings without leaving the terminal.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Level set statistics
  M            - Toggle sound effects
  C            - Cycle player color
  Esc/B        - Back
  Q            - Quit

Examples:
  dots browse
  dots browse --catalog ./my-levels.yaml`,
	Run: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	logger := newLogger()
	mgr, sm, closer, err := openManagers(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	defer closer()

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunBrowser(mgr, sm, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}
