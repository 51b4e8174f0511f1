package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkulagin/dots-tui/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with level catalogs",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the built-in catalog to a file",
	Long: `Write the built-in level catalog to the given path, or to stdout
when no path is given. Use the result as a starting point for a
custom catalog:

  dots catalog export my-levels.yaml
  dots browse --catalog my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCatalogExport,
}

func init() {
	catalogCmd.AddCommand(catalogExportCmd)
}

func runCatalogExport(cmd *cobra.Command, args []string) {
	data := catalog.DefaultYAML()

	if len(args) == 0 {
		os.Stdout.Write(data)
		return
	}

	path := args[0]
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, refusing to overwrite\n", path)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote built-in catalog to %s\n", path)
}
