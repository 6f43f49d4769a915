package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	catalogService "storefront.GO/service/catalog"
)

var (
	importFile   string
	importFormat string
	importBatch  int
)

var catalogImportCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import products from a CSV or JSON file into the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open file: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		opts := catalogService.ImportOptions{BatchSize: importBatch}
		var res *catalogService.ImportResult
		switch importFormat {
		case "json":
			res, err = catalogService.ImportJSON(db, f, opts)
		case "csv":
			res, err = catalogService.ImportCSV(db, f, opts)
		default:
			fmt.Printf("Unknown format: %s (want csv or json)\n", importFormat)
			return
		}
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Import Report ===
Rows read:      %d
Imported:       %d
Skipped:        %d
Format:         %s
Total time:     %s
=====================
`, res.TotalRows, res.Imported, res.Skipped, importFormat,
			res.TotalTime.Round(time.Millisecond))
	},
}

func init() {
	catalogImportCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV or JSON file path (required)")
	catalogImportCmd.MarkFlagRequired("file")
	catalogImportCmd.Flags().StringVar(&importFormat, "format", "csv", "Input format: csv or json")
	catalogImportCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	rootCmd.AddCommand(catalogImportCmd)
}
