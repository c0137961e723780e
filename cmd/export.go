package cmd

import (
	"fmt"
	"os"

	"sipli/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as JSON or CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "json", "Output format: json or csv")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	state := openStore().LoadOrDefault()

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		out = f
	}

	var err error
	switch flagExportFormat {
	case "json":
		err = export.JSON(out, state.Entries)
	case "csv":
		err = export.CSV(out, state.Entries)
	default:
		return fmt.Errorf("unknown format %q, want json or csv", flagExportFormat)
	}
	if err != nil {
		return err
	}

	if flagExportOut != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %d entries to %s\n", len(state.Entries), flagExportOut)
	}

	return nil
}
