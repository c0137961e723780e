package cmd

import (
	"fmt"

	"sipli/internal/healthsync"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import drink records exported from a health app",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	entries, skipped, err := healthsync.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if err := openStore().AddEntries(entries); err != nil {
		return fmt.Errorf("importing entries: %w", err)
	}

	fmt.Printf("  Imported %d entries", len(entries))
	if skipped > 0 {
		fmt.Printf(" (%d skipped)", skipped)
	}
	fmt.Println(".")

	return nil
}
