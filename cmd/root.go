package cmd

import (
	"fmt"
	"os"
	"time"

	"sipli/internal/config"
	"sipli/internal/snapshot"
	"sipli/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagStateFile string
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "sipli",
	Short: "Hydration tracking CLI",
	Long:  "Track your water intake: daily goals, hydration factors, and streaks.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagStateFile, "state-file", "s", "", "Path to the state file (default: config, then XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig never fails: a broken config file degrades to defaults
// with a note on stderr.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  config: %v (using defaults)\n", err)
	}
	return cfg
}

// openStore resolves the state file path: flag beats config beats the
// XDG default.
func openStore() *store.Store {
	if flagStateFile != "" {
		return store.New(flagStateFile)
	}
	cfg := loadConfig()
	if cfg.General.StatePath != "" {
		return store.New(cfg.General.StatePath)
	}
	return store.New(store.DefaultStatePath())
}

func newAssembler() *snapshot.Assembler {
	return snapshot.New(openStore(), time.Local)
}
