package cmd

import (
	"fmt"
	"time"

	"sipli/internal/cli"
	"sipli/internal/goal"
	"sipli/internal/ledger"

	"github.com/spf13/cobra"
)

var flagHistoryDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Daily intake table for the last N days",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryDays, "days", "n", 0, "Days to show (default from config)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	days := flagHistoryDays
	if days <= 0 {
		days = loadConfig().General.HistoryDays
	}

	state := openStore().LoadOrDefault()
	led := ledger.New(state.Entries, time.Local)
	bd := goal.Daily(state.Profile, state.LastWeather, state.LastWorkout)
	unit := state.Profile.UnitSystem

	now := time.Now()
	rows := make([][]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		total := led.EffectiveTotal(day)

		met := ""
		if total >= bd.TotalML && bd.TotalML > 0 {
			met = "✓"
		}
		rows = append(rows, []string{
			day.Format("2006-01-02"),
			day.Format("Mon"),
			cli.FormatVolume(total, unit),
			cli.FormatVolume(bd.TotalML, unit),
			met,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HISTORY  Last %dd", days)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Intake", "Goal", "Met"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
