package cmd

import (
	"fmt"
	"time"

	"sipli/internal/cli"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Current goal streak",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
	snap := newAssembler().Build(time.Now())

	if snap.Streak == 0 {
		fmt.Println("  No streak yet. Hit today's goal to start one.")
		return nil
	}

	fmt.Printf("  🔥 %s", cli.FormatStreak(snap.Streak))
	if snap.Progress() < 1 {
		need := snap.Goal.TotalML - snap.TodayTotalML
		fmt.Printf(" — %s to go today to keep it alive", cli.FormatVolume(need, snap.Unit))
	}
	fmt.Println()

	return nil
}
