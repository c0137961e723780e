package cmd

import (
	"fmt"
	"time"

	"sipli/internal/cli"
	"sipli/internal/fluid"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Today's hydration at a glance",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	snap := newAssembler().Build(time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("SIPLI  " + snap.GeneratedAt.Format("Mon Jan 2")))
	fmt.Println()

	fmt.Printf("  %s  %s\n", cli.ProgressBar(snap.Progress(), 32), cli.FormatPercent(snap.Progress()))
	fmt.Println()
	fmt.Printf("  Intake   %s of %s\n",
		cli.FormatVolume(snap.TodayTotalML, snap.Unit),
		cli.FormatVolume(snap.Goal.TotalML, snap.Unit))
	if snap.Goal.WeatherAdjustmentML > 0 {
		fmt.Printf("  Weather  +%s\n", cli.FormatVolume(snap.Goal.WeatherAdjustmentML, snap.Unit))
	}
	if snap.Goal.WorkoutAdjustmentML > 0 {
		fmt.Printf("  Workout  +%s\n", cli.FormatVolume(snap.Goal.WorkoutAdjustmentML, snap.Unit))
	}
	fmt.Printf("  Streak   %s\n", cli.FormatStreak(snap.Streak))

	if len(snap.TodayEntries) > 0 {
		latest := snap.TodayEntries[0]
		fmt.Printf("  Last     %s %s at %s\n",
			cli.FormatVolume(latest.VolumeML, snap.Unit),
			fluid.Lookup(latest.Fluid).DisplayName,
			latest.Timestamp.Local().Format("15:04"))
	}
	fmt.Println()

	return nil
}
