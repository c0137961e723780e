package cmd

import (
	"fmt"
	"time"

	"sipli/internal/cli"
	"sipli/internal/fluid"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's entries",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	snap := newAssembler().Build(time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("TODAY  " + snap.GeneratedAt.Format("Mon Jan 2")))
	fmt.Println()

	if len(snap.TodayEntries) == 0 {
		fmt.Println("  Nothing logged yet. `sipli log 250` to get started.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(snap.TodayEntries))
	for _, e := range snap.TodayEntries {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Timestamp.Local().Format("15:04"),
			fluid.Lookup(e.Fluid).DisplayName,
			cli.FormatVolume(e.VolumeML, snap.Unit),
			cli.FormatVolume(e.EffectiveML(), snap.Unit),
			string(e.Source),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Time", "Fluid", "Volume", "Counts as", "Source"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  Total %s of %s (%s), streak %s\n",
		cli.FormatVolume(snap.TodayTotalML, snap.Unit),
		cli.FormatVolume(snap.Goal.TotalML, snap.Unit),
		cli.FormatPercent(snap.Progress()),
		cli.FormatStreak(snap.Streak))
	fmt.Println()

	return nil
}
