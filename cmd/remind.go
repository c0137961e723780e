package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sipli/internal/cli"
	"sipli/internal/reminder"

	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the drink reminder scheduler in the foreground",
	Long:  "Prints a reminder at the profile's interval inside its daily window. Stops with Ctrl-C.",
	RunE:  runRemind,
}

func init() {
	rootCmd.AddCommand(remindCmd)
}

func runRemind(_ *cobra.Command, _ []string) error {
	prefs := openStore().LoadOrDefault().Profile.Reminders
	if !prefs.Enabled {
		return fmt.Errorf("reminders are disabled, enable with `sipli profile set --remind`")
	}

	sched := reminder.NewScheduler(time.Local)
	_, err := sched.Schedule(prefs, func() {
		snap := newAssembler().Build(time.Now())
		if snap.Progress() >= 1 {
			return // goal met, stay quiet
		}
		remaining := snap.Goal.TotalML - snap.TodayTotalML
		fmt.Printf("\a  💧 Time to drink! %s to go (%s of goal done).\n",
			cli.FormatVolume(remaining, snap.Unit),
			cli.FormatPercent(snap.Progress()))
	})
	if err != nil {
		return fmt.Errorf("scheduling reminders: %w", err)
	}

	sched.Start()
	defer sched.Stop()

	if !flagQuiet {
		fmt.Printf("  Reminding every %dm between %s and %s. Ctrl-C to stop.\n",
			prefs.IntervalMinutes,
			cli.FormatClock(prefs.StartHour, 0),
			cli.FormatClock(prefs.EndHour, 0))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	fmt.Println("\n  Stopped.")
	return nil
}
