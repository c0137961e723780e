package cmd

import (
	"fmt"
	"strconv"
	"time"

	"sipli/internal/cli"
	"sipli/internal/fluid"
	"sipli/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLogFluid string
	flagLogNote  string
	flagLogAt    string
)

var logCmd = &cobra.Command{
	Use:   "log <volume>",
	Short: "Log a drink (volume in your display units)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVarP(&flagLogFluid, "fluid", "f", "water", "Fluid type (see `sipli fluids`)")
	logCmd.Flags().StringVar(&flagLogNote, "note", "", "Optional note")
	logCmd.Flags().StringVar(&flagLogAt, "at", "", "Time of the drink, HH:MM today (default: now)")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	vol, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid volume %q", args[0])
	}
	if vol <= 0 {
		return fmt.Errorf("volume must be positive, got %s", args[0])
	}

	at := time.Now()
	if flagLogAt != "" {
		hm, err := time.ParseInLocation("15:04", flagLogAt, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --at %q, expected HH:MM", flagLogAt)
		}
		at = time.Date(at.Year(), at.Month(), at.Day(), hm.Hour(), hm.Minute(), 0, 0, time.Local)
	}

	st := openStore()
	profile := st.LoadOrDefault().Profile

	ft := fluid.Parse(flagLogFluid)
	entry := model.NewEntry(at, profile.UnitSystem.ML(vol), ft, model.SourceManual, flagLogNote)
	if err := st.AddEntry(entry); err != nil {
		return fmt.Errorf("logging entry: %w", err)
	}

	snap := newAssembler().Build(time.Now())
	fmt.Printf("  Logged %s %s (counts as %s).\n",
		cli.FormatVolume(entry.VolumeML, snap.Unit),
		fluid.Lookup(ft).DisplayName,
		cli.FormatVolume(entry.EffectiveML(), snap.Unit))
	fmt.Printf("  Today: %s of %s (%s)\n",
		cli.FormatVolume(snap.TodayTotalML, snap.Unit),
		cli.FormatVolume(snap.Goal.TotalML, snap.Unit),
		cli.FormatPercent(snap.Progress()))

	return nil
}
