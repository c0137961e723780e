package cmd

import (
	"fmt"
	"time"

	"sipli/internal/cli"
	"sipli/internal/goal"
	"sipli/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagWorkoutMinutes float64
	flagWorkoutKcal    float64
	flagWorkoutClear   bool
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Record today's workout for goal adjustment",
	RunE:  runWorkout,
}

func init() {
	workoutCmd.Flags().Float64VarP(&flagWorkoutMinutes, "minutes", "m", 0, "Exercise minutes")
	workoutCmd.Flags().Float64VarP(&flagWorkoutKcal, "kcal", "k", 0, "Active kilocalories")
	workoutCmd.Flags().BoolVar(&flagWorkoutClear, "clear", false, "Forget today's workout")
	rootCmd.AddCommand(workoutCmd)
}

func runWorkout(cmd *cobra.Command, _ []string) error {
	st := openStore()

	if flagWorkoutClear {
		if err := st.SetWorkout(model.WorkoutSummary{CapturedAt: time.Now()}); err != nil {
			return err
		}
		fmt.Println("  Workout cleared.")
		return nil
	}

	if !cmd.Flags().Changed("minutes") && !cmd.Flags().Changed("kcal") {
		state := st.LoadOrDefault()
		if state.LastWorkout.IsEmpty() {
			fmt.Println("  No workout recorded. `sipli workout --minutes 45 --kcal 380` to set one.")
			return nil
		}
		w := state.LastWorkout
		fmt.Printf("  %.0f min, %.0f kcal, recorded %s\n",
			w.Minutes, w.Kilocalories, w.CapturedAt.Local().Format("Jan 2 15:04"))
		return nil
	}

	w := model.WorkoutSummary{
		Minutes:      flagWorkoutMinutes,
		Kilocalories: flagWorkoutKcal,
		CapturedAt:   time.Now(),
	}
	if err := st.SetWorkout(w); err != nil {
		return err
	}

	state := st.LoadOrDefault()
	bd := goal.Daily(state.Profile, state.LastWeather, state.LastWorkout)
	fmt.Printf("  Recorded %.0f min / %.0f kcal.", w.Minutes, w.Kilocalories)
	if bd.WorkoutAdjustmentML > 0 {
		fmt.Printf(" Goal raised by %s.", cli.FormatVolume(bd.WorkoutAdjustmentML, state.Profile.UnitSystem))
	}
	fmt.Println()

	return nil
}
