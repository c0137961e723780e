package cmd

import (
	"fmt"

	"sipli/internal/cli"
	"sipli/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagProfileName        string
	flagProfileUnits       string
	flagProfileWeight      float64
	flagProfileActivity    string
	flagProfileGoal        float64
	flagProfileWeather     bool
	flagProfileWorkout     bool
	flagProfileRemind      bool
	flagProfileRemindFrom  int
	flagProfileRemindUntil int
	flagProfileRemindEvery int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your hydration profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE:  runProfileSet,
}

func init() {
	f := profileSetCmd.Flags()
	f.StringVar(&flagProfileName, "name", "", "Display name")
	f.StringVar(&flagProfileUnits, "units", "", "Display units: metric or imperial")
	f.Float64Var(&flagProfileWeight, "weight", 0, "Body weight in your display units")
	f.StringVar(&flagProfileActivity, "activity", "", "Activity level: gentle, steady, active, athlete")
	f.Float64Var(&flagProfileGoal, "goal", 0, "Custom daily goal in display units (0 clears it)")
	f.BoolVar(&flagProfileWeather, "weather", true, "Adjust goal for hot weather")
	f.BoolVar(&flagProfileWorkout, "workout", true, "Adjust goal for workouts")
	f.BoolVar(&flagProfileRemind, "remind", true, "Enable drink reminders")
	f.IntVar(&flagProfileRemindFrom, "remind-from", 0, "Reminder window start hour (0-23)")
	f.IntVar(&flagProfileRemindUntil, "remind-until", 0, "Reminder window end hour (1-24)")
	f.IntVar(&flagProfileRemindEvery, "remind-every", 0, "Minutes between reminders")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	p := openStore().LoadOrDefault().Profile

	name := p.Name
	if name == "" {
		name = "(unset)"
	}
	goalVal := "derived from weight and activity"
	if p.CustomGoalML != nil {
		goalVal = cli.FormatVolume(*p.CustomGoalML, p.UnitSystem) + " (custom)"
	}
	reminders := "off"
	if p.Reminders.Enabled {
		reminders = fmt.Sprintf("every %dm, %s-%s",
			p.Reminders.IntervalMinutes,
			cli.FormatClock(p.Reminders.StartHour, 0),
			cli.FormatClock(p.Reminders.EndHour, 0))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROFILE"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Name", name},
			{"Units", string(p.UnitSystem)},
			{"Weight", fmt.Sprintf("%.0f %s", p.UnitSystem.FromKG(p.WeightKG), p.UnitSystem.WeightUnit())},
			{"Activity", string(p.ActivityLevel)},
			{"Daily goal", goalVal},
			{"Weather adj", onOff(p.PrefersWeatherGoal)},
			{"Workout adj", onOff(p.PrefersWorkoutGoal)},
			{"Reminders", reminders},
		},
	}))
	fmt.Println()

	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	st := openStore()
	p := st.LoadOrDefault().Profile

	f := cmd.Flags()
	if f.Changed("name") {
		p.Name = flagProfileName
	}
	if f.Changed("units") {
		switch flagProfileUnits {
		case string(model.Metric):
			p.UnitSystem = model.Metric
		case string(model.Imperial):
			p.UnitSystem = model.Imperial
		default:
			return fmt.Errorf("unknown unit system %q, want metric or imperial", flagProfileUnits)
		}
	}
	if f.Changed("weight") {
		p.WeightKG = p.UnitSystem.KG(flagProfileWeight)
	}
	if f.Changed("activity") {
		lvl := model.ActivityLevel(flagProfileActivity)
		found := false
		for _, known := range model.ActivityLevels {
			if lvl == known {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown activity level %q", flagProfileActivity)
		}
		p.ActivityLevel = lvl
	}
	if f.Changed("goal") {
		if flagProfileGoal <= 0 {
			p.CustomGoalML = nil
		} else {
			ml := p.UnitSystem.ML(flagProfileGoal)
			p.CustomGoalML = &ml
		}
	}
	if f.Changed("weather") {
		p.PrefersWeatherGoal = flagProfileWeather
	}
	if f.Changed("workout") {
		p.PrefersWorkoutGoal = flagProfileWorkout
	}
	if f.Changed("remind") {
		p.Reminders.Enabled = flagProfileRemind
	}
	if f.Changed("remind-from") {
		p.Reminders.StartHour = flagProfileRemindFrom
	}
	if f.Changed("remind-until") {
		p.Reminders.EndHour = flagProfileRemindUntil
	}
	if f.Changed("remind-every") {
		p.Reminders.IntervalMinutes = flagProfileRemindEvery
	}

	if err := st.UpdateProfile(p); err != nil {
		return err
	}

	fmt.Println("  Profile updated.")
	return runProfileShow(cmd, nil)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
