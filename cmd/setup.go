package cmd

import (
	"fmt"
	"strconv"

	"sipli/internal/config"
	"sipli/internal/model"
	"sipli/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	st := openStore()
	p := st.LoadOrDefault().Profile
	cfg := loadConfig()

	name := p.Name
	unit := string(p.UnitSystem)
	weight := strconv.FormatFloat(p.UnitSystem.FromKG(p.WeightKG), 'f', 0, 64)
	activity := string(p.ActivityLevel)
	remind := p.Reminders.Enabled
	themeName := cfg.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Your name").Value(&name),
			huh.NewSelect[string]().Title("Units").
				Options(
					huh.NewOption("Metric (mL, kg)", string(model.Metric)),
					huh.NewOption("Imperial (fl oz, lb)", string(model.Imperial)),
				).Value(&unit),
			huh.NewInput().Title("Body weight").
				Validate(func(s string) error {
					w, err := strconv.ParseFloat(s, 64)
					if err != nil || w <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}).Value(&weight),
			huh.NewSelect[string]().Title("Activity level").
				Options(
					huh.NewOption("Gentle — mostly sedentary", string(model.ActivityGentle)),
					huh.NewOption("Steady — regular light exercise", string(model.ActivitySteady)),
					huh.NewOption("Active — frequent training", string(model.ActivityActive)),
					huh.NewOption("Athlete — daily intense training", string(model.ActivityAthlete)),
				).Value(&activity),
		).Title("About you"),
		huh.NewGroup(
			huh.NewConfirm().Title("Drink reminders?").Value(&remind),
			huh.NewSelect[string]().Title("Color theme").
				Options(themeOpts...).Value(&themeName),
		).Title("Preferences"),
	).WithShowHelp(true).WithShowErrors(true)

	if err := form.Run(); err != nil {
		return err
	}

	p.Name = name
	p.UnitSystem = model.UnitSystem(unit)
	w, _ := strconv.ParseFloat(weight, 64)
	p.WeightKG = p.UnitSystem.KG(w)
	p.ActivityLevel = model.ActivityLevel(activity)
	p.Reminders.Enabled = remind

	if err := st.UpdateProfile(p); err != nil {
		return err
	}

	cfg.Appearance.Theme = themeName
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `sipli setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
