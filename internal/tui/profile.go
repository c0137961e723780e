package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"sipli/internal/cli"
	"sipli/internal/model"
	"sipli/internal/tui/theme"
)

// profileValues backs the huh form with string-typed fields.
type profileValues struct {
	name       string
	unit       string
	weight     string
	activity   string
	customGoal string
	weather    bool
	workout    bool
}

func (a App) renderProfile() string {
	if a.profileForm != nil {
		return a.profileForm.View()
	}

	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	p := a.store.LoadOrDefault().Profile

	row := func(label, val string) string {
		return fmt.Sprintf("  %s %s\n", muted.Render(fmt.Sprintf("%-12s", label)), value.Render(val))
	}

	var b strings.Builder
	name := p.Name
	if name == "" {
		name = "(unset)"
	}
	b.WriteString(row("Name", name))
	b.WriteString(row("Units", string(p.UnitSystem)))
	b.WriteString(row("Weight", fmt.Sprintf("%.0f %s", p.UnitSystem.FromKG(p.WeightKG), p.UnitSystem.WeightUnit())))
	b.WriteString(row("Activity", string(p.ActivityLevel)))
	if p.CustomGoalML != nil {
		b.WriteString(row("Custom goal", cli.FormatVolume(*p.CustomGoalML, p.UnitSystem)))
	} else {
		b.WriteString(row("Custom goal", "off (derived goal)"))
	}
	b.WriteString(row("Weather adj", onOff(p.PrefersWeatherGoal)))
	b.WriteString(row("Workout adj", onOff(p.PrefersWorkoutGoal)))
	b.WriteString("\n")
	if a.formErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(fmt.Sprintf("  %v\n", a.formErr)))
	}
	b.WriteString(dim.Render("  e edit"))
	b.WriteString("\n")
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (a App) openProfileForm() (tea.Model, tea.Cmd) {
	p := a.store.LoadOrDefault().Profile

	vals := &profileValues{
		name:     p.Name,
		unit:     string(p.UnitSystem),
		weight:   strconv.FormatFloat(p.UnitSystem.FromKG(p.WeightKG), 'f', 0, 64),
		activity: string(p.ActivityLevel),
		weather:  p.PrefersWeatherGoal,
		workout:  p.PrefersWorkoutGoal,
	}
	if p.CustomGoalML != nil {
		vals.customGoal = strconv.FormatFloat(p.UnitSystem.FromML(*p.CustomGoalML), 'f', 0, 64)
	}
	a.profileVals = vals

	a.profileForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&a.profileVals.name),
			huh.NewSelect[string]().Title("Units").
				Options(
					huh.NewOption("Metric (mL, kg)", string(model.Metric)),
					huh.NewOption("Imperial (fl oz, lb)", string(model.Imperial)),
				).Value(&a.profileVals.unit),
			huh.NewInput().Title("Weight").Value(&a.profileVals.weight),
			huh.NewSelect[string]().Title("Activity level").
				Options(
					huh.NewOption("Gentle", string(model.ActivityGentle)),
					huh.NewOption("Steady", string(model.ActivitySteady)),
					huh.NewOption("Active", string(model.ActivityActive)),
					huh.NewOption("Athlete", string(model.ActivityAthlete)),
				).Value(&a.profileVals.activity),
		),
		huh.NewGroup(
			huh.NewInput().Title("Custom daily goal (blank for derived)").Value(&a.profileVals.customGoal),
			huh.NewConfirm().Title("Adjust goal for hot weather?").Value(&a.profileVals.weather),
			huh.NewConfirm().Title("Adjust goal for workouts?").Value(&a.profileVals.workout),
		),
	)
	return a, a.profileForm.Init()
}

func (a App) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.profileForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.profileForm = f
	}

	if a.profileForm.State == huh.StateCompleted {
		a.formErr = a.saveProfile()
		a.profileForm = nil
		a.refresh(timeNow())
		return a, nil
	}
	if a.profileForm.State == huh.StateAborted {
		a.profileForm = nil
		return a, nil
	}
	return a, cmd
}

// saveProfile converts form values back into a validated profile update.
func (a *App) saveProfile() error {
	p := a.store.LoadOrDefault().Profile
	vals := a.profileVals

	p.Name = strings.TrimSpace(vals.name)
	p.UnitSystem = model.UnitSystem(vals.unit)
	p.ActivityLevel = model.ActivityLevel(vals.activity)
	p.PrefersWeatherGoal = vals.weather
	p.PrefersWorkoutGoal = vals.workout

	w, err := strconv.ParseFloat(strings.TrimSpace(vals.weight), 64)
	if err != nil {
		return fmt.Errorf("weight %q is not a number", vals.weight)
	}
	p.WeightKG = p.UnitSystem.KG(w)

	goalStr := strings.TrimSpace(vals.customGoal)
	if goalStr == "" {
		p.CustomGoalML = nil
	} else {
		g, err := strconv.ParseFloat(goalStr, 64)
		if err != nil {
			return fmt.Errorf("custom goal %q is not a number", goalStr)
		}
		ml := p.UnitSystem.ML(g)
		p.CustomGoalML = &ml
	}

	return a.store.UpdateProfile(p)
}
