package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sipli/internal/cli"
	"sipli/internal/fluid"
	"sipli/internal/tui/components"
	"sipli/internal/tui/theme"
)

func (a App) renderOverview() string {
	t := theme.Active
	snap := a.snap

	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	barWidth := a.width - 30
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 20 {
		barWidth = 20
	}

	var b strings.Builder

	pct := 0.0
	if snap.Goal.TotalML > 0 {
		pct = snap.TodayTotalML / snap.Goal.TotalML
	}
	b.WriteString("  ")
	b.WriteString(components.GoalBar("Today", pct, 7, barWidth))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		muted.Render("Intake "),
		value.Render(fmt.Sprintf("%s of %s",
			cli.FormatVolume(snap.TodayTotalML, snap.Unit),
			cli.FormatVolume(snap.Goal.TotalML, snap.Unit)))))

	goalLine := fmt.Sprintf("base %s", cli.FormatVolume(snap.Goal.BaseML, snap.Unit))
	if snap.Goal.WeatherAdjustmentML > 0 {
		goalLine += fmt.Sprintf(" · heat +%s", cli.FormatVolume(snap.Goal.WeatherAdjustmentML, snap.Unit))
	}
	if snap.Goal.WorkoutAdjustmentML > 0 {
		goalLine += fmt.Sprintf(" · workout +%s", cli.FormatVolume(snap.Goal.WorkoutAdjustmentML, snap.Unit))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", muted.Render("Goal   "), dim.Render(goalLine)))
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		muted.Render("Streak "), value.Render(cli.FormatStreak(a.snap.Streak))))

	b.WriteString("  ")
	b.WriteString(title.Render("Today's entries"))
	b.WriteString("\n")

	if len(snap.TodayEntries) == 0 {
		b.WriteString(dim.Render("  Nothing logged yet. `sipli log 500` gets you started."))
		b.WriteString("\n")
		return b.String()
	}

	for _, e := range snap.TodayEntries {
		info := fluid.Lookup(e.Fluid)
		local := e.Timestamp.Local()
		fluidStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color))
		b.WriteString(fmt.Sprintf("  %s  %s %s  %s %s\n",
			dim.Render(cli.FormatClock(local.Hour(), local.Minute())),
			info.Icon,
			fluidStyle.Render(fmt.Sprintf("%-15s", info.DisplayName)),
			value.Render(fmt.Sprintf("%8s", cli.FormatVolume(e.VolumeML, snap.Unit))),
			dim.Render(fmt.Sprintf("→ %s effective", cli.FormatVolume(e.EffectiveML(), snap.Unit)))))
	}

	return b.String()
}
