package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"sipli/internal/cli"
	"sipli/internal/goal"
	"sipli/internal/ledger"
	"sipli/internal/tui/theme"
)

// dayTotal is one bar of the history chart.
type dayTotal struct {
	Day         time.Time
	EffectiveML float64
	GoalML      float64
}

// buildHistory computes effective totals for the trailing window,
// oldest first. Historical goals reuse today's breakdown, matching the
// streak scan.
func (a *App) buildHistory(now time.Time) []dayTotal {
	state := a.store.LoadOrDefault()
	led := ledger.New(state.Entries, nil)
	g := goal.Daily(state.Profile, state.LastWeather, state.LastWorkout)

	days := make([]dayTotal, 0, a.historyDays)
	for d := a.historyDays - 1; d >= 0; d-- {
		day := now.AddDate(0, 0, -d)
		days = append(days, dayTotal{
			Day:         day,
			EffectiveML: led.EffectiveTotal(day),
			GoalML:      g.TotalML,
		})
	}
	return days
}

func (a App) renderHistory() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.history) == 0 {
		return dim.Render("  No history yet.")
	}

	chartWidth := a.width - 8
	if chartWidth < 24 {
		chartWidth = 24
	}
	chartHeight := 12
	if a.height > 30 {
		chartHeight = 16
	}

	chart := barchart.New(chartWidth, chartHeight)

	metStyle := lipgloss.NewStyle().Foreground(t.Green)
	missedStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	met := 0
	var bars []barchart.BarData
	for _, d := range a.history {
		style := missedStyle
		if d.GoalML > 0 && d.EffectiveML >= d.GoalML {
			style = metStyle
			met++
		}
		bars = append(bars, barchart.BarData{
			Label: d.Day.Format("02"),
			Values: []barchart.BarValue{
				{Name: "effective", Value: d.EffectiveML / 1000, Style: style},
			},
		})
	}
	chart.PushAll(bars)
	chart.Draw()

	var b strings.Builder
	b.WriteString(muted.Render(fmt.Sprintf("  Last %d days, liters of effective hydration. Goal %s.",
		len(a.history), cli.FormatVolume(a.history[0].GoalML, a.snap.Unit))))
	b.WriteString("\n\n")
	b.WriteString(chart.View())
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("  Goal met on %d of %d days.", met, len(a.history))))
	b.WriteString("\n")
	return b.String()
}
