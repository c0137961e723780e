// Package components holds reusable TUI building blocks.
package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"sipli/internal/tui/theme"
)

// ColorForProgress returns the fill color for a goal-progress fraction:
// cyan while early, accent past half, green at and beyond the goal.
func ColorForProgress(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Green
	case pct >= 0.5:
		return t.Accent
	default:
		return t.Cyan
	}
}

// GoalBar renders a labeled goal-progress bar with a percentage.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	display := pct
	if display > 1 {
		display = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForProgress(pct))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(ColorForProgress(pct)).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(display) +
		" " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
