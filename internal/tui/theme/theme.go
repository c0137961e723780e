// Package theme defines color themes for the sipli TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Border      lipgloss.Color
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color // water-progress accent
	Green       lipgloss.Color // goal met
	Orange      lipgloss.Color
	Red         lipgloss.Color
	Cyan        lipgloss.Color
	Yellow      lipgloss.Color
}

// Active is the currently selected theme.
var Active = Lagoon

// Lagoon is the default theme, matching the app's water palette.
var Lagoon = Theme{
	Name:        "lagoon",
	Background:  lipgloss.Color("#0B1620"),
	Surface:     lipgloss.Color("#13222E"),
	Border:      lipgloss.Color("#1E3340"),
	TextDim:     lipgloss.Color("#3E5463"),
	TextMuted:   lipgloss.Color("#7C93A3"),
	TextPrimary: lipgloss.Color("#EAF4FA"),
	Accent:      lipgloss.Color("#4FB3D9"),
	Green:       lipgloss.Color("#7FBF7F"),
	Orange:      lipgloss.Color("#E8A04C"),
	Red:         lipgloss.Color("#D9635C"),
	Cyan:        lipgloss.Color("#3B8EA5"),
	Yellow:      lipgloss.Color("#E3C15A"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Background:  lipgloss.Color("#100F0F"),
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Orange:      lipgloss.Color("#DA702C"),
	Red:         lipgloss.Color("#D14D41"),
	Cyan:        lipgloss.Color("#24837B"),
	Yellow:      lipgloss.Color("#D0A215"),
}

// All lists the available themes.
var All = []Theme{Lagoon, FlexokiDark}

// SetActive switches the active theme by name. Unknown names keep the
// current theme.
func SetActive(name string) {
	for _, t := range All {
		if t.Name == name {
			Active = t
			return
		}
	}
}
