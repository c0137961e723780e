// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"

	"sipli/internal/model"
)

// FormatVolume formats a milliliter amount in the profile's display
// units. e.g., 1250 -> "1250 mL" (metric) or "42 fl oz" (imperial).
func FormatVolume(ml float64, u model.UnitSystem) string {
	v := u.FromML(ml)
	if u == model.Imperial {
		return fmt.Sprintf("%.0f %s", v, u.VolumeUnit())
	}
	return fmt.Sprintf("%.0f %s", math.Round(v), u.VolumeUnit())
}

// ShortVolume formats a compact volume for tight layouts, dropping the
// unit label. e.g., 1250 -> "1250", 12500 -> "12.5k".
func ShortVolume(ml float64, u model.UnitSystem) string {
	v := u.FromML(ml)
	if v >= 10_000 {
		return fmt.Sprintf("%.1fk", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatFactor renders a hydration factor as the familiar label,
// e.g. 0.80 -> "80% hydration".
func FormatFactor(f float64) string {
	return fmt.Sprintf("%d%% hydration", int(math.Round(f*100)))
}

// FormatStreak renders a streak count, e.g. "3 days" or "1 day".
func FormatStreak(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatClock renders an entry timestamp for today-entry tables.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
