package model

import (
	"errors"
	"fmt"
)

// UnitSystem selects the display units. Storage is always milliliters
// and kilograms; conversion happens at the presentation edge.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

const (
	mlPerFlOz = 29.5735
	kgPerLb   = 0.453592
)

// VolumeUnit returns the display unit label for volumes.
func (u UnitSystem) VolumeUnit() string {
	if u == Imperial {
		return "fl oz"
	}
	return "mL"
}

// WeightUnit returns the display unit label for body weight.
func (u UnitSystem) WeightUnit() string {
	if u == Imperial {
		return "lb"
	}
	return "kg"
}

// ML converts a volume entered in display units to milliliters.
func (u UnitSystem) ML(v float64) float64 {
	if u == Imperial {
		return v * mlPerFlOz
	}
	return v
}

// FromML converts milliliters to display units.
func (u UnitSystem) FromML(ml float64) float64 {
	if u == Imperial {
		return ml / mlPerFlOz
	}
	return ml
}

// KG converts a weight entered in display units to kilograms.
func (u UnitSystem) KG(w float64) float64 {
	if u == Imperial {
		return w * kgPerLb
	}
	return w
}

// FromKG converts kilograms to display units.
func (u UnitSystem) FromKG(kg float64) float64 {
	if u == Imperial {
		return kg / kgPerLb
	}
	return kg
}

// ActivityLevel is an ordinal rating of day-to-day movement.
type ActivityLevel string

const (
	ActivityGentle  ActivityLevel = "gentle"
	ActivitySteady  ActivityLevel = "steady"
	ActivityActive  ActivityLevel = "active"
	ActivityAthlete ActivityLevel = "athlete"
)

// ActivityLevels lists every level in ascending order.
var ActivityLevels = []ActivityLevel{ActivityGentle, ActivitySteady, ActivityActive, ActivityAthlete}

// Multiplier returns the base-goal scaling for an activity level.
// Unknown values fall back to steady.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivityGentle:
		return 0.90
	case ActivityActive:
		return 1.10
	case ActivityAthlete:
		return 1.20
	default:
		return 1.00
	}
}

// ReminderPrefs configures drink reminders within a daily window.
type ReminderPrefs struct {
	Enabled         bool `json:"enabled"`
	StartHour       int  `json:"start_hour"`
	EndHour         int  `json:"end_hour"`
	IntervalMinutes int  `json:"interval_minutes"`
}

// UserProfile is the single per-installation profile. It is mutated only
// through the store's profile-update path, which validates first.
type UserProfile struct {
	Name               string        `json:"name"`
	UnitSystem         UnitSystem    `json:"unit_system"`
	WeightKG           float64       `json:"weight_kg"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	CustomGoalML       *float64      `json:"custom_goal_ml,omitempty"`
	Reminders          ReminderPrefs `json:"reminders"`
	PrefersWeatherGoal bool          `json:"prefers_weather_goal"`
	PrefersWorkoutGoal bool          `json:"prefers_workout_goal"`
}

// DefaultProfile is the profile created on first launch.
func DefaultProfile() UserProfile {
	return UserProfile{
		UnitSystem:         Metric,
		WeightKG:           70,
		ActivityLevel:      ActivitySteady,
		Reminders:          ReminderPrefs{Enabled: true, StartHour: 9, EndHour: 21, IntervalMinutes: 120},
		PrefersWeatherGoal: true,
		PrefersWorkoutGoal: true,
	}
}

// Validate rejects malformed profile values at the update boundary, so
// the goal calculator never sees them.
func (p UserProfile) Validate() error {
	if p.WeightKG <= 0 {
		return fmt.Errorf("weight must be positive, got %.1f kg", p.WeightKG)
	}
	if p.CustomGoalML != nil && *p.CustomGoalML <= 0 {
		return errors.New("custom goal must be positive")
	}
	switch p.UnitSystem {
	case Metric, Imperial:
	default:
		return fmt.Errorf("unknown unit system %q", p.UnitSystem)
	}
	switch p.ActivityLevel {
	case ActivityGentle, ActivitySteady, ActivityActive, ActivityAthlete:
	default:
		return fmt.Errorf("unknown activity level %q", p.ActivityLevel)
	}
	if p.Reminders.IntervalMinutes < 0 {
		return errors.New("reminder interval must not be negative")
	}
	return nil
}

// Normalize fills defaults for fields missing from documents written by
// older releases. It never rejects: decode tolerance is the contract.
func (p *UserProfile) Normalize() {
	def := DefaultProfile()
	if p.UnitSystem != Metric && p.UnitSystem != Imperial {
		p.UnitSystem = def.UnitSystem
	}
	if p.WeightKG <= 0 {
		p.WeightKG = def.WeightKG
	}
	switch p.ActivityLevel {
	case ActivityGentle, ActivitySteady, ActivityActive, ActivityAthlete:
	default:
		p.ActivityLevel = def.ActivityLevel
	}
	if p.CustomGoalML != nil && *p.CustomGoalML <= 0 {
		p.CustomGoalML = nil
	}
	if p.Reminders.IntervalMinutes <= 0 {
		p.Reminders.IntervalMinutes = def.Reminders.IntervalMinutes
	}
	if p.Reminders.StartHour == 0 && p.Reminders.EndHour == 0 {
		p.Reminders.StartHour = def.Reminders.StartHour
		p.Reminders.EndHour = def.Reminders.EndHour
	}
}
