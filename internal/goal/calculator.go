// Package goal derives the personalized daily hydration target.
//
// Daily is a pure function of its inputs: same profile and signals
// always produce the same breakdown, with no clock or global state.
package goal

import "sipli/internal/model"

const (
	// base goal: 35 mL per kg of body weight, scaled by activity level
	mlPerKG = 35

	// weather adjustment: linear above the comfort threshold, capped
	heatThresholdC = 24.0
	mlPerDegreeC   = 40.0
	maxWeatherML   = 600.0

	// workout adjustment: duration plus energy expenditure, capped
	mlPerMinute  = 8.0
	mlPerKcal    = 0.4
	maxWorkoutML = 1000.0
)

// Breakdown decomposes a day's target into base and adjustments.
// When a custom goal is set, TotalML is the override and the adjustment
// fields are informational only.
type Breakdown struct {
	BaseML             float64 `json:"base_ml"`
	WeatherAdjustmentML float64 `json:"weather_adjustment_ml"`
	WorkoutAdjustmentML float64 `json:"workout_adjustment_ml"`
	TotalML            float64 `json:"total_ml"`
}

// Daily computes the goal breakdown for a profile and the latest known
// weather and workout signals. weather may be nil; an empty workout
// contributes nothing. Inputs are pre-validated at the profile-update
// boundary, so there is no error path here.
func Daily(p model.UserProfile, weather *model.WeatherSnapshot, workout model.WorkoutSummary) Breakdown {
	b := Breakdown{
		BaseML:              p.WeightKG * mlPerKG * p.ActivityLevel.Multiplier(),
		WeatherAdjustmentML: weatherAdjustment(p, weather),
		WorkoutAdjustmentML: workoutAdjustment(p, workout),
	}

	if p.CustomGoalML != nil {
		// An explicit goal replaces the derived total outright.
		b.TotalML = *p.CustomGoalML
		return b
	}

	b.TotalML = b.BaseML + b.WeatherAdjustmentML + b.WorkoutAdjustmentML
	return b
}

func weatherAdjustment(p model.UserProfile, weather *model.WeatherSnapshot) float64 {
	if !p.PrefersWeatherGoal || weather == nil {
		return 0
	}
	excess := weather.HeatSignalC() - heatThresholdC
	if excess <= 0 {
		return 0
	}
	adj := excess * mlPerDegreeC
	if adj > maxWeatherML {
		return maxWeatherML
	}
	return adj
}

func workoutAdjustment(p model.UserProfile, workout model.WorkoutSummary) float64 {
	if !p.PrefersWorkoutGoal || workout.IsEmpty() {
		return 0
	}
	adj := workout.Minutes*mlPerMinute + workout.Kilocalories*mlPerKcal
	if adj > maxWorkoutML {
		return maxWorkoutML
	}
	return adj
}
