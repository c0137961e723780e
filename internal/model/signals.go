package model

import "time"

// WeatherSnapshot is the most recent weather reading handed to the core
// by an external provider. It may be stale or absent; the goal
// calculator treats absence as "no adjustment".
type WeatherSnapshot struct {
	TemperatureC float64   `json:"temperature_c"`
	HeatIndexC   float64   `json:"heat_index_c,omitempty"`
	CapturedAt   time.Time `json:"captured_at"`
}

// HeatSignalC is the effective heat input for goal adjustment: the heat
// index when it exceeds the dry-bulb temperature, otherwise the
// temperature itself.
func (w WeatherSnapshot) HeatSignalC() float64 {
	if w.HeatIndexC > w.TemperatureC {
		return w.HeatIndexC
	}
	return w.TemperatureC
}

// WorkoutSummary is the current day's exercise signal from an external
// activity provider. The zero value means "no workout today".
type WorkoutSummary struct {
	Minutes      float64   `json:"minutes"`
	Kilocalories float64   `json:"kilocalories"`
	CapturedAt   time.Time `json:"captured_at,omitzero"`
}

// IsEmpty reports whether there is no workout signal to adjust for.
func (w WorkoutSummary) IsEmpty() bool {
	return w.Minutes <= 0 && w.Kilocalories <= 0
}
