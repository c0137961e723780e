// Package store persists the shared hydration state as a single JSON
// document. The primary process is the only writer; the widget process
// re-reads the document on every refresh. Writes are atomic whole-file
// replacements so a reader never observes a partial document.
package store

import (
	"github.com/google/uuid"

	"sipli/internal/fluid"
	"sipli/internal/model"
)

// schemaVersion is written for forensics only. The schema is additive
// across releases, so readers never gate on it: unknown fields are
// dropped, missing fields default during normalization.
const schemaVersion = 2

// PersistedState is the durable root shared between the app and the
// widget process.
type PersistedState struct {
	SchemaVersion int                    `json:"schema_version"`
	Entries       []model.IntakeEntry    `json:"entries"`
	Profile       model.UserProfile      `json:"profile"`
	LastWeather   *model.WeatherSnapshot `json:"last_weather,omitempty"`
	LastWorkout   model.WorkoutSummary   `json:"last_workout"`
}

// DefaultState is the empty-but-valid state used on first launch and as
// the fallback for unreadable storage.
func DefaultState() PersistedState {
	return PersistedState{
		SchemaVersion: schemaVersion,
		Entries:       []model.IntakeEntry{},
		Profile:       model.DefaultProfile(),
		LastWorkout:   model.WorkoutSummary{},
	}
}

// normalize repairs a freshly decoded state: defaults for fields missing
// from older documents, legacy enum spellings, and entries that never
// carried an ID. Invalid volumes are dropped rather than surfaced.
func (s *PersistedState) normalize() {
	s.SchemaVersion = schemaVersion
	s.Profile.Normalize()

	kept := s.Entries[:0]
	for _, e := range s.Entries {
		if e.VolumeML < 0 || e.Timestamp.IsZero() {
			continue
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		e.Fluid = fluid.Parse(string(e.Fluid))
		e.Source = model.ParseSource(string(e.Source))
		kept = append(kept, e)
	}
	if kept == nil {
		kept = []model.IntakeEntry{}
	}
	s.Entries = kept
}
