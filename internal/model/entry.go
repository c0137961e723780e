// Package model defines the core hydration domain types shared by the
// CLI, the TUI, and the widget process.
package model

import (
	"time"

	"github.com/google/uuid"

	"sipli/internal/fluid"
)

// Source records how an intake entry was created.
type Source string

const (
	SourceManual     Source = "manual"
	SourceHealthSync Source = "health_sync"
)

// ParseSource resolves a stored source value, accepting the legacy
// "healthKit" spelling written by earlier releases.
func ParseSource(s string) Source {
	switch s {
	case string(SourceHealthSync), "healthKit", "healthkit":
		return SourceHealthSync
	default:
		return SourceManual
	}
}

// IntakeEntry is one logged drink. Entries are immutable once created
// except for user-initiated edit or delete, and the ID stays stable
// across edits.
type IntakeEntry struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	VolumeML  float64    `json:"volume_ml"`
	Fluid     fluid.Type `json:"fluid"`
	Source    Source     `json:"source"`
	Note      string     `json:"note,omitempty"`
}

// NewEntry creates an intake entry with a fresh ID.
func NewEntry(at time.Time, volumeML float64, ft fluid.Type, src Source, note string) IntakeEntry {
	return IntakeEntry{
		ID:        uuid.NewString(),
		Timestamp: at,
		VolumeML:  volumeML,
		Fluid:     ft,
		Source:    src,
		Note:      note,
	}
}

// EffectiveML is the raw volume discounted by the fluid's hydration factor.
func (e IntakeEntry) EffectiveML() float64 {
	return e.VolumeML * fluid.Factor(e.Fluid)
}
