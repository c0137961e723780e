// Package healthsync ingests intake records exported by an external
// health app. Imported entries carry the health_sync source but are
// otherwise indistinguishable from manual entries.
package healthsync

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sipli/internal/fluid"
	"sipli/internal/model"
)

// Record is one row of a health export file. Unknown fields are
// ignored; a missing fluid defaults to water.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	VolumeML  float64   `json:"volume_ml"`
	Fluid     string    `json:"fluid,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// ReadFile parses a health export and returns the importable entries.
// Records with no timestamp or a non-positive volume are skipped, and
// the skip count is reported alongside.
func ReadFile(path string) ([]model.IntakeEntry, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading health export: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("parsing health export: %w", err)
	}

	var entries []model.IntakeEntry
	skipped := 0
	for _, r := range records {
		if r.Timestamp.IsZero() || r.VolumeML <= 0 {
			skipped++
			continue
		}
		entries = append(entries, model.NewEntry(
			r.Timestamp, r.VolumeML, fluid.Parse(r.Fluid), model.SourceHealthSync, r.Note))
	}
	return entries, skipped, nil
}
