// Package export writes the intake ledger to portable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"sipli/internal/model"
)

// JSON writes entries as an indented JSON array.
func JSON(w io.Writer, entries []model.IntakeEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	return nil
}

// CSV writes entries as CSV with a header row. Effective volume is
// included so spreadsheets need no factor table.
func CSV(w io.Writer, entries []model.IntakeEntry) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "timestamp", "volume_ml", "fluid", "effective_ml", "source", "note"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			strconv.FormatFloat(e.VolumeML, 'f', -1, 64),
			string(e.Fluid),
			strconv.FormatFloat(e.EffectiveML(), 'f', 1, 64),
			string(e.Source),
			e.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
