package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"sipli/internal/fluid"
	"sipli/internal/model"
)

func sampleEntries(t *testing.T) []model.IntakeEntry {
	t.Helper()
	at := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	return []model.IntakeEntry{
		model.NewEntry(at, 500, fluid.Water, model.SourceManual, "morning"),
		model.NewEntry(at.Add(time.Hour), 500, fluid.Beer, model.SourceManual, ""),
	}
}

func TestJSON(t *testing.T) {
	var buf strings.Builder
	if err := JSON(&buf, sampleEntries(t)); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded []model.IntakeEntry
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].VolumeML != 500 {
		t.Errorf("decoded %+v", decoded)
	}
}

func TestCSV(t *testing.T) {
	var buf strings.Builder
	if err := CSV(&buf, sampleEntries(t)); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][4] != "effective_ml" {
		t.Errorf("header = %v", rows[0])
	}
	// 500 mL beer at factor 0.40.
	if rows[2][4] != "200.0" {
		t.Errorf("beer effective = %q, want 200.0", rows[2][4])
	}
}
