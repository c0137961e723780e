package healthsync

import (
	"os"
	"path/filepath"
	"testing"

	"sipli/internal/fluid"
	"sipli/internal/model"
)

func writeExport(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writeExport(t, `[
		{"timestamp": "2026-08-30T08:00:00Z", "volume_ml": 500},
		{"timestamp": "2026-08-30T09:00:00Z", "volume_ml": 330, "fluid": "coffee", "note": "espresso", "device": "watch"},
		{"timestamp": "2026-08-30T10:00:00Z", "volume_ml": 0},
		{"volume_ml": 250}
	]`)

	entries, skipped, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(entries) != 2 || skipped != 2 {
		t.Fatalf("got %d entries, %d skipped; want 2 and 2", len(entries), skipped)
	}

	if entries[0].Fluid != fluid.Water {
		t.Errorf("missing fluid = %q, want water", entries[0].Fluid)
	}
	if entries[1].Fluid != fluid.Coffee || entries[1].Note != "espresso" {
		t.Errorf("second entry = %+v", entries[1])
	}
	for _, e := range entries {
		if e.Source != model.SourceHealthSync {
			t.Errorf("source = %q, want health_sync", e.Source)
		}
		if e.ID == "" {
			t.Error("imported entry missing ID")
		}
	}
}

func TestReadFile_Malformed(t *testing.T) {
	path := writeExport(t, `{"not": "an array"}`)
	if _, _, err := ReadFile(path); err == nil {
		t.Error("ReadFile accepted malformed export")
	}
}
