package widget

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sipli/internal/fluid"
	"sipli/internal/model"
	"sipli/internal/snapshot"
	"sipli/internal/store"
)

func TestNextRefresh_IntervalBeforeMidnight(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, loc)

	next := NextRefresh(now, 15*time.Minute, loc)
	if want := now.Add(15 * time.Minute); !next.Equal(want) {
		t.Errorf("NextRefresh = %v, want %v", next, want)
	}
}

func TestNextRefresh_MidnightWins(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 8, 30, 23, 55, 0, 0, loc)

	next := NextRefresh(now, 15*time.Minute, loc)
	if want := time.Date(2026, 8, 31, 0, 0, 0, 0, loc); !next.Equal(want) {
		t.Errorf("NextRefresh = %v, want local midnight %v", next, want)
	}
}

func TestRun_OnceRendersFreshState(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "state.json"))
	if err := s.AddEntry(model.NewEntry(time.Now(), 500, fluid.Water, model.SourceManual, "")); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	svc := New(snapshot.New(s, time.Local), Config{Out: &out, Once: true})
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "500 mL") {
		t.Errorf("widget card missing today's total:\n%s", got)
	}
	if !strings.Contains(got, "2450 mL") {
		t.Errorf("widget card missing goal:\n%s", got)
	}
}
