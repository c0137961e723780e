package ledger

import (
	"testing"
	"time"

	"sipli/internal/fluid"
	"sipli/internal/model"
)

func entry(t *testing.T, at time.Time, ml float64, ft fluid.Type) model.IntakeEntry {
	t.Helper()
	return model.NewEntry(at, ml, ft, model.SourceManual, "")
}

func TestEffectiveTotal(t *testing.T) {
	loc := time.UTC
	noon := time.Date(2026, 8, 30, 12, 0, 0, 0, loc)

	l := New(nil, loc)
	l.Add(entry(t, noon, 500, fluid.Water))
	l.Add(entry(t, noon.Add(time.Hour), 500, fluid.Beer))          // factor 0.40
	l.Add(entry(t, noon.AddDate(0, 0, -1), 1000, fluid.Water))     // yesterday
	l.Add(entry(t, noon.Add(13*time.Hour), 300, fluid.HerbalTea))  // next day 01:00

	if got := l.EffectiveTotal(noon); got != 700 {
		t.Errorf("EffectiveTotal(today) = %v, want 700 (500 water + 200 beer)", got)
	}
	if got := l.EffectiveTotal(noon.AddDate(0, 0, -1)); got != 1000 {
		t.Errorf("EffectiveTotal(yesterday) = %v, want 1000", got)
	}
}

func TestDayBucketingUsesLocalCalendarDay(t *testing.T) {
	// 23:30 in Auckland on Aug 30 is 11:30 UTC the same day; bucketing
	// in Auckland must keep it on Aug 30, bucketing in UTC-8 must not.
	akl, err := time.LoadLocation("Pacific/Auckland")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	at := time.Date(2026, 8, 30, 23, 30, 0, 0, akl)

	entries := []model.IntakeEntry{entry(t, at, 400, fluid.Water)}
	aug30 := time.Date(2026, 8, 30, 9, 0, 0, 0, akl)

	if got := New(entries, akl).EffectiveTotal(aug30); got != 400 {
		t.Errorf("Auckland bucketing: total = %v, want 400", got)
	}

	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	laDay := at.In(la) // still Aug 30 morning in LA
	if got := New(entries, la).EffectiveTotal(laDay); got != 400 {
		t.Errorf("LA bucketing of same instant: total = %v, want 400", got)
	}
	if got := New(entries, la).EffectiveTotal(laDay.AddDate(0, 0, 1)); got != 0 {
		t.Errorf("LA next-day total = %v, want 0", got)
	}
}

func TestEntriesOnSortedNewestFirst(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 8, 30, 8, 0, 0, 0, loc)

	l := New(nil, loc)
	first := entry(t, day, 200, fluid.Water)
	second := entry(t, day.Add(2*time.Hour), 300, fluid.Tea)
	third := entry(t, day.Add(4*time.Hour), 250, fluid.Coffee)
	l.Add(first)
	l.Add(third)
	l.Add(second)

	got := l.EntriesOn(day)
	if len(got) != 3 {
		t.Fatalf("EntriesOn returned %d entries, want 3", len(got))
	}
	if got[0].ID != third.ID || got[1].ID != second.ID || got[2].ID != first.ID {
		t.Error("entries not sorted newest first")
	}
}

func TestRemove(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, loc)
	e := entry(t, now, 200, fluid.Water)

	l := New([]model.IntakeEntry{e}, loc)
	if !l.Remove(e.ID) {
		t.Fatal("Remove(existing) = false, want true")
	}
	if l.Remove(e.ID) {
		t.Error("Remove(missing) = true, want false")
	}
	if got := l.EffectiveTotal(now); got != 0 {
		t.Errorf("total after remove = %v, want 0", got)
	}
}
