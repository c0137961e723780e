package streak

import (
	"testing"
	"time"

	"sipli/internal/fluid"
	"sipli/internal/ledger"
	"sipli/internal/model"
)

const goalML = 2000

func constGoal(time.Time) float64 { return goalML }

var today = time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

// waterDay logs enough water on the day at the given offset to meet the goal.
func waterDay(l *ledger.Ledger, daysAgo int, ml float64) {
	at := today.AddDate(0, 0, -daysAgo)
	l.Add(model.NewEntry(at, ml, fluid.Water, model.SourceManual, ""))
}

func TestCount_EmptyLedger(t *testing.T) {
	l := ledger.New(nil, time.UTC)
	if got := Count(l, constGoal, today); got != 0 {
		t.Errorf("Count(empty) = %d, want 0", got)
	}
}

func TestCount_SingleQualifyingDay(t *testing.T) {
	l := ledger.New(nil, time.UTC)
	waterDay(l, 0, goalML)
	if got := Count(l, constGoal, today); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

func TestCount_IncompleteTodayStartsFromYesterday(t *testing.T) {
	l := ledger.New(nil, time.UTC)
	waterDay(l, 0, 500) // in progress, below goal
	for d := 1; d <= 5; d++ {
		waterDay(l, d, goalML)
	}
	if got := Count(l, constGoal, today); got != 5 {
		t.Errorf("Count = %d, want 5 (today in progress must not break the streak)", got)
	}
}

func TestCount_IncompleteTodayDoesNotExtend(t *testing.T) {
	l := ledger.New(nil, time.UTC)
	waterDay(l, 0, goalML)
	waterDay(l, 1, goalML)
	waterDay(l, 2, 100) // broken two days ago
	if got := Count(l, constGoal, today); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

func TestCount_GapBreaksStreak(t *testing.T) {
	l := ledger.New(nil, time.UTC)
	waterDay(l, 1, goalML)
	// day 2 missing entirely
	waterDay(l, 3, goalML)
	if got := Count(l, constGoal, today); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

func TestCount_CappedAtLookback(t *testing.T) {
	l := ledger.New(nil, time.UTC)
	for d := 0; d < MaxLookbackDays+30; d++ {
		waterDay(l, d, goalML)
	}
	if got := Count(l, constGoal, today); got != MaxLookbackDays {
		t.Errorf("Count = %d, want capped at %d", got, MaxLookbackDays)
	}
}

func TestCount_PerDayGoals(t *testing.T) {
	// Yesterday's goal was higher than its total, so only today counts.
	l := ledger.New(nil, time.UTC)
	waterDay(l, 0, 2500)
	waterDay(l, 1, 2500)
	goalFor := func(day time.Time) float64 {
		if day.UTC().Format("2006-01-02") == today.AddDate(0, 0, -1).Format("2006-01-02") {
			return 3000
		}
		return 2000
	}
	if got := Count(l, goalFor, today); got != 1 {
		t.Errorf("Count = %d, want 1 with a higher goal yesterday", got)
	}
}
