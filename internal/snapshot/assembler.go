// Package snapshot assembles the read-only hydration view consumed by
// every presentation surface: CLI tables, the TUI dashboard, and the
// widget process refresh.
package snapshot

import (
	"time"

	"sipli/internal/goal"
	"sipli/internal/ledger"
	"sipli/internal/model"
	"sipli/internal/store"
	"sipli/internal/streak"
)

// Snapshot is the assembled view for one instant. It is a plain value:
// callers can hold it as long as they like without torn reads.
type Snapshot struct {
	TodayEntries []model.IntakeEntry // newest first
	TodayTotalML float64
	Goal         goal.Breakdown
	Streak       int
	Unit         model.UnitSystem
	GeneratedAt  time.Time
}

// Progress is the fraction of today's goal met, clamped to [0,1].
func (s Snapshot) Progress() float64 {
	if s.Goal.TotalML <= 0 {
		return 0
	}
	p := s.TodayTotalML / s.Goal.TotalML
	if p > 1 {
		return 1
	}
	return p
}

// Assembler builds snapshots from persisted state. It caches nothing:
// every Build re-reads the state file, so staleness is bounded by the
// caller's refresh cadence.
type Assembler struct {
	store *store.Store
	loc   *time.Location
}

// New returns an assembler over the given store, bucketing days in loc
// (nil means the device's local timezone).
func New(s *store.Store, loc *time.Location) *Assembler {
	if loc == nil {
		loc = time.Local
	}
	return &Assembler{store: s, loc: loc}
}

// Build loads persisted state, filters today's entries, and derives
// total, goal, and streak. It cannot fail: unreadable storage resolves
// to the default empty state upstream.
func (a *Assembler) Build(now time.Time) Snapshot {
	state := a.store.LoadOrDefault()
	led := ledger.New(state.Entries, a.loc)

	g := goal.Daily(state.Profile, state.LastWeather, state.LastWorkout)

	// Historical days reuse today's goal: there is no historical
	// profile record, and the last-known signals apply retroactively.
	goalFor := func(time.Time) float64 { return g.TotalML }

	return Snapshot{
		TodayEntries: led.EntriesOn(now),
		TodayTotalML: led.EffectiveTotal(now),
		Goal:         g,
		Streak:       streak.Count(led, goalFor, now),
		Unit:         state.Profile.UnitSystem,
		GeneratedAt:  now,
	}
}
