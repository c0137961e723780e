// Package ledger holds the ordered collection of intake entries and the
// per-day effective-hydration aggregation over it.
package ledger

import (
	"sort"
	"time"

	"sipli/internal/model"
)

// Ledger is an in-memory view over the persisted entries. Day bucketing
// uses the local calendar day in the configured location, not UTC
// midnight: the same instant can fall on different local days.
type Ledger struct {
	entries []model.IntakeEntry
	loc     *time.Location
}

// New builds a ledger over the given entries. A nil location means the
// device's local timezone.
func New(entries []model.IntakeEntry, loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.Local
	}
	return &Ledger{entries: entries, loc: loc}
}

func (l *Ledger) dayKey(t time.Time) string {
	return t.In(l.loc).Format("2006-01-02")
}

// Add appends an entry.
func (l *Ledger) Add(e model.IntakeEntry) {
	l.entries = append(l.entries, e)
}

// Remove deletes the entry with the given ID, reporting whether it existed.
func (l *Ledger) Remove(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of all entries in insertion order.
func (l *Ledger) Entries() []model.IntakeEntry {
	out := make([]model.IntakeEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// EntriesOn returns the entries logged on the same local calendar day as
// day, sorted newest first.
func (l *Ledger) EntriesOn(day time.Time) []model.IntakeEntry {
	key := l.dayKey(day)
	var out []model.IntakeEntry
	for _, e := range l.entries {
		if l.dayKey(e.Timestamp) == key {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// EffectiveTotal sums the effective hydration for the local calendar day
// containing day.
func (l *Ledger) EffectiveTotal(day time.Time) float64 {
	key := l.dayKey(day)
	var total float64
	for _, e := range l.entries {
		if l.dayKey(e.Timestamp) == key {
			total += e.EffectiveML()
		}
	}
	return total
}
