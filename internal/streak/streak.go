// Package streak counts consecutive days whose effective hydration met
// that day's goal.
package streak

import (
	"time"

	"sipli/internal/ledger"
)

// MaxLookbackDays bounds the backward scan.
const MaxLookbackDays = 90

// Count walks backward from today counting consecutive qualifying days.
//
// If today's total is still below today's goal, the scan starts at
// yesterday instead: a day in progress must neither break nor extend the
// streak. goalFor supplies each day's goal; callers that apply the
// current profile retroactively simply pass a constant function.
func Count(l *ledger.Ledger, goalFor func(day time.Time) float64, today time.Time) int {
	checkDay := today
	if l.EffectiveTotal(today) < goalFor(today) {
		checkDay = today.AddDate(0, 0, -1)
	}

	streak := 0
	for offset := 0; offset < MaxLookbackDays; offset++ {
		day := checkDay.AddDate(0, 0, -offset)
		if l.EffectiveTotal(day) >= goalFor(day) {
			streak++
			continue
		}
		break
	}
	return streak
}
