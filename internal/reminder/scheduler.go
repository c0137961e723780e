// Package reminder schedules drink reminders from the profile's
// reminder preferences.
package reminder

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"sipli/internal/model"
)

// Scheduler wraps cron-based reminder jobs.
type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
}

// NewScheduler returns a scheduler firing in the given location.
func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		loc:  loc,
	}
}

// Schedule registers job to fire on the profile's reminder cadence.
// Outside the configured daily window the job is suppressed, not
// unscheduled, so window edges need no rescheduling.
func (s *Scheduler) Schedule(prefs model.ReminderPrefs, job func()) (cron.EntryID, error) {
	if !prefs.Enabled {
		return 0, fmt.Errorf("reminders are disabled in the profile")
	}
	interval := prefs.IntervalMinutes
	if interval <= 0 {
		return 0, fmt.Errorf("reminder interval must be positive, got %d", interval)
	}

	spec := fmt.Sprintf("@every %dm", interval)
	return s.cron.AddFunc(spec, func() {
		if !InWindow(time.Now().In(s.loc), prefs) {
			return
		}
		job()
	})
}

// InWindow reports whether t falls inside the reminder window.
func InWindow(t time.Time, prefs model.ReminderPrefs) bool {
	h := t.Hour()
	return h >= prefs.StartHour && h < prefs.EndHour
}

// Start begins firing scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
