// Package widget provides the read-only refresh service that stands in
// for the home-screen widget process. It never holds state between
// refreshes: every tick re-reads the shared document from scratch, so
// staleness is bounded by the refresh interval and self-heals.
package widget

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"sipli/internal/cli"
	"sipli/internal/snapshot"
)

// Config controls the widget runtime behavior.
type Config struct {
	// Interval caps time between refreshes. Zero means 15 minutes.
	Interval time.Duration
	// Loc is the calendar timezone; nil means local.
	Loc *time.Location
	// Out receives the rendered widget card; nil means discard.
	Out io.Writer
	// Once renders a single refresh and returns, for one-shot callers.
	Once bool
}

// Service runs the periodic refresh loop.
type Service struct {
	asm      *snapshot.Assembler
	interval time.Duration
	loc      *time.Location
	out      io.Writer
	once     bool
}

// New returns a widget service over the given assembler.
func New(asm *snapshot.Assembler, cfg Config) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.Loc == nil {
		cfg.Loc = time.Local
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	return &Service{
		asm:      asm,
		interval: cfg.Interval,
		loc:      cfg.Loc,
		out:      cfg.Out,
		once:     cfg.Once,
	}
}

// Run refreshes until ctx is canceled. Each cycle is a short idempotent
// read-compute-render pass; there is nothing to cancel mid-cycle.
func (s *Service) Run(ctx context.Context) error {
	s.refreshOnce(time.Now())
	if s.once {
		return nil
	}

	for {
		now := time.Now()
		next := NextRefresh(now, s.interval, s.loc)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			s.refreshOnce(time.Now())
		}
	}
}

// NextRefresh returns the earlier of now+interval and the next local
// midnight, so the day boundary never shows yesterday's totals for long.
func NextRefresh(now time.Time, interval time.Duration, loc *time.Location) time.Time {
	byInterval := now.Add(interval)

	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)

	if midnight.Before(byInterval) {
		return midnight
	}
	return byInterval
}

func (s *Service) refreshOnce(now time.Time) {
	snap := s.asm.Build(now)
	if _, err := fmt.Fprint(s.out, renderCard(snap)); err != nil {
		log.Printf("sipli widget render: %v", err)
	}
}

// renderCard produces the compact widget card: progress bar, totals,
// streak, and the most recent entries.
func renderCard(snap snapshot.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s of %s",
		cli.ProgressBar(snap.Progress(), 20),
		cli.FormatVolume(snap.TodayTotalML, snap.Unit),
		cli.FormatVolume(snap.Goal.TotalML, snap.Unit))
	if snap.Streak > 0 {
		fmt.Fprintf(&b, "  ~ %s streak", cli.FormatStreak(snap.Streak))
	}
	b.WriteString("\n")

	max := 3
	if len(snap.TodayEntries) < max {
		max = len(snap.TodayEntries)
	}
	for _, e := range snap.TodayEntries[:max] {
		local := e.Timestamp.In(snap.GeneratedAt.Location())
		fmt.Fprintf(&b, "  %s  %s\n",
			cli.FormatClock(local.Hour(), local.Minute()),
			cli.FormatVolume(e.VolumeML, snap.Unit))
	}

	return b.String()
}
