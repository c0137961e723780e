package model

import (
	"math"
	"testing"
)

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*UserProfile)
	}{
		{"zero weight", func(p *UserProfile) { p.WeightKG = 0 }},
		{"negative weight", func(p *UserProfile) { p.WeightKG = -5 }},
		{"zero custom goal", func(p *UserProfile) { g := 0.0; p.CustomGoalML = &g }},
		{"unknown units", func(p *UserProfile) { p.UnitSystem = "stone-age" }},
		{"unknown activity", func(p *UserProfile) { p.ActivityLevel = "couch" }},
		{"negative reminder interval", func(p *UserProfile) { p.Reminders.IntervalMinutes = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultProfile()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate accepted a malformed profile")
			}
		})
	}

	if err := DefaultProfile().Validate(); err != nil {
		t.Errorf("default profile should validate, got %v", err)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	var p UserProfile
	p.Normalize()

	def := DefaultProfile()
	if p.UnitSystem != def.UnitSystem || p.WeightKG != def.WeightKG || p.ActivityLevel != def.ActivityLevel {
		t.Errorf("normalized zero profile = %+v, want defaults", p)
	}
	if p.Reminders.IntervalMinutes != def.Reminders.IntervalMinutes {
		t.Errorf("IntervalMinutes = %d, want %d", p.Reminders.IntervalMinutes, def.Reminders.IntervalMinutes)
	}
}

func TestNormalizeDropsNonPositiveCustomGoal(t *testing.T) {
	p := DefaultProfile()
	g := -100.0
	p.CustomGoalML = &g
	p.Normalize()
	if p.CustomGoalML != nil {
		t.Error("non-positive custom goal should be cleared")
	}
}

func TestUnitConversions(t *testing.T) {
	if got := Metric.ML(500); got != 500 {
		t.Errorf("metric ML(500) = %v", got)
	}
	if got := Imperial.ML(1); math.Abs(got-29.5735) > 1e-9 {
		t.Errorf("imperial ML(1) = %v, want 29.5735", got)
	}
	// Round trips.
	for _, u := range []UnitSystem{Metric, Imperial} {
		if got := u.FromML(u.ML(350)); math.Abs(got-350) > 1e-9 {
			t.Errorf("%s volume round trip = %v", u, got)
		}
		if got := u.KG(u.FromKG(70)); math.Abs(got-70) > 1e-9 {
			t.Errorf("%s weight round trip = %v", u, got)
		}
	}
}

func TestParseSourceLegacySpelling(t *testing.T) {
	if got := ParseSource("healthKit"); got != SourceHealthSync {
		t.Errorf("ParseSource(healthKit) = %q", got)
	}
	if got := ParseSource("manual"); got != SourceManual {
		t.Errorf("ParseSource(manual) = %q", got)
	}
	if got := ParseSource("???"); got != SourceManual {
		t.Errorf("unknown source should default to manual, got %q", got)
	}
}

func TestActivityMultipliers(t *testing.T) {
	want := map[ActivityLevel]float64{
		ActivityGentle:  0.90,
		ActivitySteady:  1.00,
		ActivityActive:  1.10,
		ActivityAthlete: 1.20,
	}
	for lvl, m := range want {
		if got := lvl.Multiplier(); got != m {
			t.Errorf("%s multiplier = %v, want %v", lvl, got, m)
		}
	}
}
