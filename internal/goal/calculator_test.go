package goal

import (
	"testing"
	"time"

	"sipli/internal/model"
)

func baseProfile() model.UserProfile {
	p := model.DefaultProfile()
	p.PrefersWeatherGoal = true
	p.PrefersWorkoutGoal = true
	return p
}

func hotDay(tempC float64) *model.WeatherSnapshot {
	return &model.WeatherSnapshot{TemperatureC: tempC, CapturedAt: time.Now()}
}

func TestDaily_DefaultProfileBase(t *testing.T) {
	// 70 kg, steady activity: 70 * 35 * 1.0 = 2450 mL.
	b := Daily(baseProfile(), nil, model.WorkoutSummary{})
	if b.BaseML != 2450 {
		t.Errorf("BaseML = %v, want 2450", b.BaseML)
	}
	if b.WeatherAdjustmentML != 0 || b.WorkoutAdjustmentML != 0 {
		t.Errorf("adjustments = %v/%v, want 0/0 with no signals",
			b.WeatherAdjustmentML, b.WorkoutAdjustmentML)
	}
	if b.TotalML != b.BaseML {
		t.Errorf("TotalML = %v, want %v", b.TotalML, b.BaseML)
	}
}

func TestDaily_BaseMonotonicInWeightAndActivity(t *testing.T) {
	p := baseProfile()
	light := Daily(p, nil, model.WorkoutSummary{})

	p.WeightKG = 90
	heavier := Daily(p, nil, model.WorkoutSummary{})
	if heavier.BaseML <= light.BaseML {
		t.Errorf("base not monotonic in weight: %v <= %v", heavier.BaseML, light.BaseML)
	}

	prev := -1.0
	for _, lvl := range model.ActivityLevels {
		p.ActivityLevel = lvl
		b := Daily(p, nil, model.WorkoutSummary{})
		if b.BaseML <= prev {
			t.Errorf("base not monotonic in activity at %s: %v <= %v", lvl, b.BaseML, prev)
		}
		prev = b.BaseML
	}
}

func TestDaily_WeatherAdjustment(t *testing.T) {
	p := baseProfile()

	if b := Daily(p, hotDay(20), model.WorkoutSummary{}); b.WeatherAdjustmentML != 0 {
		t.Errorf("cool day adjustment = %v, want 0", b.WeatherAdjustmentML)
	}

	warm := Daily(p, hotDay(28), model.WorkoutSummary{})
	hot := Daily(p, hotDay(32), model.WorkoutSummary{})
	if !(hot.WeatherAdjustmentML > warm.WeatherAdjustmentML && warm.WeatherAdjustmentML > 0) {
		t.Errorf("adjustment not increasing in heat: warm=%v hot=%v",
			warm.WeatherAdjustmentML, hot.WeatherAdjustmentML)
	}

	scorching := Daily(p, hotDay(55), model.WorkoutSummary{})
	if scorching.WeatherAdjustmentML != maxWeatherML {
		t.Errorf("adjustment = %v, want capped at %v", scorching.WeatherAdjustmentML, maxWeatherML)
	}

	p.PrefersWeatherGoal = false
	if b := Daily(p, hotDay(40), model.WorkoutSummary{}); b.WeatherAdjustmentML != 0 {
		t.Errorf("adjustment = %v with preference off, want 0", b.WeatherAdjustmentML)
	}
}

func TestDaily_HeatIndexDominatesTemperature(t *testing.T) {
	w := &model.WeatherSnapshot{TemperatureC: 26, HeatIndexC: 34}
	b := Daily(baseProfile(), w, model.WorkoutSummary{})
	want := (34 - heatThresholdC) * mlPerDegreeC
	if b.WeatherAdjustmentML != want {
		t.Errorf("WeatherAdjustmentML = %v, want %v (from heat index)", b.WeatherAdjustmentML, want)
	}
}

func TestDaily_WorkoutAdjustment(t *testing.T) {
	p := baseProfile()

	short := Daily(p, nil, model.WorkoutSummary{Minutes: 30})
	long := Daily(p, nil, model.WorkoutSummary{Minutes: 60, Kilocalories: 400})
	if !(long.WorkoutAdjustmentML > short.WorkoutAdjustmentML && short.WorkoutAdjustmentML > 0) {
		t.Errorf("adjustment not increasing in effort: short=%v long=%v",
			short.WorkoutAdjustmentML, long.WorkoutAdjustmentML)
	}

	ultra := Daily(p, nil, model.WorkoutSummary{Minutes: 240, Kilocalories: 3000})
	if ultra.WorkoutAdjustmentML != maxWorkoutML {
		t.Errorf("adjustment = %v, want capped at %v", ultra.WorkoutAdjustmentML, maxWorkoutML)
	}

	p.PrefersWorkoutGoal = false
	if b := Daily(p, nil, model.WorkoutSummary{Minutes: 60}); b.WorkoutAdjustmentML != 0 {
		t.Errorf("adjustment = %v with preference off, want 0", b.WorkoutAdjustmentML)
	}
}

func TestDaily_CustomGoalReplacesTotal(t *testing.T) {
	p := baseProfile()
	custom := 3000.0
	p.CustomGoalML = &custom

	b := Daily(p, hotDay(35), model.WorkoutSummary{Minutes: 90})
	if b.TotalML != custom {
		t.Errorf("TotalML = %v, want custom goal %v", b.TotalML, custom)
	}
	// Adjustments are still reported for display, just not added.
	if b.WeatherAdjustmentML == 0 || b.WorkoutAdjustmentML == 0 {
		t.Errorf("informational adjustments missing: weather=%v workout=%v",
			b.WeatherAdjustmentML, b.WorkoutAdjustmentML)
	}
}

func TestDaily_SumInvariantWithoutOverride(t *testing.T) {
	b := Daily(baseProfile(), hotDay(30), model.WorkoutSummary{Minutes: 45, Kilocalories: 300})
	sum := b.BaseML + b.WeatherAdjustmentML + b.WorkoutAdjustmentML
	if b.TotalML != sum {
		t.Errorf("TotalML = %v, want base+adjustments = %v", b.TotalML, sum)
	}
}
