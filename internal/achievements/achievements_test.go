package achievements

import (
	"testing"

	"github.com/lifebalance/lifebalance/internal/models"
)

func findStatus(t *testing.T, statuses []Status, id string) Status {
	t.Helper()
	for _, s := range statuses {
		if s.Rule.ID == id {
			return s
		}
	}
	t.Fatalf("no rule with id %s", id)
	return Status{}
}

func TestEvaluateBounds(t *testing.T) {
	statuses := Evaluate(models.DefaultState())
	for _, s := range statuses {
		if s.Progress < 0 || s.Progress > 100 {
			t.Errorf("%s progress = %f, out of bounds", s.Rule.ID, s.Progress)
		}
		if s.Unlocked && s.Progress != 100 {
			t.Errorf("%s unlocked with progress %f", s.Rule.ID, s.Progress)
		}
	}
}

func TestEvaluateUnlockAtThreshold(t *testing.T) {
	rec := models.DefaultState()
	rec.StreakDays = 7

	statuses := Evaluate(rec)

	s := findStatus(t, statuses, "streak_7")
	if !s.Unlocked || s.Progress != 100 {
		t.Errorf("streak_7 at threshold: unlocked=%v progress=%f", s.Unlocked, s.Progress)
	}

	s = findStatus(t, statuses, "streak_30")
	if s.Unlocked {
		t.Error("streak_30 unlocked at 7 days")
	}
	if want := 7.0 / 30.0 * 100; s.Progress < want-0.01 || s.Progress > want+0.01 {
		t.Errorf("streak_30 progress = %f, want %f", s.Progress, want)
	}
}

func TestWaterDailyMetric(t *testing.T) {
	tests := []struct {
		name     string
		goal     float64
		intake   int
		unlocked bool
	}{
		{name: "goal met", goal: 2.0, intake: 2000, unlocked: true},
		{name: "overshoot still unlocked", goal: 2.0, intake: 2500, unlocked: true},
		{name: "halfway", goal: 2.0, intake: 1000, unlocked: false},
		{name: "zero goal never unlocks", goal: 0, intake: 5000, unlocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := models.StateRecord{WaterGoalLiters: tt.goal, WaterIntakeMl: tt.intake}
			s := findStatus(t, Evaluate(rec), "water_daily")
			if s.Unlocked != tt.unlocked {
				t.Errorf("unlocked = %v, want %v", s.Unlocked, tt.unlocked)
			}
			if s.Progress > 100 {
				t.Errorf("progress = %f, exceeds 100", s.Progress)
			}
		})
	}
}

func TestSleepAverage(t *testing.T) {
	rec := models.DefaultState()
	if got := SleepAverage(rec); got != 0 {
		t.Errorf("empty history average = %f, want 0", got)
	}

	rec.SleepHistory = []models.SleepEntry{
		{Date: "2026-03-08", Quality: models.SleepGood},
		{Date: "2026-03-09", Quality: models.SleepAverage},
		{Date: "2026-03-10", Quality: models.SleepPoor},
	}
	if got, want := SleepAverage(rec), 2.0; got != want {
		t.Errorf("average = %f, want %f", got, want)
	}

	// Only the last 7 check-ins count.
	rec.SleepHistory = nil
	for i := 0; i < 10; i++ {
		rec.SleepHistory = append(rec.SleepHistory, models.SleepEntry{Quality: models.SleepPoor})
	}
	for i := 0; i < 7; i++ {
		rec.SleepHistory = append(rec.SleepHistory, models.SleepEntry{Quality: models.SleepGood})
	}
	if got := SleepAverage(rec); got != 3.0 {
		t.Errorf("windowed average = %f, want 3.0", got)
	}
}

func TestAllRounder(t *testing.T) {
	rec := models.DefaultState()
	rec.WaterIntakeMl = 100
	rec.SleepHistory = []models.SleepEntry{{Date: "2026-03-10", Quality: models.SleepGood}}
	rec.Tasks = []models.Task{{ID: "a", Title: "x"}}

	s := findStatus(t, Evaluate(rec), "all_rounder")
	if s.Unlocked {
		t.Error("all_rounder unlocked with three domains")
	}

	rec.GratitudeNotes = []models.GratitudeNote{{ID: "n", Text: "sun"}}
	s = findStatus(t, Evaluate(rec), "all_rounder")
	if !s.Unlocked {
		t.Error("all_rounder locked with all four domains active")
	}
}

func TestUnlockedCount(t *testing.T) {
	rec := models.DefaultState()
	rec.StreakDays = 100
	statuses := Evaluate(rec)

	// All three streak tiers unlock together at 100 days.
	if got := Unlocked(statuses); got != 3 {
		t.Errorf("Unlocked = %d, want 3", got)
	}
}
