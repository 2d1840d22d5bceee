package engine

import (
	"testing"
	"time"

	"github.com/lifebalance/lifebalance/internal/models"
	"github.com/lifebalance/lifebalance/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestEngine(t *testing.T, now time.Time) (*Engine, *fakeClock) {
	t.Helper()

	store := storage.NewSQLiteStore(":memory:")
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clk := &fakeClock{now: now}
	return New(store, clk, nil), clk
}

func TestAddWaterGoalCrossing(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	// Default goal is 2.0 L. Three adds stay below it.
	for i := 0; i < 3; i++ {
		effects, err := eng.AddWater(500)
		if err != nil {
			t.Fatalf("AddWater: %v", err)
		}
		if len(effects) != 0 {
			t.Fatalf("add %d: unexpected effects %+v", i+1, effects)
		}
	}

	// The fourth add crosses 2000ml and celebrates exactly once.
	effects, err := eng.AddWater(500)
	if err != nil {
		t.Fatalf("AddWater: %v", err)
	}
	if len(effects) != 1 || effects[0].Kind != EffectWaterGoalReached {
		t.Fatalf("effects = %+v, want one water_goal_reached", effects)
	}

	state, err := eng.State()
	if err != nil {
		t.Fatal(err)
	}
	if state.WaterIntakeMl != 2000 {
		t.Errorf("WaterIntakeMl = %d, want 2000", state.WaterIntakeMl)
	}
}

func TestAddWaterClampsAtZero(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	if _, err := eng.AddWater(300); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.AddWater(-1000); err != nil {
		t.Fatal(err)
	}

	state, err := eng.State()
	if err != nil {
		t.Fatal(err)
	}
	if state.WaterIntakeMl != 0 {
		t.Errorf("WaterIntakeMl = %d, want 0", state.WaterIntakeMl)
	}
}

func TestSetTaskStatusCompletedAt(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	eng, clk := newTestEngine(t, start)

	task, err := eng.AddTask("write report", models.PriorityHigh)
	if err != nil {
		t.Fatal(err)
	}

	if err := eng.SetTaskStatus(task.ID, models.TaskDone); err != nil {
		t.Fatal(err)
	}
	state, _ := eng.State()
	first := state.Tasks[0].CompletedAt
	if first == nil || !first.Equal(start) {
		t.Fatalf("CompletedAt = %v, want %v", first, start)
	}

	// Regressing keeps the stamp.
	if err := eng.SetTaskStatus(task.ID, models.TaskTodo); err != nil {
		t.Fatal(err)
	}
	state, _ = eng.State()
	if state.Tasks[0].CompletedAt == nil {
		t.Fatal("CompletedAt cleared on regression")
	}

	// Completing again re-stamps.
	clk.now = start.Add(2 * time.Hour)
	if err := eng.SetTaskStatus(task.ID, models.TaskDone); err != nil {
		t.Fatal(err)
	}
	state, _ = eng.State()
	if got := state.Tasks[0].CompletedAt; got == nil || !got.Equal(clk.now) {
		t.Errorf("CompletedAt = %v, want %v", got, clk.now)
	}
}

func TestSetTaskStatusNotFound(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	if err := eng.SetTaskStatus("nope", models.TaskDone); err == nil {
		t.Error("expected an error for a missing task")
	}
}

func TestRecordSleepUpserts(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	if err := eng.RecordSleep(models.SleepGood); err != nil {
		t.Fatal(err)
	}
	if err := eng.RecordSleep(models.SleepPoor); err != nil {
		t.Fatal(err)
	}

	state, err := eng.State()
	if err != nil {
		t.Fatal(err)
	}
	if len(state.SleepHistory) != 1 {
		t.Fatalf("SleepHistory has %d entries, want 1", len(state.SleepHistory))
	}
	if state.SleepHistory[0].Quality != models.SleepPoor {
		t.Errorf("quality = %s, want poor", state.SleepHistory[0].Quality)
	}
}

func TestGratitudeNewestFirst(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	if _, err := eng.AddGratitude("first"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.AddGratitude("second"); err != nil {
		t.Fatal(err)
	}

	state, err := eng.State()
	if err != nil {
		t.Fatal(err)
	}
	if len(state.GratitudeNotes) != 2 {
		t.Fatalf("have %d notes, want 2", len(state.GratitudeNotes))
	}
	if state.GratitudeNotes[0].Text != "second" {
		t.Errorf("newest note = %q, want %q", state.GratitudeNotes[0].Text, "second")
	}
}

func TestAddPages(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	effects, err := eng.AddPages(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(effects) != 0 {
		t.Fatalf("unexpected effects below goal: %+v", effects)
	}

	// Crossing the default 5-page goal celebrates.
	effects, err = eng.AddPages(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(effects) != 1 || effects[0].Kind != EffectQuranGoalReached {
		t.Fatalf("effects = %+v, want one quran_goal_reached", effects)
	}

	state, err := eng.State()
	if err != nil {
		t.Fatal(err)
	}
	if state.QuranPagesReadToday != 6 {
		t.Errorf("QuranPagesReadToday = %d, want 6", state.QuranPagesReadToday)
	}
	if state.QuranTotalPagesEver != 6 {
		t.Errorf("QuranTotalPagesEver = %d, want 6", state.QuranTotalPagesEver)
	}
	// Streak credit belongs to rollover and ResetPages.
	if state.QuranStreakDays != 0 {
		t.Errorf("QuranStreakDays = %d, want 0", state.QuranStreakDays)
	}
}

func TestResetPagesCreditsStreak(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	if _, err := eng.AddPages(2); err != nil {
		t.Fatal(err)
	}
	if err := eng.ResetPages(); err != nil {
		t.Fatal(err)
	}

	state, err := eng.State()
	if err != nil {
		t.Fatal(err)
	}
	if state.QuranPagesReadToday != 0 {
		t.Errorf("QuranPagesReadToday = %d, want 0", state.QuranPagesReadToday)
	}
	if state.QuranStreakDays != 1 {
		t.Errorf("QuranStreakDays = %d, want 1", state.QuranStreakDays)
	}
}

func TestSetWaterScheduleDropsStaleMarkers(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	if err := eng.SetWaterSchedule([]string{"09:00", "15:00"}); err != nil {
		t.Fatal(err)
	}
	if err := eng.MarkSlotNotified("09:00"); err != nil {
		t.Fatal(err)
	}
	if err := eng.SetWaterSchedule([]string{"15:00", "12:00"}); err != nil {
		t.Fatal(err)
	}

	state, err := eng.State()
	if err != nil {
		t.Fatal(err)
	}
	if len(state.WaterSchedule) != 2 || state.WaterSchedule[0] != "12:00" {
		t.Errorf("schedule = %v, want sorted [12:00 15:00]", state.WaterSchedule)
	}
	if _, ok := state.NotifiedSlots["09:00"]; ok {
		t.Error("marker for removed slot survived")
	}
}

func TestDeleteGratitudeNotFound(t *testing.T) {
	eng, _ := newTestEngine(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	if err := eng.DeleteGratitude("missing"); err == nil {
		t.Error("expected an error for a missing note")
	}
}
