package models

import "testing"

func TestApplyDefaults(t *testing.T) {
	var rec StateRecord
	rec.ApplyDefaults()

	if rec.WaterGoalLiters != 2.0 {
		t.Errorf("WaterGoalLiters = %f, want 2.0", rec.WaterGoalLiters)
	}
	if rec.WakeupTime != "07:00" || rec.WeekendWakeupTime != "09:00" {
		t.Errorf("wakeup defaults = %q/%q", rec.WakeupTime, rec.WeekendWakeupTime)
	}
	if rec.QuranPagesGoal != 5 || rec.QuranEdition != "kingFahd" {
		t.Errorf("reader defaults = %d/%q", rec.QuranPagesGoal, rec.QuranEdition)
	}
	if rec.Tasks == nil || rec.ArchivedTasks == nil || rec.SleepHistory == nil || rec.GratitudeNotes == nil {
		t.Error("nil slices not initialized")
	}

	// Existing values survive.
	rec.WaterGoalLiters = 3.5
	rec.WakeupTime = "06:30"
	rec.ApplyDefaults()
	if rec.WaterGoalLiters != 3.5 || rec.WakeupTime != "06:30" {
		t.Error("ApplyDefaults overwrote explicit values")
	}
}

func TestWaterGoalMl(t *testing.T) {
	tests := []struct {
		liters float64
		want   int
	}{
		{2.0, 2000},
		{1.5, 1500},
		{0, 0},
	}
	for _, tt := range tests {
		rec := StateRecord{WaterGoalLiters: tt.liters}
		if got := rec.WaterGoalMl(); got != tt.want {
			t.Errorf("WaterGoalMl(%f) = %d, want %d", tt.liters, got, tt.want)
		}
	}
}

func TestDoneTaskCount(t *testing.T) {
	rec := StateRecord{Tasks: []Task{
		{Status: TaskDone},
		{Status: TaskTodo},
		{Status: TaskDone},
		{Status: TaskInProgress},
	}}
	if got := rec.DoneTaskCount(); got != 2 {
		t.Errorf("DoneTaskCount = %d, want 2", got)
	}
}

func TestSessionSignedIn(t *testing.T) {
	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{name: "empty", sess: Session{}, want: false},
		{name: "guest", sess: Session{AccountID: "a1", Guest: true}, want: false},
		{name: "signed in", sess: Session{AccountID: "a1"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sess.SignedIn(); got != tt.want {
				t.Errorf("SignedIn = %v, want %v", got, tt.want)
			}
		})
	}
}
