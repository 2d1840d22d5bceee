package validation

import (
	"testing"

	"github.com/lifebalance/lifebalance/internal/models"
)

func TestTitle(t *testing.T) {
	if err := Title("  "); err == nil {
		t.Error("expected blank title to fail")
	}
	if err := Title("drink water"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
}

func TestWaterGoal(t *testing.T) {
	tests := []struct {
		liters  float64
		wantErr bool
	}{
		{2.0, false},
		{0.5, false},
		{0, true},
		{-1, true},
		{25, true},
	}
	for _, tt := range tests {
		err := WaterGoal(tt.liters)
		if (err != nil) != tt.wantErr {
			t.Errorf("WaterGoal(%f) err = %v, wantErr %v", tt.liters, err, tt.wantErr)
		}
	}
}

func TestPriority(t *testing.T) {
	p, err := Priority("HIGH")
	if err != nil {
		t.Fatalf("Priority(HIGH): %v", err)
	}
	if p != models.PriorityHigh {
		t.Errorf("got %s", p)
	}
	if _, err := Priority("urgent"); err == nil {
		t.Error("expected invalid priority to fail")
	}
}

func TestStatus(t *testing.T) {
	s, err := Status("in_progress")
	if err != nil {
		t.Fatal(err)
	}
	if s != models.TaskInProgress {
		t.Errorf("got %s", s)
	}
	if _, err := Status("doing"); err == nil {
		t.Error("expected invalid status to fail")
	}
}

func TestQuality(t *testing.T) {
	q, err := Quality("Good")
	if err != nil {
		t.Fatal(err)
	}
	if q != models.SleepGood {
		t.Errorf("got %s", q)
	}
	if _, err := Quality("amazing"); err == nil {
		t.Error("expected invalid quality to fail")
	}
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name    string
		slots   []string
		wantErr bool
	}{
		{name: "valid", slots: []string{"09:00", "15:00"}, wantErr: false},
		{name: "empty", slots: nil, wantErr: true},
		{name: "bad format", slots: []string{"9am"}, wantErr: true},
		{name: "duplicate", slots: []string{"09:00", "09:00"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Schedule(tt.slots)
			if (err != nil) != tt.wantErr {
				t.Errorf("Schedule(%v) err = %v, wantErr %v", tt.slots, err, tt.wantErr)
			}
		})
	}
}
