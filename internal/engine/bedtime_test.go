package engine

import (
	"testing"
	"time"
)

func TestSuggestBedtimes(t *testing.T) {
	now := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)

	options, err := SuggestBedtimes("07:00", now)
	if err != nil {
		t.Fatal(err)
	}
	if len(options) != 3 {
		t.Fatalf("got %d options, want 3", len(options))
	}

	// 6 cycles = 9h sleep + 15m to fall asleep before a 07:00 wakeup.
	want := []struct {
		clock  string
		cycles int
		hours  float64
	}{
		{"21:45", 6, 9.0},
		{"23:15", 5, 7.5},
		{"00:45", 4, 6.0},
	}
	for i, w := range want {
		if options[i].Clock != w.clock {
			t.Errorf("option %d clock = %s, want %s", i, options[i].Clock, w.clock)
		}
		if options[i].Cycles != w.cycles {
			t.Errorf("option %d cycles = %d, want %d", i, options[i].Cycles, w.cycles)
		}
		if options[i].SleepHours != w.hours {
			t.Errorf("option %d hours = %.1f, want %.1f", i, options[i].SleepHours, w.hours)
		}
	}
}

func TestSuggestBedtimesRollsToTomorrow(t *testing.T) {
	// At 06:00 the 07:00 wakeup today is still ahead; bedtimes land before it.
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	options, err := SuggestBedtimes("07:00", now)
	if err != nil {
		t.Fatal(err)
	}
	wake := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	if !options[0].At.Before(wake) {
		t.Errorf("bedtime %v is not before today's wakeup %v", options[0].At, wake)
	}

	// At 08:00 the wakeup already passed, so everything shifts a day.
	later := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	options, err = SuggestBedtimes("07:00", later)
	if err != nil {
		t.Fatal(err)
	}
	nextWake := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)
	if got := options[0].At.Add(time.Duration(6*90+15) * time.Minute); !got.Equal(nextWake) {
		t.Errorf("6-cycle bedtime %v does not line up with tomorrow's wakeup", options[0].At)
	}
}

func TestSuggestBedtimesInvalidWakeup(t *testing.T) {
	if _, err := SuggestBedtimes("25:99", time.Now()); err == nil {
		t.Error("expected an error for an invalid wakeup time")
	}
}
