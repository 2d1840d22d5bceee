package engine

import (
	"time"

	"github.com/lifebalance/lifebalance/internal/constants"
	"github.com/lifebalance/lifebalance/internal/utils"
)

// Bedtime is one suggested lights-out candidate: N full 90-minute sleep
// cycles plus a 15-minute fall-asleep buffer before the wakeup time.
type Bedtime struct {
	At         time.Time
	Clock      string  // HH:MM
	Cycles     int
	SleepHours float64
}

// SuggestBedtimes computes the candidate bedtimes for the given wakeup time
// (HH:MM) relative to now. Candidates that already passed today roll to the
// same wall-clock time tomorrow.
func SuggestBedtimes(wakeup string, now time.Time) ([]Bedtime, error) {
	wake, err := utils.AtTimeOfDay(now, wakeup)
	if err != nil {
		return nil, err
	}
	// Tonight's wakeup is tomorrow morning.
	if !wake.After(now) {
		wake = wake.AddDate(0, 0, 1)
	}

	options := make([]Bedtime, 0, len(constants.BedtimeCycleOptions))
	for _, cycles := range constants.BedtimeCycleOptions {
		minutes := cycles*constants.SleepCycleMinutes + constants.FallAsleepMinutes
		at := wake.Add(-time.Duration(minutes) * time.Minute)
		options = append(options, Bedtime{
			At:         at,
			Clock:      at.Format(constants.TimeFormat),
			Cycles:     cycles,
			SleepHours: float64(cycles) * 1.5,
		})
	}

	return options, nil
}
