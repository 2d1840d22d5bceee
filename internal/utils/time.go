package utils

import (
	"fmt"
	"time"

	"github.com/lifebalance/lifebalance/internal/constants"
)

// DateString formats t as a calendar-date key (YYYY-MM-DD) in t's location.
func DateString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// YesterdayString returns the calendar-date key for the day before t.
func YesterdayString(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// ParseTime parses a wall-clock string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// AtTimeOfDay returns the instant on day's calendar date with the wall-clock
// time taken from timeStr, in day's location.
func AtTimeOfDay(day time.Time, timeStr string) (time.Time, error) {
	tod, err := ParseTime(timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), 0, 0,
		day.Location(),
	), nil
}

// MinutesApart returns the absolute distance between two instants, ignoring
// which one comes first.
func MinutesApart(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d
}
