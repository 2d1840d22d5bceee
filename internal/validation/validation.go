// Package validation holds the boundary checks applied to user input before
// it reaches a mutator. Invalid input is rejected with a message and treated
// as a no-op; it must never produce a corrupt state.
package validation

import (
	"fmt"
	"strings"

	"github.com/lifebalance/lifebalance/internal/models"
	"github.com/lifebalance/lifebalance/internal/utils"
)

// Title checks a required free-text field.
func Title(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}

// WaterGoal checks a daily goal in liters.
func WaterGoal(liters float64) error {
	if liters <= 0 {
		return fmt.Errorf("water goal must be greater than zero")
	}
	if liters > 10 {
		return fmt.Errorf("water goal %.1f L is not plausible", liters)
	}
	return nil
}

// PagesGoal checks a daily reading goal.
func PagesGoal(pages int) error {
	if pages <= 0 {
		return fmt.Errorf("pages goal must be greater than zero")
	}
	return nil
}

// Priority parses a task priority string.
func Priority(s string) (models.Priority, error) {
	p := models.Priority(strings.ToLower(s))
	if !models.ValidPriority(p) {
		return "", fmt.Errorf("invalid priority: %s (expected low|medium|high)", s)
	}
	return p, nil
}

// Status parses a task status string.
func Status(s string) (models.TaskStatus, error) {
	st := models.TaskStatus(strings.ToLower(s))
	if !models.ValidStatus(st) {
		return "", fmt.Errorf("invalid status: %s (expected todo|in_progress|done)", s)
	}
	return st, nil
}

// Quality parses a sleep quality string.
func Quality(s string) (models.SleepQuality, error) {
	q := models.SleepQuality(strings.ToLower(s))
	if !models.ValidQuality(q) {
		return "", fmt.Errorf("invalid quality: %s (expected good|average|poor)", s)
	}
	return q, nil
}

// TimeOfDay checks an HH:MM wall-clock string.
func TimeOfDay(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", s)
	}
	return nil
}

// Schedule checks a list of HH:MM slots.
func Schedule(slots []string) error {
	if len(slots) == 0 {
		return fmt.Errorf("schedule must contain at least one time")
	}
	seen := make(map[string]bool)
	for _, slot := range slots {
		if err := TimeOfDay(slot); err != nil {
			return err
		}
		if seen[slot] {
			return fmt.Errorf("duplicate schedule time: %s", slot)
		}
		seen[slot] = true
	}
	return nil
}
