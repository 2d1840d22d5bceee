// Package scheduler drives all time-of-day reminders off a single coalesced
// tick. One timer serves both the water schedule and the bedtime reminder,
// which keeps cancellation and testing simple.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/lifebalance/lifebalance/internal/constants"
	"github.com/lifebalance/lifebalance/internal/engine"
	"github.com/lifebalance/lifebalance/internal/logger"
	"github.com/lifebalance/lifebalance/internal/utils"
)

// Notifier is the delivery port. Failures mean the notification capability
// is unavailable (tray app not running); the scheduler degrades to a no-op.
type Notifier interface {
	Notify(text string) error
}

type Scheduler struct {
	engine   *engine.Engine
	notifier Notifier
	clock    engine.Clock
}

func New(eng *engine.Engine, notifier Notifier) *Scheduler {
	return &Scheduler{
		engine:   eng,
		notifier: notifier,
		clock:    eng.Clock(),
	}
}

// Run ticks until ctx is cancelled. An immediate first tick catches
// reminders due at startup.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(constants.SchedulerInterval)
	defer ticker.Stop()

	s.Tick()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick performs one due-check over both reminder types. All errors are
// logged and swallowed; a reminder poll must never take the app down.
func (s *Scheduler) Tick() {
	state, err := s.engine.State()
	if err != nil {
		logger.Warn("Reminder tick could not load state", "error", err)
		return
	}

	now := s.clock.Now()
	today := utils.DateString(now)

	for _, slot := range state.WaterSchedule {
		if state.NotifiedSlots[slot] == today {
			continue
		}

		at, err := utils.AtTimeOfDay(now, slot)
		if err != nil {
			logger.Warn("Invalid water schedule slot", "slot", slot, "error", err)
			continue
		}
		if utils.MinutesApart(now, at) > constants.WaterSlotTolerance {
			continue
		}

		perSlot := 0
		if len(state.WaterSchedule) > 0 {
			perSlot = state.WaterGoalMl() / len(state.WaterSchedule)
		}
		msg := fmt.Sprintf("Time to drink water! It's %s. Drink %dml to reach your daily goal of %dml.",
			slot, perSlot, state.WaterGoalMl())

		if err := s.notifier.Notify(msg); err != nil {
			logger.Debug("Water reminder not delivered", "slot", slot, "error", err)
			continue
		}
		if err := s.engine.MarkSlotNotified(slot); err != nil {
			logger.Warn("Failed to persist reminder marker", "slot", slot, "error", err)
		}
	}

	if state.BedtimeReminder != nil {
		at := *state.BedtimeReminder
		switch {
		case now.After(at):
			// Missed entirely (app was closed); drop it without firing.
			logger.Debug("Clearing stale bedtime reminder", "at", at)
			if err := s.engine.ClearBedtimeReminder(); err != nil {
				logger.Warn("Failed to clear bedtime reminder", "error", err)
			}
		case !now.Before(at.Add(-constants.BedtimePreWindow)):
			msg := fmt.Sprintf("Bedtime at %s. Wind down now to catch your full sleep cycles.", at.Format(constants.TimeFormat))
			if err := s.notifier.Notify(msg); err != nil {
				logger.Debug("Bedtime reminder not delivered", "error", err)
				return
			}
			if err := s.engine.ClearBedtimeReminder(); err != nil {
				logger.Warn("Failed to clear bedtime reminder", "error", err)
			}
		}
	}
}
