package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lifebalance/lifebalance/internal/logger"
	"github.com/lifebalance/lifebalance/internal/models"
	"github.com/lifebalance/lifebalance/internal/storage"
	"github.com/lifebalance/lifebalance/internal/utils"
)

// Syncer mirrors an account to the remote host dashboard. Implementations
// must be fire-and-forget: never block, never return an error to the caller.
type Syncer interface {
	UpsertAsync(acct models.Account)
}

// Engine applies user actions as atomic transforms over the StateRecord.
// Every mutation runs the rollover reconciler first, persists the result,
// mirrors it into the signed-in account, and kicks off a best-effort sync.
type Engine struct {
	store storage.Provider
	clock Clock
	sync  Syncer // optional
}

func New(store storage.Provider, clock Clock, sync Syncer) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{store: store, clock: clock, sync: sync}
}

func (e *Engine) Clock() Clock { return e.clock }

// State loads the current record, applying the day rollover if a boundary
// was crossed since the last load.
func (e *Engine) State() (models.StateRecord, error) {
	state, err := e.store.GetState()
	if err != nil {
		return models.StateRecord{}, err
	}
	if Reconcile(&state, e.clock.Now()) {
		if err := e.store.SaveState(state); err != nil {
			return models.StateRecord{}, err
		}
		e.mirror(state)
	}
	return state, nil
}

// mutate is the shared transaction shape: load, reconcile, transform, save,
// mirror. The transform receives the post-rollover record.
func (e *Engine) mutate(fn func(rec *models.StateRecord, now time.Time) []Effect) ([]Effect, error) {
	state, err := e.store.GetState()
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	Reconcile(&state, now)

	effects := fn(&state, now)

	if err := e.store.SaveState(state); err != nil {
		return nil, err
	}
	e.mirror(state)

	return effects, nil
}

// mirror copies the current state into the signed-in account and hands it to
// the sync client. Both paths are best-effort.
func (e *Engine) mirror(state models.StateRecord) {
	sess, err := e.store.GetSession()
	if err != nil || !sess.SignedIn() {
		return
	}

	acct, err := e.store.GetAccount(sess.AccountID)
	if err != nil {
		logger.Warn("Signed-in account missing, skipping mirror", "account", sess.AccountID, "error", err)
		return
	}

	acct.State = state
	if err := e.store.SaveAccount(acct); err != nil {
		logger.Warn("Failed to mirror state to account", "account", acct.ID, "error", err)
		return
	}

	if e.sync != nil {
		e.sync.UpsertAsync(acct)
	}
}

// AddWater adds deltaMl (possibly negative) to today's intake, clamped at
// zero. Crossing the goal upward emits a one-time celebration effect.
func (e *Engine) AddWater(deltaMl int) ([]Effect, error) {
	return e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		goalMl := rec.WaterGoalMl()
		before := rec.WaterIntakeMl

		after := before + deltaMl
		if after < 0 {
			after = 0
		}

		rec.WaterIntakeMl = after
		rec.LastActivityDate = utils.DateString(now)

		if before < goalMl && after >= goalMl {
			return []Effect{{
				Kind:    EffectWaterGoalReached,
				Message: fmt.Sprintf("Goal reached! %dml of %dml", after, goalMl),
			}}
		}
		return nil
	})
}

// SetWaterGoal updates the daily goal in liters.
func (e *Engine) SetWaterGoal(liters float64) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.WaterGoalLiters = liters
		return nil
	})
	return err
}

// SetWaterSchedule replaces the reminder slots (HH:MM, sorted ascending).
// Dedup markers for removed slots are dropped.
func (e *Engine) SetWaterSchedule(slots []string) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		sorted := append([]string(nil), slots...)
		sort.Strings(sorted)
		rec.WaterSchedule = sorted

		keep := make(map[string]string)
		for _, slot := range sorted {
			if date, ok := rec.NotifiedSlots[slot]; ok {
				keep[slot] = date
			}
		}
		rec.NotifiedSlots = keep
		return nil
	})
	return err
}

// AddTask creates a todo task on the board.
func (e *Engine) AddTask(title string, priority models.Priority) (models.Task, error) {
	var task models.Task
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		task = models.Task{
			ID:        uuid.New().String(),
			Title:     title,
			Priority:  priority,
			Status:    models.TaskTodo,
			CreatedAt: now,
		}
		rec.Tasks = append(rec.Tasks, task)
		rec.LastActivityDate = utils.DateString(now)
		return nil
	})
	return task, err
}

// SetTaskStatus transitions a task between columns. CompletedAt is stamped
// on each transition into done and kept on regression back to todo or
// in_progress.
func (e *Engine) SetTaskStatus(id string, status models.TaskStatus) error {
	found := false
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		for i := range rec.Tasks {
			if rec.Tasks[i].ID != id {
				continue
			}
			rec.Tasks[i].Status = status
			if status == models.TaskDone {
				stamp := now
				rec.Tasks[i].CompletedAt = &stamp
			}
			found = true
			break
		}
		if found {
			rec.LastActivityDate = utils.DateString(now)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("task not found: %s", id)
	}
	return nil
}

// DeleteTask removes a task from the board or from the archive.
func (e *Engine) DeleteTask(id string, fromArchive bool) error {
	found := false
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		src := &rec.Tasks
		if fromArchive {
			src = &rec.ArchivedTasks
		}
		for i, t := range *src {
			if t.ID == id {
				*src = append((*src)[:i], (*src)[i+1:]...)
				found = true
				break
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("task not found: %s", id)
	}
	return nil
}

// RecordSleep upserts today's sleep quality check-in.
func (e *Engine) RecordSleep(quality models.SleepQuality) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		today := utils.DateString(now)
		for i := range rec.SleepHistory {
			if rec.SleepHistory[i].Date == today {
				rec.SleepHistory[i].Quality = quality
				rec.LastActivityDate = today
				return nil
			}
		}
		rec.SleepHistory = append(rec.SleepHistory, models.SleepEntry{Date: today, Quality: quality})
		rec.LastActivityDate = today
		return nil
	})
	return err
}

// SetWakeup updates the weekday or weekend wakeup time (HH:MM).
func (e *Engine) SetWakeup(timeStr string, weekend bool) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		if weekend {
			rec.WeekendWakeupTime = timeStr
		} else {
			rec.WakeupTime = timeStr
		}
		return nil
	})
	return err
}

// ScheduleBedtime persists a single absolute bedtime reminder, replacing any
// existing one.
func (e *Engine) ScheduleBedtime(at time.Time) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.BedtimeReminder = &at
		return nil
	})
	return err
}

// AddGratitude prepends a journal note.
func (e *Engine) AddGratitude(text string) (models.GratitudeNote, error) {
	var note models.GratitudeNote
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		note = models.GratitudeNote{
			ID:   uuid.New().String(),
			Text: text,
			Date: now.Format("Jan 2, 2006"),
		}
		rec.GratitudeNotes = append([]models.GratitudeNote{note}, rec.GratitudeNotes...)
		rec.LastActivityDate = utils.DateString(now)
		return nil
	})
	return note, err
}

// DeleteGratitude removes a note by id.
func (e *Engine) DeleteGratitude(id string) error {
	found := false
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		for i, n := range rec.GratitudeNotes {
			if n.ID == id {
				rec.GratitudeNotes = append(rec.GratitudeNotes[:i], rec.GratitudeNotes[i+1:]...)
				found = true
				break
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("note not found: %s", id)
	}
	return nil
}

// AddPages records reading progress. Today's count is clamped at zero while
// the all-time total takes the unclamped delta (floored at zero). Streak
// credit happens at rollover or via ResetPages, never here.
func (e *Engine) AddPages(delta int) ([]Effect, error) {
	return e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		goal := rec.QuranPagesGoal
		before := rec.QuranPagesReadToday

		after := before + delta
		if after < 0 {
			after = 0
		}
		total := rec.QuranTotalPagesEver + delta
		if total < 0 {
			total = 0
		}

		rec.QuranPagesReadToday = after
		rec.QuranTotalPagesEver = total
		rec.LastActivityDate = utils.DateString(now)

		if before < goal && after >= goal {
			return []Effect{{
				Kind:    EffectQuranGoalReached,
				Message: fmt.Sprintf("Daily reading goal met: %d of %d pages", after, goal),
			}}
		}
		return nil
	})
}

// SetPagesGoal updates the daily reading goal.
func (e *Engine) SetPagesGoal(pages int) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.QuranPagesGoal = pages
		return nil
	})
	return err
}

// ResetPages is the manual end-of-session reset carried over from the
// reader: zero today's count, stamp the reset date, and credit the streak if
// any pages were read.
func (e *Engine) ResetPages() error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		if rec.QuranPagesReadToday > 0 {
			rec.QuranStreakDays++
		}
		rec.QuranPagesReadToday = 0
		rec.LastQuranResetDate = utils.DateString(now)
		return nil
	})
	return err
}

// MarkSlotNotified persists the per-slot-per-day dedup marker after a water
// reminder fired.
func (e *Engine) MarkSlotNotified(slot string) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		if rec.NotifiedSlots == nil {
			rec.NotifiedSlots = make(map[string]string)
		}
		rec.NotifiedSlots[slot] = utils.DateString(now)
		return nil
	})
	return err
}

// ClearBedtimeReminder removes a fired (or cancelled) bedtime reminder.
func (e *Engine) ClearBedtimeReminder() error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.BedtimeReminder = nil
		return nil
	})
	return err
}
