package engine

import (
	"time"

	"github.com/lifebalance/lifebalance/internal/constants"
	"github.com/lifebalance/lifebalance/internal/models"
	"github.com/lifebalance/lifebalance/internal/utils"
)

// Reconcile applies the day-boundary rollover to rec in place and reports
// whether anything changed. It is the only code allowed to reset per-day
// counters, archive tasks, or touch the streak fields.
//
// Only a single day-boundary transition is applied no matter how many
// calendar days elapsed since the last open; multi-day gaps are not
// distinguished from one-day gaps beyond the streak-reset branch.
func Reconcile(rec *models.StateRecord, now time.Time) bool {
	changed := false

	today := utils.DateString(now)
	yesterday := utils.YesterdayString(now)

	if rec.LastWaterResetDate != today {
		// Streak continuation or break.
		if rec.LastActivityDate == yesterday {
			rec.StreakDays++
		} else if rec.LastActivityDate != "" && rec.LastActivityDate != today {
			rec.StreakDays = 0
		}

		archiveDoneTasks(rec, now)

		rec.WaterIntakeMl = 0
		rec.LastWaterResetDate = today
		rec.LastActivityDate = today
		changed = true
	}

	// The reading tracker rolls over on its own date field.
	if rec.LastQuranResetDate != today {
		if rec.QuranPagesReadToday > 0 {
			rec.QuranStreakDays++
		} else if rec.LastQuranResetDate != "" && rec.LastQuranResetDate != yesterday {
			rec.QuranStreakDays = 0
		}
		rec.QuranPagesReadToday = 0
		rec.LastQuranResetDate = today
		changed = true
	}

	return changed
}

// archiveDoneTasks moves tasks completed more than 24 hours ago off the board
// and truncates the archive to its most recent entries.
func archiveDoneTasks(rec *models.StateRecord, now time.Time) {
	var active []models.Task
	for _, t := range rec.Tasks {
		if t.Status == models.TaskDone && t.CompletedAt != nil && now.Sub(*t.CompletedAt) > constants.ArchiveAfter {
			rec.ArchivedTasks = append(rec.ArchivedTasks, t)
		} else {
			active = append(active, t)
		}
	}
	if active == nil {
		active = []models.Task{}
	}
	rec.Tasks = active

	if n := len(rec.ArchivedTasks); n > constants.MaxArchivedTasks {
		rec.ArchivedTasks = rec.ArchivedTasks[n-constants.MaxArchivedTasks:]
	}
}
