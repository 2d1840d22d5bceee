package models

import (
	"time"

	"github.com/lifebalance/lifebalance/internal/constants"
)

type SleepQuality string

const (
	SleepGood    SleepQuality = "good"
	SleepAverage SleepQuality = "average"
	SleepPoor    SleepQuality = "poor"
)

// SleepEntry is one morning check-in. At most one entry exists per date;
// recording again for the same date replaces the earlier quality.
type SleepEntry struct {
	Date    string       `json:"date"` // YYYY-MM-DD
	Quality SleepQuality `json:"quality"`
}

// GratitudeNote is a journal entry. Notes are kept newest first.
type GratitudeNote struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"` // display date at creation time
}

// StateRecord is the full per-user aggregate of tracked wellness data. It is
// read and replaced wholesale by every mutator and serialized as a single
// JSON blob per logical user.
type StateRecord struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`

	WaterGoalLiters    float64           `json:"water_goal_liters"`
	WaterIntakeMl      int               `json:"water_intake_ml"`
	LastWaterResetDate string            `json:"last_water_reset_date"`
	WaterSchedule      []string          `json:"water_schedule,omitempty"`  // HH:MM slots
	NotifiedSlots      map[string]string `json:"notified_slots,omitempty"`  // slot -> date fired
	BedtimeReminder    *time.Time        `json:"bedtime_reminder,omitempty"`

	WakeupTime        string `json:"wakeup_time"`
	WeekendWakeupTime string `json:"weekend_wakeup_time"`
	AlarmEnabled      bool   `json:"alarm_enabled"`

	SleepHistory []SleepEntry `json:"sleep_history"`

	Tasks         []Task `json:"tasks"`
	ArchivedTasks []Task `json:"archived_tasks"`

	GratitudeNotes []GratitudeNote `json:"gratitude_notes"`

	StreakDays       int    `json:"streak_days"`
	LastActivityDate string `json:"last_activity_date"`

	QuranPagesGoal      int    `json:"quran_pages_goal"`
	QuranPagesReadToday int    `json:"quran_pages_read_today"`
	LastQuranResetDate  string `json:"last_quran_reset_date"`
	QuranTotalPagesEver int    `json:"quran_total_pages_ever"`
	QuranStreakDays     int    `json:"quran_streak_days"`
	QuranEdition        string `json:"quran_edition"`
}

// DefaultState returns a StateRecord populated with first-run defaults.
func DefaultState() StateRecord {
	return StateRecord{
		Language:           constants.DefaultLanguage,
		Theme:              constants.DefaultTheme,
		WaterGoalLiters:    constants.DefaultWaterGoalLiters,
		WakeupTime:         constants.DefaultWakeupTime,
		WeekendWakeupTime:  constants.DefaultWeekendWakeupTime,
		SleepHistory:       []SleepEntry{},
		Tasks:              []Task{},
		ArchivedTasks:      []Task{},
		GratitudeNotes:     []GratitudeNote{},
		QuranPagesGoal:     constants.DefaultQuranPagesGoal,
		QuranEdition:       constants.DefaultQuranEdition,
	}
}

// ApplyDefaults fills in zero-valued fields that have documented non-zero
// defaults. Called after loading a blob so that records written by older
// versions pick up new fields.
func (r *StateRecord) ApplyDefaults() {
	if r.Language == "" {
		r.Language = constants.DefaultLanguage
	}
	if r.Theme == "" {
		r.Theme = constants.DefaultTheme
	}
	if r.WaterGoalLiters <= 0 {
		r.WaterGoalLiters = constants.DefaultWaterGoalLiters
	}
	if r.WakeupTime == "" {
		r.WakeupTime = constants.DefaultWakeupTime
	}
	if r.WeekendWakeupTime == "" {
		r.WeekendWakeupTime = constants.DefaultWeekendWakeupTime
	}
	if r.QuranPagesGoal <= 0 {
		r.QuranPagesGoal = constants.DefaultQuranPagesGoal
	}
	if r.QuranEdition == "" {
		r.QuranEdition = constants.DefaultQuranEdition
	}
	if r.SleepHistory == nil {
		r.SleepHistory = []SleepEntry{}
	}
	if r.Tasks == nil {
		r.Tasks = []Task{}
	}
	if r.ArchivedTasks == nil {
		r.ArchivedTasks = []Task{}
	}
	if r.GratitudeNotes == nil {
		r.GratitudeNotes = []GratitudeNote{}
	}
}

// WaterGoalMl is the daily goal expressed in milliliters.
func (r StateRecord) WaterGoalMl() int {
	return int(r.WaterGoalLiters * 1000)
}

// DoneTaskCount counts tasks on the board with status done.
func (r StateRecord) DoneTaskCount() int {
	n := 0
	for _, t := range r.Tasks {
		if t.Status == TaskDone {
			n++
		}
	}
	return n
}
