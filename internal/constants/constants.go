package constants

import "time"

const (
	// DateFormat is the calendar-date format used for all per-day keys.
	DateFormat = "2006-01-02"
	// TimeFormat is the wall-clock format used for schedules and wakeup times.
	TimeFormat = "15:04"
)

// StateRecord defaults, applied on first run and when fields are missing
// from a loaded blob.
const (
	DefaultWaterGoalLiters   = 2.0
	DefaultWakeupTime        = "07:00"
	DefaultWeekendWakeupTime = "09:00"
	DefaultQuranPagesGoal    = 5
	DefaultQuranEdition      = "kingFahd"
	DefaultLanguage          = "en"
	DefaultTheme             = "light"
)

// Rollover and archival policy.
const (
	// ArchiveAfter is how long a completed task stays on the board before
	// the next rollover moves it to the archive.
	ArchiveAfter = 24 * time.Hour
	// MaxArchivedTasks bounds the archive; oldest entries are evicted first.
	MaxArchivedTasks = 50
)

// Reminder scheduling.
const (
	// SchedulerInterval is the coalesced poll interval for all reminders.
	SchedulerInterval = time.Minute
	// WaterSlotTolerance is the window around a scheduled slot in which the
	// reminder may still fire.
	WaterSlotTolerance = 5 * time.Minute
	// BedtimePreWindow is how long before the chosen bedtime the reminder fires.
	BedtimePreWindow = 2 * time.Minute
)

// Sleep-cycle math for suggested bedtimes.
const (
	SleepCycleMinutes  = 90
	FallAsleepMinutes  = 15
	NotificationTitle  = "LifeBalance"
	NotifierLockfile   = "lifebalance-tray.lock"
	TrayAppIdentifier  = "lifebalance-tray"
	NotificationDurMs  = 8000
	SyncEnvFile        = ".env"
	SyncURLEnv         = "LIFEBALANCE_SYNC_URL"
	SyncKeyEnv         = "LIFEBALANCE_SYNC_KEY"
	SyncKeyringService = "lifebalance-sync"
)

// BedtimeCycleOptions are the candidate full-cycle counts offered to the user,
// longest first.
var BedtimeCycleOptions = []int{6, 5, 4}
