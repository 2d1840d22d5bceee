package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Task is a kanban board entry. CompletedAt is re-stamped on every
// transition into done and is not cleared if the task later moves back to
// todo or in_progress.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// ValidQuality reports whether q is one of the known sleep qualities.
func ValidQuality(q SleepQuality) bool {
	switch q {
	case SleepGood, SleepAverage, SleepPoor:
		return true
	}
	return false
}
