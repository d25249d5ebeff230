package model

import "time"

// Task is a single item of work tied to a deadline. CourseID may
// reference a deleted course; lookups must treat that as "no course".
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CourseID    string     `json:"courseId"`
	Deadline    string     `json:"deadline"` // ISO-parseable local date-time
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	Description string     `json:"description"`
}

// DeadlineTime parses the stored deadline.
func (t Task) DeadlineTime() (time.Time, bool) {
	return ParseWhen(t.Deadline)
}

// HoursRemaining is the signed number of hours until the deadline.
// Unparseable deadlines report as long past.
func (t Task) HoursRemaining(now time.Time) float64 {
	deadline, ok := t.DeadlineTime()
	if !ok {
		return -1 << 30
	}
	return deadline.Sub(now).Hours()
}

// IsUrgent reports whether the task needs attention right now: high
// priority, not completed, and due strictly within the next 24 hours.
// A deadline exactly at now does not count. Pure function of the task
// and the given instant; callers re-invoke for fresh results.
func (t Task) IsUrgent(now time.Time) bool {
	if t.Priority != PriorityHigh || t.Status == StatusCompleted {
		return false
	}
	hours := t.HoursRemaining(now)
	return hours > 0 && hours < 24
}
