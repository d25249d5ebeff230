package model

import (
	"strings"
	"time"
)

// Priority describes how pressing a task is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TaskStatus is the three-state task lifecycle. Any state is reachable
// from any other; transitions are not ordered.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// DayOfWeek is a lowercase weekday name as stored in schedule entries.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Week lists the canonical weekdays in display order, Monday first.
var Week = [7]DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// CourseColor is a display-only tag attached to a course.
type CourseColor string

const (
	ColorPink   CourseColor = "pink"
	ColorYellow CourseColor = "yellow"
	ColorBlue   CourseColor = "blue"
	ColorGreen  CourseColor = "green"
	ColorPurple CourseColor = "purple"
	ColorOrange CourseColor = "orange"
)

// Style maps a course color to its presentation class.
func (c CourseColor) Style() string {
	switch c {
	case ColorPink:
		return "course-pink"
	case ColorYellow:
		return "course-yellow"
	case ColorBlue:
		return "course-blue"
	case ColorGreen:
		return "course-green"
	case ColorPurple:
		return "course-purple"
	case ColorOrange:
		return "course-orange"
	default:
		return "course-blue"
	}
}

// Style maps a priority to its badge class.
func (p Priority) Style() string {
	switch p {
	case PriorityHigh:
		return "badge-destructive"
	case PriorityMedium:
		return "badge-warning"
	case PriorityLow:
		return "badge-muted"
	default:
		return "badge-muted"
	}
}

// Label is the human-readable status text.
func (s TaskStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Style maps a status to its badge class.
func (s TaskStatus) Style() string {
	switch s {
	case StatusCompleted:
		return "badge-success"
	case StatusInProgress:
		return "badge-info"
	case StatusPending:
		return "badge-muted"
	default:
		return "badge-muted"
	}
}

// ParsePriority normalizes a raw priority string.
func ParsePriority(raw string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case PriorityHigh:
		return PriorityHigh, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityLow:
		return PriorityLow, true
	}
	return "", false
}

// ParseTaskStatus normalizes a raw status string.
func ParseTaskStatus(raw string) (TaskStatus, bool) {
	switch TaskStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusCompleted:
		return StatusCompleted, true
	}
	return "", false
}

// ParseDayOfWeek normalizes a raw weekday name.
func ParseDayOfWeek(raw string) (DayOfWeek, bool) {
	day := DayOfWeek(strings.ToLower(strings.TrimSpace(raw)))
	for _, d := range Week {
		if d == day {
			return d, true
		}
	}
	return "", false
}

// DayOf converts a time.Weekday into the planner's weekday tag.
func DayOf(w time.Weekday) DayOfWeek {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
