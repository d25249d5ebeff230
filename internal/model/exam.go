package model

import "time"

const dayMillis = 24 * 60 * 60 * 1000

// Exam is a scheduled examination for a course.
type Exam struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Date     string `json:"date"` // ISO-parseable local date-time
	Location string `json:"location"`
	Duration string `json:"duration"` // free text, e.g. "2 hours"
	Notes    string `json:"notes"`
}

// DateTime parses the stored exam date.
func (e Exam) DateTime() (time.Time, bool) {
	return ParseWhen(e.Date)
}

// DaysRemaining is ceil((date - now) / 24h) on the millisecond delta.
// An exam dated exactly now yields 0; past exams go negative.
// Unparseable dates report as long past.
func (e Exam) DaysRemaining(now time.Time) int {
	date, ok := e.DateTime()
	if !ok {
		return -1 << 30
	}
	ms := date.Sub(now).Milliseconds()
	days := ms / dayMillis
	if ms%dayMillis > 0 {
		days++
	}
	return int(days)
}

// IsApproaching reports whether the exam is within the next week.
func (e Exam) IsApproaching(now time.Time) bool {
	days := e.DaysRemaining(now)
	return days >= 0 && days <= 7
}
