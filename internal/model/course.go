package model

// Schedule is one recurring weekly meeting of a course.
type Schedule struct {
	Day       DayOfWeek `json:"day"`
	StartTime string    `json:"startTime"` // "HH:MM", 24-hour
	EndTime   string    `json:"endTime"`
}

// Course is a class the student attends. Schedule entries are not
// required to be non-overlapping.
type Course struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Instructor string      `json:"instructor"`
	Schedule   []Schedule  `json:"schedule"`
	Color      CourseColor `json:"color"`
	Notes      string      `json:"notes"`
}

// MeetsOn reports whether the course has a schedule entry on the day.
func (c Course) MeetsOn(day DayOfWeek) bool {
	for _, s := range c.Schedule {
		if s.Day == day {
			return true
		}
	}
	return false
}

// EntryOn returns the first schedule entry for the day, if any.
func (c Course) EntryOn(day DayOfWeek) (Schedule, bool) {
	for _, s := range c.Schedule {
		if s.Day == day {
			return s, true
		}
	}
	return Schedule{}, false
}
