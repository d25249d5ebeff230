package service

import (
	"studyplanner/internal/model"
)

// Display window of the weekly grid: 7:00 through 21:00 inclusive.
const (
	CalendarStartHour = 7
	CalendarEndHour   = 21
)

// CalendarHours returns the grid's hour rows in order.
func CalendarHours() []int {
	hours := make([]int, 0, CalendarEndHour-CalendarStartHour+1)
	for h := CalendarStartHour; h <= CalendarEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// CourseEntry is a course placed in a grid cell together with the
// schedule entry that put it there.
type CourseEntry struct {
	Course model.Course
	Entry  model.Schedule
}

// DaySummary lists everything landing on one weekday.
type DaySummary struct {
	Day     model.DayOfWeek
	Courses []model.Course
	Tasks   []model.Task
}

// CalendarService projects recurring course schedules and task
// deadlines onto the weekly grid. Pure reads over the planner's
// current collections; nothing is excluded for being in the past.
type CalendarService struct {
	planner PlannerView
}

func NewCalendarService(planner PlannerView) *CalendarService {
	return &CalendarService{planner: planner}
}

// CoursesOn returns every course with a schedule entry on the day.
func (s *CalendarService) CoursesOn(day model.DayOfWeek) []model.Course {
	var courses []model.Course
	for _, course := range s.planner.Courses() {
		if course.MeetsOn(day) {
			courses = append(courses, course)
		}
	}
	return courses
}

// Cell returns the courses placed at (day, hour): every course with an
// entry on that day whose start time falls in that hour. Minutes are
// ignored for placement, so a 9:30 start lands in the 9:00 row.
func (s *CalendarService) Cell(day model.DayOfWeek, hour int) []CourseEntry {
	var entries []CourseEntry
	for _, course := range s.planner.Courses() {
		for _, entry := range course.Schedule {
			if entry.Day != day {
				continue
			}
			startHour, _, ok := model.ParseClock(entry.StartTime)
			if !ok || startHour != hour {
				continue
			}
			entries = append(entries, CourseEntry{Course: course, Entry: entry})
		}
	}
	return entries
}

// TasksOn returns tasks whose deadline falls on the weekday, from any
// week. This is a display simplification, not a per-week filter.
func (s *CalendarService) TasksOn(day model.DayOfWeek) []model.Task {
	var tasks []model.Task
	for _, task := range s.planner.Tasks() {
		deadline, ok := task.DeadlineTime()
		if !ok {
			continue
		}
		if model.DayOf(deadline.Weekday()) == day {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Summary collects the day's courses and tasks.
func (s *CalendarService) Summary(day model.DayOfWeek) DaySummary {
	return DaySummary{
		Day:     day,
		Courses: s.CoursesOn(day),
		Tasks:   s.TasksOn(day),
	}
}

// Week returns summaries for all seven days, Monday first.
func (s *CalendarService) Week() []DaySummary {
	summaries := make([]DaySummary, 0, len(model.Week))
	for _, day := range model.Week {
		summaries = append(summaries, s.Summary(day))
	}
	return summaries
}
