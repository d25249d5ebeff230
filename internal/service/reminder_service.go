package service

import (
	"fmt"
	"math"
	"time"

	"studyplanner/internal/model"
	"studyplanner/internal/notify"
)

// PlannerView is the read side of the planner's state that the
// services consume.
type PlannerView interface {
	Courses() []model.Course
	Tasks() []model.Task
	Exams() []model.Exam
	Settings() model.Settings
	CourseByID(id string) (model.Course, bool)
}

// classLeadMinutes is how far before a class start the imminent-class
// reminder fires.
const classLeadMinutes = 15

// approachingExamDays is the reminder window for exams, tighter than
// the dashboard's 7-day "approaching" flag.
const approachingExamDays = 3

// ReminderService computes the notification events due at a given
// instant. It is stateless: every check recomputes all three classes
// from the current collections and wall-clock time, so an event that
// stays true across checks is reported again each time.
type ReminderService struct {
	planner PlannerView
}

func NewReminderService(planner PlannerView) *ReminderService {
	return &ReminderService{planner: planner}
}

// Check scans tasks, exams, and course schedules against now.
func (s *ReminderService) Check(now time.Time) []notify.Event {
	var events []notify.Event
	events = append(events, s.urgentTasks(now)...)
	events = append(events, s.approachingExams(now)...)
	events = append(events, s.imminentClasses(now)...)
	return events
}

func (s *ReminderService) urgentTasks(now time.Time) []notify.Event {
	var events []notify.Event
	for _, task := range s.planner.Tasks() {
		if task.Status == model.StatusCompleted || !task.IsUrgent(now) {
			continue
		}
		events = append(events, notify.Event{
			Title:    "⚠️ Urgent Task!",
			Body:     fmt.Sprintf("%q is due in less than 24 hours!", task.Title),
			Severity: notify.SeverityUrgent,
		})
	}
	return events
}

func (s *ReminderService) approachingExams(now time.Time) []notify.Event {
	var events []notify.Event
	for _, exam := range s.planner.Exams() {
		days := exam.DaysRemaining(now)
		if days < 0 || days > approachingExamDays {
			continue
		}
		name := "Exam"
		if course, ok := s.planner.CourseByID(exam.CourseID); ok {
			name = course.Name
		}
		plural := "s"
		if days == 1 {
			plural = ""
		}
		events = append(events, notify.Event{
			Title:    "📚 Exam Approaching!",
			Body:     fmt.Sprintf("%s in %d day%s!", name, days, plural),
			Severity: notify.SeverityWarning,
		})
	}
	return events
}

// imminentClasses projects each schedule entry's time-of-day onto
// today's date, as if the course met every day a check runs, and fires
// when the start is exactly 15 floored minutes away. Sharp equality:
// with a 30-second check cadence a misaligned phase can skip the one
// matching minute, so a qualifying start is not guaranteed to fire.
func (s *ReminderService) imminentClasses(now time.Time) []notify.Event {
	var events []notify.Event
	for _, course := range s.planner.Courses() {
		for _, entry := range course.Schedule {
			hour, minute, ok := model.ParseClock(entry.StartTime)
			if !ok {
				continue
			}
			start := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
			minutesUntil := int(math.Floor(start.Sub(now).Minutes()))
			if minutesUntil != classLeadMinutes {
				continue
			}
			events = append(events, notify.Event{
				Title:    "🎓 Class Starting Soon!",
				Body:     fmt.Sprintf("%s starts in %d minutes", course.Name, classLeadMinutes),
				Severity: notify.SeverityInfo,
			})
		}
	}
	return events
}
