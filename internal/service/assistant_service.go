package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"studyplanner/internal/model"
)

// AssistantService is the fixed keyword-matching responder. It answers
// from the planner's in-memory data only; there is no inference step.
type AssistantService struct {
	planner PlannerView
}

func NewAssistantService(planner PlannerView) *AssistantService {
	return &AssistantService{planner: planner}
}

// Respond picks a canned answer for the message based on keywords.
func (s *AssistantService) Respond(message string, now time.Time) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "task"):
		return s.taskAnswer(now)
	case strings.Contains(lower, "exam"):
		return s.examAnswer(now)
	case strings.Contains(lower, "course"), strings.Contains(lower, "schedule"):
		return s.courseAnswer()
	case strings.Contains(lower, "organi"), strings.Contains(lower, "plan"), strings.Contains(lower, "help"):
		return s.overviewAnswer(now)
	}

	return "I can help you keep track of your studies. Ask me about your tasks, exams, or courses, or ask for help planning your time."
}

func (s *AssistantService) taskAnswer(now time.Time) string {
	var pending, urgent []model.Task
	for _, task := range s.planner.Tasks() {
		if task.Status != model.StatusPending {
			continue
		}
		pending = append(pending, task)
		if deadline, ok := task.DeadlineTime(); ok && deadline.Sub(now) <= 48*time.Hour {
			urgent = append(urgent, task)
		}
	}

	if len(urgent) > 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "You have %d urgent task(s):\n", len(urgent))
		for _, task := range urgent {
			fmt.Fprintf(&sb, "- %s (due %s)\n", task.Title, task.Deadline)
		}
		sb.WriteString("\nI recommend tackling these first.")
		return sb.String()
	}

	if len(pending) > 0 {
		return fmt.Sprintf("You have %d pending task(s). Want to sort them by priority?", len(pending))
	}

	return "Great news! You have no pending tasks. Good time to review or get ahead."
}

func (s *AssistantService) examAnswer(now time.Time) string {
	type upcoming struct {
		exam model.Exam
		date time.Time
	}
	var exams []upcoming
	for _, exam := range s.planner.Exams() {
		if date, ok := exam.DateTime(); ok && !date.Before(now) {
			exams = append(exams, upcoming{exam: exam, date: date})
		}
	}
	if len(exams) == 0 {
		return "You have no upcoming exams in your calendar."
	}

	sort.Slice(exams, func(i, j int) bool { return exams[i].date.Before(exams[j].date) })

	next := exams[0]
	name := "your next course"
	if course, ok := s.planner.CourseByID(next.exam.CourseID); ok {
		name = course.Name
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your next exam is %s in %d day(s) (%s).",
		name, next.exam.DaysRemaining(now), next.date.Format("2006-01-02"))
	if len(exams) > 1 {
		fmt.Fprintf(&sb, "\nYou have %d exams coming up in total.", len(exams))
	}
	sb.WriteString(" I suggest starting a revision plan now.")
	return sb.String()
}

func (s *AssistantService) courseAnswer() string {
	courses := s.planner.Courses()
	if len(courses) == 0 {
		return "You have no courses yet. Add one and I can help you plan around it."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You have %d course(s):\n", len(courses))
	for _, course := range courses {
		fmt.Fprintf(&sb, "- %s (instructor: %s)\n", course.Name, course.Instructor)
	}
	sb.WriteString("\nWant help organizing your week around them?")
	return sb.String()
}

func (s *AssistantService) overviewAnswer(now time.Time) string {
	pending := 0
	for _, task := range s.planner.Tasks() {
		if task.Status == model.StatusPending {
			pending++
		}
	}
	upcoming := 0
	for _, exam := range s.planner.Exams() {
		if date, ok := exam.DateTime(); ok && !date.Before(now) {
			upcoming++
		}
	}

	var sb strings.Builder
	sb.WriteString("Here is where you stand:\n\n")
	fmt.Fprintf(&sb, "📚 %d courses\n", len(s.planner.Courses()))
	fmt.Fprintf(&sb, "✏️ %d pending tasks\n", pending)
	fmt.Fprintf(&sb, "📝 %d upcoming exams\n\n", upcoming)
	sb.WriteString("I can help you prioritize urgent tasks, build a revision plan, or lay out your week. Where shall we start?")
	return sb.String()
}
