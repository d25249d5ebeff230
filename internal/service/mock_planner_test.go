package service

import (
	"studyplanner/internal/model"
	"studyplanner/internal/notify"
)

// stubPlanner is an in-memory PlannerView for service tests.
type stubPlanner struct {
	courses  []model.Course
	tasks    []model.Task
	exams    []model.Exam
	settings model.Settings
}

func newStubPlanner() *stubPlanner {
	return &stubPlanner{settings: model.DefaultSettings()}
}

func (s *stubPlanner) Courses() []model.Course { return s.courses }

func (s *stubPlanner) Tasks() []model.Task { return s.tasks }

func (s *stubPlanner) Exams() []model.Exam { return s.exams }

func (s *stubPlanner) Settings() model.Settings { return s.settings }

func (s *stubPlanner) CourseByID(id string) (model.Course, bool) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// captureSink records every event it receives.
type captureSink struct {
	events []notify.Event
}

func (c *captureSink) Notify(e notify.Event) {
	c.events = append(c.events, e)
}
