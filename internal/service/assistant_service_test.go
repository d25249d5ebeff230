package service

import (
	"strings"
	"testing"
	"time"

	"studyplanner/internal/model"
)

func TestAssistantTaskKeyword(t *testing.T) {
	p := newStubPlanner()
	p.tasks = []model.Task{
		{ID: "t1", Title: "essay", Status: model.StatusPending, Deadline: localStamp(checkNow.Add(24 * time.Hour))},
		{ID: "t2", Title: "later", Status: model.StatusPending, Deadline: localStamp(checkNow.Add(10 * 24 * time.Hour))},
	}
	svc := NewAssistantService(p)

	answer := svc.Respond("what tasks do I have?", checkNow)
	if !strings.Contains(answer, "1 urgent task") || !strings.Contains(answer, "essay") {
		t.Errorf("task answer missing urgent summary: %q", answer)
	}
}

func TestAssistantTaskKeywordNoUrgent(t *testing.T) {
	p := newStubPlanner()
	p.tasks = []model.Task{{ID: "t1", Title: "later", Status: model.StatusPending, Deadline: localStamp(checkNow.Add(10 * 24 * time.Hour))}}
	svc := NewAssistantService(p)

	answer := svc.Respond("task list please", checkNow)
	if !strings.Contains(answer, "1 pending task") {
		t.Errorf("task answer missing pending count: %q", answer)
	}

	p.tasks = nil
	if answer := svc.Respond("tasks?", checkNow); !strings.Contains(answer, "no pending tasks") {
		t.Errorf("empty task answer = %q", answer)
	}
}

func TestAssistantExamKeyword(t *testing.T) {
	p := newStubPlanner()
	p.courses = []model.Course{{ID: "c1", Name: "Physics"}}
	p.exams = []model.Exam{
		{ID: "e1", CourseID: "c1", Date: localStamp(checkNow.Add(48 * time.Hour))},
		{ID: "e2", CourseID: "c1", Date: localStamp(checkNow.Add(96 * time.Hour))},
		{ID: "e3", CourseID: "c1", Date: localStamp(checkNow.Add(-96 * time.Hour))}, // past, excluded
	}
	svc := NewAssistantService(p)

	answer := svc.Respond("when is my next exam?", checkNow)
	if !strings.Contains(answer, "Physics") || !strings.Contains(answer, "2 day(s)") {
		t.Errorf("exam answer = %q", answer)
	}
	if !strings.Contains(answer, "2 exams coming up") {
		t.Errorf("exam answer missing total: %q", answer)
	}

	p.exams = nil
	if answer := svc.Respond("exam", checkNow); !strings.Contains(answer, "no upcoming exams") {
		t.Errorf("empty exam answer = %q", answer)
	}
}

func TestAssistantCourseAndOverviewKeywords(t *testing.T) {
	p := newStubPlanner()
	p.courses = []model.Course{{ID: "c1", Name: "History", Instructor: "Dr. Reyes"}}
	svc := NewAssistantService(p)

	answer := svc.Respond("show my courses", checkNow)
	if !strings.Contains(answer, "History") || !strings.Contains(answer, "Dr. Reyes") {
		t.Errorf("course answer = %q", answer)
	}

	answer = svc.Respond("help me plan", checkNow)
	if !strings.Contains(answer, "1 courses") || !strings.Contains(answer, "0 pending tasks") {
		t.Errorf("overview answer = %q", answer)
	}
}

func TestAssistantFallback(t *testing.T) {
	svc := NewAssistantService(newStubPlanner())
	answer := svc.Respond("tell me a joke", checkNow)
	if !strings.Contains(answer, "Ask me about") {
		t.Errorf("fallback answer = %q", answer)
	}
}
