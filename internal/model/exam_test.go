package model

import (
	"testing"
	"time"
)

func examDated(d time.Duration) Exam {
	return Exam{ID: "e1", CourseID: "c1", Date: testNow.Add(d).Format("2006-01-02T15:04:05")}
}

func TestExamDaysRemaining_CeilingDivision(t *testing.T) {
	cases := []struct {
		name  string
		delta time.Duration
		want  int
	}{
		{"exactly now", 0, 0},
		{"one second ahead", time.Second, 1},
		{"exactly three days", 72 * time.Hour, 3},
		{"three days minus a second", 72*time.Hour - time.Second, 3},
		{"three days plus a second", 72*time.Hour + time.Second, 4},
		{"one day ago", -24 * time.Hour, -1},
		{"half a day ago", -12 * time.Hour, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := examDated(tc.delta).DaysRemaining(testNow); got != tc.want {
				t.Errorf("DaysRemaining = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExamIsApproaching(t *testing.T) {
	cases := []struct {
		name  string
		delta time.Duration
		want  bool
	}{
		{"today", 0, true},
		{"in three days", 72 * time.Hour, true},
		{"in exactly seven days", 7 * 24 * time.Hour, true},
		{"in eight days", 8 * 24 * time.Hour, false},
		{"yesterday", -24 * time.Hour, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := examDated(tc.delta).IsApproaching(testNow); got != tc.want {
				t.Errorf("IsApproaching = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExamUnparseableDate(t *testing.T) {
	exam := Exam{ID: "e1", Date: "sometime"}
	if exam.IsApproaching(testNow) {
		t.Error("unparseable date must not be approaching")
	}
	if days := exam.DaysRemaining(testNow); days >= 0 {
		t.Errorf("unparseable date reported %d days remaining", days)
	}
}
