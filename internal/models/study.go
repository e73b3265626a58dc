// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// DaysOfWeek lists the valid values for StudySession.Day.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Course is a study subject sessions are scheduled against.
type Course struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Color       string  `db:"color" json:"color"`
	Description *string `db:"description" json:"description,omitempty"`
}

// StudySession is a scheduled block of study time for a course.
type StudySession struct { //nolint:govet // fieldalignment: readability over optimization
	ID        string  `db:"id" json:"id"`
	CourseID  string  `db:"course_id" json:"course_id"`
	Day       string  `db:"day" json:"day"`
	StartTime string  `db:"start_time" json:"start_time"`
	EndTime   string  `db:"end_time" json:"end_time"`
	Date      string  `db:"date" json:"date"`
	Notes     *string `db:"notes" json:"notes,omitempty"`
	Topics    []Topic `db:"-" json:"topics"`
}

// Topic is a single study item inside a session.
type Topic struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string     `db:"id" json:"id"`
	SessionID   string     `db:"session_id" json:"-"`
	Name        string     `db:"name" json:"name"`
	Completed   bool       `db:"completed" json:"completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	Notes       *string    `db:"notes" json:"notes,omitempty"`
}

// ValidDay reports whether day is a weekday name used by the timetable.
func ValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
