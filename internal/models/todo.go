// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Todo statuses, shared by daily todos and project tasks.
const (
	TodoNotStarted  = "not-started"
	TodoInProgress  = "in-progress"
	TodoCarriedOver = "carried-over"
	TodoCancelled   = "cancelled"
	TodoOnHold      = "on-hold"
	TodoCompleted   = "completed"
)

// DailyTodo is a task scheduled for a specific day.
type DailyTodo struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Status      string     `db:"status" json:"status"`
	Priority    string     `db:"priority" json:"priority"`
	Category    string     `db:"category" json:"category"`
	Date        string     `db:"date" json:"date"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// ValidTodoStatus reports whether s is a known todo status.
func ValidTodoStatus(s string) bool {
	switch s {
	case TodoNotStarted, TodoInProgress, TodoCarriedOver, TodoCancelled, TodoOnHold, TodoCompleted:
		return true
	}
	return false
}
