// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Project statuses.
const (
	ProjectPlanning   = "planning"
	ProjectInProgress = "in-progress"
	ProjectCompleted  = "completed"
	ProjectOnHold     = "on-hold"
)

// Project groups tasks under a shared timeline and progress value.
type Project struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string        `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	Status      string        `db:"status" json:"status"`
	Priority    string        `db:"priority" json:"priority"`
	StartDate   string        `db:"start_date" json:"start_date"`
	EndDate     *string       `db:"end_date" json:"end_date,omitempty"`
	Progress    int           `db:"progress" json:"progress"`
	Notes       string        `db:"notes" json:"notes"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	CompletedAt *time.Time    `db:"completed_at" json:"completed_at,omitempty"`
	Tasks       []ProjectTask `db:"-" json:"todos"`
}

// ProjectTask is a single task belonging to a project.
type ProjectTask struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string     `db:"id" json:"id"`
	ProjectID   string     `db:"project_id" json:"-"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Status      string     `db:"status" json:"status"`
	Priority    string     `db:"priority" json:"priority"`
	Assignee    *string    `db:"assignee" json:"assignee,omitempty"`
	DueDate     *string    `db:"due_date" json:"due_date,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}
