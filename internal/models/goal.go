// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Goal statuses.
const (
	GoalNotStarted = "not-started"
	GoalInProgress = "in-progress"
	GoalCompleted  = "completed"
)

// Priorities shared by goals, todos, projects and project tasks.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// GoalCategories lists the selectable goal categories.
var GoalCategories = []string{
	"career", "health", "travel", "learning",
	"relationships", "finance", "personal", "creative", "other",
}

// Goal is a long-term life goal with a progress percentage.
type Goal struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Category    string     `db:"category" json:"category"`
	Priority    string     `db:"priority" json:"priority"`
	Status      string     `db:"status" json:"status"`
	Progress    int        `db:"progress" json:"progress"`
	TargetDate  *string    `db:"target_date" json:"target_date,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// ValidPriority reports whether p is a known priority level.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
