// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Milestone types.
const (
	MilestoneGoal      = "goal"
	MilestoneProject   = "project"
	MilestoneStudy     = "study"
	MilestoneDailyTodo = "daily-todo"
)

// Milestone is a derived entry in the achievements feed. Milestones are
// never persisted; they are aggregated from completed goals, projects,
// project tasks, study topics and daily todos.
type Milestone struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	CompletedAt time.Time `json:"completed_at"`
	Category    string    `json:"category,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	SourceID    string    `json:"source_id"`
}
