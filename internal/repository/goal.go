// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"goaltracker/internal/models"
)

// CreateGoal inserts a new goal.
func (r *Repository) CreateGoal(ctx context.Context, goal *models.Goal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (id, title, description, category, priority, status, progress, target_date, created_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Title, goal.Description, goal.Category, goal.Priority,
		goal.Status, goal.Progress, goal.TargetDate, goal.CreatedAt, goal.CompletedAt)
	return err
}

// GetGoal retrieves a goal by ID.
func (r *Repository) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.GetContext(ctx, &goal, `SELECT * FROM goals WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &goal, nil
}

// UpdateGoal replaces all mutable fields of a goal.
func (r *Repository) UpdateGoal(ctx context.Context, goal *models.Goal) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET title = ?, description = ?, category = ?, priority = ?,
		        status = ?, progress = ?, target_date = ?, completed_at = ?
		 WHERE id = ?`,
		goal.Title, goal.Description, goal.Category, goal.Priority,
		goal.Status, goal.Progress, goal.TargetDate, goal.CompletedAt, goal.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal by ID.
func (r *Repository) DeleteGoal(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	return err
}

// ListGoals returns all goals ordered by creation date (newest first).
func (r *Repository) ListGoals(ctx context.Context) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := r.db.SelectContext(ctx, &goals, `SELECT * FROM goals ORDER BY created_at DESC`)
	return goals, err
}

// ListCompletedGoals returns completed goals with a completion timestamp.
func (r *Repository) ListCompletedGoals(ctx context.Context) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := r.db.SelectContext(ctx, &goals,
		`SELECT * FROM goals WHERE status = ? AND completed_at IS NOT NULL`, models.GoalCompleted)
	return goals, err
}
