// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"goaltracker/internal/models"
)

// CreateDailyTodo inserts a new daily todo.
func (r *Repository) CreateDailyTodo(ctx context.Context, todo *models.DailyTodo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_todos (id, title, description, status, priority, category, date, created_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.Title, todo.Description, todo.Status, todo.Priority,
		todo.Category, todo.Date, todo.CreatedAt, todo.CompletedAt)
	return err
}

// GetDailyTodo retrieves a daily todo by ID.
func (r *Repository) GetDailyTodo(ctx context.Context, id string) (*models.DailyTodo, error) {
	var todo models.DailyTodo
	err := r.db.GetContext(ctx, &todo, `SELECT * FROM daily_todos WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &todo, nil
}

// UpdateDailyTodo replaces all mutable fields of a daily todo.
func (r *Repository) UpdateDailyTodo(ctx context.Context, todo *models.DailyTodo) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE daily_todos SET title = ?, description = ?, status = ?, priority = ?,
		        category = ?, date = ?, completed_at = ?
		 WHERE id = ?`,
		todo.Title, todo.Description, todo.Status, todo.Priority,
		todo.Category, todo.Date, todo.CompletedAt, todo.ID)
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

// DeleteDailyTodo removes a daily todo by ID.
func (r *Repository) DeleteDailyTodo(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM daily_todos WHERE id = ?`, id)
	return err
}

// ListDailyTodos returns all daily todos, optionally restricted to one day.
func (r *Repository) ListDailyTodos(ctx context.Context, date string) ([]models.DailyTodo, error) {
	todos := []models.DailyTodo{}
	if date != "" {
		err := r.db.SelectContext(ctx, &todos,
			`SELECT * FROM daily_todos WHERE date = ? ORDER BY created_at DESC`, date)
		return todos, err
	}
	err := r.db.SelectContext(ctx, &todos, `SELECT * FROM daily_todos ORDER BY date DESC, created_at DESC`)
	return todos, err
}

// ListCompletedDailyTodos returns completed todos with a completion timestamp.
func (r *Repository) ListCompletedDailyTodos(ctx context.Context) ([]models.DailyTodo, error) {
	todos := []models.DailyTodo{}
	err := r.db.SelectContext(ctx, &todos,
		`SELECT * FROM daily_todos WHERE status = ? AND completed_at IS NOT NULL`, models.TodoCompleted)
	return todos, err
}
