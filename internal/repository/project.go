// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"goaltracker/internal/models"
)

// CreateProject inserts a new project.
func (r *Repository) CreateProject(ctx context.Context, p *models.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, description, status, priority, start_date, end_date, progress, notes, created_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Status, p.Priority,
		p.StartDate, p.EndDate, p.Progress, p.Notes, p.CreatedAt, p.CompletedAt)
	return err
}

// GetProject retrieves a project with its tasks.
func (r *Repository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := r.db.GetContext(ctx, &p, `SELECT * FROM projects WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	p.Tasks, err = r.ListProjectTasks(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject replaces all mutable fields of a project. Tasks are
// managed through their own methods.
func (r *Repository) UpdateProject(ctx context.Context, p *models.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, status = ?, priority = ?,
		        start_date = ?, end_date = ?, progress = ?, notes = ?, completed_at = ?
		 WHERE id = ?`,
		p.Name, p.Description, p.Status, p.Priority,
		p.StartDate, p.EndDate, p.Progress, p.Notes, p.CompletedAt, p.ID)
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

// DeleteProject removes a project; its tasks cascade.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

// ListProjects returns all projects with their tasks, newest first.
func (r *Repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, `SELECT * FROM projects ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	for i := range projects {
		tasks, err := r.ListProjectTasks(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Tasks = tasks
	}
	return projects, nil
}

// CreateProjectTask inserts a task under a project.
func (r *Repository) CreateProjectTask(ctx context.Context, t *models.ProjectTask) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_tasks (id, project_id, title, description, status, priority, assignee, due_date, created_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.Title, t.Description, t.Status, t.Priority,
		t.Assignee, t.DueDate, t.CreatedAt, t.CompletedAt)
	return err
}

// GetProjectTask retrieves a task by ID.
func (r *Repository) GetProjectTask(ctx context.Context, id string) (*models.ProjectTask, error) {
	var t models.ProjectTask
	err := r.db.GetContext(ctx, &t, `SELECT * FROM project_tasks WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &t, nil
}

// UpdateProjectTask replaces all mutable fields of a task.
func (r *Repository) UpdateProjectTask(ctx context.Context, t *models.ProjectTask) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE project_tasks SET title = ?, description = ?, status = ?, priority = ?,
		        assignee = ?, due_date = ?, completed_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, t.Status, t.Priority,
		t.Assignee, t.DueDate, t.CompletedAt, t.ID)
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

// DeleteProjectTask removes a task by ID.
func (r *Repository) DeleteProjectTask(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM project_tasks WHERE id = ?`, id)
	return err
}

// ListProjectTasks returns the tasks of a project in creation order.
func (r *Repository) ListProjectTasks(ctx context.Context, projectID string) ([]models.ProjectTask, error) {
	tasks := []models.ProjectTask{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT * FROM project_tasks WHERE project_id = ? ORDER BY created_at`, projectID)
	return tasks, err
}

// ListCompletedProjects returns completed projects with a completion timestamp.
func (r *Repository) ListCompletedProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.SelectContext(ctx, &projects,
		`SELECT * FROM projects WHERE status = ? AND completed_at IS NOT NULL`, models.ProjectCompleted)
	return projects, err
}

// completedTaskRow joins a completed task with its project name for the
// milestone feed.
type completedTaskRow struct {
	models.ProjectTask
	ProjectName string `db:"project_name"`
}

// ListCompletedProjectTasks returns completed tasks across all projects
// together with the owning project's name.
func (r *Repository) ListCompletedProjectTasks(ctx context.Context) ([]models.ProjectTask, []string, error) {
	rows := []completedTaskRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT t.*, p.name AS project_name
		 FROM project_tasks t JOIN projects p ON p.id = t.project_id
		 WHERE t.status = ? AND t.completed_at IS NOT NULL`, models.TodoCompleted)
	if err != nil {
		return nil, nil, err
	}
	tasks := make([]models.ProjectTask, len(rows))
	names := make([]string, len(rows))
	for i, row := range rows {
		tasks[i] = row.ProjectTask
		names[i] = row.ProjectName
	}
	return tasks, names, nil
}
