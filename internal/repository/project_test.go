// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goaltracker/internal/models"
	"goaltracker/internal/repository"
	"goaltracker/internal/testutil"
)

func newProject(name string) *models.Project {
	return &models.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    models.ProjectPlanning,
		Priority:  models.PriorityMedium,
		StartDate: "2026-01-01",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func newTask(projectID, title string) *models.ProjectTask {
	return &models.ProjectTask{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    models.TodoNotStarted,
		Priority:  models.PriorityMedium,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestProject_CRUD(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	project := newProject("Garden shed")

	require.NoError(t, repo.CreateProject(ctx, project))

	stored, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Garden shed", stored.Name)
	assert.Empty(t, stored.Tasks)

	stored.Status = models.ProjectInProgress
	stored.Progress = 25
	require.NoError(t, repo.UpdateProject(ctx, stored))

	updated, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectInProgress, updated.Status)
	assert.Equal(t, 25, updated.Progress)
}

func TestProject_TasksLoadedWithProject(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	project := newProject("Garden shed")
	require.NoError(t, repo.CreateProject(ctx, project))

	task := newTask(project.ID, "Buy lumber")
	require.NoError(t, repo.CreateProjectTask(ctx, task))

	stored, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, stored.Tasks, 1)
	assert.Equal(t, "Buy lumber", stored.Tasks[0].Title)
}

func TestDeleteProject_CascadesTasks(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	project := newProject("Garden shed")
	require.NoError(t, repo.CreateProject(ctx, project))

	task := newTask(project.ID, "Buy lumber")
	require.NoError(t, repo.CreateProjectTask(ctx, task))

	require.NoError(t, repo.DeleteProject(ctx, project.ID))

	_, err := repo.GetProjectTask(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListCompletedProjectTasks_JoinsProjectName(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	project := newProject("Garden shed")
	require.NoError(t, repo.CreateProject(ctx, project))

	open := newTask(project.ID, "Buy lumber")
	require.NoError(t, repo.CreateProjectTask(ctx, open))

	done := newTask(project.ID, "Clear the site")
	done.Status = models.TodoCompleted
	now := time.Now().UTC().Truncate(time.Second)
	done.CompletedAt = &now
	require.NoError(t, repo.CreateProjectTask(ctx, done))

	tasks, names, err := repo.ListCompletedProjectTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Len(t, names, 1)
	assert.Equal(t, "Clear the site", tasks[0].Title)
	assert.Equal(t, "Garden shed", names[0])
}
