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

func newGoal(title string) *models.Goal {
	return &models.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  "learning",
		Priority:  models.PriorityMedium,
		Status:    models.GoalNotStarted,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestGoal_CRUD(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()
	goal := newGoal("Learn Go")

	require.NoError(t, repo.CreateGoal(ctx, goal))

	stored, err := repo.GetGoal(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", stored.Title)
	assert.Equal(t, models.GoalNotStarted, stored.Status)

	stored.Progress = 40
	stored.Status = models.GoalInProgress
	require.NoError(t, repo.UpdateGoal(ctx, stored))

	updated, err := repo.GetGoal(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, models.GoalInProgress, updated.Status)

	require.NoError(t, repo.DeleteGoal(ctx, goal.ID))
	_, err = repo.GetGoal(ctx, goal.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetGoal_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetGoal(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateGoal_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	err := repo.UpdateGoal(context.Background(), newGoal("ghost"))

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListGoals_NewestFirst(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	older := newGoal("older")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newGoal("newer")

	require.NoError(t, repo.CreateGoal(ctx, older))
	require.NoError(t, repo.CreateGoal(ctx, newer))

	goals, err := repo.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "newer", goals[0].Title)
	assert.Equal(t, "older", goals[1].Title)
}

func TestListCompletedGoals(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	open := newGoal("open")
	require.NoError(t, repo.CreateGoal(ctx, open))

	done := newGoal("done")
	done.Status = models.GoalCompleted
	now := time.Now().UTC().Truncate(time.Second)
	done.CompletedAt = &now
	done.Progress = 100
	require.NoError(t, repo.CreateGoal(ctx, done))

	completed, err := repo.ListCompletedGoals(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "done", completed[0].Title)
}
