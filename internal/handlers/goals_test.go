// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goaltracker/internal/handlers"
	"goaltracker/internal/models"
	"goaltracker/internal/repository"
	"goaltracker/internal/testutil"
)

func newHandlerSetup(t *testing.T) (*handlers.Handlers, *repository.Repository, *echo.Echo) {
	t.Helper()
	_, repo := testutil.NewTestDB(t)
	return handlers.New(repo), repo, echo.New()
}

func createGoal(t *testing.T, h *handlers.Handlers, e *echo.Echo, body string) models.Goal {
	t.Helper()
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/goals", strings.NewReader(body))
	require.NoError(t, h.CreateGoal(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	var goal models.Goal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goal))
	return goal
}

func TestCreateGoal(t *testing.T) {
	h, _, e := newHandlerSetup(t)

	goal := createGoal(t, h, e, `{"title":"Learn Go","category":"learning","priority":"high"}`)

	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, "Learn Go", goal.Title)
	assert.Equal(t, "learning", goal.Category)
	assert.Equal(t, models.PriorityHigh, goal.Priority)
	// New goals always start from zero, whatever the client sends.
	assert.Equal(t, models.GoalNotStarted, goal.Status)
	assert.Equal(t, 0, goal.Progress)
}

func TestCreateGoal_Defaults(t *testing.T) {
	h, _, e := newHandlerSetup(t)

	goal := createGoal(t, h, e, `{"title":"Learn Go"}`)

	assert.Equal(t, "other", goal.Category)
	assert.Equal(t, models.PriorityMedium, goal.Priority)
}

func TestCreateGoal_TitleRequired(t *testing.T) {
	h, _, e := newHandlerSetup(t)

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/goals", strings.NewReader(`{"title":"  "}`))
	require.NoError(t, h.CreateGoal(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title_required", decodeBody(t, rec)["code"])
}

func TestUpdateGoal_ProgressDrivesStatus(t *testing.T) {
	h, _, e := newHandlerSetup(t)
	goal := createGoal(t, h, e, `{"title":"Learn Go"}`)

	update := func(body string) models.Goal {
		c, rec := testutil.NewEchoContext(e, http.MethodPut, "/api/goals/"+goal.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(goal.ID)
		require.NoError(t, h.UpdateGoal(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var g models.Goal
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
		return g
	}

	g := update(`{"title":"Learn Go","progress":40}`)
	assert.Equal(t, models.GoalInProgress, g.Status)
	assert.Nil(t, g.CompletedAt)

	g = update(`{"title":"Learn Go","progress":100}`)
	assert.Equal(t, models.GoalCompleted, g.Status)
	require.NotNil(t, g.CompletedAt)

	// Dropping below 100 reopens the goal and clears the stamp.
	g = update(`{"title":"Learn Go","progress":50}`)
	assert.Equal(t, models.GoalInProgress, g.Status)
	assert.Nil(t, g.CompletedAt)
}

func TestUpdateGoal_NotFound(t *testing.T) {
	h, _, e := newHandlerSetup(t)

	c, rec := testutil.NewEchoContext(e, http.MethodPut, "/api/goals/missing", strings.NewReader(`{"title":"x"}`))
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.UpdateGoal(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListGoals_Filters(t *testing.T) {
	h, _, e := newHandlerSetup(t)
	createGoal(t, h, e, `{"title":"Run a marathon","category":"health"}`)
	createGoal(t, h, e, `{"title":"Learn Go","category":"learning"}`)

	list := func(path string) []models.Goal {
		c, rec := testutil.NewEchoContext(e, http.MethodGet, path, nil)
		require.NoError(t, h.ListGoals(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var goals []models.Goal
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goals))
		return goals
	}

	assert.Len(t, list("/api/goals"), 2)
	assert.Len(t, list("/api/goals?category=all"), 2)

	health := list("/api/goals?category=health")
	require.Len(t, health, 1)
	assert.Equal(t, "Run a marathon", health[0].Title)

	// Search matches title case-insensitively.
	found := list("/api/goals?search=marathon")
	require.Len(t, found, 1)
	assert.Equal(t, "Run a marathon", found[0].Title)

	assert.Empty(t, list("/api/goals?search=swimming"))
}

func TestDeleteGoal(t *testing.T) {
	h, repo, e := newHandlerSetup(t)
	goal := createGoal(t, h, e, `{"title":"Learn Go"}`)

	c, rec := testutil.NewEchoContext(e, http.MethodDelete, "/api/goals/"+goal.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(goal.ID)
	require.NoError(t, h.DeleteGoal(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, err := repo.GetGoal(c.Request().Context(), goal.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
