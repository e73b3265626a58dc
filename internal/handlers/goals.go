// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"goaltracker/internal/models"
	"goaltracker/internal/repository"
)

// GoalRequest is the request body for creating or updating a goal.
type GoalRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	Progress    int     `json:"progress"`
	TargetDate  *string `json:"target_date"`
}

func (r *GoalRequest) validate() (string, string) {
	if strings.TrimSpace(r.Title) == "" {
		return "title_required", "title is required"
	}
	if r.Priority != "" && !models.ValidPriority(r.Priority) {
		return "invalid_priority", "unknown priority"
	}
	if r.Progress < 0 || r.Progress > 100 {
		return "invalid_progress", "progress must be between 0 and 100"
	}
	return "", ""
}

// ListGoals returns all goals, with optional category/status/search filters.
func (h *Handlers) ListGoals(c echo.Context) error {
	goals, err := h.repo.ListGoals(c.Request().Context())
	if err != nil {
		return serverError(c)
	}

	category := c.QueryParam("category")
	status := c.QueryParam("status")
	search := strings.ToLower(c.QueryParam("search"))

	filtered := make([]models.Goal, 0, len(goals))
	for _, g := range goals {
		if category != "" && category != "all" && g.Category != category {
			continue
		}
		if status != "" && status != "all" && g.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Title), search) &&
			!strings.Contains(strings.ToLower(g.Description), search) {
			continue
		}
		filtered = append(filtered, g)
	}

	return c.JSON(http.StatusOK, filtered)
}

// CreateGoal adds a new goal. New goals always start not-started with
// zero progress.
func (h *Handlers) CreateGoal(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if req.Category == "" {
		req.Category = "other"
	}

	goal := &models.Goal{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      models.GoalNotStarted,
		Progress:    0,
		TargetDate:  req.TargetDate,
		CreatedAt:   nowUTC(),
	}

	if err := h.repo.CreateGoal(c.Request().Context(), goal); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusCreated, goal)
}

// GetGoal returns a single goal.
func (h *Handlers) GetGoal(c echo.Context) error {
	goal, err := h.repo.GetGoal(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "goal not found")
		}
		return serverError(c)
	}
	return c.JSON(http.StatusOK, goal)
}

// UpdateGoal updates a goal. Progress of 100 marks the goal completed
// and stamps the completion time; anything below clears it.
func (h *Handlers) UpdateGoal(c echo.Context) error {
	goal, err := h.repo.GetGoal(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "goal not found")
		}
		return serverError(c)
	}

	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	goal.Title = req.Title
	goal.Description = req.Description
	if req.Category != "" {
		goal.Category = req.Category
	}
	if req.Priority != "" {
		goal.Priority = req.Priority
	}
	goal.Progress = req.Progress
	goal.TargetDate = req.TargetDate

	switch {
	case req.Progress == 100:
		goal.Status = models.GoalCompleted
	case req.Progress > 0:
		goal.Status = models.GoalInProgress
	default:
		goal.Status = models.GoalNotStarted
	}
	goal.CompletedAt = completionStamp(goal.Status == models.GoalCompleted, goal.CompletedAt)

	if err := h.repo.UpdateGoal(c.Request().Context(), goal); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a goal.
func (h *Handlers) DeleteGoal(c echo.Context) error {
	if err := h.repo.DeleteGoal(c.Request().Context(), c.Param("id")); err != nil {
		return serverError(c)
	}
	return c.NoContent(http.StatusNoContent)
}
