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

// TodoRequest is the request body for creating or updating a daily todo.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

func (r *TodoRequest) validate() (string, string) {
	if strings.TrimSpace(r.Title) == "" {
		return "title_required", "title is required"
	}
	if r.Status != "" && !models.ValidTodoStatus(r.Status) {
		return "invalid_status", "unknown status"
	}
	if r.Priority != "" && !models.ValidPriority(r.Priority) {
		return "invalid_priority", "unknown priority"
	}
	return "", ""
}

// ListTodos returns all daily todos, optionally restricted to one day
// via the date query parameter.
func (h *Handlers) ListTodos(c echo.Context) error {
	todos, err := h.repo.ListDailyTodos(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, todos)
}

// CreateTodo adds a new daily todo.
func (h *Handlers) CreateTodo(c echo.Context) error {
	var req TodoRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}
	if req.Date == "" {
		return errorJSON(c, http.StatusBadRequest, "date_required", "date is required")
	}

	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if req.Status == "" {
		req.Status = models.TodoNotStarted
	}

	todo := &models.DailyTodo{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Category:    req.Category,
		Date:        req.Date,
		CreatedAt:   nowUTC(),
	}
	todo.CompletedAt = completionStamp(todo.Status == models.TodoCompleted, nil)

	if err := h.repo.CreateDailyTodo(c.Request().Context(), todo); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusCreated, todo)
}

// UpdateTodo updates a daily todo; completing it stamps the time.
func (h *Handlers) UpdateTodo(c echo.Context) error {
	todo, err := h.repo.GetDailyTodo(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "todo not found")
		}
		return serverError(c)
	}

	var req TodoRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	todo.Title = req.Title
	todo.Description = req.Description
	todo.Category = req.Category
	if req.Status != "" {
		todo.Status = req.Status
	}
	if req.Priority != "" {
		todo.Priority = req.Priority
	}
	if req.Date != "" {
		todo.Date = req.Date
	}
	todo.CompletedAt = completionStamp(todo.Status == models.TodoCompleted, todo.CompletedAt)

	if err := h.repo.UpdateDailyTodo(c.Request().Context(), todo); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes a daily todo.
func (h *Handlers) DeleteTodo(c echo.Context) error {
	if err := h.repo.DeleteDailyTodo(c.Request().Context(), c.Param("id")); err != nil {
		return serverError(c)
	}
	return c.NoContent(http.StatusNoContent)
}
