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

// ProjectRequest is the request body for creating or updating a project.
type ProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Progress    int     `json:"progress"`
	Notes       string  `json:"notes"`
}

func (r *ProjectRequest) validate() (string, string) {
	if strings.TrimSpace(r.Name) == "" {
		return "name_required", "name is required"
	}
	if r.Status != "" && !models.ValidProjectStatus(r.Status) {
		return "invalid_status", "unknown status"
	}
	if r.Priority != "" && !models.ValidPriority(r.Priority) {
		return "invalid_priority", "unknown priority"
	}
	if r.Progress < 0 || r.Progress > 100 {
		return "invalid_progress", "progress must be between 0 and 100"
	}
	return "", ""
}

// TaskRequest is the request body for creating or updating a project task.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Assignee    *string `json:"assignee"`
	DueDate     *string `json:"due_date"`
}

func (r *TaskRequest) validate() (string, string) {
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

// ListProjects returns all projects with their tasks.
func (h *Handlers) ListProjects(c echo.Context) error {
	projects, err := h.repo.ListProjects(c.Request().Context())
	if err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, projects)
}

// CreateProject adds a new project.
func (h *Handlers) CreateProject(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	if req.Status == "" {
		req.Status = models.ProjectPlanning
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	project := &models.Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Progress:    req.Progress,
		Notes:       req.Notes,
		CreatedAt:   nowUTC(),
		Tasks:       []models.ProjectTask{},
	}
	project.CompletedAt = completionStamp(project.Status == models.ProjectCompleted, nil)

	if err := h.repo.CreateProject(c.Request().Context(), project); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusCreated, project)
}

// GetProject returns a single project with its tasks.
func (h *Handlers) GetProject(c echo.Context) error {
	project, err := h.repo.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "project not found")
		}
		return serverError(c)
	}
	return c.JSON(http.StatusOK, project)
}

// UpdateProject updates a project; completing it stamps the time.
func (h *Handlers) UpdateProject(c echo.Context) error {
	project, err := h.repo.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "project not found")
		}
		return serverError(c)
	}

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	project.Name = req.Name
	project.Description = req.Description
	if req.Status != "" {
		project.Status = req.Status
	}
	if req.Priority != "" {
		project.Priority = req.Priority
	}
	if req.StartDate != "" {
		project.StartDate = req.StartDate
	}
	project.EndDate = req.EndDate
	project.Progress = req.Progress
	project.Notes = req.Notes
	project.CompletedAt = completionStamp(project.Status == models.ProjectCompleted, project.CompletedAt)

	if err := h.repo.UpdateProject(c.Request().Context(), project); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project and its tasks.
func (h *Handlers) DeleteProject(c echo.Context) error {
	if err := h.repo.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return serverError(c)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateTask adds a task to a project.
func (h *Handlers) CreateTask(c echo.Context) error {
	projectID := c.Param("id")
	if _, err := h.repo.GetProject(c.Request().Context(), projectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "project not found")
		}
		return serverError(c)
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	if req.Status == "" {
		req.Status = models.TodoNotStarted
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	task := &models.ProjectTask{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
		CreatedAt:   nowUTC(),
	}
	task.CompletedAt = completionStamp(task.Status == models.TodoCompleted, nil)

	if err := h.repo.CreateProjectTask(c.Request().Context(), task); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusCreated, task)
}

// UpdateTask updates a project task; completing it stamps the time.
func (h *Handlers) UpdateTask(c echo.Context) error {
	task, err := h.repo.GetProjectTask(c.Request().Context(), c.Param("taskID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "task not found")
		}
		return serverError(c)
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	task.Title = req.Title
	task.Description = req.Description
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.Assignee = req.Assignee
	task.DueDate = req.DueDate
	task.CompletedAt = completionStamp(task.Status == models.TodoCompleted, task.CompletedAt)

	if err := h.repo.UpdateProjectTask(c.Request().Context(), task); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask removes a project task.
func (h *Handlers) DeleteTask(c echo.Context) error {
	if err := h.repo.DeleteProjectTask(c.Request().Context(), c.Param("taskID")); err != nil {
		return serverError(c)
	}
	return c.NoContent(http.StatusNoContent)
}
