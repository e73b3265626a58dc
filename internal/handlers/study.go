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

// CourseRequest is the request body for creating or updating a course.
type CourseRequest struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
}

func (r *CourseRequest) validate() (string, string) {
	if strings.TrimSpace(r.Name) == "" {
		return "name_required", "name is required"
	}
	return "", ""
}

// SessionRequest is the request body for creating or updating a study session.
type SessionRequest struct {
	CourseID  string  `json:"course_id"`
	Day       string  `json:"day"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Date      string  `json:"date"`
	Notes     *string `json:"notes"`
}

func (r *SessionRequest) validate() (string, string) {
	if r.CourseID == "" {
		return "course_required", "course_id is required"
	}
	if !models.ValidDay(r.Day) {
		return "invalid_day", "unknown day of week"
	}
	if r.StartTime == "" || r.EndTime == "" {
		return "time_required", "start_time and end_time are required"
	}
	return "", ""
}

// TopicRequest is the request body for adding a topic to a session.
type TopicRequest struct {
	Name  string  `json:"name"`
	Notes *string `json:"notes"`
}

// ListCourses returns all courses.
func (h *Handlers) ListCourses(c echo.Context) error {
	courses, err := h.repo.ListCourses(c.Request().Context())
	if err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, courses)
}

// CreateCourse adds a new course.
func (h *Handlers) CreateCourse(c echo.Context) error {
	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	course := &models.Course{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	}
	if err := h.repo.CreateCourse(c.Request().Context(), course); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusCreated, course)
}

// UpdateCourse updates a course.
func (h *Handlers) UpdateCourse(c echo.Context) error {
	course, err := h.repo.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "course not found")
		}
		return serverError(c)
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	course.Name = req.Name
	course.Color = req.Color
	course.Description = req.Description

	if err := h.repo.UpdateCourse(c.Request().Context(), course); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course and its sessions.
func (h *Handlers) DeleteCourse(c echo.Context) error {
	if err := h.repo.DeleteCourse(c.Request().Context(), c.Param("id")); err != nil {
		return serverError(c)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSessions returns all study sessions with their topics.
func (h *Handlers) ListSessions(c echo.Context) error {
	sessions, err := h.repo.ListStudySessions(c.Request().Context())
	if err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, sessions)
}

// CreateSession schedules a new study session.
func (h *Handlers) CreateSession(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}
	if _, err := h.repo.GetCourse(c.Request().Context(), req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusBadRequest, "unknown_course", "course does not exist")
		}
		return serverError(c)
	}

	session := &models.StudySession{
		ID:        uuid.New().String(),
		CourseID:  req.CourseID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Date:      req.Date,
		Notes:     req.Notes,
		Topics:    []models.Topic{},
	}
	if err := h.repo.CreateStudySession(c.Request().Context(), session); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusCreated, session)
}

// UpdateSession updates a study session.
func (h *Handlers) UpdateSession(c echo.Context) error {
	session, err := h.repo.GetStudySession(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "session not found")
		}
		return serverError(c)
	}

	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if code, msg := req.validate(); code != "" {
		return errorJSON(c, http.StatusBadRequest, code, msg)
	}

	session.CourseID = req.CourseID
	session.Day = req.Day
	session.StartTime = req.StartTime
	session.EndTime = req.EndTime
	session.Date = req.Date
	session.Notes = req.Notes

	if err := h.repo.UpdateStudySession(c.Request().Context(), session); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusOK, session)
}

// DeleteSession removes a study session and its topics.
func (h *Handlers) DeleteSession(c echo.Context) error {
	if err := h.repo.DeleteStudySession(c.Request().Context(), c.Param("id")); err != nil {
		return serverError(c)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateTopic adds a topic to a session.
func (h *Handlers) CreateTopic(c echo.Context) error {
	sessionID := c.Param("id")
	if _, err := h.repo.GetStudySession(c.Request().Context(), sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "session not found")
		}
		return serverError(c)
	}

	var req TopicRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return errorJSON(c, http.StatusBadRequest, "name_required", "name is required")
	}

	topic := &models.Topic{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Name:      req.Name,
		Notes:     req.Notes,
	}
	if err := h.repo.CreateTopic(c.Request().Context(), topic); err != nil {
		return serverError(c)
	}
	return c.JSON(http.StatusCreated, topic)
}

// ToggleTopic flips a topic's completion state.
func (h *Handlers) ToggleTopic(c echo.Context) error {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}

	if err := h.repo.SetTopicCompleted(c.Request().Context(), c.Param("topicID"), req.Completed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "not_found", "topic not found")
		}
		return serverError(c)
	}
	return c.JSON(http.StatusOK, map[string]any{"completed": req.Completed})
}

// DeleteTopic removes a topic.
func (h *Handlers) DeleteTopic(c echo.Context) error {
	if err := h.repo.DeleteTopic(c.Request().Context(), c.Param("topicID")); err != nil {
		return serverError(c)
	}
	return c.NoContent(http.StatusNoContent)
}
