// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"goaltracker/internal/i18n"
)

// errorJSON writes an error response with a stable machine-readable code.
func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]string{
		"code":  code,
		"error": message,
	})
}

// serverError logs nothing extra (Echo's request logger already captures
// the status) and surfaces a generic localized "try again" message.
func serverError(c echo.Context) error {
	msg := i18n.T(c.Request().Context(), "error_try_again")
	return errorJSON(c, http.StatusInternalServerError, "storage_failure", msg)
}

// nowUTC returns the current time in UTC, truncated to the second so
// round-trips through SQLite stay exact.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// completionStamp returns a completed_at value for the given completed
// state, preserving an existing stamp.
func completionStamp(completed bool, existing *time.Time) *time.Time {
	if !completed {
		return nil
	}
	if existing != nil {
		return existing
	}
	now := nowUTC()
	return &now
}
