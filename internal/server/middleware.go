// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"goaltracker/internal/auth"
	"goaltracker/internal/config"
	"goaltracker/internal/i18n"
	"goaltracker/internal/repository"
	"goaltracker/internal/services/session"
)

func setupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxBodySize)))
	e.Use(i18nMiddleware())
}

// requestLogger returns middleware that logs requests using slog.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "request", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			}

			return nil
		},
	})
}

// i18nMiddleware sets the locale based on Accept-Language header.
func i18nMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acceptLang := c.Request().Header.Get("Accept-Language")
			lang := i18n.MatchLanguage(acceptLang)
			ctx := i18n.WithLocale(c.Request().Context(), lang)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// requireAuth rejects requests without a valid session cookie. A session
// only counts when it is unexpired and still matches the stored account,
// so a session from a deleted or replaced account is treated as absent.
func requireAuth(sessions *session.Manager, repo *repository.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			data, err := sessions.Parse(c.Request())
			if err != nil || data == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"code":  "not_authenticated",
					"error": "authentication required",
				})
			}

			account, err := repo.GetAccount(c.Request().Context())
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					c.SetCookie(sessions.Clear())
					return c.JSON(http.StatusUnauthorized, map[string]string{
						"code":  "not_authenticated",
						"error": "authentication required",
					})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"code":  "storage_failure",
					"error": i18n.T(c.Request().Context(), "error_try_again"),
				})
			}
			if account.Email != data.Email {
				c.SetCookie(sessions.Clear())
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"code":  "not_authenticated",
					"error": "authentication required",
				})
			}

			ctx := auth.SetAccount(c.Request().Context(), account)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
