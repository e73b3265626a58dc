// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"goaltracker/internal/services/authgate"
	"goaltracker/internal/services/email"
	"goaltracker/internal/services/session"
)

// AuthHandlers contains handlers for the session gate.
type AuthHandlers struct {
	gate     *authgate.Service
	sessions *session.Manager
	mailer   *email.Service // nil when SMTP is not configured
}

// NewAuth creates a new AuthHandlers instance.
func NewAuth(gate *authgate.Service, sessions *session.Manager, mailer *email.Service) *AuthHandlers {
	return &AuthHandlers{
		gate:     gate,
		sessions: sessions,
		mailer:   mailer,
	}
}

// State reports the gate state for the current request: first_time,
// returning, or authenticated. An expired or orphaned session cookie is
// cleared in the same response.
func (h *AuthHandlers) State(c echo.Context) error {
	data, err := h.sessions.Parse(c.Request())
	if err != nil {
		return serverError(c)
	}

	var sessionEmail string
	if data != nil {
		sessionEmail = data.Email
	}

	state, err := h.gate.AuthState(c.Request().Context(), sessionEmail)
	if err != nil {
		return serverError(c)
	}

	// Inert session cookies are cleared on the state check, so the next
	// load starts from a clean slate.
	hasCookie := false
	if _, cookieErr := c.Request().Cookie(h.sessions.CookieName()); cookieErr == nil {
		hasCookie = true
	}
	if state != authgate.StateAuthenticated && hasCookie {
		c.SetCookie(h.sessions.Clear())
	}

	return c.JSON(http.StatusOK, map[string]string{"state": state})
}

// SignupRequest is the request body for account creation.
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Signup creates the local account and logs the new user in.
func (h *AuthHandlers) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}

	account, err := h.gate.Signup(c.Request().Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, authgate.ErrPasswordMismatch):
			return errorJSON(c, http.StatusBadRequest, "password_mismatch", err.Error())
		case errors.Is(err, authgate.ErrPasswordTooShort):
			return errorJSON(c, http.StatusBadRequest, "password_too_short", err.Error())
		case errors.Is(err, authgate.ErrInvalidEmail):
			return errorJSON(c, http.StatusBadRequest, "invalid_email", err.Error())
		default:
			slog.Error("signup failed", "error", err)
			return serverError(c)
		}
	}

	cookie, err := h.sessions.Create(account.Email)
	if err != nil {
		return serverError(c)
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusCreated, account)
}

// LoginRequest is the request body for credential verification.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a fresh session cookie.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}

	account, err := h.gate.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authgate.ErrNoAccount):
			return errorJSON(c, http.StatusNotFound, "no_account", err.Error())
		case errors.Is(err, authgate.ErrInvalidCredentials):
			return errorJSON(c, http.StatusUnauthorized, "invalid_credentials", err.Error())
		default:
			slog.Error("login failed", "error", err)
			return serverError(c)
		}
	}

	cookie, err := h.sessions.Create(account.Email)
	if err != nil {
		return serverError(c)
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, account)
}

// Logout revokes the session. The account is left untouched.
func (h *AuthHandlers) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.Clear())
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ResetRequest is the request body for requesting a password reset.
type ResetRequest struct {
	Email string `json:"email"`
}

// RequestReset issues a reset code for the account email. With SMTP
// configured the code is emailed; without it the code is returned in the
// response, the local-device stand-in for email delivery.
func (h *AuthHandlers) RequestReset(c echo.Context) error {
	var req ResetRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}

	code, err := h.gate.RequestPasswordReset(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, authgate.ErrNoAccount) {
			return errorJSON(c, http.StatusNotFound, "no_account", err.Error())
		}
		slog.Error("reset request failed", "error", err)
		return serverError(c)
	}

	if h.mailer != nil {
		if err := h.mailer.SendResetCode(c.Request().Context(), req.Email, code); err != nil {
			slog.Error("reset code delivery failed", "error", err)
			return serverError(c)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "sent"})
	}

	slog.Warn("SMTP not configured, returning reset code in response")
	return c.JSON(http.StatusOK, map[string]string{"status": "sent", "code": code})
}

// ConfirmResetRequest is the request body for completing a reset.
type ConfirmResetRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// ConfirmReset validates the reset code and updates the password. The
// user returns to the login form; no session is issued.
func (h *AuthHandlers) ConfirmReset(c echo.Context) error {
	var req ConfirmResetRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}

	err := h.gate.ConfirmPasswordReset(c.Request().Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, authgate.ErrInvalidResetCode):
			return errorJSON(c, http.StatusBadRequest, "invalid_reset_code", err.Error())
		case errors.Is(err, authgate.ErrPasswordTooShort):
			return errorJSON(c, http.StatusBadRequest, "password_too_short", err.Error())
		default:
			slog.Error("reset confirmation failed", "error", err)
			return serverError(c)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
