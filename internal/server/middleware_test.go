// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goaltracker/internal/auth"
	"goaltracker/internal/config"
	"goaltracker/internal/services/session"
	"goaltracker/internal/testutil"
)

const testHashKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newSessionManager(t *testing.T) *session.Manager {
	t.Helper()
	mgr, err := session.NewManager(&config.SessionConfig{
		CookieName: "_session",
		MaxAge:     86400,
		HashKey:    testHashKey,
	}, false)
	require.NoError(t, err)
	return mgr
}

func TestRequireAuth_NoCookie(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	sessions := newSessionManager(t)

	e := echo.New()
	e.GET("/api/goals", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, requireAuth(sessions, repo))

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_authenticated")
}

func TestRequireAuth_ValidSession(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	sessions := newSessionManager(t)
	testutil.NewTestAccount(t, repo, "me@example.com", "secret123")

	e := echo.New()
	e.GET("/api/goals", func(c echo.Context) error {
		account := auth.GetAccount(c.Request().Context())
		require.NotNil(t, account)
		return c.String(http.StatusOK, account.Email)
	}, requireAuth(sessions, repo))

	cookie, err := sessions.Create("me@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "me@example.com", rec.Body.String())
}

func TestRequireAuth_SessionForReplacedAccount(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	sessions := newSessionManager(t)
	testutil.NewTestAccount(t, repo, "new@example.com", "secret123")

	e := echo.New()
	e.GET("/api/goals", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, requireAuth(sessions, repo))

	// Cookie issued for an email the account no longer has.
	cookie, err := sessions.Create("old@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The stale cookie is cleared in the response.
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_session" && c.MaxAge == -1 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestRequireAuth_NoAccount(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	sessions := newSessionManager(t)

	e := echo.New()
	e.GET("/api/goals", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, requireAuth(sessions, repo))

	cookie, err := sessions.Create("me@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestI18nMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(i18nMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
