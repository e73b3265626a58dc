// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package session implements signed session cookies. The cookie is the
// persisted session record: it carries the account email and an expiry,
// protected by an HMAC signature (and optional AES encryption).
package session

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"goaltracker/internal/config"
)

// Data is the payload stored in a session cookie.
type Data struct {
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Manager creates, parses and clears session cookies.
type Manager struct {
	codec      *securecookie.SecureCookie
	cookieName string
	maxAge     int
	secure     bool
}

// NewManager creates a session manager from the session configuration.
// The hash key must be a 32-byte hex string; the block key is optional
// and enables encryption of the cookie payload.
func NewManager(cfg *config.SessionConfig, secure bool) (*Manager, error) {
	var hashKey []byte
	if cfg.HashKey == "" {
		// No key configured: generate one for this process. Sessions do
		// not survive a restart in this mode.
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, errors.New("failed to generate session hash key")
		}
		slog.Warn("no session hash key configured, using a generated key")
	} else {
		var err error
		hashKey, err = hex.DecodeString(cfg.HashKey)
		if err != nil {
			return nil, fmt.Errorf("invalid session hash key: %w", err)
		}
		if len(hashKey) != 32 {
			return nil, errors.New("session hash key must be 32 bytes")
		}
	}

	var blockKey []byte
	if cfg.BlockKey != "" {
		decoded, err := hex.DecodeString(cfg.BlockKey)
		if err != nil {
			return nil, fmt.Errorf("invalid session block key: %w", err)
		}
		blockKey = decoded
		if len(blockKey) != 32 {
			return nil, errors.New("session block key must be 32 bytes")
		}
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(cfg.MaxAge)

	return &Manager{
		codec:      codec,
		cookieName: cfg.CookieName,
		maxAge:     cfg.MaxAge,
		secure:     secure,
	}, nil
}

// Create issues a new session cookie for the given account email.
func (m *Manager) Create(email string) (*http.Cookie, error) {
	now := time.Now()
	data := &Data{
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(m.maxAge) * time.Second),
	}

	encoded, err := m.codec.Encode(m.cookieName, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	return &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   m.maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Parse extracts the session data from a request. It returns (nil, nil)
// when there is no cookie, the signature is invalid, or the session has
// expired: an unusable session is indistinguishable from no session.
func (m *Manager) Parse(r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, nil
		}
		return nil, err
	}

	var data Data
	if err := m.codec.Decode(m.cookieName, cookie.Value, &data); err != nil {
		return nil, nil //nolint:nilerr // tampered or stale cookie, treat as unauthenticated
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, nil
	}

	return &data, nil
}

// CookieName returns the configured session cookie name.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Clear returns a cookie that deletes the session.
func (m *Manager) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
