// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package authgate implements the local account gate: a single account,
// credential verification, and the password reset flow. There is no
// multi-user support; creating a new account overwrites the old one.
package authgate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"goaltracker/internal/models"
	"goaltracker/internal/repository"
	"goaltracker/internal/services/resetcode"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrNoAccount          = errors.New("no account found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetCode   = errors.New("invalid reset code")
)

// dummyHash is used for constant-time login to prevent timing attacks.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)

// Service implements the account gate against the repository.
type Service struct {
	repo         *repository.Repository
	resetCodeTTL time.Duration // 0 means reset codes never expire
}

// NewService creates a new gate service. resetCodeTTL of zero keeps the
// original behavior of never expiring reset codes.
func NewService(repo *repository.Repository, resetCodeTTL time.Duration) *Service {
	return &Service{repo: repo, resetCodeTTL: resetCodeTTL}
}

// HashPassword derives a one-way digest of the password. bcrypt embeds a
// per-call random salt, so the digest differs between calls while
// verification still holds.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored digest.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Signup creates the local account and returns it. Any existing account
// is overwritten. Validation failures are returned in a fixed order:
// password mismatch, password length, email format.
func (s *Service) Signup(ctx context.Context, email, password, confirmPassword string) (*models.Account, error) {
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	// Deliberately weak format check, same as the login form accepts.
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	overwritten, err := s.repo.AccountExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check account: %w", err)
	}

	account, err := s.repo.SaveAccount(ctx, email, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	if overwritten {
		slog.Warn("signup_overwrote_account", "email", email)
	}
	slog.Info("signup_success", "email", email)
	return account, nil
}

// Login verifies the credentials against the stored account. A missing
// account and bad credentials are reported as distinct errors so the UI
// can route first-time users to signup.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.repo.GetAccount(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Constant-time: always perform a bcrypt comparison.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			slog.Warn("login_failed", "reason", "no_account")
			return nil, ErrNoAccount
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	// Both fields must match exactly; email comparison is case-sensitive.
	if account.Email != email || !VerifyPassword(password, account.PasswordHash) {
		slog.Warn("login_failed", "reason", "invalid_credentials")
		return nil, ErrInvalidCredentials
	}

	slog.Info("login_success", "email", email)
	return account, nil
}

// RequestPasswordReset issues a reset ticket for the account email and
// returns the plaintext code for delivery. The email must match the
// stored account exactly.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	account, err := s.repo.GetAccount(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNoAccount
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}
	if account.Email != email {
		return "", ErrNoAccount
	}

	code, err := resetcode.Generate()
	if err != nil {
		return "", err
	}

	var expiresAt *time.Time
	if s.resetCodeTTL > 0 {
		t := time.Now().UTC().Add(s.resetCodeTTL)
		expiresAt = &t
	}

	if err := s.repo.SaveResetTicket(ctx, code, email, expiresAt); err != nil {
		return "", fmt.Errorf("failed to save reset ticket: %w", err)
	}

	slog.Info("reset_requested", "email", email)
	return code, nil
}

// ConfirmPasswordReset validates the code against the pending ticket and
// updates the account password. The ticket is consumed on success and
// the account is left untouched on any failure.
func (s *Service) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	ticket, err := s.repo.GetResetTicket(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetCode
		}
		return fmt.Errorf("failed to get reset ticket: %w", err)
	}

	if ticket.Code != resetcode.Normalize(code) || ticket.Email != email {
		return ErrInvalidResetCode
	}
	if ticket.Expired(time.Now()) {
		return ErrInvalidResetCode
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateAccountPassword(ctx, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.repo.DeleteResetTicket(ctx); err != nil {
		return fmt.Errorf("failed to delete reset ticket: %w", err)
	}

	slog.Info("reset_confirmed", "email", email)
	return nil
}

// State values reported by AuthState.
const (
	StateFirstTime     = "first_time"
	StateReturning     = "returning"
	StateAuthenticated = "authenticated"
)

// AuthState resolves the gate state for a request. sessionEmail is the
// email from a parsed, unexpired session cookie, or empty when there is
// none. An orphaned session (email differs from the stored account) is
// treated as no session.
func (s *Service) AuthState(ctx context.Context, sessionEmail string) (string, error) {
	account, err := s.repo.GetAccount(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return StateFirstTime, nil
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	if sessionEmail != "" && sessionEmail == account.Email {
		return StateAuthenticated, nil
	}
	return StateReturning, nil
}
