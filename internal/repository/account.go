// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"goaltracker/internal/models"
)

// GetAccount retrieves the single local account, or ErrNotFound when no
// account has been created yet.
func (r *Repository) GetAccount(ctx context.Context) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, `SELECT * FROM accounts WHERE id = 1`)
	if err != nil {
		return nil, wrapError(err)
	}
	return &account, nil
}

// SaveAccount creates the local account, replacing any existing one.
// The accounts table holds at most one row.
func (r *Repository) SaveAccount(ctx context.Context, email, passwordHash string) (*models.Account, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, created_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET email = excluded.email,
		                                password_hash = excluded.password_hash,
		                                created_at = excluded.created_at`,
		email, passwordHash, now)
	if err != nil {
		return nil, err
	}
	return &models.Account{ID: 1, Email: email, PasswordHash: passwordHash, CreatedAt: now}, nil
}

// UpdateAccountPassword updates the stored password hash.
func (r *Repository) UpdateAccountPassword(ctx context.Context, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ? WHERE id = 1`, passwordHash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AccountExists reports whether the local account has been created.
func (r *Repository) AccountExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = 1)`)
	return exists, err
}
