// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"goaltracker/internal/models"
)

// SaveResetTicket stores a reset ticket, replacing any existing one.
// expiresAt may be nil when reset codes are configured to never expire.
func (r *Repository) SaveResetTicket(ctx context.Context, code, email string, expiresAt *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reset_tickets (id, code, email, expires_at, created_at) VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET code = excluded.code,
		                                email = excluded.email,
		                                expires_at = excluded.expires_at,
		                                created_at = excluded.created_at`,
		code, email, expiresAt, time.Now().UTC())
	return err
}

// GetResetTicket retrieves the pending reset ticket, or ErrNotFound.
func (r *Repository) GetResetTicket(ctx context.Context) (*models.ResetTicket, error) {
	var ticket models.ResetTicket
	err := r.db.GetContext(ctx, &ticket, `SELECT * FROM reset_tickets WHERE id = 1`)
	if err != nil {
		return nil, wrapError(err)
	}
	return &ticket, nil
}

// DeleteResetTicket removes the pending reset ticket, if any.
func (r *Repository) DeleteResetTicket(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reset_tickets WHERE id = 1`)
	return err
}
