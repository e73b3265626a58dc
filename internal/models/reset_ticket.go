// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// ResetTicket is a one-time code authorizing a password change without
// the current password. At most one ticket exists; a new reset request
// replaces it, a successful password update consumes it.
type ResetTicket struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64      `db:"id" json:"-"`
	Code      string     `db:"code" json:"-"`
	Email     string     `db:"email" json:"email"`
	ExpiresAt *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Expired reports whether the ticket is past its expiry. Tickets issued
// without a TTL never expire.
func (t *ResetTicket) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}
