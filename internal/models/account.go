// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Account is the single local user record. The accounts table holds at
// most one row (fixed id 1); creating a new account overwrites it.
type Account struct { //nolint:govet // fieldalignment: readability over optimization
	ID           int64     `db:"id" json:"-"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
