// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth provides authentication context helpers.
package auth

import (
	"context"

	"goaltracker/internal/models"
)

type accountContextKey struct{}

// SetAccount stores the authenticated account in the context.
func SetAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, accountContextKey{}, account)
}

// GetAccount returns the authenticated account from the context, or nil
// if not authenticated.
func GetAccount(ctx context.Context) *models.Account {
	if account, ok := ctx.Value(accountContextKey{}).(*models.Account); ok {
		return account
	}
	return nil
}

// IsAuthenticated returns true if the context has an authenticated account.
func IsAuthenticated(ctx context.Context) bool {
	return GetAccount(ctx) != nil
}
