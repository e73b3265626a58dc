// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"goaltracker/internal/i18n"
)

func TestInit(t *testing.T) {
	require.NoError(t, i18n.Init())
}

func TestT(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.English)
	assert.Equal(t, "Your password reset code", i18n.T(ctx, "reset_email_subject"))

	ctx = i18n.WithLocale(context.Background(), language.German)
	assert.NotEqual(t, "reset_email_subject", i18n.T(ctx, "reset_email_subject"))
}

func TestT_UnknownMessage(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.English)
	assert.Equal(t, "does_not_exist", i18n.T(ctx, "does_not_exist"))
}

func TestTData(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.English)
	body := i18n.TData(ctx, "reset_email_body", map[string]any{"Code": "ABC123"})
	assert.Contains(t, body, "ABC123")
}

func TestGetLocale(t *testing.T) {
	require.NoError(t, i18n.Init())

	assert.Equal(t, "en", i18n.GetLocale(context.Background()))

	ctx := i18n.WithLocale(context.Background(), language.German)
	assert.Equal(t, "de", i18n.GetLocale(ctx))
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.English, i18n.MatchLanguage(""))
	assert.Equal(t, language.English, i18n.MatchLanguage("en-US,en;q=0.9"))
	assert.Equal(t, language.German, i18n.MatchLanguage("de-DE,de;q=0.9"))
	assert.Equal(t, language.English, i18n.MatchLanguage("fr-FR"))
	assert.Equal(t, language.English, i18n.MatchLanguage("garbage;;;"))
}
