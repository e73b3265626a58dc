// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package resetcode generates one-time password reset codes.
package resetcode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// CodeLength is the length of a reset code.
const CodeLength = 6

// alphabet for reset codes (uppercase letters + digits).
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a new 6-character uppercase alphanumeric reset code.
func Generate() (string, error) {
	bytes := make([]byte, CodeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	for i := range bytes {
		bytes[i] = alphabet[int(bytes[i])%len(alphabet)]
	}

	return string(bytes), nil
}

// Normalize trims whitespace and uppercases user input for comparison.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
