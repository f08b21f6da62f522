// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"regexp"
	"strings"
)

// non-empty local part and domain, the domain must contain a dot, no whitespace anywhere
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail expects an already normalized address
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
