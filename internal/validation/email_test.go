// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import "testing"

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  USER@EXAMPLE.COM "); got != "user@example.com" {
		t.Errorf("expected user@example.com, got %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "user@example.com", valid: true},
		{input: "first.last+tag@sub.example.co", valid: true},
		{input: "user@localhost", valid: false},
		{input: "@example.com", valid: false},
		{input: "user@", valid: false},
		{input: "user example@example.com", valid: false},
		{input: "user@@example.com", valid: false},
		{input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidEmail(tt.input); got != tt.valid {
				t.Errorf("ValidEmail(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}
