// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import "errors"

var (
	ErrInvalidEmail = errors.New("valid email address is required")
	// ErrValidation wraps every other rejected form field
	ErrValidation = errors.New("invalid form")
)
