// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrNameRequired   = errors.New("name is required")
	ErrIssuanceFailed = errors.New("failed to issue sign-in token")

	// ErrInvalidToken is the parent of every verification failure so callers can
	// report them uniformly
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrTokenNotFound    = fmt.Errorf("%w: token not found", ErrInvalidToken)
	ErrTokenExpired     = fmt.Errorf("%w: token expired", ErrInvalidToken)
	ErrTokenAlreadyUsed = fmt.Errorf("%w: token already used", ErrInvalidToken)
)
