// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokenstore

import (
	"context"
	"time"

	"github.com/hubsign/landing-service/internal/types"
)

// TokenStoreInterface persists magic-link tokens keyed by their hash.
// Consume must check and flip the consumed flag as one atomic step and report
// storage.ErrNotFound, storage.ErrExpired or storage.ErrAlreadyConsumed otherwise.
type TokenStoreInterface interface {
	Create(ctx context.Context, token *types.MagicLinkToken) error
	Consume(ctx context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error)
}
