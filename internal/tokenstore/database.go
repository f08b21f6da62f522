// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokenstore

import (
	"context"
	"time"

	"github.com/hubsign/landing-service/internal/types"
)

var _ TokenStoreInterface = (*DatabaseStore)(nil)

type tokenStorage interface {
	CreateMagicLinkToken(ctx context.Context, token *types.MagicLinkToken) error
	ConsumeMagicLinkToken(ctx context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error)
}

// DatabaseStore serves tokens from the Postgres storage layer
type DatabaseStore struct {
	s tokenStorage
}

func (d *DatabaseStore) Create(ctx context.Context, token *types.MagicLinkToken) error {
	return d.s.CreateMagicLinkToken(ctx, token)
}

func (d *DatabaseStore) Consume(ctx context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error) {
	return d.s.ConsumeMagicLinkToken(ctx, tokenHash, now)
}

func NewDatabaseStore(s tokenStorage) *DatabaseStore {
	return &DatabaseStore{s: s}
}
