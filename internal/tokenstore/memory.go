// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/types"
)

var _ TokenStoreInterface = (*MemoryStore)(nil)

// MemoryStore keeps tokens in process memory, it is meant for single replica deployments
// and development
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]types.MagicLinkToken

	// expired tokens are kept this long past expiry so late verifications are still classified
	grace time.Duration
	now   func() time.Time
}

func (m *MemoryStore) Create(_ context.Context, token *types.MagicLinkToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.purge(m.now())

	if _, ok := m.tokens[token.TokenHash]; ok {
		return storage.ErrDuplicateKey
	}

	if token.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		token.ID = id.String()
	}

	m.tokens[token.TokenHash] = *token

	return nil
}

func (m *MemoryStore) Consume(_ context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tokens[tokenHash]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if !t.ValidAt(now) {
		return nil, storage.ErrExpired
	}

	if t.Consumed {
		return nil, storage.ErrAlreadyConsumed
	}

	consumedAt := now
	t.Consumed = true
	t.ConsumedAt = &consumedAt
	m.tokens[tokenHash] = t

	return &t, nil
}

func (m *MemoryStore) purge(now time.Time) {
	for k, t := range m.tokens {
		if now.After(t.ExpiresAt.Add(m.grace)) {
			delete(m.tokens, k)
		}
	}
}

// Len returns the number of tokens currently held
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.tokens)
}

func NewMemoryStore(grace time.Duration) *MemoryStore {
	m := new(MemoryStore)

	m.tokens = make(map[string]types.MagicLinkToken)
	m.grace = grace
	m.now = time.Now

	return m
}
