// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokenstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/types"
)

func newToken(hash string, issued time.Time, ttl time.Duration) *types.MagicLinkToken {
	return &types.MagicLinkToken{
		TokenHash:         hash,
		Email:             "user@example.com",
		TargetInstanceURL: "https://acme.hubsign.io",
		IssuedAt:          issued,
		ExpiresAt:         issued.Add(ttl),
	}
}

func TestMemoryStore_Consume(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		token       *types.MagicLinkToken
		hash        string
		at          time.Time
		consumeTwo  bool
		expectedErr error
	}{
		{
			name:  "valid token",
			token: newToken("h1", now, 15*time.Minute),
			hash:  "h1",
			at:    now.Add(time.Minute),
		},
		{
			name:  "valid at exact expiry",
			token: newToken("h1", now, 15*time.Minute),
			hash:  "h1",
			at:    now.Add(15 * time.Minute),
		},
		{
			name:        "unknown hash",
			token:       newToken("h1", now, 15*time.Minute),
			hash:        "other",
			at:          now,
			expectedErr: storage.ErrNotFound,
		},
		{
			name:        "expired",
			token:       newToken("h1", now, 15*time.Minute),
			hash:        "h1",
			at:          now.Add(16 * time.Minute),
			expectedErr: storage.ErrExpired,
		},
		{
			name:        "before issuance",
			token:       newToken("h1", now, 15*time.Minute),
			hash:        "h1",
			at:          now.Add(-time.Second),
			expectedErr: storage.ErrExpired,
		},
		{
			name:        "already consumed",
			token:       newToken("h1", now, 15*time.Minute),
			hash:        "h1",
			at:          now.Add(time.Minute),
			consumeTwo:  true,
			expectedErr: storage.ErrAlreadyConsumed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemoryStore(time.Hour)

			if err := m.Create(context.Background(), tt.token); err != nil {
				t.Fatalf("unexpected create error: %v", err)
			}

			if tt.consumeTwo {
				if _, err := m.Consume(context.Background(), tt.hash, tt.at); err != nil {
					t.Fatalf("unexpected first consume error: %v", err)
				}
			}

			tok, err := m.Consume(context.Background(), tt.hash, tt.at)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !tok.Consumed || tok.ConsumedAt == nil || tok.TargetInstanceURL != "https://acme.hubsign.io" {
				t.Errorf("unexpected token %+v", tok)
			}
		})
	}
}

func TestMemoryStore_CreateDuplicate(t *testing.T) {
	m := NewMemoryStore(time.Hour)
	now := time.Now()

	if err := m.Create(context.Background(), newToken("h1", now, time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Create(context.Background(), newToken("h1", now, time.Minute)); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestMemoryStore_PurgesExpiredOnCreate(t *testing.T) {
	m := NewMemoryStore(time.Minute)
	now := time.Now()

	if err := m.Create(context.Background(), newToken("old", now.Add(-time.Hour), 15*time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Create(context.Background(), newToken("new", now, 15*time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Len() != 1 {
		t.Errorf("expected 1 token after purge, got %d", m.Len())
	}
}

func TestMemoryStore_ConcurrentConsumeSucceedsOnce(t *testing.T) {
	m := NewMemoryStore(time.Hour)
	now := time.Now()

	if err := m.Create(context.Background(), newToken("h1", now, 15*time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const callers = 50

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		used      atomic.Int32
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := m.Consume(context.Background(), "h1", now)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, storage.ErrAlreadyConsumed):
				used.Add(1)
			}
		}()
	}

	wg.Wait()

	if successes.Load() != 1 {
		t.Errorf("expected exactly one success, got %d", successes.Load())
	}

	if used.Load() != callers-1 {
		t.Errorf("expected %d already-consumed results, got %d", callers-1, used.Load())
	}
}
