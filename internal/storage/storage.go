// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/hubsign/landing-service/internal/db"
	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	tenantColumns = []string{"id", "subdomain", "COALESCE(domain, '')", "display_name", "active", "created_at"}
	tokenColumns  = []string{"id", "token_hash", "email", "target_instance_url", "issued_at", "expires_at", "consumed", "consumed_at"}
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

type scanner interface {
	Scan(...any) error
}

func scanTenant(row scanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.Subdomain, &t.Domain, &t.DisplayName, &t.Active, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanToken(row scanner) (*types.MagicLinkToken, error) {
	var (
		t          types.MagicLinkToken
		consumedAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.TokenHash, &t.Email, &t.TargetInstanceURL, &t.IssuedAt, &t.ExpiresAt, &t.Consumed, &consumedAt); err != nil {
		return nil, err
	}
	if consumedAt.Valid {
		t.ConsumedAt = &consumedAt.Time
	}
	return &t, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func (s *Storage) GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetTenantBySubdomain")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"subdomain": subdomain})
}

func (s *Storage) GetTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetTenantByDomain")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"domain": domain})
}

func (s *Storage) getTenant(ctx context.Context, where sq.Eq) (*types.Tenant, error) {
	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(where).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) CreateMagicLinkToken(ctx context.Context, token *types.MagicLinkToken) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateMagicLinkToken")
	defer span.End()

	if token.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate token ID: %w", err)
		}
		token.ID = id.String()
	}

	_, err := s.db.Statement(ctx).
		Insert("magic_link_tokens").
		Columns("id", "token_hash", "email", "target_instance_url", "issued_at", "expires_at", "consumed").
		Values(token.ID, token.TokenHash, token.Email, token.TargetInstanceURL, token.IssuedAt, token.ExpiresAt, false).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert magic link token: %w", WrapDuplicateKeyError(err, "magic link token"))
	}

	return nil
}

// ConsumeMagicLinkToken flips consumed to true in a single conditional update, concurrent
// callers racing on the same row are serialized by the row lock and only one sees a match
func (s *Storage) ConsumeMagicLinkToken(ctx context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ConsumeMagicLinkToken")
	defer span.End()

	var consumed *types.MagicLinkToken

	err := s.db.WithTx(ctx, func(txCtx context.Context) error {
		row := s.db.Statement(txCtx).
			Update("magic_link_tokens").
			Set("consumed", true).
			Set("consumed_at", now).
			Where(sq.Eq{"token_hash": tokenHash, "consumed": false}).
			Where(sq.LtOrEq{"issued_at": now}).
			Where(sq.GtOrEq{"expires_at": now}).
			Suffix("RETURNING " + strings.Join(tokenColumns, ", ")).
			QueryRowContext(txCtx)

		t, err := scanToken(row)
		if err == nil {
			consumed = t
			return nil
		}
		if !isNoRows(err) {
			return fmt.Errorf("failed to consume magic link token: %w", err)
		}

		return s.classifyToken(txCtx, tokenHash, now)
	})

	if err != nil {
		return nil, err
	}

	return consumed, nil
}

func (s *Storage) classifyToken(ctx context.Context, tokenHash string, now time.Time) error {
	row := s.db.Statement(ctx).
		Select(tokenColumns...).
		From("magic_link_tokens").
		Where(sq.Eq{"token_hash": tokenHash}).
		QueryRowContext(ctx)

	t, err := scanToken(row)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get magic link token: %w", err)
	}

	if !t.ValidAt(now) {
		return ErrExpired
	}

	return ErrAlreadyConsumed
}

func (s *Storage) CreateContactSubmission(ctx context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateContactSubmission")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contact submission ID: %w", err)
	}

	var created types.ContactSubmission
	err = s.db.Statement(ctx).
		Insert("contact_submissions").
		Columns("id", "name", "email", "company", "message").
		Values(id.String(), c.Name, c.Email, c.Company, c.Message).
		Suffix("RETURNING id, name, email, company, message, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Email, &created.Company, &created.Message, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert contact submission: %w", err)
	}

	return &created, nil
}

// CreateNewsletterSubscription is idempotent, subscribing the same address twice is a no-op
func (s *Storage) CreateNewsletterSubscription(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateNewsletterSubscription")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate subscription ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("newsletter_subscriptions").
		Columns("id", "email").
		Values(id.String(), email).
		Suffix("ON CONFLICT (email) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert newsletter subscription: %w", err)
	}

	return nil
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
