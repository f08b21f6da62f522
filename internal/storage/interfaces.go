// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/hubsign/landing-service/internal/types"
)

type StorageInterface interface {
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	GetTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error)

	CreateMagicLinkToken(ctx context.Context, token *types.MagicLinkToken) error
	ConsumeMagicLinkToken(ctx context.Context, tokenHash string, now time.Time) (*types.MagicLinkToken, error)

	CreateContactSubmission(ctx context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error)
	CreateNewsletterSubscription(ctx context.Context, email string) error
}
