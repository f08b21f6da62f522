// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"

	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/types"
)

// NoopDirectory knows no tenants, every lookup falls back to the shared instance
type NoopDirectory struct{}

func (NoopDirectory) LookupDomain(context.Context, string) (*types.Tenant, error) {
	return nil, storage.ErrNotFound
}

func NewNoopDirectory() NoopDirectory {
	return NoopDirectory{}
}

type tenantStorage interface {
	GetTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error)
}

// DatabaseDirectory resolves custom domains from the tenants table
type DatabaseDirectory struct {
	s tenantStorage
}

func (d *DatabaseDirectory) LookupDomain(ctx context.Context, domain string) (*types.Tenant, error) {
	return d.s.GetTenantByDomain(ctx, domain)
}

func NewDatabaseDirectory(s tenantStorage) *DatabaseDirectory {
	return &DatabaseDirectory{s: s}
}
