// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"

	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/types"
)

var (
	_ RegistryInterface = (*StaticRegistry)(nil)
	_ RegistryInterface = (*DatabaseRegistry)(nil)
)

// DefaultTenants is the seed used when no tenant database is configured
func DefaultTenants() []types.Tenant {
	return []types.Tenant{
		{ID: "demo", Subdomain: "demo", DisplayName: "Demo Company", Active: true},
		{ID: "acme", Subdomain: "acme", DisplayName: "Acme Inc", Active: true},
		{ID: "test", Subdomain: "test", DisplayName: "Test Organization", Active: true},
	}
}

// StaticRegistry is an in-memory tenant table, immutable once built
type StaticRegistry struct {
	tenants map[string]types.Tenant
}

func (r *StaticRegistry) LookupSubdomain(_ context.Context, subdomain string) (*types.Tenant, error) {
	t, ok := r.tenants[Normalize(subdomain)]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &t, nil
}

// NewStaticRegistry normalizes the subdomain of every tenant and rejects duplicates
func NewStaticRegistry(tenants []types.Tenant) (*StaticRegistry, error) {
	r := new(StaticRegistry)
	r.tenants = make(map[string]types.Tenant, len(tenants))

	for _, t := range tenants {
		key := Normalize(t.Subdomain)

		if !ValidSubdomain(key) {
			return nil, fmt.Errorf("invalid subdomain %q: %w", t.Subdomain, ErrInvalidFormat)
		}

		if _, ok := r.tenants[key]; ok {
			return nil, fmt.Errorf("subdomain %q: %w", key, storage.ErrDuplicateKey)
		}

		t.Subdomain = key
		r.tenants[key] = t
	}

	return r, nil
}

type tenantStorage interface {
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
}

// DatabaseRegistry reads tenants provisioned into the tenants table
type DatabaseRegistry struct {
	s tenantStorage
}

func (r *DatabaseRegistry) LookupSubdomain(ctx context.Context, subdomain string) (*types.Tenant, error) {
	return r.s.GetTenantBySubdomain(ctx, Normalize(subdomain))
}

func NewDatabaseRegistry(s tenantStorage) *DatabaseRegistry {
	return &DatabaseRegistry{s: s}
}
