// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/hubsign/landing-service/internal/types"
)

type ServiceInterface interface {
	ResolveDomain(ctx context.Context, input string) (*Resolution, error)
	ResolveSubdomain(ctx context.Context, input string) (*Resolution, error)
}

// RegistryInterface is the read-only tenant table keyed by normalized subdomain.
// Absent tenants are reported with storage.ErrNotFound.
type RegistryInterface interface {
	LookupSubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
}

// DirectoryInterface resolves full domains against an external tenant source.
// Absent tenants are reported with storage.ErrNotFound.
type DirectoryInterface interface {
	LookupDomain(ctx context.Context, domain string) (*types.Tenant, error)
}
