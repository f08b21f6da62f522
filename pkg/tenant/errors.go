// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "errors"

// ErrInvalidFormat rejects input that can never name a tenant, absent tenants are
// reported with storage.ErrNotFound
var ErrInvalidFormat = errors.New("invalid domain or subdomain format")
