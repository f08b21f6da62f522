// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tenant is an organization with a dedicated instance, provisioned out of band
type Tenant struct {
	ID          string    `db:"id" json:"id,omitempty"`
	Subdomain   string    `db:"subdomain" json:"subdomain"`
	Domain      string    `db:"domain" json:"domain,omitempty"`
	DisplayName string    `db:"display_name" json:"name"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at,omitempty"`
}

// MagicLinkToken is one outstanding sign-in attempt, only the hash of the token value is kept
type MagicLinkToken struct {
	ID                string     `db:"id" json:"id"`
	TokenHash         string     `db:"token_hash" json:"token_hash"`
	Email             string     `db:"email" json:"email"`
	TargetInstanceURL string     `db:"target_instance_url" json:"target_instance_url"`
	IssuedAt          time.Time  `db:"issued_at" json:"issued_at"`
	ExpiresAt         time.Time  `db:"expires_at" json:"expires_at"`
	Consumed          bool       `db:"consumed" json:"consumed"`
	ConsumedAt        *time.Time `db:"consumed_at" json:"consumed_at,omitempty"`
}

// ValidAt reports whether t falls within [IssuedAt, ExpiresAt]
func (m *MagicLinkToken) ValidAt(t time.Time) bool {
	return !t.Before(m.IssuedAt) && !t.After(m.ExpiresAt)
}

type ContactSubmission struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Company   string    `db:"company"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

type NewsletterSubscription struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}
