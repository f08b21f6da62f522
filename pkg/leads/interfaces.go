// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"

	"github.com/hubsign/landing-service/internal/mail"
	"github.com/hubsign/landing-service/internal/types"
)

type ServiceInterface interface {
	SubmitContact(ctx context.Context, form ContactForm) (*types.ContactSubmission, error)
	SubscribeNewsletter(ctx context.Context, email string) error
}

type LeadStoreInterface interface {
	CreateContactSubmission(ctx context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error)
	CreateNewsletterSubscription(ctx context.Context, email string) error
}

type MailerInterface interface {
	Send(ctx context.Context, msg mail.Message) error
}
