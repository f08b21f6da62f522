// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/types"
)

var _ LeadStoreInterface = (*LoggingStore)(nil)

// LoggingStore records leads in the application log when no database is configured
type LoggingStore struct {
	logger logging.LoggerInterface
}

func (l *LoggingStore) CreateContactSubmission(_ context.Context, c *types.ContactSubmission) (*types.ContactSubmission, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	created := *c
	created.ID = id.String()
	created.CreatedAt = time.Now()

	l.logger.Infof("contact form submission %s received, company=%q", created.ID, created.Company)

	return &created, nil
}

func (l *LoggingStore) CreateNewsletterSubscription(_ context.Context, _ string) error {
	l.logger.Info("newsletter subscription received")
	return nil
}

func NewLoggingStore(logger logging.LoggerInterface) *LoggingStore {
	return &LoggingStore{logger: logger}
}
