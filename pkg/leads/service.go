// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"
	"fmt"
	"strings"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/mail"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/internal/types"
	"github.com/hubsign/landing-service/internal/validation"
)

var _ ServiceInterface = (*Service)(nil)

type ContactForm struct {
	Name    string
	Email   string
	Company string
	Message string
}

// contactFields carries the trimmed free-text fields of a contact form
type contactFields struct {
	Name    string `validate:"required,max=100"`
	Company string `validate:"omitempty,max=100"`
	Message string `validate:"required,max=2000"`
}

type Service struct {
	salesInbox string

	store  LeadStoreInterface
	mailer MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SubmitContact stores the form and forwards it to the sales inbox
func (s *Service) SubmitContact(ctx context.Context, form ContactForm) (*types.ContactSubmission, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.SubmitContact")
	defer span.End()

	c, err := cleanContactForm(form)
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreateContactSubmission(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	msg := mail.Message{
		To:      s.salesInbox,
		Subject: fmt.Sprintf("New contact form submission from %s", created.Name),
		Body: fmt.Sprintf(
			"Name: %s\nEmail: %s\nCompany: %s\n\n%s\n",
			created.Name, created.Email, created.Company, created.Message,
		),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Errorf("failed to notify sales of contact submission %s: %v", created.ID, err)
	}

	return created, nil
}

// SubscribeNewsletter is idempotent per address
func (s *Service) SubscribeNewsletter(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "leads.Service.SubscribeNewsletter")
	defer span.End()

	email = validation.NormalizeEmail(email)
	if !validation.ValidEmail(email) {
		return ErrInvalidEmail
	}

	if err := s.store.CreateNewsletterSubscription(ctx, email); err != nil {
		return fmt.Errorf("failed to store newsletter subscription: %w", err)
	}

	return nil
}

func cleanContactForm(form ContactForm) (*types.ContactSubmission, error) {
	fields := contactFields{
		Name:    strings.TrimSpace(form.Name),
		Company: strings.TrimSpace(form.Company),
		Message: strings.TrimSpace(form.Message),
	}

	if err := validation.Struct(fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	email := validation.NormalizeEmail(form.Email)
	if !validation.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	return &types.ContactSubmission{
		Name:    fields.Name,
		Email:   email,
		Company: fields.Company,
		Message: fields.Message,
	}, nil
}

func NewService(salesInbox string, store LeadStoreInterface, mailer MailerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.salesInbox = salesInbox
	s.store = store
	s.mailer = mailer

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
