// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/mail"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/internal/types"
	"github.com/hubsign/landing-service/internal/validation"
	"github.com/hubsign/landing-service/pkg/tenant"
)

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	BaseDomain         string
	SharedInstanceHost string
	MagicLinkBaseURL   string
	TTL                time.Duration
}

// Target selects the instance the magic link signs into
type Target struct {
	Domain    string
	UseShared bool
}

type SignUp struct {
	Name    string
	Email   string
	Company string
}

type IssueResult struct {
	Email             string
	TargetInstanceURL string
	ExpiresAt         time.Time
	// Token is the raw value sent by email, it must never be returned over HTTP
	Token string
}

type VerifyResult struct {
	Email       string
	RedirectURL string
}

type Service struct {
	cfg Config

	tokens TokenStoreInterface
	mailer MailerInterface
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// IssueSignIn mints a single-use token for email and mails the verification link.
// Mail failures are only logged, a persistence failure returns ErrIssuanceFailed.
func (s *Service) IssueSignIn(ctx context.Context, email string, target Target) (*IssueResult, error) {
	ctx, span := s.tracer.Start(ctx, "signin.Service.IssueSignIn")
	defer span.End()

	email = validation.NormalizeEmail(email)
	if !validation.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	targetURL := s.targetURL(target)
	s.logger.Security().AuthnAttempt(email, targetURL)

	res, link, err := s.issue(ctx, email, targetURL)
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, mail.Message{
		To:      email,
		Subject: "Sign in to HubSign",
		Body: fmt.Sprintf(
			"Click the link below to sign in to HubSign:\n\n%s\n\nThe link expires in %s and can be used once.\n",
			link, s.cfg.TTL,
		),
	})

	return res, nil
}

// SignUp registers interest for a new account on the shared instance and mails a
// verification link
func (s *Service) SignUp(ctx context.Context, req SignUp) (*IssueResult, error) {
	ctx, span := s.tracer.Start(ctx, "signin.Service.SignUp")
	defer span.End()

	email := validation.NormalizeEmail(req.Email)
	if !validation.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	targetURL := s.sharedInstanceURL()
	s.logger.Security().AuthnAttempt(email, targetURL)

	res, link, err := s.issue(ctx, email, targetURL)
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, mail.Message{
		To:      email,
		Subject: "Welcome to HubSign",
		Body: fmt.Sprintf(
			"Hi %s,\n\nThank you for signing up! Click here to verify your email:\n\n%s\n",
			name, link,
		),
	})

	return res, nil
}

// VerifyToken consumes the token, at most one caller succeeds for a given value
func (s *Service) VerifyToken(ctx context.Context, token string) (*VerifyResult, error) {
	ctx, span := s.tracer.Start(ctx, "signin.Service.VerifyToken")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		s.logger.Security().AuthnFailure("empty token")
		return nil, ErrTokenNotFound
	}

	t, err := s.tokens.Consume(ctx, HashToken(token), s.now())
	if err != nil {
		var verr error
		switch {
		case errors.Is(err, storage.ErrNotFound):
			verr = ErrTokenNotFound
		case errors.Is(err, storage.ErrExpired):
			verr = ErrTokenExpired
		case errors.Is(err, storage.ErrAlreadyConsumed):
			verr = ErrTokenAlreadyUsed
		default:
			return nil, fmt.Errorf("failed to verify token: %w", err)
		}

		s.logger.Security().AuthnFailure(verr.Error())
		return nil, verr
	}

	s.logger.Security().AuthnSuccess(t.Email, t.TargetInstanceURL)

	return &VerifyResult{Email: t.Email, RedirectURL: t.TargetInstanceURL}, nil
}

func (s *Service) issue(ctx context.Context, email, targetURL string) (*IssueResult, string, error) {
	value, err := GenerateToken()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrIssuanceFailed, err)
	}

	link, err := s.magicLink(value)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrIssuanceFailed, err)
	}

	now := s.now()
	t := &types.MagicLinkToken{
		TokenHash:         HashToken(value),
		Email:             email,
		TargetInstanceURL: targetURL,
		IssuedAt:          now,
		ExpiresAt:         now.Add(s.cfg.TTL),
	}

	if err := s.tokens.Create(ctx, t); err != nil {
		s.logger.Errorf("failed to persist magic link token: %v", err)
		return nil, "", fmt.Errorf("%w: %w", ErrIssuanceFailed, err)
	}

	s.logger.Security().TokenIssued(email, targetURL)

	return &IssueResult{
		Email:             email,
		TargetInstanceURL: targetURL,
		ExpiresAt:         t.ExpiresAt,
		Token:             value,
	}, link, nil
}

func (s *Service) dispatch(ctx context.Context, msg mail.Message) {
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Errorf("failed to dispatch %q email: %v", msg.Subject, err)
	}
}

// targetURL derives the instance from the first label of the domain, the registry is not consulted
func (s *Service) targetURL(target Target) string {
	if target.UseShared {
		return s.sharedInstanceURL()
	}

	label := tenant.FirstLabel(tenant.Normalize(target.Domain))
	if !tenant.ValidSubdomain(label) {
		return s.sharedInstanceURL()
	}

	return fmt.Sprintf("https://%s.%s", label, s.cfg.BaseDomain)
}

func (s *Service) sharedInstanceURL() string {
	return "https://" + s.cfg.SharedInstanceHost
}

func (s *Service) magicLink(token string) (string, error) {
	u, err := url.Parse(s.cfg.MagicLinkBaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid magic link base url: %w", err)
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func NewService(cfg Config, tokens TokenStoreInterface, mailer MailerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.cfg = cfg
	s.tokens = tokens
	s.mailer = mailer
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
