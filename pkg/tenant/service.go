// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	BaseDomain         string
	SharedInstanceHost string
	// Debug switches tenant redirects to plain http
	Debug bool
}

// Resolution is where a client should sign in. Inactive and unknown tenants yield the
// same not-found value.
type Resolution struct {
	Found             bool
	TenantName        string
	Subdomain         string
	RedirectURL       string
	SharedInstanceURL string
	CanCreateAccount  bool
}

type Service struct {
	cfg Config

	registry  RegistryInterface
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveDomain resolves a full domain such as a company email domain
func (s *Service) ResolveDomain(ctx context.Context, input string) (*Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ResolveDomain")
	defer span.End()

	domain := Normalize(input)
	if !ValidDomain(domain) {
		return nil, ErrInvalidFormat
	}

	t, err := s.directory.LookupDomain(ctx, domain)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("tenant directory lookup failed, falling back to shared instance: %v", err)
		}
		return s.notFound(), nil
	}

	return s.resolution(t), nil
}

// ResolveSubdomain resolves a bare tenant label such as "acme"
func (s *Service) ResolveSubdomain(ctx context.Context, input string) (*Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ResolveSubdomain")
	defer span.End()

	subdomain := Normalize(input)
	if !ValidSubdomain(subdomain) {
		return nil, ErrInvalidFormat
	}

	t, err := s.registry.LookupSubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return s.notFound(), nil
		}
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	return s.resolution(t), nil
}

func (s *Service) resolution(t *types.Tenant) *Resolution {
	if t == nil || !t.Active {
		return s.notFound()
	}

	return &Resolution{
		Found:       true,
		TenantName:  t.DisplayName,
		Subdomain:   t.Subdomain,
		RedirectURL: s.RedirectURL(t.Subdomain),
	}
}

func (s *Service) notFound() *Resolution {
	return &Resolution{
		SharedInstanceURL: s.SharedInstanceURL(),
		CanCreateAccount:  true,
	}
}

// RedirectURL is the dedicated instance address for subdomain
func (s *Service) RedirectURL(subdomain string) string {
	protocol := "https"
	if s.cfg.Debug {
		protocol = "http"
	}

	return fmt.Sprintf("%s://%s.%s", protocol, subdomain, s.cfg.BaseDomain)
}

func (s *Service) SharedInstanceURL() string {
	return "https://" + s.cfg.SharedInstanceHost
}

func NewService(cfg Config, registry RegistryInterface, directory DirectoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.cfg = cfg
	s.registry = registry
	s.directory = directory

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
