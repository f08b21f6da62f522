// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var testConfig = Config{BaseDomain: "hubsign.io", SharedInstanceHost: "app.hubsign.io"}

func newTestService(ctrl *gomock.Controller, cfg Config, registry RegistryInterface, directory DirectoryInterface, method string) *Service {
	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), method).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	return NewService(cfg, registry, directory, mockTracer, monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestService_ResolveSubdomain(t *testing.T) {
	notFound := &Resolution{SharedInstanceURL: "https://app.hubsign.io", CanCreateAccount: true}

	tests := []struct {
		name        string
		input       string
		cfg         Config
		setupMocks  func(*MockRegistryInterface)
		expected    *Resolution
		expectedErr error
	}{
		{
			name:  "active tenant",
			input: "acme",
			cfg:   testConfig,
			setupMocks: func(r *MockRegistryInterface) {
				r.EXPECT().LookupSubdomain(gomock.Any(), "acme").
					Return(&types.Tenant{Subdomain: "acme", DisplayName: "Acme Inc", Active: true}, nil)
			},
			expected: &Resolution{Found: true, TenantName: "Acme Inc", Subdomain: "acme", RedirectURL: "https://acme.hubsign.io"},
		},
		{
			name:  "input is normalized before lookup",
			input: "  ACME ",
			cfg:   testConfig,
			setupMocks: func(r *MockRegistryInterface) {
				r.EXPECT().LookupSubdomain(gomock.Any(), "acme").
					Return(&types.Tenant{Subdomain: "acme", DisplayName: "Acme Inc", Active: true}, nil)
			},
			expected: &Resolution{Found: true, TenantName: "Acme Inc", Subdomain: "acme", RedirectURL: "https://acme.hubsign.io"},
		},
		{
			name:  "debug mode uses http",
			input: "acme",
			cfg:   Config{BaseDomain: "hubsign.io", SharedInstanceHost: "app.hubsign.io", Debug: true},
			setupMocks: func(r *MockRegistryInterface) {
				r.EXPECT().LookupSubdomain(gomock.Any(), "acme").
					Return(&types.Tenant{Subdomain: "acme", DisplayName: "Acme Inc", Active: true}, nil)
			},
			expected: &Resolution{Found: true, TenantName: "Acme Inc", Subdomain: "acme", RedirectURL: "http://acme.hubsign.io"},
		},
		{
			name:  "inactive tenant looks absent",
			input: "acme",
			cfg:   testConfig,
			setupMocks: func(r *MockRegistryInterface) {
				r.EXPECT().LookupSubdomain(gomock.Any(), "acme").
					Return(&types.Tenant{Subdomain: "acme", DisplayName: "Acme Inc", Active: false}, nil)
			},
			expected: notFound,
		},
		{
			name:  "absent tenant",
			input: "nobody",
			cfg:   testConfig,
			setupMocks: func(r *MockRegistryInterface) {
				r.EXPECT().LookupSubdomain(gomock.Any(), "nobody").Return(nil, storage.ErrNotFound)
			},
			expected: notFound,
		},
		{
			name:        "invalid format skips lookup",
			input:       "-bad-",
			cfg:         testConfig,
			setupMocks:  func(r *MockRegistryInterface) {},
			expectedErr: ErrInvalidFormat,
		},
		{
			name:  "registry failure",
			input: "acme",
			cfg:   testConfig,
			setupMocks: func(r *MockRegistryInterface) {
				r.EXPECT().LookupSubdomain(gomock.Any(), "acme").Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("failed to look up tenant"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegistry := NewMockRegistryInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			tt.setupMocks(mockRegistry)

			s := newTestService(ctrl, tt.cfg, mockRegistry, mockDirectory, "tenant.Service.ResolveSubdomain")

			res, err := s.ResolveSubdomain(context.Background(), tt.input)

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if errors.Is(tt.expectedErr, ErrInvalidFormat) && !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *res != *tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, res)
			}
		})
	}
}

func TestService_ResolveDomain(t *testing.T) {
	notFound := &Resolution{SharedInstanceURL: "https://app.hubsign.io", CanCreateAccount: true}

	tests := []struct {
		name        string
		input       string
		setupMocks  func(*MockDirectoryInterface)
		expected    *Resolution
		expectedErr error
	}{
		{
			name:  "directory match",
			input: "HTTPS://Acme.COM/",
			setupMocks: func(d *MockDirectoryInterface) {
				d.EXPECT().LookupDomain(gomock.Any(), "acme.com").
					Return(&types.Tenant{Subdomain: "acme", DisplayName: "Acme Inc", Active: true}, nil)
			},
			expected: &Resolution{Found: true, TenantName: "Acme Inc", Subdomain: "acme", RedirectURL: "https://acme.hubsign.io"},
		},
		{
			name:  "no directory match",
			input: "acme.com",
			setupMocks: func(d *MockDirectoryInterface) {
				d.EXPECT().LookupDomain(gomock.Any(), "acme.com").Return(nil, storage.ErrNotFound)
			},
			expected: notFound,
		},
		{
			name:  "inactive match",
			input: "acme.com",
			setupMocks: func(d *MockDirectoryInterface) {
				d.EXPECT().LookupDomain(gomock.Any(), "acme.com").
					Return(&types.Tenant{Subdomain: "acme", DisplayName: "Acme Inc", Active: false}, nil)
			},
			expected: notFound,
		},
		{
			name:  "directory failure falls back to shared instance",
			input: "acme.com",
			setupMocks: func(d *MockDirectoryInterface) {
				d.EXPECT().LookupDomain(gomock.Any(), "acme.com").Return(nil, errors.New("timeout"))
			},
			expected: notFound,
		},
		{
			name:        "bare label is not a domain",
			input:       "acme",
			setupMocks:  func(d *MockDirectoryInterface) {},
			expectedErr: ErrInvalidFormat,
		},
		{
			name:        "garbage",
			input:       "not a domain!",
			setupMocks:  func(d *MockDirectoryInterface) {},
			expectedErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegistry := NewMockRegistryInterface(ctrl)
			mockDirectory := NewMockDirectoryInterface(ctrl)
			tt.setupMocks(mockDirectory)

			s := newTestService(ctrl, testConfig, mockRegistry, mockDirectory, "tenant.Service.ResolveDomain")

			res, err := s.ResolveDomain(context.Background(), tt.input)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *res != *tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, res)
			}
		})
	}
}

func TestService_ResolveSubdomainIsIdempotent(t *testing.T) {
	registry, err := NewStaticRegistry(DefaultTenants())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctrl := gomock.NewController(t)
	s := newTestService(ctrl, testConfig, registry, NewMockDirectoryInterface(ctrl), "tenant.Service.ResolveSubdomain")

	first, err := s.ResolveSubdomain(context.Background(), "demo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := s.ResolveSubdomain(context.Background(), "DEMO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *first != *second {
		t.Errorf("expected identical resolutions, got %+v and %+v", first, second)
	}
}
