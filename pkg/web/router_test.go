// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hubsign/landing-service/internal/directory"
	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/mail"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/tokenstore"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/pkg/leads"
	"github.com/hubsign/landing-service/pkg/pricing"
	"github.com/hubsign/landing-service/pkg/signin"
	"github.com/hubsign/landing-service/pkg/tenant"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("hubsign-landing")
	logger := logging.NewNoopLogger()

	registry, err := tenant.NewStaticRegistry(tenant.DefaultTenants())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mailer := mail.NewConsoleTransport("noreply@hubsign.io", logger)

	services := Services{
		Tenant: tenant.NewService(
			tenant.Config{BaseDomain: "hubsign.io", SharedInstanceHost: "app.hubsign.io"},
			registry, directory.NewNoopDirectory(), tracer, monitor, logger,
		),
		Signin: signin.NewService(
			signin.Config{BaseDomain: "hubsign.io", SharedInstanceHost: "app.hubsign.io", MagicLinkBaseURL: "https://hubsign.io/auth/verify", TTL: 15 * time.Minute},
			tokenstore.NewMemoryStore(time.Hour), mailer, tracer, monitor, logger,
		),
		Leads:   leads.NewService("sales@hubsign.io", leads.NewLoggingStore(logger), mailer, tracer, monitor, logger),
		Pricing: pricing.DefaultCatalog(),
	}

	return NewRouter(services, []string{"https://hubsign.io"}, tracer, monitor, logger)
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		method       string
		path         string
		body         string
		expectedCode int
	}{
		{method: http.MethodGet, path: "/api/health/", expectedCode: http.StatusOK},
		{method: http.MethodGet, path: "/api/pricing/", expectedCode: http.StatusOK},
		{method: http.MethodGet, path: "/api/v0/version", expectedCode: http.StatusOK},
		{method: http.MethodGet, path: "/api/v0/metrics", expectedCode: http.StatusOK},
		{method: http.MethodPost, path: "/api/tenant/validate/", body: `{"subdomain":"acme"}`, expectedCode: http.StatusOK},
		{method: http.MethodPost, path: "/api/tenant/validate/", body: `{"subdomain":"nobody"}`, expectedCode: http.StatusNotFound},
		{method: http.MethodPost, path: "/api/auth/lookup/", body: `{"domain":"acme.com"}`, expectedCode: http.StatusOK},
		{method: http.MethodPost, path: "/api/auth/signin/", body: `{"email":"user@acme.com","domain":"acme.com"}`, expectedCode: http.StatusOK},
		{method: http.MethodPost, path: "/api/auth/verify/", body: `{"token":"unknown"}`, expectedCode: http.StatusBadRequest},
		{method: http.MethodPost, path: "/api/newsletter/", body: `{"email":"user@example.com"}`, expectedCode: http.StatusOK},
		{method: http.MethodGet, path: "/api/unknown/", expectedCode: http.StatusNotFound},
	}

	handler := newTestHandler(t)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/lookup/", nil)
	req.Header.Set("Origin", "https://hubsign.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://hubsign.io" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
}
