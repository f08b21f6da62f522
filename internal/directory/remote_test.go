// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/tracing"
)

func newTestDirectory(t *testing.T, cfg Config) *RemoteDirectory {
	t.Helper()

	d, err := NewRemoteDirectory(context.Background(), cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to build directory: %v", err)
	}

	return d
}

func TestRemoteDirectory_LookupDomain(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
		wantErr     bool
		wantActive  bool
	}{
		{
			name:       "found",
			status:     http.StatusOK,
			body:       `{"id":"t1","name":"Acme Inc","subdomain":"ACME","domain":"acme.com"}`,
			wantActive: true,
		},
		{
			name:   "found inactive",
			status: http.StatusOK,
			body:   `{"id":"t1","name":"Acme Inc","subdomain":"acme","active":false}`,
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{}`,
			expectedErr: storage.ErrNotFound,
			wantErr:     true,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "missing subdomain",
			status:  http.StatusOK,
			body:    `{"name":"Acme Inc"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/tenants/lookup" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("domain"); got != "acme.com" {
					t.Errorf("unexpected domain query %q", got)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer secret" {
					t.Errorf("unexpected authorization header %q", got)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			d := newTestDirectory(t, Config{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: time.Second})

			tenant, err := d.LookupDomain(context.Background(), "acme.com")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tenant.Subdomain != "acme" || tenant.DisplayName != "Acme Inc" || tenant.Active != tt.wantActive {
				t.Errorf("unexpected tenant %+v", tenant)
			}
		})
	}
}

func TestRemoteDirectory_ClientCredentialsWithDiscovery(t *testing.T) {
	var issuer string

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                 issuer,
			"authorization_endpoint": issuer + "/oauth2/auth",
			"token_endpoint":         issuer + "/oauth2/token",
			"jwks_uri":               issuer + "/.well-known/jwks.json",
		})
	})
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"cc-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/tenants/lookup", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer cc-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Acme Inc","subdomain":"acme"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	issuer = srv.URL

	d := newTestDirectory(t, Config{
		BaseURL:      srv.URL,
		ClientID:     "client",
		ClientSecret: "secret",
		IssuerURL:    srv.URL,
		Timeout:      time.Second,
	})

	tenant, err := d.LookupDomain(context.Background(), "acme.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tenant.Subdomain != "acme" {
		t.Errorf("unexpected tenant %+v", tenant)
	}
}

func TestNewRemoteDirectory_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing base url", cfg: Config{}},
		{name: "client credentials without token or issuer", cfg: Config{BaseURL: "http://localhost", ClientID: "a", ClientSecret: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRemoteDirectory(context.Background(), tt.cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
			if err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestNoopDirectory_LookupDomain(t *testing.T) {
	if _, err := NewNoopDirectory().LookupDomain(context.Background(), "acme.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
