// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/internal/types"
)

type Config struct {
	BaseURL string
	APIKey  string

	ClientID     string
	ClientSecret string
	TokenURL     string
	IssuerURL    string

	Timeout time.Duration
}

func (c *Config) usesClientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type remoteTenant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	Domain    string `json:"domain"`
	Active    *bool  `json:"active"`
}

func (r *remoteTenant) toTenant() *types.Tenant {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &types.Tenant{
		ID:          r.ID,
		Subdomain:   strings.ToLower(r.Subdomain),
		Domain:      r.Domain,
		DisplayName: r.Name,
		Active:      active,
	}
}

// RemoteDirectory looks tenants up in the external tenant API
type RemoteDirectory struct {
	client *resty.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *RemoteDirectory) LookupDomain(ctx context.Context, domain string) (*types.Tenant, error) {
	ctx, span := r.tracer.Start(ctx, "directory.RemoteDirectory.LookupDomain")
	defer span.End()

	var result remoteTenant

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("domain", domain).
		SetResult(&result).
		Get("/tenants/lookup")

	if err != nil {
		r.setAvailability(0)
		return nil, fmt.Errorf("tenant directory request failed: %w", err)
	}

	r.setAvailability(1)

	switch resp.StatusCode() {
	case http.StatusOK:
		if result.Subdomain == "" {
			return nil, fmt.Errorf("tenant directory returned a tenant without subdomain")
		}
		return result.toTenant(), nil
	case http.StatusNotFound:
		return nil, storage.ErrNotFound
	default:
		return nil, fmt.Errorf("tenant directory returned status %d", resp.StatusCode())
	}
}

func (r *RemoteDirectory) setAvailability(v float64) {
	if err := r.monitor.SetDependencyAvailability(map[string]string{"component": "tenant_directory"}, v); err != nil {
		r.logger.Debugf("failed to set tenant directory availability metric: %v", err)
	}
}

// NewRemoteDirectory builds the directory client. With client credentials configured the
// token endpoint is discovered from the issuer when no explicit token URL is given.
func NewRemoteDirectory(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RemoteDirectory, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("tenant directory base url is required")
	}

	base := &http.Client{Transport: tracing.NewTransport(nil), Timeout: cfg.Timeout}

	var client *resty.Client

	if cfg.usesClientCredentials() {
		oauthCtx := context.WithValue(ctx, oauth2.HTTPClient, base)

		tokenURL := cfg.TokenURL
		if tokenURL == "" {
			if cfg.IssuerURL == "" {
				return nil, fmt.Errorf("either a token url or an issuer url is required for client credentials")
			}

			provider, err := oidc.NewProvider(oauthCtx, cfg.IssuerURL)
			if err != nil {
				return nil, fmt.Errorf("failed to discover issuer %s: %w", cfg.IssuerURL, err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		}

		// the token source outlives ctx, it refreshes on its own
		httpClient := cc.Client(context.WithValue(context.Background(), oauth2.HTTPClient, base))
		httpClient.Timeout = cfg.Timeout

		client = resty.NewWithClient(httpClient)
	} else {
		client = resty.NewWithClient(base)
		if cfg.APIKey != "" {
			client.SetAuthToken(cfg.APIKey)
		}
	}

	client.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")

	r := new(RemoteDirectory)

	r.client = client

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r, nil
}
