// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"time"
)

const (
	BackendStatic   = "static"
	BackendDatabase = "database"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendRemote   = "remote"
	BackendNone     = "none"

	MailConsole = "console"
	MailSMTP    = "smtp"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port        int    `envconfig:"port" default:"8080"`
	ServiceName string `envconfig:"service_name" default:"hubsign-landing"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	BaseDomain         string        `envconfig:"base_domain" default:"hubsign.io"`
	SharedInstanceHost string        `envconfig:"shared_instance_host" default:"app.hubsign.io"`
	MagicLinkTTL       time.Duration `envconfig:"magic_link_ttl" default:"15m"`
	MagicLinkBaseURL   string        `envconfig:"magic_link_base_url" default:"https://hubsign.io/auth/verify"`

	TenantRegistry  string `envconfig:"tenant_registry" default:"static"`
	TenantDirectory string `envconfig:"tenant_directory" default:"none"`
	TokenStore      string `envconfig:"token_store" default:"memory"`

	DSN string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisAddr     string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	DirectoryAPIURL       string        `envconfig:"directory_api_url"`
	DirectoryAPIKey       string        `envconfig:"directory_api_key"`
	DirectoryClientID     string        `envconfig:"directory_client_id"`
	DirectoryClientSecret string        `envconfig:"directory_client_secret"`
	DirectoryTokenURL     string        `envconfig:"directory_token_url"`
	DirectoryIssuerURL    string        `envconfig:"directory_issuer_url"`
	DirectoryTimeout      time.Duration `envconfig:"directory_timeout" default:"10s"`

	MailTransport string        `envconfig:"mail_transport" default:"console"`
	SMTPHost      string        `envconfig:"smtp_host" default:"smtp.sendgrid.net"`
	SMTPPort      int           `envconfig:"smtp_port" default:"587"`
	SMTPUsername  string        `envconfig:"smtp_username"`
	SMTPPassword  string        `envconfig:"smtp_password"`
	MailFrom      string        `envconfig:"mail_from" default:"noreply@hubsign.io"`
	SalesInbox    string        `envconfig:"sales_inbox" default:"sales@hubsign.io"`
	MailWorkers   int           `envconfig:"mail_workers" default:"4"`
	MailTimeout   time.Duration `envconfig:"mail_timeout" default:"30s"`
}

// NeedsDatabase reports whether any configured backend is served by Postgres
func (s *EnvSpec) NeedsDatabase() bool {
	return s.TenantRegistry == BackendDatabase ||
		s.TenantDirectory == BackendDatabase ||
		s.TokenStore == BackendDatabase
}

// Validate checks backend selectors and their required settings
func (s *EnvSpec) Validate() error {
	switch s.TenantRegistry {
	case BackendStatic, BackendDatabase:
	default:
		return fmt.Errorf("invalid tenant_registry %q", s.TenantRegistry)
	}

	switch s.TenantDirectory {
	case BackendNone, BackendDatabase:
	case BackendRemote:
		if s.DirectoryAPIURL == "" {
			return fmt.Errorf("directory_api_url is required when tenant_directory is %q", BackendRemote)
		}
	default:
		return fmt.Errorf("invalid tenant_directory %q", s.TenantDirectory)
	}

	switch s.TokenStore {
	case BackendMemory, BackendDatabase, BackendRedis:
	default:
		return fmt.Errorf("invalid token_store %q", s.TokenStore)
	}

	switch s.MailTransport {
	case MailConsole, MailSMTP:
	default:
		return fmt.Errorf("invalid mail_transport %q", s.MailTransport)
	}

	if s.NeedsDatabase() && s.DSN == "" {
		return fmt.Errorf("DSN is required when a database backend is selected")
	}

	if s.MagicLinkTTL <= 0 {
		return fmt.Errorf("magic_link_ttl must be positive")
	}

	return nil
}
