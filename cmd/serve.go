// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/hubsign/landing-service/internal/config"
	"github.com/hubsign/landing-service/internal/db"
	"github.com/hubsign/landing-service/internal/directory"
	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/mail"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/monitoring/prometheus"
	"github.com/hubsign/landing-service/internal/storage"
	"github.com/hubsign/landing-service/internal/tokenstore"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/pkg/leads"
	"github.com/hubsign/landing-service/pkg/pricing"
	"github.com/hubsign/landing-service/pkg/signin"
	"github.com/hubsign/landing-service/pkg/tenant"
	"github.com/hubsign/landing-service/pkg/web"
)

const mailQueuePerWorker = 64

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := specs.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(specs.ServiceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ctx := context.Background()

	var s *storage.Storage
	if specs.NeedsDatabase() || specs.DSN != "" {
		dbClient, err := db.NewDBClient(
			db.Config{
				DSN:             specs.DSN,
				MaxConns:        specs.DBMaxConns,
				MinConns:        specs.DBMinConns,
				MaxConnLifetime: specs.DBMaxConnLifetime,
				MaxConnIdleTime: specs.DBMaxConnIdleTime,
				TracingEnabled:  specs.TracingEnabled,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create database client: %w", err)
		}
		defer dbClient.Close()

		s = storage.NewStorage(dbClient, tracer, monitor, logger)
	}

	registry, err := buildRegistry(specs, s)
	if err != nil {
		return err
	}

	dir, err := buildDirectory(ctx, specs, s, tracer, monitor, logger)
	if err != nil {
		return err
	}

	tokens, closeTokens, err := buildTokenStore(ctx, specs, s, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer closeTokens()

	mailer := mail.NewAsyncTransport(
		buildMailTransport(specs, tracer, logger),
		specs.MailWorkers,
		specs.MailWorkers*mailQueuePerWorker,
		specs.MailTimeout,
		logger,
	)

	var leadStore leads.LeadStoreInterface = leads.NewLoggingStore(logger)
	if s != nil {
		leadStore = s
	}

	services := web.Services{
		Tenant: tenant.NewService(
			tenant.Config{
				BaseDomain:         specs.BaseDomain,
				SharedInstanceHost: specs.SharedInstanceHost,
				Debug:              specs.Debug,
			},
			registry,
			dir,
			tracer,
			monitor,
			logger,
		),
		Signin: signin.NewService(
			signin.Config{
				BaseDomain:         specs.BaseDomain,
				SharedInstanceHost: specs.SharedInstanceHost,
				MagicLinkBaseURL:   specs.MagicLinkBaseURL,
				TTL:                specs.MagicLinkTTL,
			},
			tokens,
			mailer,
			tracer,
			monitor,
			logger,
		),
		Leads:   leads.NewService(specs.SalesInbox, leadStore, mailer, tracer, monitor, logger),
		Pricing: pricing.DefaultCatalog(),
	}

	router := web.NewRouter(services, specs.CORSAllowedOrigins, tracer, monitor, logger)

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	if err := mailer.Close(shutdownCtx); err != nil {
		logger.Errorf("pending emails dropped on shutdown: %v", err)
	}

	return serverError
}

func buildRegistry(specs *config.EnvSpec, s *storage.Storage) (tenant.RegistryInterface, error) {
	if specs.TenantRegistry == config.BackendDatabase {
		return tenant.NewDatabaseRegistry(s), nil
	}

	registry, err := tenant.NewStaticRegistry(tenant.DefaultTenants())
	if err != nil {
		return nil, fmt.Errorf("failed to seed tenant registry: %w", err)
	}

	return registry, nil
}

func buildDirectory(
	ctx context.Context,
	specs *config.EnvSpec,
	s *storage.Storage,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (tenant.DirectoryInterface, error) {
	switch specs.TenantDirectory {
	case config.BackendDatabase:
		return directory.NewDatabaseDirectory(s), nil
	case config.BackendRemote:
		d, err := directory.NewRemoteDirectory(
			ctx,
			directory.Config{
				BaseURL:      specs.DirectoryAPIURL,
				APIKey:       specs.DirectoryAPIKey,
				ClientID:     specs.DirectoryClientID,
				ClientSecret: specs.DirectoryClientSecret,
				TokenURL:     specs.DirectoryTokenURL,
				IssuerURL:    specs.DirectoryIssuerURL,
				Timeout:      specs.DirectoryTimeout,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create tenant directory client: %w", err)
		}
		return d, nil
	default:
		return directory.NewNoopDirectory(), nil
	}
}

func buildTokenStore(
	ctx context.Context,
	specs *config.EnvSpec,
	s *storage.Storage,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (signin.TokenStoreInterface, func(), error) {
	switch specs.TokenStore {
	case config.BackendDatabase:
		return tokenstore.NewDatabaseStore(s), func() {}, nil
	case config.BackendRedis:
		store := tokenstore.NewRedisStore(
			tokenstore.NewRedisClient(specs.RedisAddr, specs.RedisPassword, specs.RedisDB),
			specs.MagicLinkTTL,
			tracer,
			monitor,
			logger,
		)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return tokenstore.NewMemoryStore(specs.MagicLinkTTL), func() {}, nil
	}
}

func buildMailTransport(specs *config.EnvSpec, tracer tracing.TracingInterface, logger logging.LoggerInterface) mail.MailTransportInterface {
	if specs.MailTransport == config.MailSMTP {
		return mail.NewSMTPTransport(
			mail.SMTPConfig{
				Host:     specs.SMTPHost,
				Port:     specs.SMTPPort,
				Username: specs.SMTPUsername,
				Password: specs.SMTPPassword,
				From:     specs.MailFrom,
			},
			tracer,
			logger,
		)
	}

	return mail.NewConsoleTransport(specs.MailFrom, logger)
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
