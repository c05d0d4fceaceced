// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tenantflow/tenantflow/internal/authorization"
	"github.com/tenantflow/tenantflow/internal/config"
	"github.com/tenantflow/tenantflow/internal/db"
	"github.com/tenantflow/tenantflow/internal/identity"
	"github.com/tenantflow/tenantflow/internal/kratos"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/monitoring/prometheus"
	"github.com/tenantflow/tenantflow/internal/openfga"
	"github.com/tenantflow/tenantflow/internal/storage"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/pkg/authentication"
	"github.com/tenantflow/tenantflow/pkg/property"
	"github.com/tenantflow/tenantflow/pkg/web"
	"github.com/tenantflow/tenantflow/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the TenantFlow API server, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %s", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenantflow", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(
			ofga,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authorization is enabled")
		if err := authorizer.ValidateModel(context.Background()); err != nil {
			return fmt.Errorf("invalid authorization model provided: %v", err)
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	propertyService := property.NewService(
		s,
		dbClient,
		authorizer,
		kratosClient,
		specs.TenantDefaultPassword,
		tracer,
		monitor,
		logger,
	)
	webhookService := webhooks.NewService(s, authorizer, tracer, monitor, logger)

	authenticate, err := authenticationMiddleware(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	// gRPC only carries the health service, probed by the orchestrator
	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%v", specs.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	go func() {
		logger.Infof("Starting gRPC server on port %v", specs.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("failed to serve gRPC: %v", err)
		}
	}()

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			RateLimitRPS:       specs.RateLimitRPS,
			RateLimitBurst:     specs.RateLimitBurst,
		},
		authenticate,
		propertyService,
		webhookService,
		dbClient,
		tracer,
		monitor,
		logger,
	)
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
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	healthServer.Shutdown()
	grpcServer.GracefulStop()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func authenticationMiddleware(
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (func(http.Handler) http.Handler, error) {
	if specs.AuthenticationMode == authentication.ModeHeader {
		logger.Warn("trusting the identity header, the API must only be reachable through the proxy")
		return identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware, nil
	}

	verifier, err := authentication.NewVerifier(
		context.Background(),
		authentication.Config{
			Mode:            specs.AuthenticationMode,
			KratosPublicURL: specs.KratosPublicURL,
			Issuer:          specs.AuthenticationIssuer,
			JwksURL:         specs.AuthenticationJwksURL,
			Policy: authentication.Policy{
				AllowedSubjects: specs.AuthenticationAllowedSubjects,
				RequiredScope:   specs.AuthenticationRequiredScope,
				AcceptRoleClaim: specs.AuthenticationAcceptRoleClaim,
			},
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up authentication: %v", err)
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
}
