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

	"github.com/canonical/webhook-service/internal/config"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring/prometheus"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/pkg/authentication"
	"github.com/canonical/webhook-service/pkg/status"
	"github.com/canonical/webhook-service/pkg/web"
)

const serviceName = "webhook-service"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook service",
	Long:  `Run the HTTP API and the gRPC health server. Configuration is read from the environment, see internal/config.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
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

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingRatio, logger))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	app, err := buildComponents(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	var verifier authentication.TokenVerifierInterface = authentication.NewNoopVerifier()
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			ctx,
			authentication.Config{
				Issuer:          specs.JWTIssuer,
				JWKSURL:         specs.JWTJwksURL,
				AllowedSubjects: specs.JWTAllowedSubjects,
				RequiredScope:   specs.JWTRequiredScope,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}
	} else {
		logger.Warn("authentication is disabled, bearer tokens are taken as subjects")
	}

	// gRPC only carries the health service, mirroring the database state
	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%v", specs.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	go func() {
		logger.Infof("Starting gRPC health server on port %v", specs.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("gRPC server stopped: %v", err)
		}
	}()

	statusService := status.NewService(app.dbClient, healthServer, tracer, monitor, logger)
	go statusService.Watch(ctx, specs.StatusInterval)

	if specs.RenewalEnabled {
		app.scheduler.Start(ctx)
		defer app.scheduler.Stop()
	} else {
		logger.Info("renewal scheduler is disabled")
	}

	router := web.NewRouter(
		web.Config{
			AllowedOrigins: specs.CORSAllowedOrigins,
			AdminSubjects:  specs.AdminSubjects,
		},
		app.webhooks,
		app.scheduler,
		app.tokens,
		statusService,
		verifier,
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	healthServer.Shutdown()
	grpcServer.GracefulStop()
	stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
