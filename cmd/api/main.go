// Entry point for REST API
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/api"
	"github.com/ad-altun/PerTiTrack-sub000/internal/auth"
	"github.com/ad-altun/PerTiTrack-sub000/internal/config"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/messaging"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	awsconfig "github.com/ad-altun/PerTiTrack-sub000/pkg/aws"
	"github.com/ad-altun/PerTiTrack-sub000/pkg/database"
	"github.com/ad-altun/PerTiTrack-sub000/pkg/logger"
	"github.com/ad-altun/PerTiTrack-sub000/pkg/telemetry"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}

	// Configure structured logging
	logger.Setup(cfg.IsLocalDev)

	// Configure OpenTelemetry Tracing
	shutdownTracer, err := telemetry.InitTracer("pertitrack-api", cfg.IsLocalDev)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init tracer")
	}
	defer func() {
		_ = shutdownTracer(context.Background())
	}()

	// DB connection
	db, err := database.NewInstrumentedConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening database")
	}
	defer db.Close()
	log.Info().Msg("Successfully connected to the database.")

	// AWS SDK Config
	awsCfg, err := awsconfig.NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load SDK config")
	}

	// Initialize dependencies
	sqsClient := sqs.NewFromConfig(awsCfg)
	producer := messaging.NewSQSProducer(sqsClient, cfg.NotifySQSQueueURL, cfg.ExportSQSQueueURL)

	userRepo := repository.NewUserRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	recordRepo := repository.NewTimeRecordRepo(db)
	summaryRepo := repository.NewSummaryRepo(db)

	clock := core.SystemClock()
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	router := api.NewRouter(api.Services{
		Auth:      core.NewAuthService(userRepo, employeeRepo, tokens),
		Employees: core.NewEmployeeService(employeeRepo),
		TimeClock: core.NewTimeClockService(recordRepo, summaryRepo, producer, clock, model.LocationType(cfg.DefaultLocation)),
		Clock:     clock,
		Tokens:    tokens,
	})

	// Middleware to inject logger with trace ID
	loggerMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = logger.EnrichContextWithLogger(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	// Wrap the router with OpenTelemetry middleware to create spans for each request
	handler := otelhttp.NewHandler(loggerMiddleware(router), "api")

	serverAddr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: handler,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("API Service starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// The context informs the server it has 5 seconds to finish
	// the requests it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
