// Entry point for the payroll-export worker
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ad-altun/PerTiTrack-sub000/internal/config"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/ad-altun/PerTiTrack-sub000/internal/worker"
	"github.com/ad-altun/PerTiTrack-sub000/internal/worker/payrollexport"
	awsconfig "github.com/ad-altun/PerTiTrack-sub000/pkg/aws"
	"github.com/ad-altun/PerTiTrack-sub000/pkg/database"
	"github.com/ad-altun/PerTiTrack-sub000/pkg/logger"
	"github.com/ad-altun/PerTiTrack-sub000/pkg/telemetry"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/rs/zerolog/log"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}

	logger.Setup(cfg.IsLocalDev)

	shutdownTracer, err := telemetry.InitTracer("pertitrack-export-worker", cfg.IsLocalDev)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init tracer")
	}
	defer func() {
		_ = shutdownTracer(context.Background())
	}()

	// DB connection
	db, err := database.NewConnection(cfg)
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

	// Initialize Dependencies
	sqsClient := sqs.NewFromConfig(awsCfg)

	payrollClient := payrollexport.NewHTTPClient(cfg.PayrollAPIURL)
	processor := payrollexport.NewProcessor(repository.NewSummaryRepo(db), payrollClient)

	// Start Worker
	ctx, cancel := context.WithCancel(context.Background())
	app := worker.NewWorker(sqsClient, cfg.ExportSQSQueueURL, processor)

	go func() {
		app.Start(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down worker...")

	// Cancel the context to signal the worker to stop polling.
	cancel()

	log.Info().Msg("Worker exited gracefully")
}
