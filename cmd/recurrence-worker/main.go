// Command recurrence-worker generates the pending recurring entries of every
// user once and exits. It is meant to be run by a scheduler at the start of
// each month.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cofre/internal/config"
	"cofre/internal/database"
	"cofre/internal/dates"
	"cofre/internal/events"
	"cofre/internal/logger"
	"cofre/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Recurrence worker error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	periodFlag := flag.String("period", "", "reference month in YYYY-MM format (default next month)")
	concurrency := flag.Int("concurrency", cfg.WorkerConcurrency, "owners processed in parallel")
	flag.Parse()

	var ref *dates.Period
	if *periodFlag != "" {
		p, err := dates.ParsePeriod(*periodFlag)
		if err != nil {
			return fmt.Errorf("invalid -period: %w", err)
		}
		ref = &p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	publisher, err := events.Connect(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
	if err != nil {
		return fmt.Errorf("failed to connect event publisher: %w", err)
	}
	defer publisher.Close()

	svc := services.NewRecurrenceService(dbManager.DB(), publisher)
	result, err := svc.AdvanceAll(ctx, ref, *concurrency)
	if err != nil {
		return err
	}

	log := logger.Named("recurrence-worker")
	if len(result.FailedOwners) > 0 {
		log.Warnw("some owners failed", "failed_owners", result.FailedOwners)
	}
	log.Infow("done",
		"period", result.Period.String(),
		"owners", result.Owners,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return nil
}
