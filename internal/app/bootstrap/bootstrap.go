package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	promotionservice "payline/contexts/community-engagement/promotion-service"
	promotionpostgres "payline/contexts/community-engagement/promotion-service/adapters/postgres"
	promotionworkers "payline/contexts/community-engagement/promotion-service/application/workers"
	payoutledgerservice "payline/contexts/creator-payouts/payout-ledger-service"
	"payline/contexts/creator-payouts/payout-ledger-service/adapters/contentapi"
	ledgerpostgres "payline/contexts/creator-payouts/payout-ledger-service/adapters/postgres"
	ledgerworkers "payline/contexts/creator-payouts/payout-ledger-service/application/workers"
	ledgerports "payline/contexts/creator-payouts/payout-ledger-service/ports"
	"payline/internal/platform/config"
	"payline/internal/platform/db"
	"payline/internal/platform/httpserver"
	"payline/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres      *db.Postgres
	sweeper       ledgerworkers.EligibilitySweepJob
	outboxRelay   ledgerworkers.OutboxRelay
	promotions    promotionworkers.PromotionConsumer
	pollInterval  time.Duration
	sweepInterval time.Duration
	logger        *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	var contentSource ledgerports.ContentSource
	if strings.TrimSpace(cfg.ContentAPIBaseURL) != "" {
		client, err := contentapi.NewClient(contentapi.Config{
			BaseURL: cfg.ContentAPIBaseURL,
			APIKey:  cfg.ContentAPIKey,
		})
		if err != nil {
			return nil, err
		}
		contentSource = client
	}

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	ledgerModule := payoutledgerservice.NewModule(payoutledgerservice.Dependencies{
		Repository:    ledgerRepo,
		Idempotency:   ledgerRepo,
		Outbox:        ledgerRepo,
		ContentSource: contentSource,
		Clock:         ledgerpostgres.SystemClock{},
		IDGen:         ledgerpostgres.UUIDGenerator{},
		Logger:        logger,
	})

	promotionRepo := promotionpostgres.NewRepository(pg.DB, logger)
	promotionModule := promotionservice.NewModule(promotionservice.Dependencies{
		Repository: promotionRepo,
		Clock:      promotionpostgres.SystemClock{},
		IDGen:      promotionpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	server := httpserver.New(ledgerModule, promotionModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	promotionRepo := promotionpostgres.NewRepository(pg.DB, logger)
	promotionModule := promotionservice.NewModule(promotionservice.Dependencies{
		Repository: promotionRepo,
		Clock:      promotionpostgres.SystemClock{},
		IDGen:      promotionpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	return &WorkerApp{
		postgres: pg,
		sweeper: ledgerworkers.EligibilitySweepJob{
			Repository: ledgerRepo,
			Clock:      ledgerpostgres.SystemClock{},
			BatchSize:  100,
			Disabled:   !cfg.EnableEligibilitySweep,
			Logger:     logger,
		},
		outboxRelay: ledgerworkers.OutboxRelay{
			Outbox:    ledgerRepo,
			Publisher: kafka,
			Clock:     ledgerpostgres.SystemClock{},
			BatchSize: 100,
			Disabled:  !cfg.EnableOutboxRelay,
			Logger:    logger,
		},
		promotions: promotionworkers.PromotionConsumer{
			Subscriber:    kafka,
			Service:       promotionModule.Service,
			Dedup:         promotionRepo,
			Clock:         promotionpostgres.SystemClock{},
			ConsumerGroup: "promotion-service-rank-promoted-cg",
			DedupTTL:      7 * 24 * time.Hour,
			Disabled:      !cfg.EnablePromotionConsumer,
			Logger:        logger,
		},
		pollInterval:  2 * time.Second,
		sweepInterval: cfg.EligibilitySweepInterval,
		logger:        logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.promotions.Start(ctx); err != nil {
		return err
	}

	relayTicker := time.NewTicker(w.pollInterval)
	defer relayTicker.Stop()
	sweepTicker := time.NewTicker(w.sweepInterval)
	defer sweepTicker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"sweep_interval", w.sweepInterval.String(),
	)

	// First sweep runs immediately; the ticker covers steady state.
	if err := w.sweeper.RunOnce(ctx); err != nil {
		return err
	}

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-sweepTicker.C:
			if err := w.sweeper.RunOnce(ctx); err != nil {
				return err
			}
		case <-relayTicker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
