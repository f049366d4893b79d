package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/fintrack-be/internal/ai"
	"github.com/grachmannico95/fintrack-be/internal/archive"
	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/internal/eventbus"
	"github.com/grachmannico95/fintrack-be/internal/handler"
	"github.com/grachmannico95/fintrack-be/internal/server"
	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/internal/session"
	"github.com/grachmannico95/fintrack-be/internal/storage"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	healthChecks := map[string]handler.HealthCheck{}

	var repo domain.Repository
	if cfg.Database.URL != "" {
		pg, err := storage.NewPostgresStore(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal(ctx, "Failed to connect to database",
				"error", err,
			)
		}
		defer pg.Close()
		repo = pg
		healthChecks["database"] = pg.Ping
		log.Info(ctx, "PostgreSQL repository initialized")
	} else {
		repo = storage.NewMemoryStore()
		log.Info(ctx, "In-memory repository initialized")
	}

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	historyConsumer := eventbus.NewImportHistoryConsumer(repo, log, cfg.Worker.PoolSize)
	log.Info(ctx, "Import history consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	if err := bus.Subscribe(eventbus.EventTypeImportCompleted, historyConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	var archiver archive.Archiver = archive.NopArchiver{}
	if cfg.Archive.Bucket != "" {
		gcs, err := archive.NewGCSArchiver(ctx, cfg.Archive.Bucket)
		if err != nil {
			log.Fatal(ctx, "Failed to create upload archiver",
				"error", err,
			)
		}
		defer gcs.Close()
		archiver = gcs
		healthChecks["archive"] = gcs.Ping
		log.Info(ctx, "Upload archival enabled",
			"bucket", cfg.Archive.Bucket,
		)
	}

	var completer ai.Completer
	if cfg.Advisor.APIKey != "" {
		gemini, err := ai.NewGeminiCompleter(ctx, cfg.Advisor.APIKey, cfg.Advisor.Model)
		if err != nil {
			log.Fatal(ctx, "Failed to create advisor client",
				"error", err,
			)
		}
		completer = gemini
		log.Info(ctx, "Advisor enabled",
			"model", cfg.Advisor.Model,
		)
	}

	rules := service.DefaultSuggestionRules
	if cfg.Suggestions.RulesFile != "" {
		loaded, err := service.LoadSuggestionRules(cfg.Suggestions.RulesFile)
		if err != nil {
			log.Fatal(ctx, "Failed to load suggestion rules",
				"error", err,
			)
		}
		rules = loaded
	}

	importService := service.NewImportService(service.ImportDeps{
		Sessions:     session.NewMemoryStore(),
		Transactions: repo,
		Categories:   repo,
		History:      repo,
		Publisher:    bus,
		Archiver:     archiver,
		Config:       cfg.Import,
		Logger:       log,
	})
	transactionService := service.NewTransactionService(repo, repo, log)
	categoryService := service.NewCategoryService(repo, log)
	suggestionService := service.NewSuggestionService(repo, repo, rules, log)
	budgetService := service.NewBudgetService(repo, repo, repo, cfg.Budget.WarningThreshold, log)
	advisorService := service.NewAdvisorService(completer, repo, cfg.Advisor, log)
	log.Info(ctx, "Services initialized")

	srv := server.New(cfg, log, server.Handlers{
		Health:      handler.NewHealthHandler(healthChecks, log),
		Import:      handler.NewImportHandler(importService, cfg.Import.MaxUploadBytes, log),
		Transaction: handler.NewTransactionHandler(transactionService, log),
		Category:    handler.NewCategoryHandler(categoryService, log),
		Suggestion:  handler.NewSuggestionHandler(suggestionService, log),
		Budget:      handler.NewBudgetHandler(budgetService, log),
		Advisor:     handler.NewAdvisorHandler(advisorService, log),
	})
	log.Info(ctx, "Handlers initialized")

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first so in-flight commits can still publish.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
