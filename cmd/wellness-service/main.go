package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moodmate/backend/internal/ai"
	"github.com/moodmate/backend/internal/ai/openai"
	"github.com/moodmate/backend/internal/api"
	"github.com/moodmate/backend/internal/config"
	"github.com/moodmate/backend/internal/health"
	"github.com/moodmate/backend/internal/logger"
	"github.com/moodmate/backend/internal/store"
	"github.com/moodmate/backend/internal/store/factory"
)

func main() {
	// Optional environment flag override (development | testing | production)
	environment := flag.String("environment", "", "Override MOODMATE_ENVIRONMENT")
	flag.Parse()

	log := logger.New("wellness-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *environment != "" {
		cfg.Environment = config.Environment(*environment)
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid environment override")
		}
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Wellness service starting…")

	// -------- Storage layer -----------------
	ctx, cancelMonitors := context.WithCancel(context.Background())
	defer cancelMonitors()

	st, err := factory.NewStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Store unavailable")
	}

	// -------- AI provider -------------------
	provider := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	aiSvc := ai.NewService(provider, log)

	// -------- Health monitor ----------------
	storeChecker := store.NewStoreHealthChecker(st, log, 2*time.Second)
	providerChecker := ai.NewProviderHealthChecker(provider, log, 5*time.Second)
	serviceHealth := health.NewServiceHealthChecker(log, storeChecker, providerChecker)
	go storeChecker.Start(ctx, 30*time.Second)
	go providerChecker.Start(ctx, 30*time.Second)
	go serviceHealth.Start(ctx, 10*time.Second)

	// -------- Router & Server ---------------
	router := api.NewRouter(cfg, st, aiSvc, serviceHealth, log)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
