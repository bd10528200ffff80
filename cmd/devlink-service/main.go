package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/devlink/devlink/internal/api"
	"github.com/devlink/devlink/internal/auth"
	"github.com/devlink/devlink/internal/config"
	"github.com/devlink/devlink/internal/health"
	"github.com/devlink/devlink/internal/platform/factory"
	"github.com/devlink/devlink/internal/platform/logger"
	"github.com/devlink/devlink/internal/store"
)

func main() {
	storeDriver := flag.String("store-driver", "", "Override STORE_DRIVER (postgres, memory)")
	flag.Parse()

	log := logger.New("devlink-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *storeDriver != "" {
		cfg.StoreDriver = *storeDriver
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("devlink service starting…")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := factory.NewStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Store unavailable")
	}

	storeChecker := store.NewHealthChecker(st, log, 2*time.Second)
	monitor := health.NewMonitor(log, storeChecker)
	go storeChecker.Start(ctx, 30*time.Second)
	go monitor.Start(ctx, 30*time.Second)

	registry := prometheus.NewRegistry()

	router := api.NewRouter(api.Deps{
		Config:   cfg,
		Store:    st,
		Tokens:   auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Monitor:  monitor,
		Log:      log,
		Metrics:  registry,
		Gatherer: registry,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
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

	<-ctx.Done()

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
