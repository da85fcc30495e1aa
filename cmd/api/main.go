package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"webhook-verifier/config"
	httpHandler "webhook-verifier/internal/adapter/http/handler"
	redisStorage "webhook-verifier/internal/adapter/storage/redis"
	"webhook-verifier/internal/core/ports"
	"webhook-verifier/internal/service"
	"webhook-verifier/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("WHV_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("webhook_path", cfg.Webhook.Path).
		Dur("max_age", cfg.Webhook.MaxAge).
		Bool("replay_protection", cfg.Webhook.ReplayProtection).
		Msg("Starting webhook verifier")

	ctx := context.Background()

	validator := service.NewRequestValidator(service.Options{
		TimestampHeader: cfg.Webhook.TimestampHeader,
		SignatureHeader: cfg.Webhook.SignatureHeader,
		MaxAge:          cfg.Webhook.MaxAge,
	})

	var (
		replayGuard    ports.ReplayGuard
		healthCheckers []ports.HealthChecker
	)
	if cfg.Webhook.ReplayProtection {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		replayGuard = redisStorage.NewReplayStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Validator:      validator,
		SigningKey:     []byte(cfg.Webhook.SigningKey),
		ReplayGuard:    replayGuard,
		WebhookPath:    cfg.Webhook.Path,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
