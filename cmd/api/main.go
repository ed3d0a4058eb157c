package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/shopwise/shopping-assistant/docs"
	"github.com/shopwise/shopping-assistant/internal/api"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
	"github.com/shopwise/shopping-assistant/internal/core/service"
	"github.com/shopwise/shopping-assistant/internal/infrastructure/config"
	mongodb "github.com/shopwise/shopping-assistant/internal/infrastructure/db/mongo"
	redisdb "github.com/shopwise/shopping-assistant/internal/infrastructure/db/redis"
	"github.com/shopwise/shopping-assistant/internal/infrastructure/genai"
	"github.com/shopwise/shopping-assistant/internal/infrastructure/queue"
	"github.com/shopwise/shopping-assistant/pkg/logger"
)

// @title        Shopping Assistant API
// @version      1.0
// @description  User directory and AI shopping assistant with multi-backend fallback.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure user indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit pipeline ---
	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// --- Inference backends, most-preferred first ---
	backends := make([]ports.ModelClient, 0, len(cfg.Gemini.Models))
	for _, model := range cfg.Gemini.Models {
		backends = append(backends, genai.NewClient(genai.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   model,
			BaseURL: cfg.Gemini.BaseURL,
		}))
	}

	e := api.NewRouter(api.Deps{
		Mongo:       db,
		Redis:       rdb,
		Backends:    backends,
		Audit:       dispatcher,
		JWTSecret:   cfg.JWTSecret,
		Development: cfg.IsDevelopment(),
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
