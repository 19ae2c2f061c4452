package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Tripno08/innerview-backend/docs"
	"github.com/Tripno08/innerview-backend/internal/api"
	"github.com/Tripno08/innerview-backend/internal/core/hash"
	"github.com/Tripno08/innerview-backend/internal/core/service"
	"github.com/Tripno08/innerview-backend/internal/core/token"
	"github.com/Tripno08/innerview-backend/internal/infrastructure/config"
	mongodb "github.com/Tripno08/innerview-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Tripno08/innerview-backend/internal/infrastructure/db/redis"
	"github.com/Tripno08/innerview-backend/internal/infrastructure/queue"
	"github.com/Tripno08/innerview-backend/pkg/logger"
)

// @title        Innerview API
// @version      1.0
// @description  Identity, access control, and student tracking for educational institutions.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; write directly and bail.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "innerview-api",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Identity core ---
	hasher := hash.NewBcrypt(cfg.Hash.BcryptCost)
	tokens := token.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)

	// --- Audit pipeline ---
	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(db, rdb, tokens, hasher, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
