package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/squadup/squadup-backend/internal/app"
	"github.com/squadup/squadup-backend/internal/cache"
	"github.com/squadup/squadup-backend/internal/config"
	"github.com/squadup/squadup-backend/internal/db"
	"github.com/squadup/squadup-backend/internal/logger"
	"github.com/squadup/squadup-backend/internal/server"
	"github.com/squadup/squadup-backend/internal/service/matchmaker"
	"github.com/squadup/squadup-backend/internal/service/moderation"
)

func main() {
	// optional .env for local development; real deployments set the
	// environment directly
	_ = godotenv.Load()

	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(cfg, database, redisCache, log, nil)

	registrars := []server.Registrar{
		matchmaker.NewRegistrar(appCtx, nil),
		moderation.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, log, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}
