package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/squadup/squadup-backend/internal/cache"
	"github.com/squadup/squadup-backend/internal/config"
	"github.com/squadup/squadup-backend/internal/events"
)

// AppContext holds shared dependencies (DB, Redis, Logger, Notifier, etc.)
// Every component receives it at construction time; there is no ambient
// global store.
type AppContext struct {
	Cfg        *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Notifier   events.Notifier
}

// New creates a new AppContext. A nil notifier falls back to log-only
// delivery; a nil cache disables acceleration.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, notifier events.Notifier) *AppContext {
	if notifier == nil {
		notifier = events.NewLogNotifier(logger)
	}
	return &AppContext{
		Cfg:        cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Notifier:   notifier,
	}
}
