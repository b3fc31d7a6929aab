package config_test

import (
	"testing"
	"time"

	"github.com/squadup/squadup-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "LOG_COMPONENT", "MYSQL_DSN", "DB_NAME",
		"CACHE_PROFILE_TTL_MIN", "CACHE_SEARCH_TTL_MIN", "MODERATION_BAN_DAYS",
	} {
		t.Setenv(key, "")
	}

	cfg := config.New()

	assert.Equal(t, "development", cfg.App.ENV)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "matchmaking", cfg.Log.Component)
	assert.Contains(t, cfg.DB.DSN, "/squadup?")
	assert.Equal(t, 10*time.Minute, cfg.Cache.ProfileTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SearchTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SubscriptionTTL)
	assert.Equal(t, 7, cfg.Moderation.DefaultBanDays)
}

func TestOverrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pw@tcp(db:3306)/other?parseTime=true")
	t.Setenv("LOG_COMPONENT", "worker")
	t.Setenv("CACHE_PROFILE_TTL_MIN", "42")
	t.Setenv("MODERATION_BAN_DAYS", "30")

	cfg := config.New()

	assert.Equal(t, "user:pw@tcp(db:3306)/other?parseTime=true", cfg.DB.DSN)
	assert.Equal(t, "worker", cfg.Log.Component)
	assert.Equal(t, 42*time.Minute, cfg.Cache.ProfileTTL)
	assert.Equal(t, 30, cfg.Moderation.DefaultBanDays)
}
