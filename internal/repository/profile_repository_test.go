package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/squadup/squadup-backend/internal/db"
	"github.com/squadup/squadup-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB (shared cache so transactions see the same database)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.AutoMigrate(db.Models...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func testProfile(userID uint64, game string) *db.Profile {
	return &db.Profile{
		UserID:    userID,
		Game:      game,
		Name:      fmt.Sprintf("Player %d", userID),
		Nickname:  fmt.Sprintf("player%d", userID),
		Age:       21,
		Rating:    "legend",
		Region:    "eu",
		Role:      db.RolePlayer,
		Positions: []string{"mid"},
		Goals:     []string{"ranked grind"},
	}
}

func TestUpsertAndGetProfile(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Upsert(ctx, testProfile(1, "dota")))

	got, err := repo.Get(ctx, 1, "dota")
	require.NoError(t, err)
	assert.Equal(t, "player1", got.Nickname)
	assert.Equal(t, "legend", got.Rating)
	assert.Equal(t, []string{"mid"}, got.Positions)

	// user row is upserted alongside
	var user db.User
	require.NoError(t, dbase.First(&user, "id = ?", 1).Error)
	assert.Equal(t, "player1", user.Username)
	assert.Equal(t, "dota", user.CurrentGame)

	// repeat upsert overwrites every attribute
	edited := testProfile(1, "dota")
	edited.Rating = "ancient"
	edited.Positions = []string{"carry", "mid"}
	require.NoError(t, repo.Upsert(ctx, edited))

	got, err = repo.Get(ctx, 1, "dota")
	require.NoError(t, err)
	assert.Equal(t, "ancient", got.Rating)
	assert.Equal(t, []string{"carry", "mid"}, got.Positions)

	// still a single row per (user, game)
	var count int64
	dbase.Model(&db.Profile{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProfilesIndependentPerGame(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, repo.Upsert(ctx, testProfile(1, "dota")))
	cs := testProfile(1, "cs")
	cs.Rating = "global"
	require.NoError(t, repo.Upsert(ctx, cs))

	got, err := repo.Get(ctx, 1, "dota")
	require.NoError(t, err)
	assert.Equal(t, "legend", got.Rating)

	got, err = repo.Get(ctx, 1, "cs")
	require.NoError(t, err)
	assert.Equal(t, "global", got.Rating)
}

func TestGetProfileNotFound(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	_, err := repo.Get(ctx, 42, "dota")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteProfileCascade(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	interactions := repository.NewInteractionRepository(dbase)
	moderation := repository.NewModerationRepository(dbase)

	require.NoError(t, profiles.Upsert(ctx, testProfile(1, "dota")))
	require.NoError(t, profiles.Upsert(ctx, testProfile(2, "dota")))

	// likes in both directions → match
	_, err := interactions.Like(ctx, 1, 2, "dota", "")
	require.NoError(t, err)
	_, err = interactions.Like(ctx, 2, 1, "dota", "")
	require.NoError(t, err)

	require.NoError(t, interactions.SkipCandidate(ctx, 2, 1, "dota"))
	require.NoError(t, interactions.SkipInboundLike(ctx, 2, 1, "dota"))

	_, err = moderation.FileReport(ctx, 2, 1, "dota", "smurf")
	require.NoError(t, err)

	// unrelated game survives the cascade
	require.NoError(t, profiles.Upsert(ctx, testProfile(1, "cs")))

	require.NoError(t, profiles.Delete(ctx, 1, "dota"))

	_, err = profiles.Get(ctx, 1, "dota")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var likes, matches, searchSkips, likeSkips, reports int64
	dbase.Model(&db.Like{}).Where("game = ?", "dota").Count(&likes)
	dbase.Model(&db.Match{}).Where("game = ?", "dota").Count(&matches)
	dbase.Model(&db.SearchSkip{}).Where("game = ?", "dota").Count(&searchSkips)
	dbase.Model(&db.LikeSkip{}).Where("game = ?", "dota").Count(&likeSkips)
	dbase.Model(&db.Report{}).Where("game = ?", "dota").Count(&reports)
	assert.Zero(t, likes)
	assert.Zero(t, matches)
	assert.Zero(t, searchSkips)
	assert.Zero(t, likeSkips)
	assert.Zero(t, reports)

	// other game untouched
	_, err = profiles.Get(ctx, 1, "cs")
	assert.NoError(t, err)

	// deleting an absent profile is a no-op success
	assert.NoError(t, profiles.Delete(ctx, 1, "dota"))
}
