package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/squadup/squadup-backend/internal/db"
	svcErr "github.com/squadup/squadup-backend/internal/errors"
	"github.com/squadup/squadup-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFileReportDuplicate(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewModerationRepository(dbase)

	created, err := repo.FileReport(ctx, 1, 2, "dota", "offensive bio")
	require.NoError(t, err)
	assert.True(t, created)

	// same triple → silent no-op
	created, err = repo.FileReport(ctx, 1, 2, "dota", "still offensive")
	require.NoError(t, err)
	assert.False(t, created)

	// different reporter or game is a distinct report
	created, err = repo.FileReport(ctx, 3, 2, "dota", "offensive bio")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.FileReport(ctx, 1, 2, "cs", "offensive bio")
	require.NoError(t, err)
	assert.True(t, created)

	var count int64
	dbase.Model(&db.Report{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestListPendingOldestFirst(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewModerationRepository(dbase)

	_, err := repo.FileReport(ctx, 1, 10, "dota", "first")
	require.NoError(t, err)
	_, err = repo.FileReport(ctx, 2, 10, "dota", "second")
	require.NoError(t, err)
	_, err = repo.FileReport(ctx, 3, 10, "dota", "third")
	require.NoError(t, err)

	reports, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "first", reports[0].Reason)
	assert.Equal(t, "third", reports[2].Reason)

	// resolved reports leave the queue
	require.NoError(t, repo.Resolve(ctx, reports[0].ID, repository.ActionDismiss, 500, 7))

	reports, err = repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "second", reports[0].Reason)
}

func fileReportID(t *testing.T, dbase *gorm.DB, repo *repository.ModerationRepository, reporter, reported uint64, game, reason string) uint64 {
	t.Helper()
	ctx := context.Background()
	created, err := repo.FileReport(ctx, reporter, reported, game, reason)
	require.NoError(t, err)
	require.True(t, created)
	var report db.Report
	require.NoError(t, dbase.
		Where("reporter_id = ? AND reported_id = ? AND game = ?", reporter, reported, game).
		First(&report).Error)
	return report.ID
}

func TestResolveApprove(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	repo := repository.NewModerationRepository(dbase)

	require.NoError(t, profiles.Upsert(ctx, testProfile(2, "dota")))
	id := fileReportID(t, dbase, repo, 1, 2, "dota", "fake rating")

	require.NoError(t, repo.Resolve(ctx, id, repository.ActionApprove, 500, 7))

	_, err := profiles.Get(ctx, 2, "dota")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// the resolved report survives the cascade as the moderation record
	var report db.Report
	require.NoError(t, dbase.First(&report, "id = ?", id).Error)
	assert.Equal(t, db.ReportStatusApproved, report.Status)

	banned, err := repo.IsBanned(ctx, 2)
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestResolveBan(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	repo := repository.NewModerationRepository(dbase)

	require.NoError(t, profiles.Upsert(ctx, testProfile(2, "dota")))
	id := fileReportID(t, dbase, repo, 1, 2, "dota", "harassment")

	require.NoError(t, repo.Resolve(ctx, id, repository.ActionBan, 500, 7))

	_, err := profiles.Get(ctx, 2, "dota")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	banned, err := repo.IsBanned(ctx, 2)
	require.NoError(t, err)
	assert.True(t, banned)

	ban, err := repo.GetBan(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "harassment", ban.Reason)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), ban.ExpiresAt, time.Minute)
}

func TestResolveDismiss(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	repo := repository.NewModerationRepository(dbase)

	require.NoError(t, profiles.Upsert(ctx, testProfile(2, "dota")))
	id := fileReportID(t, dbase, repo, 1, 2, "dota", "bad vibes")

	require.NoError(t, repo.Resolve(ctx, id, repository.ActionDismiss, 500, 7))

	// profile untouched, reviewer stamped
	_, err := profiles.Get(ctx, 2, "dota")
	assert.NoError(t, err)

	var report db.Report
	require.NoError(t, dbase.First(&report, "id = ?", id).Error)
	assert.Equal(t, db.ReportStatusDismissed, report.Status)
	require.NotNil(t, report.ReviewerID)
	assert.Equal(t, uint64(500), *report.ReviewerID)
	assert.NotNil(t, report.ReviewedAt)
}

func TestResolveErrors(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewModerationRepository(dbase)

	// unknown action fails before any lookup
	err := repo.Resolve(ctx, 1, "obliterate", 500, 7)
	assert.True(t, errors.Is(err, svcErr.ErrInvalidAction))

	// absent report
	err = repo.Resolve(ctx, 12345, repository.ActionDismiss, 500, 7)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// double resolution
	id := fileReportID(t, dbase, repo, 1, 2, "dota", "spam")
	require.NoError(t, repo.Resolve(ctx, id, repository.ActionDismiss, 500, 7))
	err = repo.Resolve(ctx, id, repository.ActionBan, 501, 7)
	assert.True(t, errors.Is(err, svcErr.ErrReportResolved))

	// status did not move on the failed second attempt
	var report db.Report
	require.NoError(t, dbase.First(&report, "id = ?", id).Error)
	assert.Equal(t, db.ReportStatusDismissed, report.Status)
}

func TestResolveAfterProfileDeleted(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	repo := repository.NewModerationRepository(dbase)

	require.NoError(t, profiles.Upsert(ctx, testProfile(2, "dota")))
	id := fileReportID(t, dbase, repo, 1, 2, "dota", "smurf")

	// reported user deleted their own profile first; the pending report goes
	// with the cascade, so resolution reports not-found rather than failing
	// halfway
	require.NoError(t, profiles.Delete(ctx, 2, "dota"))

	err := repo.Resolve(ctx, id, repository.ActionBan, 500, 7)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// the explicit ban path still works without a profile
	require.NoError(t, repo.Ban(ctx, 2, "smurf", 7))
	banned, err := repo.IsBanned(ctx, 2)
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBanExpiryAndUnban(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewModerationRepository(dbase)

	require.NoError(t, repo.Ban(ctx, 5, "toxic", 7))

	banned, err := repo.IsBanned(ctx, 5)
	require.NoError(t, err)
	assert.True(t, banned)

	// re-ban replaces the row rather than stacking
	require.NoError(t, repo.Ban(ctx, 5, "worse", 14))
	ban, err := repo.GetBan(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "worse", ban.Reason)

	// an expired row stops applying without deletion
	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, dbase.Model(&db.Ban{}).Where("user_id = ?", 5).
		Update("expires_at", past).Error)

	banned, err = repo.IsBanned(ctx, 5)
	require.NoError(t, err)
	assert.False(t, banned)

	// unban is idempotent
	require.NoError(t, repo.Unban(ctx, 5))
	require.NoError(t, repo.Unban(ctx, 5))

	_, err = repo.GetBan(ctx, 5)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
