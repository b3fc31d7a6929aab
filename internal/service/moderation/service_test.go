package moderation_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/squadup/squadup-backend/internal/app"
	"github.com/squadup/squadup-backend/internal/cache"
	"github.com/squadup/squadup-backend/internal/config"
	"github.com/squadup/squadup-backend/internal/db"
	pb "github.com/squadup/squadup-backend/internal/proto/matchmaking"
	"github.com/squadup/squadup-backend/internal/service/moderation"
)

// setupService wires a Moderation service against in-memory SQLite and
// miniredis. The DB handle is returned so tests can assert on raw rows.
func setupService(t *testing.T) (*moderation.Service, *gorm.DB) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbase.AutoMigrate(db.Models...))

	// one reportable profile
	require.NoError(t, dbase.Create(&db.Profile{
		UserID: 2, Game: "dota", Name: "Player 2", Nickname: "player2",
		Age: 20, Rating: "legend", Region: "eu", Role: db.RolePlayer,
	}).Error)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	appCtx := app.New(cfg, dbase, redisCache, logger, nil)
	return moderation.NewModerationService(appCtx), dbase
}

func TestFileReportValidationAndDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	// self-report rejected
	_, err := svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: 1, ReportedUserId: 1, Game: "dota", Reason: "x"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// empty reason rejected
	_, err = svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: 1, ReportedUserId: 2, Game: "dota"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: 1, ReportedUserId: 2, Game: "dota", Reason: "offensive bio"})
	require.NoError(t, err)
	assert.True(t, resp.Created)

	// duplicate triple is a no-op, not an error
	resp, err = svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: 1, ReportedUserId: 2, Game: "dota", Reason: "again"})
	require.NoError(t, err)
	assert.False(t, resp.Created)
}

// TestResolveReportBanFlow runs the full moderation path: file → queue →
// ban-resolve → banned user, empty queue, second resolution rejected.
func TestResolveReportBanFlow(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: 1, ReportedUserId: 2, Game: "dota", Reason: "harassment"})
	require.NoError(t, err)

	queue, err := svc.ListPendingReports(ctx, &pb.ListPendingReportsRequest{})
	require.NoError(t, err)
	require.Len(t, queue.Reports, 1)
	report := queue.Reports[0]
	assert.Equal(t, "pending", report.Status)

	_, err = svc.ResolveReport(ctx, &pb.ResolveReportRequest{ReportId: report.Id, Action: "ban", ReviewerUserId: 500})
	require.NoError(t, err)

	// reported user is banned and their profile is gone
	banResp, err := svc.CheckBan(ctx, &pb.CheckBanRequest{UserId: 2})
	require.NoError(t, err)
	assert.True(t, banResp.Banned)
	assert.NotZero(t, banResp.ExpiresUnix)

	var count int64
	gdb.Model(&db.Profile{}).Where("user_id = ?", 2).Count(&count)
	assert.Zero(t, count)

	queue, err = svc.ListPendingReports(ctx, &pb.ListPendingReportsRequest{})
	require.NoError(t, err)
	assert.Len(t, queue.Reports, 0)

	// a report resolves exactly once
	_, err = svc.ResolveReport(ctx, &pb.ResolveReportRequest{ReportId: report.Id, Action: "dismiss", ReviewerUserId: 500})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestResolveReportDismissKeepsProfile(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: 1, ReportedUserId: 2, Game: "dota", Reason: "bad vibes"})
	require.NoError(t, err)

	queue, err := svc.ListPendingReports(ctx, &pb.ListPendingReportsRequest{})
	require.NoError(t, err)
	require.Len(t, queue.Reports, 1)

	_, err = svc.ResolveReport(ctx, &pb.ResolveReportRequest{ReportId: queue.Reports[0].Id, Action: "dismiss", ReviewerUserId: 500})
	require.NoError(t, err)

	var count int64
	gdb.Model(&db.Profile{}).Where("user_id = ?", 2).Count(&count)
	assert.Equal(t, int64(1), count)

	banResp, err := svc.CheckBan(ctx, &pb.CheckBanRequest{UserId: 2})
	require.NoError(t, err)
	assert.False(t, banResp.Banned)
}

func TestResolveReportInvalidAction(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.ResolveReport(ctx, &pb.ResolveReportRequest{ReportId: 1, Action: "obliterate", ReviewerUserId: 500})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.ResolveReport(ctx, &pb.ResolveReportRequest{ReportId: 12345, Action: "dismiss", ReviewerUserId: 500})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestBanAndUnban(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	// zero duration falls back to the configured default
	_, err := svc.BanUser(ctx, &pb.BanUserRequest{UserId: 7, Reason: "toxic"})
	require.NoError(t, err)

	resp, err := svc.CheckBan(ctx, &pb.CheckBanRequest{UserId: 7})
	require.NoError(t, err)
	assert.True(t, resp.Banned)
	assert.NotZero(t, resp.ExpiresUnix)

	_, err = svc.UnbanUser(ctx, &pb.UnbanUserRequest{UserId: 7})
	require.NoError(t, err)

	resp, err = svc.CheckBan(ctx, &pb.CheckBanRequest{UserId: 7})
	require.NoError(t, err)
	assert.False(t, resp.Banned)
	assert.Zero(t, resp.ExpiresUnix)

	// unban with no ban is a quiet success
	_, err = svc.UnbanUser(ctx, &pb.UnbanUserRequest{UserId: 7})
	assert.NoError(t, err)
}
