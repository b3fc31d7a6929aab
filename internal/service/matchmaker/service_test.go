package matchmaker_test

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
	"github.com/squadup/squadup-backend/internal/service/matchmaker"
)

//
// Test helpers
//

// pairEvent is one recorded notifier emission.
type pairEvent struct {
	a, b uint64
	game string
}

// recordingNotifier captures emitted events instead of delivering them.
type recordingNotifier struct {
	matches []pairEvent
	likes   []pairEvent // (to, from)
}

func (n *recordingNotifier) MatchFormed(_ context.Context, userA, userB uint64, game string) {
	n.matches = append(n.matches, pairEvent{userA, userB, game})
}

func (n *recordingNotifier) LikeReceived(_ context.Context, to, from uint64, game string) {
	n.likes = append(n.likes, pairEvent{to, from, game})
}

// seedProfiles inserts bare profiles for users 1..4 in "dota".
func seedProfiles(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	for id := uint64(1); id <= 4; id++ {
		p := db.Profile{
			UserID:    id,
			Game:      "dota",
			Name:      fmt.Sprintf("Player %d", id),
			Nickname:  fmt.Sprintf("player%d", id),
			Age:       20,
			Rating:    "legend",
			Region:    "eu",
			Role:      db.RolePlayer,
			Positions: []string{"mid"},
		}
		require.NoError(t, gdb.Create(&p).Error)
	}
}

// setupService spins up an in-memory SQLite DB, applies migrations, seeds
// test data, starts a miniredis, and wires everything into a Matchmaker
// service instance.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T, subscription matchmaker.SubscriptionChecker) (*matchmaker.Service, *gorm.DB, *recordingNotifier) {
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
	seedProfiles(t, dbase)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests
	notifier := &recordingNotifier{}

	appCtx := app.New(cfg, dbase, redisCache, logger, notifier)
	return matchmaker.NewMatchmakerService(appCtx, subscription), dbase, notifier
}

//
// Tests
//

// TestPutLikeMutualAndEvents walks the full like → match flow and checks the
// emitted events: one LikeReceived for the opening like, one MatchFormed for
// the reciprocal, nothing for the duplicate.
func TestPutLikeMutualAndEvents(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := setupService(t, nil)

	resp, err := svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 1, ToUserId: 2, Game: "dota", Message: "let's queue"})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.False(t, resp.Mutual)
	require.Len(t, notifier.likes, 1)
	assert.Equal(t, pairEvent{2, 1, "dota"}, notifier.likes[0])

	resp, err = svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 2, ToUserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.True(t, resp.Mutual)
	require.Len(t, notifier.matches, 1)
	assert.Equal(t, pairEvent{1, 2, "dota"}, notifier.matches[0])

	// duplicate like: no-op, no events
	resp, err = svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 1, ToUserId: 2, Game: "dota"})
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.False(t, resp.Mutual)
	assert.Len(t, notifier.likes, 1)
	assert.Len(t, notifier.matches, 1)
}

func TestPutLikeSelf(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t, nil)

	_, err := svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 1, ToUserId: 1, Game: "dota"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestGetProfileCacheFirst verifies the read-through cache: a direct DB edit
// stays invisible until an upsert invalidates the entry.
func TestGetProfileCacheFirst(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := setupService(t, nil)

	resp, err := svc.GetProfile(ctx, &pb.GetProfileRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.Equal(t, "legend", resp.Profile.Rating)

	// edit behind the cache's back
	require.NoError(t, gdb.Model(&db.Profile{}).
		Where("user_id = ? AND game = ?", 1, "dota").
		Update("rating", "ancient").Error)

	resp, err = svc.GetProfile(ctx, &pb.GetProfileRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.Equal(t, "legend", resp.Profile.Rating, "stale read expected while cached")

	// an upsert through the service invalidates the entry
	_, err = svc.UpsertProfile(ctx, &pb.UpsertProfileRequest{Profile: &pb.Profile{
		UserId: 1, Game: "dota", Name: "Player 1", Nickname: "player1",
		Age: 20, Rating: "divine", Region: "eu", Role: db.RolePlayer,
	}})
	require.NoError(t, err)

	resp, err = svc.GetProfile(ctx, &pb.GetProfileRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.Equal(t, "divine", resp.Profile.Rating)
}

func TestGetProfileNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t, nil)

	_, err := svc.GetProfile(ctx, &pb.GetProfileRequest{UserId: 42, Game: "dota"})
	require.Error(t, err)
	st := status.Convert(err)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "profile not found", st.Message())
}

func TestUpsertProfileValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t, nil)

	_, err := svc.UpsertProfile(ctx, &pb.UpsertProfileRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.UpsertProfile(ctx, &pb.UpsertProfileRequest{Profile: &pb.Profile{
		UserId: 1, Game: "dota", Role: "wizard",
	}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestSearchCandidatesExcludesLiked checks that the browse pool drops the
// requester and anyone they already liked.
func TestSearchCandidatesExcludesLiked(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t, nil)

	_, err := svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 1, ToUserId: 2, Game: "dota"})
	require.NoError(t, err)

	resp, err := svc.SearchCandidates(ctx, &pb.SearchCandidatesRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)

	ids := map[uint64]bool{}
	for _, p := range resp.Profiles {
		ids[p.UserId] = true
	}
	assert.False(t, ids[1], "requester must not see themselves")
	assert.False(t, ids[2], "already-liked candidate must be excluded")
	assert.True(t, ids[3])
	assert.True(t, ids[4])
}

// TestInboxFlow: likes land in the inbox, a reciprocal like removes the pair,
// a dismissal hides the liker for good.
func TestInboxFlow(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t, nil)

	for _, from := range []uint64{2, 3} {
		_, err := svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: from, ToUserId: 1, Game: "dota", Message: "hi"})
		require.NoError(t, err)
	}

	resp, err := svc.ListLikesInbox(ctx, &pb.ListLikesInboxRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.Len(t, resp.Likers, 2)

	// like back 2 → matched pair leaves the inbox
	_, err = svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 1, ToUserId: 2, Game: "dota"})
	require.NoError(t, err)

	resp, err = svc.ListLikesInbox(ctx, &pb.ListLikesInboxRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	require.Len(t, resp.Likers, 1)
	assert.Equal(t, uint64(3), resp.Likers[0].LikerUserId)
	assert.Equal(t, "hi", resp.Likers[0].Message)

	// dismiss 3 → empty inbox
	_, err = svc.SkipInboundLike(ctx, &pb.SkipInboundLikeRequest{UserId: 1, LikerUserId: 3, Game: "dota"})
	require.NoError(t, err)

	resp, err = svc.ListLikesInbox(ctx, &pb.ListLikesInboxRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.Len(t, resp.Likers, 0)
	assert.Nil(t, resp.NextPaginationToken)
}

func TestListMatchesPartnerIDs(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t, nil)

	_, err := svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 1, ToUserId: 3, Game: "dota"})
	require.NoError(t, err)
	_, err = svc.PutLike(ctx, &pb.PutLikeRequest{FromUserId: 3, ToUserId: 1, Game: "dota"})
	require.NoError(t, err)

	resp, err := svc.ListMatches(ctx, &pb.ListMatchesRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, uint64(3), resp.Matches[0].PartnerUserId)

	// the partner sees the mirror view
	resp, err = svc.ListMatches(ctx, &pb.ListMatchesRequest{UserId: 3, Game: "dota"})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, uint64(1), resp.Matches[0].PartnerUserId)
}

func TestSkipCandidate(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := setupService(t, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.SkipCandidate(ctx, &pb.SkipCandidateRequest{UserId: 1, CandidateUserId: 2, Game: "dota"})
		require.NoError(t, err)
	}

	var skip db.SearchSkip
	require.NoError(t, gdb.First(&skip).Error)
	assert.Equal(t, 2, skip.SkipCount)

	_, err := svc.SkipCandidate(ctx, &pb.SkipCandidateRequest{UserId: 1, CandidateUserId: 1, Game: "dota"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestCheckAccessCaching verifies the subscription gate consults the checker
// once and serves the cached verdict afterwards.
func TestCheckAccessCaching(t *testing.T) {
	ctx := context.Background()

	calls := 0
	checker := func(_ context.Context, _ uint64, _ string) (bool, error) {
		calls++
		return true, nil
	}
	svc, _, _ := setupService(t, checker)

	resp, err := svc.CheckAccess(ctx, &pb.CheckAccessRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)

	resp, err = svc.CheckAccess(ctx, &pb.CheckAccessRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Equal(t, 1, calls)
}

func TestCheckAccessNoChecker(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t, nil)

	resp, err := svc.CheckAccess(ctx, &pb.CheckAccessRequest{UserId: 1, Game: "dota"})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)
}
