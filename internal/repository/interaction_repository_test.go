package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/squadup/squadup-backend/internal/db"
	"github.com/squadup/squadup-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeCreatesAndMatches(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	// fresh like, no reverse edge yet
	res, err := repo.Like(ctx, 1, 2, "dota", "let's queue")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.False(t, res.Matched)

	// reciprocal like completes the pair
	res, err = repo.Like(ctx, 2, 1, "dota", "")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.True(t, res.Matched)

	// exactly one match row, canonical order
	var matches []db.Match
	require.NoError(t, dbase.Find(&matches).Error)
	require.Len(t, matches, 1)
	assert.Equal(t, uint64(1), matches[0].UserAID)
	assert.Equal(t, uint64(2), matches[0].UserBID)

	// repeat like is a defined no-op
	res, err = repo.Like(ctx, 1, 2, "dota", "again")
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.False(t, res.Matched)

	dbase.Find(&matches)
	assert.Len(t, matches, 1)
}

// TestConcurrentReciprocalLikes fires both directions of a like pair from two
// goroutines. Exactly one match row must come out, reported as Matched by
// exactly one of the two calls, whichever interleaving the scheduler picks.
// Writer contention surfaces as a retryable error here, hence the loop.
func TestConcurrentReciprocalLikes(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	var wg sync.WaitGroup
	results := make([]repository.LikeResult, 2)
	errs := make([]error, 2)

	likeWithRetry := func(slot int, from, to uint64) {
		defer wg.Done()
		for attempt := 0; attempt < 50; attempt++ {
			results[slot], errs[slot] = repo.Like(ctx, from, to, "dota", "")
			if errs[slot] == nil {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}

	wg.Add(2)
	go likeWithRetry(0, 1, 2)
	go likeWithRetry(1, 2, 1)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var matches []db.Match
	require.NoError(t, dbase.Find(&matches).Error)
	require.Len(t, matches, 1)
	assert.Equal(t, uint64(1), matches[0].UserAID)
	assert.Equal(t, uint64(2), matches[0].UserBID)

	assert.True(t, results[0].Created)
	assert.True(t, results[1].Created)
	assert.NotEqual(t, results[0].Matched, results[1].Matched,
		"exactly one of the two calls must report the match")
}

func TestLikeCanonicalPairOrder(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	// higher id initiates
	_, err := repo.Like(ctx, 9, 3, "cs", "")
	require.NoError(t, err)
	res, err := repo.Like(ctx, 3, 9, "cs", "")
	require.NoError(t, err)
	assert.True(t, res.Matched)

	var match db.Match
	require.NoError(t, dbase.First(&match).Error)
	assert.Equal(t, uint64(3), match.UserAID)
	assert.Equal(t, uint64(9), match.UserBID)
}

func TestLikesScopedPerGame(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	_, err := repo.Like(ctx, 1, 2, "dota", "")
	require.NoError(t, err)

	// reverse like in another game must not match
	res, err := repo.Like(ctx, 2, 1, "cs", "")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.False(t, res.Matched)

	liked, err := repo.HasLiked(ctx, 1, 2, "dota")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, 1, 2, "cs")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestSkipCandidateIncrements(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	require.NoError(t, repo.SkipCandidate(ctx, 1, 2, "dota"))
	require.NoError(t, repo.SkipCandidate(ctx, 1, 2, "dota"))
	require.NoError(t, repo.SkipCandidate(ctx, 1, 2, "dota"))

	var skip db.SearchSkip
	require.NoError(t, dbase.First(&skip).Error)
	assert.Equal(t, 3, skip.SkipCount)
}

func TestSkipInboundLikeIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	require.NoError(t, repo.SkipInboundLike(ctx, 1, 2, "dota"))
	require.NoError(t, repo.SkipInboundLike(ctx, 1, 2, "dota"))

	var count int64
	dbase.Model(&db.LikeSkip{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestListInboxExclusions(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	// likers 1, 2, 3 all liked 99
	for _, from := range []uint64{1, 2, 3} {
		_, err := repo.Like(ctx, from, 99, "dota", "")
		require.NoError(t, err)
	}

	// 99 liked back 2 → matched pair leaves the inbox
	_, err := repo.Like(ctx, 99, 2, "dota", "")
	require.NoError(t, err)

	// 99 dismissed liker 3
	require.NoError(t, repo.SkipInboundLike(ctx, 99, 3, "dota"))

	likes, next, err := repo.ListInbox(ctx, 99, "dota", nil, 10)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, likes, 1)
	assert.Equal(t, uint64(1), likes[0].FromUserID)
}

func TestListInboxPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	for from := uint64(1); from <= 7; from++ {
		_, err := repo.Like(ctx, from, 99, "dota", "hi")
		require.NoError(t, err)
	}

	// page 1
	likes, next, err := repo.ListInbox(ctx, 99, "dota", nil, 3)
	require.NoError(t, err)
	require.Len(t, likes, 3)
	require.NotNil(t, next)

	seen := map[uint64]bool{}
	for _, l := range likes {
		seen[l.FromUserID] = true
	}

	// page 2
	likes, next, err = repo.ListInbox(ctx, 99, "dota", next, 3)
	require.NoError(t, err)
	require.Len(t, likes, 3)
	require.NotNil(t, next)
	for _, l := range likes {
		assert.False(t, seen[l.FromUserID], "liker %d repeated across pages", l.FromUserID)
		seen[l.FromUserID] = true
	}

	// page 3 (last)
	likes, next, err = repo.ListInbox(ctx, 99, "dota", next, 3)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Nil(t, next)
	assert.False(t, seen[likes[0].FromUserID])
}

func TestListInboxBadToken(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	bad := "not-a-cursor"
	_, _, err := repo.ListInbox(ctx, 99, "dota", &bad, 10)
	assert.Error(t, err)
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	// 1 ↔ 2 and 3 ↔ 1 in dota, 1 ↔ 4 in cs
	for _, pair := range [][2]uint64{{1, 2}, {3, 1}} {
		_, err := repo.Like(ctx, pair[0], pair[1], "dota", "")
		require.NoError(t, err)
		_, err = repo.Like(ctx, pair[1], pair[0], "dota", "")
		require.NoError(t, err)
	}
	_, err := repo.Like(ctx, 1, 4, "cs", "")
	require.NoError(t, err)
	_, err = repo.Like(ctx, 4, 1, "cs", "")
	require.NoError(t, err)

	matches, err := repo.ListMatches(ctx, 1, "dota")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = repo.ListMatches(ctx, 1, "cs")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = repo.ListMatches(ctx, 5, "dota")
	require.NoError(t, err)
	assert.Len(t, matches, 0)
}
