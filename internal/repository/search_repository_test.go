package repository_test

import (
	"context"
	"testing"

	"github.com/squadup/squadup-backend/internal/db"
	"github.com/squadup/squadup-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSearchPool(t *testing.T, dbase *gorm.DB) {
	t.Helper()
	ctx := context.Background()
	profiles := repository.NewProfileRepository(dbase)
	for id := uint64(1); id <= 5; id++ {
		require.NoError(t, profiles.Upsert(ctx, testProfile(id, "dota")))
	}
}

func candidateIDs(profiles []db.Profile) []uint64 {
	ids := make([]uint64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	return ids
}

func TestCandidatesExclusions(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	seedSearchPool(t, dbase)

	interactions := repository.NewInteractionRepository(dbase)
	moderation := repository.NewModerationRepository(dbase)
	search := repository.NewSearchRepository(dbase)

	// user1 liked 2, reported 3; 4 is banned
	_, err := interactions.Like(ctx, 1, 2, "dota", "")
	require.NoError(t, err)
	_, err = moderation.FileReport(ctx, 1, 3, "dota", "smurf")
	require.NoError(t, err)
	require.NoError(t, moderation.Ban(ctx, 4, "toxic", 7))

	got, err := search.Candidates(ctx, 1, "dota", repository.SearchFilters{}, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{5}, candidateIDs(got))

	// exclusions are per-requester: user5 still sees everyone else
	got, err = search.Candidates(ctx, 5, "dota", repository.SearchFilters{}, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2, 3}, candidateIDs(got))
}

func TestCandidatesSkipsDoNotExclude(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	seedSearchPool(t, dbase)

	interactions := repository.NewInteractionRepository(dbase)
	search := repository.NewSearchRepository(dbase)

	// a searched-pool skip never blocks future matching
	require.NoError(t, interactions.SkipCandidate(ctx, 1, 2, "dota"))

	got, err := search.Candidates(ctx, 1, "dota", repository.SearchFilters{}, 10)
	require.NoError(t, err)
	assert.Contains(t, candidateIDs(got), uint64(2))
}

func TestCandidatesFilters(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	search := repository.NewSearchRepository(dbase)

	p2 := testProfile(2, "dota")
	p2.Rating = "ancient"
	p2.Region = "na"
	p2.Positions = []string{"carry", "mid"}
	require.NoError(t, profiles.Upsert(ctx, p2))

	p3 := testProfile(3, "dota")
	p3.Rating = "legend"
	p3.Region = "eu"
	p3.Positions = []string{"support"}
	require.NoError(t, profiles.Upsert(ctx, p3))

	got, err := search.Candidates(ctx, 1, "dota", repository.SearchFilters{Rating: "ancient"}, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2}, candidateIDs(got))

	got, err = search.Candidates(ctx, 1, "dota", repository.SearchFilters{Region: "eu"}, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{3}, candidateIDs(got))

	got, err = search.Candidates(ctx, 1, "dota", repository.SearchFilters{Position: "mid"}, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2}, candidateIDs(got))

	// combination narrows further
	got, err = search.Candidates(ctx, 1, "dota", repository.SearchFilters{Rating: "ancient", Region: "eu"}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidatesLimitAndEmptyPool(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	seedSearchPool(t, dbase)
	search := repository.NewSearchRepository(dbase)

	got, err := search.Candidates(ctx, 1, "dota", repository.SearchFilters{}, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// no profiles in this game: empty slice, not an error
	got, err = search.Candidates(ctx, 1, "valorant", repository.SearchFilters{}, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
