package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/squadup/squadup-backend/internal/db"
)

// SearchFilters narrows the candidate pool. Empty fields apply no constraint.
type SearchFilters struct {
	Rating   string // exact tier
	Position string // candidate's positions include this
	Region   string // exact region
}

// SearchRepository computes the next-candidate query for the browse flow.
type SearchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new repository bound to the given DB connection.
func NewSearchRepository(database *gorm.DB) *SearchRepository {
	return &SearchRepository{db: database}
}

// Candidates returns up to limit profiles for the game that the requesting
// user can still act on.
//
// Excluded, for any filter combination:
//   - the requester's own profile
//   - candidates the requester already liked in this game
//   - candidates the requester reported in this game
//   - currently banned candidates (enforced here explicitly — a ban applies
//     even when the profile was not deleted)
//
// Ordering is randomized per call with a hard limit; there is no
// deterministic guarantee, which spreads exposure across the pool. Search
// skips are deliberately not read back into ranking. An empty pool returns
// an empty slice, not an error.
func (r *SearchRepository) Candidates(
	ctx context.Context,
	userID uint64,
	game string,
	filters SearchFilters,
	limit int,
) ([]db.Profile, error) {
	query := r.db.WithContext(ctx).
		Table("profiles p").
		Where("p.game = ? AND p.user_id <> ?", game, userID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM likes l
				WHERE l.from_user_id = ?
				  AND l.to_user_id = p.user_id
				  AND l.game = p.game
			)`, userID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM reports rp
				WHERE rp.reporter_id = ?
				  AND rp.reported_id = p.user_id
				  AND rp.game = p.game
			)`, userID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM bans b
				WHERE b.user_id = p.user_id
				  AND b.expires_at > ?
			)`, time.Now().UTC())

	if filters.Rating != "" {
		query = query.Where("p.rating = ?", filters.Rating)
	}
	if filters.Region != "" {
		query = query.Where("p.region = ?", filters.Region)
	}
	if filters.Position != "" {
		// positions is a JSON array of strings; membership check on the
		// quoted element works on both MySQL and SQLite text columns.
		query = query.Where("p.positions LIKE ?", `%"`+filters.Position+`"%`)
	}

	profiles := []db.Profile{}
	err := query.Order(r.randomExpr()).Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// randomExpr picks the dialect's random function (MySQL in production,
// SQLite in tests).
func (r *SearchRepository) randomExpr() string {
	if r.db.Dialector.Name() == "sqlite" {
		return "RANDOM()"
	}
	return "RAND()"
}
