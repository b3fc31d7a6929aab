package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/squadup/squadup-backend/internal/db"
	"github.com/squadup/squadup-backend/internal/utils/pagination"
)

// likeRetries bounds the replay loop in Like. Two reciprocal likes that lock
// each other's reverse edge leave one transaction as the deadlock victim; its
// replay sees the committed reverse edge and takes the match path.
const likeRetries = 3

// InteractionRepository provides data access methods for likes, skips and
// matches. It is the only writer permitted to create a Match row.
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new repository bound to the given DB connection.
func NewInteractionRepository(database *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: database}
}

// LikeResult reports what a Like call actually did.
type LikeResult struct {
	// Created is false when the directed like already existed (defined no-op).
	Created bool
	// Matched is true when both directed likes now exist. It is reported by
	// whichever call completes second.
	Matched bool
}

// Like inserts the directed like from → to and, when the reverse like already
// exists, creates the match for the canonical pair.
//
// Behavior:
//   - Duplicate like → {Created: false, Matched: false}, nil error.
//   - Fresh like with no reverse edge → {Created: true, Matched: false}.
//   - Fresh like completing the pair → {Created: true, Matched: true}.
//
// The insert, the reverse-edge check and the match insert run in one
// transaction per direction. The reverse check is a locking read: under
// InnoDB a plain snapshot count would let two concurrent reciprocal
// transactions each miss the other's uncommitted edge and both commit
// without a match. Locking the reverse edge (or the gap where it would sit)
// serializes the pair; the deadlock victim is replayed and then sees the
// committed edge. The matches composite PK plus OnConflict DoNothing remains
// the backstop against duplicate creation — a duplicate match insert means
// "match already exists", never an error.
func (r *InteractionRepository) Like(ctx context.Context, from, to uint64, game, message string) (LikeResult, error) {
	for attempt := 0; ; attempt++ {
		result, err := r.likeOnce(ctx, from, to, game, message)
		if err == nil || attempt == likeRetries || !retryableTxError(err) {
			return result, err
		}
		select {
		case <-ctx.Done():
			return LikeResult{}, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 5 * time.Millisecond):
		}
	}
}

func (r *InteractionRepository) likeOnce(ctx context.Context, from, to uint64, game, message string) (LikeResult, error) {
	var result LikeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := db.Like{
			FromUserID: from,
			ToUserID:   to,
			Game:       game,
			Message:    message,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // already liked: defined no-op
		}
		result.Created = true

		reverseQuery := tx.Model(&db.Like{}).
			Where("from_user_id = ? AND to_user_id = ? AND game = ?", to, from, game)
		if tx.Dialector.Name() != "sqlite" {
			// SQLite's single writer already serializes whole transactions
			// and rejects FOR UPDATE
			reverseQuery = reverseQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var reverse int64
		if err := reverseQuery.Count(&reverse).Error; err != nil {
			return err
		}
		if reverse == 0 {
			return nil
		}

		a, b := db.CanonicalPair(from, to)
		match := db.Match{UserAID: a, UserBID: b, Game: game}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&match).Error; err != nil {
			return err
		}
		result.Matched = true
		return nil
	})
	if err != nil {
		return LikeResult{}, err
	}
	return result, nil
}

// retryableTxError reports whether the transaction lost a lock race and can
// be replayed: an InnoDB deadlock victim or lock-wait timeout, or SQLite
// shared-cache writer contention.
func retryableTxError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

// HasLiked checks whether the directed like from → to exists for the game.
func (r *InteractionRepository) HasLiked(ctx context.Context, from, to uint64, game string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Like{}).
		Where("from_user_id = ? AND to_user_id = ? AND game = ?", from, to, game).
		Count(&count).Error
	return count > 0, err
}

// SkipCandidate upserts the search skip for (user, candidate, game).
//
// Behavior:
//   - First skip → row with skip_count = 1.
//   - Repeat skip → skip_count increments, last_skipped_at refreshes.
//   - Never blocks future matching; search ordering does not read it back.
func (r *InteractionRepository) SkipCandidate(ctx context.Context, user, candidate uint64, game string) error {
	skip := db.SearchSkip{
		UserID:        user,
		SkippedUserID: candidate,
		Game:          game,
		SkipCount:     1,
		LastSkippedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "skipped_user_id"}, {Name: "game"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"skip_count":      gorm.Expr("skip_count + 1"),
				"last_skipped_at": skip.LastSkippedAt,
			}),
		}).
		Create(&skip).Error
}

// SkipInboundLike records that user permanently dismissed liker from the
// pending-likes inbox for the game. Idempotent: a repeat is a no-op.
func (r *InteractionRepository) SkipInboundLike(ctx context.Context, user, liker uint64, game string) error {
	skip := db.LikeSkip{
		UserID:        user,
		SkippedUserID: liker,
		Game:          game,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&skip).Error
}

// ListInbox returns the pending-likes inbox for (user, game): every directed
// like to the user, excluding pairs that already matched and likers the user
// dismissed.
//
// Behavior:
//   - Ordered created_at DESC, from_user_id DESC (most recent first).
//   - Supports cursor-based pagination via paginationToken.
func (r *InteractionRepository) ListInbox(
	ctx context.Context,
	user uint64,
	game string,
	paginationToken *string,
	limit int,
) ([]db.Like, *string, error) {
	var likes []db.Like

	// decode cursor if provided
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Table("likes l").
		Where("l.to_user_id = ? AND l.game = ?", user, game).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM matches m
				WHERE m.game = l.game
				  AND ((m.user_a_id = l.from_user_id AND m.user_b_id = l.to_user_id)
				    OR (m.user_a_id = l.to_user_id AND m.user_b_id = l.from_user_id))
			)`).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM like_skips s
				WHERE s.user_id = l.to_user_id
				  AND s.skipped_user_id = l.from_user_id
				  AND s.game = l.game
			)`).
		Order("l.created_at DESC, l.from_user_id DESC").
		Limit(limit + 1)

	// apply cursor
	if cursor.LikerID > 0 && cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix)
		query = query.Where(
			"(l.created_at < ? OR (l.created_at = ? AND l.from_user_id < ?))",
			ts, ts, cursor.LikerID,
		)
	}

	if err := query.Find(&likes).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(likes) > limit {
		last := likes[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			LikerID:     last.FromUserID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		likes = likes[:limit]
	}

	return likes, nextToken, nil
}

// ListMatches returns every match touching user for the game, most recent first.
func (r *InteractionRepository) ListMatches(ctx context.Context, user uint64, game string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("(user_a_id = ? OR user_b_id = ?) AND game = ?", user, user, game).
		Order("created_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
