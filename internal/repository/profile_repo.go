package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/squadup/squadup-backend/internal/db"
)

// ProfileRepository provides data access methods for per-game profiles.
// It is the only writer of the profiles table; the one place it reaches into
// the ledger tables is the cascade inside Delete.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Get returns the profile for (userID, game).
//
// Behavior:
//   - Absent profile → gorm.ErrRecordNotFound (mapped to NotFound at the edge).
func (r *ProfileRepository) Get(ctx context.Context, userID uint64, game string) (*db.Profile, error) {
	var profile db.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game = ?", userID, game).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert replaces the profile for (profile.UserID, profile.Game) wholesale.
//
// Behavior:
//   - If the (user_id, game) pair exists → every attribute is overwritten.
//   - If it doesn't exist → a new row is inserted.
//   - The owning User row is upserted in the same transaction, refreshing
//     username and current_game.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *db.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := db.User{
			ID:          profile.UserID,
			Username:    profile.Nickname,
			CurrentGame: profile.Game,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "current_game", "updated_at"}),
		}).Create(&user).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "game"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "nickname", "age", "rating", "region", "role",
				"positions", "goals", "bio", "photo_id", "profile_url", "updated_at",
			}),
		}).Create(profile).Error
	})
}

// Delete removes the profile for (userID, game) together with every ledger
// row referencing it, in one atomic unit:
//
//   - likes sent and received by the user in the game
//   - matches touching the user in the game
//   - search skips and like skips in either direction
//   - pending reports where the user is the reported party (resolved ones
//     stay as the moderation record)
//
// Deleting an absent profile is a no-op success; report resolution relies on
// that idempotence when the profile was already independently removed.
func (r *ProfileRepository) Delete(ctx context.Context, userID uint64, game string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteProfileCascade(tx, userID, game)
	})
}

// deleteProfileCascade issues the full cascade inside an existing
// transaction. The moderation repository calls it directly so report
// resolution and profile removal share one atomic unit.
func deleteProfileCascade(tx *gorm.DB, userID uint64, game string) error {
	if err := tx.Where("user_id = ? AND game = ?", userID, game).
		Delete(&db.Profile{}).Error; err != nil {
		return err
	}
	if err := tx.Where("(from_user_id = ? OR to_user_id = ?) AND game = ?", userID, userID, game).
		Delete(&db.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where("(user_a_id = ? OR user_b_id = ?) AND game = ?", userID, userID, game).
		Delete(&db.Match{}).Error; err != nil {
		return err
	}
	if err := tx.Where("(user_id = ? OR skipped_user_id = ?) AND game = ?", userID, userID, game).
		Delete(&db.SearchSkip{}).Error; err != nil {
		return err
	}
	if err := tx.Where("(user_id = ? OR skipped_user_id = ?) AND game = ?", userID, userID, game).
		Delete(&db.LikeSkip{}).Error; err != nil {
		return err
	}
	// only pending reports go: the profile's disappearance makes them moot,
	// while resolved reports stay as the moderation record
	return tx.Where("reported_id = ? AND game = ? AND status = ?", userID, game, db.ReportStatusPending).
		Delete(&db.Report{}).Error
}
