package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/squadup/squadup-backend/internal/db"
	svcErr "github.com/squadup/squadup-backend/internal/errors"
)

// Moderation actions accepted by Resolve.
const (
	ActionApprove = "approve"
	ActionBan     = "ban"
	ActionDismiss = "dismiss"
)

// ModerationRepository provides data access methods for reports and bans.
// It owns the report lifecycle and, on resolution, triggers the profile
// cascade inside the same transaction.
type ModerationRepository struct {
	db *gorm.DB
}

// NewModerationRepository creates a new repository bound to the given DB connection.
func NewModerationRepository(database *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: database}
}

// FileReport records a complaint by reporter against reported for the game.
//
// Behavior:
//   - Unique per (reporter, reported, game); re-reporting is a silent no-op
//     reported as created=false, not an error.
func (r *ModerationRepository) FileReport(ctx context.Context, reporter, reported uint64, game, reason string) (bool, error) {
	report := db.Report{
		ReporterID: reporter,
		ReportedID: reported,
		Game:       game,
		Reason:     reason,
		Status:     db.ReportStatusPending,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&report)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListPending returns every unresolved report, oldest first: the review queue
// is FIFO so the longest-waiting complaint surfaces first. The ordering is
// stable (created_at, then id).
func (r *ModerationRepository) ListPending(ctx context.Context) ([]db.Report, error) {
	var reports []db.Report
	err := r.db.WithContext(ctx).
		Where("status = ?", db.ReportStatusPending).
		Order("created_at ASC, id ASC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Resolve moves a pending report to its terminal status and applies the
// action's side effects, all in one transaction:
//
//   - approve → cascade-delete the reported profile, status "approved"
//   - ban     → cascade-delete the profile AND upsert a ban with the default
//     duration, status "banned"
//   - dismiss → status only
//
// Errors:
//   - unknown action → ErrInvalidAction (checked before any write)
//   - report absent → gorm.ErrRecordNotFound
//   - report already terminal → ErrReportResolved
//
// The status transition is a guarded UPDATE (id + status='pending'), so two
// concurrent reviewers cannot both resolve the same report. A reported
// profile that was already independently deleted does not fail the
// resolution: the cascade is idempotent.
func (r *ModerationRepository) Resolve(ctx context.Context, reportID uint64, action string, reviewer uint64, banDays int) error {
	var status db.ReportStatus
	switch action {
	case ActionApprove:
		status = db.ReportStatusApproved
	case ActionBan:
		status = db.ReportStatusBanned
	case ActionDismiss:
		status = db.ReportStatusDismissed
	default:
		return svcErr.ErrInvalidAction
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var report db.Report
		if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&db.Report{}).
			Where("id = ? AND status = ?", reportID, db.ReportStatusPending).
			Updates(map[string]interface{}{
				"status":      status,
				"reviewer_id": reviewer,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// row exists but is no longer pending
			return svcErr.ErrReportResolved
		}

		if action == ActionDismiss {
			return nil
		}

		if err := deleteProfileCascade(tx, report.ReportedID, report.Game); err != nil {
			return err
		}

		if action == ActionBan {
			return upsertBan(tx, report.ReportedID, report.Reason, banDays, now)
		}
		return nil
	})
}

// Ban creates or replaces the ban row for user with the given duration.
func (r *ModerationRepository) Ban(ctx context.Context, user uint64, reason string, durationDays int) error {
	return upsertBan(r.db.WithContext(ctx), user, reason, durationDays, time.Now().UTC())
}

// Unban removes any ban row for user. Idempotent: unbanning a user with no
// ban is a no-op success.
func (r *ModerationRepository) Unban(ctx context.Context, user uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", user).
		Delete(&db.Ban{}).Error
}

// IsBanned reports whether a ban row exists for user with expiry in the
// future. Authoritative and independent of profile existence; expired rows
// simply stop applying.
func (r *ModerationRepository) IsBanned(ctx context.Context, user uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Ban{}).
		Where("user_id = ? AND expires_at > ?", user, time.Now().UTC()).
		Count(&count).Error
	return count > 0, err
}

// GetBan returns the ban row for user regardless of expiry, or
// gorm.ErrRecordNotFound.
func (r *ModerationRepository) GetBan(ctx context.Context, user uint64) (*db.Ban, error) {
	var ban db.Ban
	if err := r.db.WithContext(ctx).First(&ban, "user_id = ?", user).Error; err != nil {
		return nil, err
	}
	return &ban, nil
}

func upsertBan(tx *gorm.DB, user uint64, reason string, durationDays int, now time.Time) error {
	ban := db.Ban{
		UserID:    user,
		Reason:    reason,
		ExpiresAt: now.Add(time.Duration(durationDays) * 24 * time.Hour),
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"reason", "expires_at"}),
	}).Create(&ban).Error
}
