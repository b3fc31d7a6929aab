package db

import (
	"time"
)

// User table. The ID is the caller-supplied Telegram id, never auto-generated.
// A User row is upserted as a side effect of the first profile submission and
// whenever the user switches games.
type User struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement:false"`
	Username    string    `gorm:"size:64"`
	CurrentGame string    `gorm:"size:32"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Role of a profile owner within a team.
const (
	RolePlayer  = "player"
	RoleCoach   = "coach"
	RoleManager = "manager"
)

// Profile is a user's public listing for one game.
//
// Composite PK: (UserID, Game)
//   - Guarantees at most one profile per user per game (upsert semantics on edit).
//
// Indexes:
//   - idx_profiles_game_rating(game, rating)
//   - idx_profiles_game_region(game, region)
//     Both back the candidate search filters.
//
// Positions and Goals are stored as JSON arrays so the search layer can do
// membership checks without a join table.
type Profile struct {
	UserID     uint64    `gorm:"primaryKey;autoIncrement:false"`
	Game       string    `gorm:"primaryKey;size:32;index:idx_profiles_game_rating,priority:1;index:idx_profiles_game_region,priority:1"`
	Name       string    `gorm:"size:64;not null"`
	Nickname   string    `gorm:"size:64;not null"`
	Age        int       `gorm:"not null"`
	Rating     string    `gorm:"size:32;index:idx_profiles_game_rating,priority:2"`
	Region     string    `gorm:"size:32;index:idx_profiles_game_region,priority:2"`
	Role       string    `gorm:"size:16;not null"`
	Positions  []string  `gorm:"serializer:json;type:text"`
	Goals      []string  `gorm:"serializer:json;type:text"`
	Bio        string    `gorm:"size:1024"`
	PhotoID    *string   `gorm:"size:128"`
	ProfileURL *string   `gorm:"size:255"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Like is a directed interest edge from one user to another within a game.
//
// Composite PK: (FromUserID, ToUserID, Game)
//   - A user can like a given target at most once per game; a repeat like is a
//     defined no-op, never an overwrite.
//
// Indexes:
//   - idx_likes_inbox(to_user_id, game, created_at DESC, from_user_id)
//     Optimizes the pending-likes inbox with cursor pagination.
type Like struct {
	FromUserID uint64    `gorm:"primaryKey;autoIncrement:false"`
	ToUserID   uint64    `gorm:"primaryKey;index:idx_likes_inbox,priority:1"`
	Game       string    `gorm:"primaryKey;size:32;index:idx_likes_inbox,priority:2"`
	Message    string    `gorm:"size:512"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_likes_inbox,priority:3,sort:desc"`
}

// Match is the undirected edge created the instant both directed likes exist.
//
// Composite PK: (UserAID, UserBID, Game) with UserAID < UserBID (canonical
// pair). The PK is the final backstop against double match creation when two
// reciprocal likes land concurrently: the second insert attempt is a no-op.
type Match struct {
	UserAID   uint64    `gorm:"primaryKey;autoIncrement:false"`
	UserBID   uint64    `gorm:"primaryKey"`
	Game      string    `gorm:"primaryKey;size:32"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// CanonicalPair orders two user ids into the (UserAID, UserBID) form used by
// the matches table.
func CanonicalPair(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}

// SearchSkip records a user passing on a search candidate. Repeatable: the
// count increments and the timestamp refreshes on every repeat. Recorded for
// analytics; candidate ordering does not read it back.
type SearchSkip struct {
	UserID        uint64    `gorm:"primaryKey;autoIncrement:false"`
	SkippedUserID uint64    `gorm:"primaryKey"`
	Game          string    `gorm:"primaryKey;size:32"`
	SkipCount     int       `gorm:"not null;default:1"`
	LastSkippedAt time.Time `gorm:"not null"`
}

// LikeSkip records a user dismissing an inbound like without reciprocating.
// Once present, that liker never reappears in the user's inbox for the game
// (until a cascade delete removes the row).
type LikeSkip struct {
	UserID        uint64    `gorm:"primaryKey;autoIncrement:false"`
	SkippedUserID uint64    `gorm:"primaryKey"`
	Game          string    `gorm:"primaryKey;size:32"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// ReportStatus is the moderation lifecycle state of a report.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusApproved  ReportStatus = "approved"
	ReportStatusBanned    ReportStatus = "banned"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// Report is a complaint filed by one user against another's profile.
//
// Unique index: (ReporterID, ReportedID, Game) — re-reporting the same profile
// is a silent no-op. Status transitions pending → {approved, banned, dismissed}
// exactly once; resolution stamps the reviewer and timestamp.
type Report struct {
	ID         uint64       `gorm:"primaryKey;autoIncrement"`
	ReporterID uint64       `gorm:"not null;uniqueIndex:uniq_report_triple,priority:1"`
	ReportedID uint64       `gorm:"not null;uniqueIndex:uniq_report_triple,priority:2;index"`
	Game       string       `gorm:"size:32;not null;uniqueIndex:uniq_report_triple,priority:3"`
	Reason     string       `gorm:"size:255;not null"`
	Status     ReportStatus `gorm:"size:16;not null;default:'pending';index"`
	ReviewerID *uint64
	ReviewedAt *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// Ban restricts a user for a bounded time. A user counts as banned while a row
// exists with ExpiresAt in the future; expired rows stop applying without
// needing deletion, so every read must filter on expiry.
type Ban struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false"`
	Reason    string    `gorm:"size:255"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
