package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedGames = []string{"dota", "cs", "valorant"}

var seedRatings = map[string][]string{
	"dota":     {"herald", "guardian", "legend", "ancient", "divine"},
	"cs":       {"silver", "gold_nova", "mg", "le", "global"},
	"valorant": {"iron", "silver", "platinum", "diamond", "immortal"},
}

var seedPositions = map[string][]string{
	"dota":     {"carry", "mid", "offlane", "support", "hard_support"},
	"cs":       {"entry", "awper", "igl", "lurker", "support"},
	"valorant": {"duelist", "initiator", "controller", "sentinel"},
}

var seedRegions = []string{"eu", "na", "cis", "sea"}

var seedGoals = []string{"ranked grind", "tournaments", "casual", "team search"}

// SeedTestData resets the database and populates it with demo users,
// profiles and interactions.
//
// Behavior:
//  1. Clears every table.
//  2. Creates 30 users, each with a profile in one or two games.
//  3. Generates randomized likes (~60% of browsed pairs), inserting the
//     reciprocal like for every 3rd pair so mutual matches exist.
//  4. Sprinkles search skips and a couple of pending reports.
//
// Compatible with both MySQL and SQLite (AUTO_INCREMENT reset skipped for SQLite).
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"reports", "bans", "like_skips", "search_skips", "matches", "likes", "profiles", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE reports AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'reports'")
	}

	log.Println("Cleared existing data")

	// --- Seed users + profiles ---
	for i := 1; i <= 30; i++ {
		userID := uint64(1000 + i)
		game := seedGames[i%len(seedGames)]

		profile := Profile{
			UserID:   userID,
			Game:     game,
			Name:     fmt.Sprintf("Player %d", i),
			Nickname: fmt.Sprintf("player%d", i),
			Age:      16 + r.Intn(20),
			Rating:   pick(r, seedRatings[game]),
			Region:   pick(r, seedRegions),
			Role:     RolePlayer,
			Positions: []string{
				pick(r, seedPositions[game]),
			},
			Goals: []string{pick(r, seedGoals)},
			Bio:   "Looking for a steady five-stack.",
		}
		if i%7 == 0 {
			profile.Role = RoleCoach
		}

		user := User{ID: userID, Username: profile.Nickname, CurrentGame: game}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	log.Println("Seeded 30 users with profiles.")

	// --- Seed likes (~100+), every 3rd pair mutual ---
	counter := 0
	for i := 1; i <= 30; i++ {
		fromID := uint64(1000 + i)
		game := seedGames[i%len(seedGames)]

		for j := 0; j < 8; j++ {
			toID := uint64(1000 + r.Intn(30) + 1)
			if toID == fromID {
				continue
			}

			var target Profile
			if err := db.Where("user_id = ? AND game = ?", toID, game).First(&target).Error; err != nil {
				continue // target does not play this game
			}

			if r.Intn(100) >= 60 {
				// pass instead of like
				skip := SearchSkip{
					UserID:        fromID,
					SkippedUserID: toID,
					Game:          game,
					SkipCount:     1,
					LastSkippedAt: time.Now().UTC(),
				}
				db.Clauses(clause.OnConflict{
					Columns: []clause.Column{{Name: "user_id"}, {Name: "skipped_user_id"}, {Name: "game"}},
					DoUpdates: clause.Assignments(map[string]interface{}{
						"skip_count": gorm.Expr("skip_count + 1"),
					}),
				}).Create(&skip)
				continue
			}

			like := Like{FromUserID: fromID, ToUserID: toID, Game: game, Message: "gg, let's queue"}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}

			// guarantee mutual likes every 3rd pair
			if counter%3 == 0 {
				recip := Like{FromUserID: toID, ToUserID: fromID, Game: game}
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(&recip)
				a, b := CanonicalPair(fromID, toID)
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Match{UserAID: a, UserBID: b, Game: game})
			}

			counter++
		}
	}
	log.Printf("Seeded %d likes.", counter)

	// --- A couple of pending reports for the review queue ---
	reports := []Report{
		{ReporterID: 1001, ReportedID: 1004, Game: "cs", Reason: "offensive bio", Status: ReportStatusPending},
		{ReporterID: 1002, ReportedID: 1007, Game: "dota", Reason: "fake rating", Status: ReportStatusPending},
	}
	for i := range reports {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reports[i]).Error; err != nil {
			return fmt.Errorf("failed to seed report: %w", err)
		}
	}

	return nil
}

func pick(r *rand.Rand, opts []string) string {
	return opts[r.Intn(len(opts))]
}
