// Package repository holds the database access layer. Repositories
// return (nil, nil) for lookups that find nothing; errors always mean
// the query itself failed.
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"scrambledstates/internal/database"
	"scrambledstates/internal/models"
)

// ProfileRepository handles database operations for player profiles
type ProfileRepository struct {
	db *database.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new player profile
func (r *ProfileRepository) Create(username, avatar string) (*models.Profile, error) {
	query := "INSERT INTO profiles (username, avatar) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, username, avatar)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &models.Profile{
		ID:        id,
		Username:  username,
		Avatar:    avatar,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

const profileColumns = `id, username, avatar, COALESCE(pin_hash, ''), total_score,
	games_played, highest_score, COALESCE(last_played, created_at), created_at, updated_at`

func scanProfile(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Avatar,
		&p.PinHash,
		&p.TotalScore,
		&p.GamesPlayed,
		&p.HighestScore,
		&p.LastPlayed,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id int64) (*models.Profile, error) {
	query := "SELECT " + profileColumns + " FROM profiles WHERE id = ?"
	return scanProfile(r.db.QueryRow(query, id))
}

// GetByUsername retrieves a profile by username
func (r *ProfileRepository) GetByUsername(username string) (*models.Profile, error) {
	query := "SELECT " + profileColumns + " FROM profiles WHERE username = ?"
	return scanProfile(r.db.QueryRow(query, username))
}

// List retrieves all profiles for the profile picker
func (r *ProfileRepository) List() ([]models.Profile, error) {
	query := "SELECT " + profileColumns + " FROM profiles ORDER BY created_at ASC"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(
			&p.ID,
			&p.Username,
			&p.Avatar,
			&p.PinHash,
			&p.TotalScore,
			&p.GamesPlayed,
			&p.HighestScore,
			&p.LastPlayed,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// UpdateAvatar changes a profile's avatar
func (r *ProfileRepository) UpdateAvatar(id int64, avatar string) error {
	query := "UPDATE profiles SET avatar = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, avatar, id); err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return nil
}

// SetPinHash stores the bcrypt hash of the parental PIN
func (r *ProfileRepository) SetPinHash(id int64, hash string) error {
	query := "UPDATE profiles SET pin_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, hash, id); err != nil {
		return fmt.Errorf("failed to set pin: %w", err)
	}
	return nil
}

// Delete removes a profile; history and badges cascade
func (r *ProfileRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM profiles WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// RecordGame appends a finished game to the profile's history, trims
// the history to the most recent entries, and updates the profile's
// aggregate stats, all in one transaction.
func (r *ProfileRepository) RecordGame(profileID int64, entry models.GameHistoryEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	playedAt := entry.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	insert := "INSERT INTO game_history (profile_id, mode, score, streak, played_at) VALUES (?, ?, ?, ?, ?)"
	if _, err := tx.Exec(insert, profileID, entry.Mode.ID(), entry.Score, entry.Streak, playedAt); err != nil {
		return fmt.Errorf("failed to insert game history: %w", err)
	}

	// The extra SELECT wrapper keeps MySQL happy about deleting from a
	// table referenced in the subquery.
	trim := `
		DELETE FROM game_history
		WHERE profile_id = ? AND id NOT IN (
			SELECT id FROM (
				SELECT id FROM game_history
				WHERE profile_id = ?
				ORDER BY played_at DESC, id DESC
				LIMIT ?
			) AS recent
		)
	`
	if _, err := tx.Exec(trim, profileID, profileID, models.MaxHistoryEntries); err != nil {
		return fmt.Errorf("failed to trim game history: %w", err)
	}

	update := `
		UPDATE profiles
		SET total_score = total_score + ?,
			games_played = games_played + 1,
			highest_score = CASE WHEN ? > highest_score THEN ? ELSE highest_score END,
			last_played = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := tx.Exec(update, entry.Score, entry.Score, entry.Score, playedAt, profileID); err != nil {
		return fmt.Errorf("failed to update profile stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game record: %w", err)
	}
	return nil
}

// History retrieves a profile's game history, most recent first
func (r *ProfileRepository) History(profileID int64, limit int) ([]models.GameHistoryEntry, error) {
	if limit <= 0 || limit > models.MaxHistoryEntries {
		limit = models.MaxHistoryEntries
	}

	query := `
		SELECT id, mode, score, streak, played_at
		FROM game_history
		WHERE profile_id = ?
		ORDER BY played_at DESC, id DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %w", err)
	}
	defer rows.Close()

	var entries []models.GameHistoryEntry
	for rows.Next() {
		var e models.GameHistoryEntry
		var modeID string
		if err := rows.Scan(&e.ID, &modeID, &e.Score, &e.Streak, &e.PlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		mode, err := models.ParseGameMode(modeID)
		if err != nil {
			// Unknown modes in old rows are skipped, not fatal
			continue
		}
		e.Mode = mode
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ModeScore sums a profile's past scores for one mode. This is the
// running total a new game of that mode starts from.
func (r *ProfileRepository) ModeScore(profileID int64, mode models.GameMode) (int, error) {
	var total int
	query := "SELECT COALESCE(SUM(score), 0) FROM game_history WHERE profile_id = ? AND mode = ?"
	if err := r.db.QueryRow(query, profileID, mode.ID()).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum mode score: %w", err)
	}
	return total, nil
}

// Badge retrieves the stored badge tier for a mode, BadgeNone when unset
func (r *ProfileRepository) Badge(profileID int64, mode models.GameMode) (models.BadgeTier, error) {
	var tierName string
	query := "SELECT tier FROM badges WHERE profile_id = ? AND mode = ?"
	err := r.db.QueryRow(query, profileID, mode.ID()).Scan(&tierName)
	if err == sql.ErrNoRows {
		return models.BadgeNone, nil
	}
	if err != nil {
		return models.BadgeNone, fmt.Errorf("failed to get badge: %w", err)
	}

	tier, err := models.ParseBadgeTier(tierName)
	if err != nil {
		return models.BadgeNone, fmt.Errorf("failed to parse stored badge: %w", err)
	}
	return tier, nil
}

// Badges retrieves all of a profile's badges keyed by mode
func (r *ProfileRepository) Badges(profileID int64) (models.ModeBadges, error) {
	rows, err := r.db.Query("SELECT mode, tier FROM badges WHERE profile_id = ?", profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	badges := make(models.ModeBadges)
	for rows.Next() {
		var modeID, tierName string
		if err := rows.Scan(&modeID, &tierName); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		mode, err := models.ParseGameMode(modeID)
		if err != nil {
			continue
		}
		tier, err := models.ParseBadgeTier(tierName)
		if err != nil {
			continue
		}
		badges[mode] = tier
	}

	return badges, rows.Err()
}

// UpgradeBadge stores the tier for a mode only if it is strictly higher
// than the current one. Lower or equal tiers are silently ignored so
// the stored badge never regresses.
func (r *ProfileRepository) UpgradeBadge(profileID int64, mode models.GameMode, tier models.BadgeTier) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentName string
	err = tx.QueryRow("SELECT tier FROM badges WHERE profile_id = ? AND mode = ?", profileID, mode.ID()).Scan(&currentName)
	switch {
	case err == sql.ErrNoRows:
		insert := "INSERT INTO badges (profile_id, mode, tier) VALUES (?, ?, ?)"
		if _, err := tx.Exec(insert, profileID, mode.ID(), tier.String()); err != nil {
			return fmt.Errorf("failed to insert badge: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to get current badge: %w", err)
	default:
		current, err := models.ParseBadgeTier(currentName)
		if err != nil {
			return fmt.Errorf("failed to parse stored badge: %w", err)
		}
		if tier <= current {
			// Nothing to do; the deferred rollback releases the tx
			return nil
		}
		update := "UPDATE badges SET tier = ?, awarded_at = CURRENT_TIMESTAMP WHERE profile_id = ? AND mode = ?"
		if _, err := tx.Exec(update, tier.String(), profileID, mode.ID()); err != nil {
			return fmt.Errorf("failed to upgrade badge: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit badge upgrade: %w", err)
	}
	return nil
}
