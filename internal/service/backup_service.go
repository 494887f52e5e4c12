package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"scrambledstates/internal/database"
)

// BackupData is the JSON structure the backup tool reads and writes
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Profiles   []ProfileBackup `json:"profiles"`
}

// ProfileBackup is one profile with its history and badges inlined
type ProfileBackup struct {
	Username     string          `json:"username"`
	Avatar       string          `json:"avatar"`
	PinHash      string          `json:"pin_hash,omitempty"`
	TotalScore   int             `json:"total_score"`
	GamesPlayed  int             `json:"games_played"`
	HighestScore int             `json:"highest_score"`
	CreatedAt    time.Time       `json:"created_at"`
	History      []HistoryBackup `json:"history"`
	Badges       []BadgeBackup   `json:"badges"`
}

// HistoryBackup is one finished game in a profile's history
type HistoryBackup struct {
	Mode     string    `json:"mode"`
	Score    int       `json:"score"`
	Streak   int       `json:"streak"`
	PlayedAt time.Time `json:"played_at"`
}

// BadgeBackup is one mode badge
type BadgeBackup struct {
	Mode string `json:"mode"`
	Tier string `json:"tier"`
}

// BackupService exports and imports the whole profile store as JSON.
// Imports merge by username: existing profiles are left alone.
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes all profiles, history and badges to a JSON file
func (s *BackupService) Export(outputPath string) error {
	data := BackupData{
		Version:    "1",
		ExportedAt: time.Now().UTC(),
	}

	rows, err := s.db.Query(`
		SELECT id, username, avatar, COALESCE(pin_hash, ''), total_score,
			games_played, highest_score, created_at
		FROM profiles ORDER BY id
	`)
	if err != nil {
		return fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		var p ProfileBackup
		if err := rows.Scan(&id, &p.Username, &p.Avatar, &p.PinHash,
			&p.TotalScore, &p.GamesPlayed, &p.HighestScore, &p.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan profile: %w", err)
		}
		data.Profiles = append(data.Profiles, p)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i, id := range ids {
		if data.Profiles[i].History, err = s.exportHistory(id); err != nil {
			return err
		}
		if data.Profiles[i].Badges, err = s.exportBadges(id); err != nil {
			return err
		}
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}
	if err := os.WriteFile(outputPath, payload, 0o600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

func (s *BackupService) exportHistory(profileID int64) ([]HistoryBackup, error) {
	rows, err := s.db.Query(`
		SELECT mode, score, streak, played_at
		FROM game_history WHERE profile_id = ?
		ORDER BY played_at ASC, id ASC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []HistoryBackup
	for rows.Next() {
		var h HistoryBackup
		if err := rows.Scan(&h.Mode, &h.Score, &h.Streak, &h.PlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (s *BackupService) exportBadges(profileID int64) ([]BadgeBackup, error) {
	rows, err := s.db.Query("SELECT mode, tier FROM badges WHERE profile_id = ?", profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	var badges []BadgeBackup
	for rows.Next() {
		var b BadgeBackup
		if err := rows.Scan(&b.Mode, &b.Tier); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

// Import reads a backup file and inserts the profiles it contains.
// Profiles whose username already exists are skipped, so importing the
// same file twice is safe.
func (s *BackupService) Import(inputPath string) error {
	payload, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var data BackupData
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}

	for _, p := range data.Profiles {
		if err := s.importProfile(p); err != nil {
			return fmt.Errorf("failed to import profile %q: %w", p.Username, err)
		}
	}
	return nil
}

func (s *BackupService) importProfile(p ProfileBackup) error {
	var existing int
	err := s.db.QueryRow("SELECT COUNT(*) FROM profiles WHERE username = ?", p.Username).Scan(&existing)
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	pinHash := interface{}(nil)
	if p.PinHash != "" {
		pinHash = p.PinHash
	}

	id, err := tx.ExecReturningID(`
		INSERT INTO profiles (username, avatar, pin_hash, total_score, games_played, highest_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Username, p.Avatar, pinHash, p.TotalScore, p.GamesPlayed, p.HighestScore, p.CreatedAt)
	if err != nil {
		return err
	}

	for _, h := range p.History {
		_, err := tx.Exec(`
			INSERT INTO game_history (profile_id, mode, score, streak, played_at)
			VALUES (?, ?, ?, ?, ?)
		`, id, h.Mode, h.Score, h.Streak, h.PlayedAt)
		if err != nil {
			return err
		}
	}

	for _, b := range p.Badges {
		_, err := tx.Exec(`
			INSERT INTO badges (profile_id, mode, tier)
			VALUES (?, ?, ?)
		`, id, b.Mode, b.Tier)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
