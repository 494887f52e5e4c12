package database

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const blockedWordsURL = "https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"

// SeedBlockedWords populates the username screening table from the
// public word list. A no-op if the table already has entries, so a slow
// or offline fetch only ever costs the first startup.
func (db *DB) SeedBlockedWords() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM blocked_words").Scan(&count); err != nil {
		return fmt.Errorf("failed to check blocked words count: %w", err)
	}
	if count > 0 {
		log.Debug().Int("words", count).Msg("username screening list already populated")
		return nil
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(blockedWordsURL)
	if err != nil {
		return fmt.Errorf("failed to download blocked words list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status code from blocked words URL: %d", resp.StatusCode)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Tx.Prepare(db.Dialect.RewriteQuery("INSERT INTO blocked_words (word) VALUES (?)"))
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	added := 0
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		word := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if word == "" {
			continue
		}
		if _, err := stmt.Exec(word); err != nil {
			// Duplicates in the source list are harmless
			continue
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading blocked words: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info().Int("words", added).Msg("username screening list populated")
	return nil
}

// IsWordBlocked reports whether a word appears in the screening list.
// Usernames are checked before a profile is created; the game is aimed
// at kids.
func (db *DB) IsWordBlocked(word string) (bool, error) {
	clean := strings.TrimSpace(strings.ToLower(word))

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM blocked_words WHERE word = ?", clean).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked word: %w", err)
	}
	return count > 0, nil
}
