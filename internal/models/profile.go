package models

import "time"

// MaxHistoryEntries caps how many past games a profile keeps
const MaxHistoryEntries = 50

// Profile represents a player profile with game statistics and history
type Profile struct {
	ID           int64
	Username     string
	Avatar       string
	TotalScore   int
	GamesPlayed  int
	HighestScore int
	LastPlayed   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// PinHash is the bcrypt hash of the parental PIN, empty when unset.
	// Never serialized to API responses.
	PinHash string

	// Loaded on demand, most recent first, capped at MaxHistoryEntries
	History []GameHistoryEntry
	Badges  ModeBadges
}

// GameHistoryEntry is one finished game session in a profile's history
type GameHistoryEntry struct {
	ID       int64
	Mode     GameMode
	Score    int
	Streak   int
	PlayedAt time.Time
}
