package game

import "scrambledstates/internal/models"

// ProfileStore is what the game core needs from profile persistence:
// reading and upgrading per-mode badges, recording finished games, and
// summing a mode's past scores. Implemented by the service layer.
type ProfileStore interface {
	ModeScore(profileID int64, mode models.GameMode) (int, error)
	Badge(profileID int64, mode models.GameMode) (models.BadgeTier, error)
	UpgradeBadge(profileID int64, mode models.GameMode, tier models.BadgeTier) error
	RecordGame(profileID int64, entry models.GameHistoryEntry) error
}

// SoundEvent is a categorical audio cue
type SoundEvent int

const (
	SoundLaunch SoundEvent = iota
	SoundTap
	SoundCorrect
	SoundIncorrect
)

// Announcer receives the challenge prompt once per dealt round and
// categorical sound events. It is a pure side-effect sink; the core
// never waits on it or reads anything back.
type Announcer interface {
	SpeakChallenge(text string)
	PlaySound(event SoundEvent)
}

// NopAnnouncer discards all announcements
type NopAnnouncer struct{}

func (NopAnnouncer) SpeakChallenge(string) {}
func (NopAnnouncer) PlaySound(SoundEvent)  {}
