// Package service holds the business logic between HTTP handlers and
// the repositories.
package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"scrambledstates/internal/database"
	"scrambledstates/internal/models"
	"scrambledstates/internal/names"
	"scrambledstates/internal/repository"
)

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrUsernameInvalid = errors.New("username must be 3-24 letters, numbers or underscores")
	ErrUsernameBlocked = errors.New("username not allowed")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidPIN      = errors.New("invalid PIN")
	ErrPINNotSet       = errors.New("no PIN set for this profile")
)

// ProfileService handles player profile business logic. It also
// implements the profile store the game sessions score against.
type ProfileService struct {
	repo *repository.ProfileRepository
	db   *database.DB
}

// NewProfileService creates a new profile service
func NewProfileService(repo *repository.ProfileRepository, db *database.DB) *ProfileService {
	return &ProfileService{repo: repo, db: db}
}

// CreateProfile validates and creates a new player profile
func (s *ProfileService) CreateProfile(username, avatar string) (*models.Profile, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	// The audience is kids; screen usernames against the blocked list
	blocked, err := s.db.IsWordBlocked(username)
	if err != nil {
		return nil, fmt.Errorf("failed to screen username: %w", err)
	}
	if blocked {
		return nil, ErrUsernameBlocked
	}

	existing, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	return s.repo.Create(username, avatar)
}

// SuggestUsername proposes a free, unblocked username for the profile
// creation screen. Plain suggestions get a few tries before falling
// back to numbered ones.
func (s *ProfileService) SuggestUsername() (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		var (
			candidate string
			err       error
		)
		if attempt < 5 {
			candidate, err = names.Suggest()
		} else {
			candidate, err = names.SuggestNumbered()
		}
		if err != nil {
			return "", fmt.Errorf("failed to generate username: %w", err)
		}

		if blocked, err := s.db.IsWordBlocked(candidate); err != nil || blocked {
			continue
		}
		existing, err := s.repo.GetByUsername(candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", errors.New("could not find a free username")
}

// GetProfile loads a profile with its history and badges
func (s *ProfileService) GetProfile(id int64) (*models.Profile, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if profile.History, err = s.repo.History(id, models.MaxHistoryEntries); err != nil {
		return nil, err
	}
	if profile.Badges, err = s.repo.Badges(id); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfileByUsername looks up a profile for login
func (s *ProfileService) GetProfileByUsername(username string) (*models.Profile, error) {
	profile, err := s.repo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// ListProfiles returns all profiles for the picker screen
func (s *ProfileService) ListProfiles() ([]models.Profile, error) {
	return s.repo.List()
}

// UpdateAvatar changes a profile's avatar
func (s *ProfileService) UpdateAvatar(id int64, avatar string) error {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	return s.repo.UpdateAvatar(id, avatar)
}

// SetPIN stores a bcrypt hash of the parental PIN
func (s *ProfileService) SetPIN(id int64, pin string) error {
	if len(pin) < 4 {
		return ErrInvalidPIN
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	return s.repo.SetPinHash(id, string(hash))
}

// VerifyPIN checks the parental PIN for gated actions
func (s *ProfileService) VerifyPIN(id int64, pin string) error {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	if profile.PinHash == "" {
		return ErrPINNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PinHash), []byte(pin)) != nil {
		return ErrInvalidPIN
	}
	return nil
}

// DeleteProfile removes a profile behind the parental PIN gate. A
// profile without a PIN can be deleted freely.
func (s *ProfileService) DeleteProfile(id int64, pin string) error {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	if profile.PinHash != "" {
		if err := s.VerifyPIN(id, pin); err != nil {
			return err
		}
	}
	return s.repo.Delete(id)
}

// The game session store interface: per-mode score totals, badge
// reads/upgrades and game recording all delegate to the repository.

func (s *ProfileService) ModeScore(profileID int64, mode models.GameMode) (int, error) {
	return s.repo.ModeScore(profileID, mode)
}

func (s *ProfileService) Badge(profileID int64, mode models.GameMode) (models.BadgeTier, error) {
	return s.repo.Badge(profileID, mode)
}

func (s *ProfileService) UpgradeBadge(profileID int64, mode models.GameMode, tier models.BadgeTier) error {
	return s.repo.UpgradeBadge(profileID, mode, tier)
}

func (s *ProfileService) RecordGame(profileID int64, entry models.GameHistoryEntry) error {
	return s.repo.RecordGame(profileID, entry)
}

func validateUsername(username string) error {
	if len(username) < 3 || len(username) > 24 {
		return ErrUsernameInvalid
	}
	for _, r := range username {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ErrUsernameInvalid
		}
	}
	return nil
}
