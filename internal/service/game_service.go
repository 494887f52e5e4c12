package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"scrambledstates/internal/game"
	"scrambledstates/internal/models"
	"scrambledstates/internal/states"
)

var ErrGameNotFound = errors.New("game session not found")

// GameService owns the running game sessions. Each session gets its own
// dealer so games don't contend on a shared random source.
type GameService struct {
	store     game.ProfileStore
	announcer game.Announcer
	logger    zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*game.Session

	// sessionOpts are applied to every new session, after the expiry
	// hook so callers can override pacing in tests.
	sessionOpts []game.SessionOption
}

// NewGameService creates a new game service. Extra session options are
// applied to every game it starts.
func NewGameService(store game.ProfileStore, announcer game.Announcer, logger zerolog.Logger, opts ...game.SessionOption) *GameService {
	return &GameService{
		store:       store,
		announcer:   announcer,
		logger:      logger,
		sessions:    make(map[string]*game.Session),
		sessionOpts: opts,
	}
}

// StartGame creates and starts a session for the profile and mode
func (s *GameService) StartGame(profileID int64, mode models.GameMode) *game.Session {
	id := uuid.NewString()
	dealer := game.NewDealer(states.Catalog(), rand.New(rand.NewSource(time.Now().UnixNano())))

	opts := make([]game.SessionOption, 0, len(s.sessionOpts)+1)
	opts = append(opts,
		game.WithExpireFunc(func(summary game.Summary) {
			s.logger.Info().
				Str("session", id).
				Int64("profile", profileID).
				Str("mode", summary.Mode.ID()).
				Int("score", summary.Score).
				Msg("game ended by countdown")
			s.remove(id)
		}))
	opts = append(opts, s.sessionOpts...)

	session := game.NewSession(id, profileID, mode, dealer, s.store, s.announcer, opts...)

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	session.Start()

	s.logger.Info().
		Str("session", id).
		Int64("profile", profileID).
		Str("mode", mode.ID()).
		Msg("game started")

	return session
}

// Get returns a running session by ID
func (s *GameService) Get(id string) (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// EndGame finishes a session and removes it from the registry. The
// summary is valid even when persisting the game failed.
func (s *GameService) EndGame(id string) (game.Summary, error) {
	session, err := s.Get(id)
	if err != nil {
		return game.Summary{}, err
	}

	summary, err := session.End()
	s.remove(id)

	if err != nil {
		s.logger.Error().Err(err).Str("session", id).Msg("failed to record finished game")
	} else {
		s.logger.Info().
			Str("session", id).
			Str("mode", summary.Mode.ID()).
			Int("score", summary.Score).
			Int("total", summary.TotalScore).
			Msg("game ended")
	}
	return summary, err
}

// ActiveSessions reports how many games are currently running
func (s *GameService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown ends every running session, persisting their scores
func (s *GameService) Shutdown() {
	s.mu.Lock()
	sessions := make([]*game.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.sessions = make(map[string]*game.Session)
	s.mu.Unlock()

	for _, session := range sessions {
		if _, err := session.End(); err != nil {
			s.logger.Error().Err(err).Str("session", session.ID).Msg("failed to record game at shutdown")
		}
	}
}

func (s *GameService) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
