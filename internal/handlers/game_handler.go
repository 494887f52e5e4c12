package handlers

import (
	"errors"
	"net/http"

	"scrambledstates/internal/game"
	"scrambledstates/internal/models"
	"scrambledstates/internal/service"
)

// GameHandler serves the game session endpoints
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// StartGame handles POST /api/games
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProfileID int64  `json:"profileId"`
		Mode      string `json:"mode"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	mode, err := models.ParseGameMode(req.Mode)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown game mode", nil)
		return
	}

	profileID := req.ProfileID
	if authed, ok := ProfileFromContext(r.Context()); ok {
		// The token decides who is playing
		profileID = authed
	}
	if profileID == 0 {
		respondError(w, http.StatusBadRequest, "profileId is required", nil)
		return
	}

	session := h.games.StartGame(profileID, mode)
	respondJSON(w, http.StatusCreated, newGameView(session.Snapshot()))
}

// GetGame handles GET /api/games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newGameView(session.Snapshot()))
}

// Slap handles POST /api/games/{id}/slap
func (h *GameHandler) Slap(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		State string `json:"state"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := session.Slap(req.State)
	switch {
	case errors.Is(err, game.ErrCardNotInHand):
		respondError(w, http.StatusBadRequest, "that state is not in the hand", nil)
		return
	case errors.Is(err, game.ErrSessionEnded):
		respondError(w, http.StatusConflict, "game has ended", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "failed to process tap", err)
		return
	}

	respondJSON(w, http.StatusOK, newSlapView(result, session.Snapshot()))
}

// Hint handles POST /api/games/{id}/hint
func (h *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	text, available := session.Hint()
	respondJSON(w, http.StatusOK, struct {
		Hint      string `json:"hint,omitempty"`
		Available bool   `json:"available"`
	}{Hint: text, Available: available})
}

// Scramble handles POST /api/games/{id}/scramble
func (h *GameHandler) Scramble(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	scrambled := session.Scramble()
	resp := struct {
		Scrambled bool     `json:"scrambled"`
		Game      gameView `json:"game"`
	}{Scrambled: scrambled, Game: newGameView(session.Snapshot())}
	respondJSON(w, http.StatusOK, resp)
}

// EndGame handles POST /api/games/{id}/end
func (h *GameHandler) EndGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	summary, err := h.games.EndGame(id)
	if errors.Is(err, service.ErrGameNotFound) {
		respondError(w, http.StatusNotFound, "game not found", nil)
		return
	}
	// A persistence failure is already logged by the service; the client
	// still gets the final score.
	respondJSON(w, http.StatusOK, newSummaryView(summary))
}

func (h *GameHandler) session(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	session, err := h.games.Get(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "game not found", nil)
		return nil, false
	}
	return session, true
}
