package handlers

import (
	"net/http"

	"scrambledstates/internal/audio"
	"scrambledstates/internal/service"
)

// AudioHandler streams the spoken challenge prompt for a running game.
// Only wired up when the announcer is configured.
type AudioHandler struct {
	games     *service.GameService
	announcer *audio.Announcer
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(games *service.GameService, announcer *audio.Announcer) *AudioHandler {
	return &AudioHandler{games: games, announcer: announcer}
}

// ChallengeAudio handles GET /api/games/{id}/audio: the MP3 clip of the
// current challenge prompt. The clip is usually already cached because
// the session spoke it when the round was dealt.
func (h *AudioHandler) ChallengeAudio(w http.ResponseWriter, r *http.Request) {
	session, err := h.games.Get(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "game not found", nil)
		return
	}

	snap := session.Snapshot()
	filename, err := h.announcer.ClipFor(snap.Challenge)
	if err != nil {
		respondError(w, http.StatusBadGateway, "speech synthesis unavailable", err)
		return
	}

	path, err := h.announcer.ClipPath(filename)
	if err != nil {
		respondError(w, http.StatusNotFound, "clip not found", err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}
