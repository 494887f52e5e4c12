package handlers

import "net/http"

// Routes registers the API on the mux. The audio handler is optional;
// without it the audio endpoint is simply absent.
func Routes(mux *http.ServeMux, mw *Middleware, profiles *ProfileHandler, games *GameHandler, audioHandler *AudioHandler) {
	// Profiles and login
	mux.HandleFunc("POST /api/profiles", mw.RateLimit(profiles.CreateProfile))
	mux.HandleFunc("GET /api/profiles", profiles.ListProfiles)
	mux.HandleFunc("GET /api/profiles/suggestion", profiles.SuggestUsername)
	mux.HandleFunc("GET /api/profiles/{id}", mw.RequireProfile(profiles.GetProfile))
	mux.HandleFunc("POST /api/profiles/{id}/avatar", mw.RequireProfile(profiles.UpdateAvatar))
	mux.HandleFunc("POST /api/profiles/{id}/pin", mw.RequireProfile(profiles.SetPIN))
	mux.HandleFunc("DELETE /api/profiles/{id}", mw.RequireProfile(profiles.DeleteProfile))
	mux.HandleFunc("POST /api/login", mw.RateLimit(profiles.Login))
	mux.HandleFunc("GET /api/modes", profiles.ListModes)

	// Game sessions
	mux.HandleFunc("POST /api/games", mw.RequireProfile(games.StartGame))
	mux.HandleFunc("GET /api/games/{id}", mw.RequireProfile(games.GetGame))
	mux.HandleFunc("POST /api/games/{id}/slap", mw.RequireProfile(games.Slap))
	mux.HandleFunc("POST /api/games/{id}/hint", mw.RequireProfile(games.Hint))
	mux.HandleFunc("POST /api/games/{id}/scramble", mw.RequireProfile(games.Scramble))
	mux.HandleFunc("POST /api/games/{id}/end", mw.RequireProfile(games.EndGame))

	if audioHandler != nil {
		mux.HandleFunc("GET /api/games/{id}/audio", mw.RequireProfile(audioHandler.ChallengeAudio))
	}
}
