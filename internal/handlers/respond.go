// Package handlers implements the HTTP API: profile management and the
// game session endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError sends a JSON error body. The wrapped error is logged but
// never leaked to the client.
func respondError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Error().Err(err).Int("status", status).Msg(userMsg)
	}
	respondJSON(w, status, errorResponse{Error: userMsg})
}

// decodeJSON parses a request body into dst with unknown fields rejected
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
