package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"scrambledstates/internal/service"
)

// ProfileHandler serves profile management and login
type ProfileHandler struct {
	profiles *service.ProfileService
	auth     *service.AuthService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService, auth *service.AuthService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, auth: auth}
}

// CreateProfile handles POST /api/profiles
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	profile, err := h.profiles.CreateProfile(req.Username, req.Avatar)
	switch {
	case errors.Is(err, service.ErrUsernameInvalid), errors.Is(err, service.ErrUsernameBlocked):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(w, http.StatusConflict, err.Error(), nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "failed to create profile", err)
		return
	}

	respondJSON(w, http.StatusCreated, newProfileView(profile))
}

// SuggestUsername handles GET /api/profiles/suggestion: a free username
// for the creation screen.
func (h *ProfileHandler) SuggestUsername(w http.ResponseWriter, r *http.Request) {
	username, err := h.profiles.SuggestUsername()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to suggest username", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"username": username})
}

// ListProfiles handles GET /api/profiles
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.ListProfiles()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list profiles", err)
		return
	}

	views := make([]profileView, 0, len(profiles))
	for i := range profiles {
		views = append(views, newProfileView(&profiles[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

// GetProfile handles GET /api/profiles/{id}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id", nil)
		return
	}

	profile, err := h.profiles.GetProfile(id)
	if errors.Is(err, service.ErrProfileNotFound) {
		respondError(w, http.StatusNotFound, "profile not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile", err)
		return
	}

	respondJSON(w, http.StatusOK, newProfileView(profile))
}

// UpdateAvatar handles POST /api/profiles/{id}/avatar
func (h *ProfileHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id", nil)
		return
	}

	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.profiles.UpdateAvatar(id, req.Avatar); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "profile not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update avatar", err)
		return
	}

	respondJSON(w, http.StatusOK, nil)
}

// SetPIN handles POST /api/profiles/{id}/pin
func (h *ProfileHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id", nil)
		return
	}

	var req struct {
		PIN string `json:"pin"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.profiles.SetPIN(id, req.PIN); err != nil {
		if errors.Is(err, service.ErrInvalidPIN) {
			respondError(w, http.StatusBadRequest, "pin must be at least 4 characters", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to set pin", err)
		return
	}

	respondJSON(w, http.StatusOK, nil)
}

// DeleteProfile handles DELETE /api/profiles/{id}. When the profile has
// a parental PIN the request must carry it.
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile id", nil)
		return
	}

	var req struct {
		PIN string `json:"pin"`
	}
	// An empty body is fine for profiles without a PIN
	_ = decodeJSON(r, &req)

	err = h.profiles.DeleteProfile(id, req.PIN)
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		respondError(w, http.StatusNotFound, "profile not found", nil)
		return
	case errors.Is(err, service.ErrInvalidPIN), errors.Is(err, service.ErrPINNotSet):
		respondError(w, http.StatusForbidden, "parental pin required", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "failed to delete profile", err)
		return
	}

	respondJSON(w, http.StatusOK, nil)
}

// Login handles POST /api/login: a profile picks itself and receives a
// token. There is no password; profiles are device-local and the PIN
// only gates destructive actions.
func (h *ProfileHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	profile, err := h.profiles.GetProfileByUsername(req.Username)
	if errors.Is(err, service.ErrProfileNotFound) {
		respondError(w, http.StatusNotFound, "profile not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile", err)
		return
	}

	resp := struct {
		Profile   profileView `json:"profile"`
		Token     string      `json:"token,omitempty"`
		ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
	}{Profile: newProfileView(profile)}

	if h.auth.Enabled() {
		token, exp, err := h.auth.IssueToken(profile.ID, profile.Username)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to issue token", err)
			return
		}
		resp.Token = token
		resp.ExpiresAt = &exp
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListModes handles GET /api/modes
func (h *ProfileHandler) ListModes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, allModeViews())
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
