package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"scrambledstates/internal/game"
	"scrambledstates/internal/models"
	"scrambledstates/internal/service"
)

// memoryStore implements the game's profile store in memory
type memoryStore struct {
	badges map[models.GameMode]models.BadgeTier
	games  []models.GameHistoryEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{badges: make(map[models.GameMode]models.BadgeTier)}
}

func (m *memoryStore) ModeScore(profileID int64, mode models.GameMode) (int, error) {
	total := 0
	for _, g := range m.games {
		if g.Mode == mode {
			total += g.Score
		}
	}
	return total, nil
}

func (m *memoryStore) Badge(profileID int64, mode models.GameMode) (models.BadgeTier, error) {
	return m.badges[mode], nil
}

func (m *memoryStore) UpgradeBadge(profileID int64, mode models.GameMode, tier models.BadgeTier) error {
	m.badges[mode] = tier
	return nil
}

func (m *memoryStore) RecordGame(profileID int64, entry models.GameHistoryEntry) error {
	m.games = append(m.games, entry)
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memoryStore) {
	t.Helper()

	store := newMemoryStore()
	games := service.NewGameService(store, game.NopAnnouncer{}, zerolog.Nop())
	t.Cleanup(games.Shutdown)

	mw := NewMiddleware(service.NewAuthService("", 0), zerolog.Nop())
	mux := http.NewServeMux()
	Routes(mux, mw, NewProfileHandler(nil, service.NewAuthService("", 0)), NewGameHandler(games), nil)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, store
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestGameLifecycle(t *testing.T) {
	srv, store := newTestServer(t)

	// Start a game
	resp := postJSON(t, srv.URL+"/api/games", map[string]interface{}{
		"profileId": 1,
		"mode":      "educational",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start status = %d, want 201", resp.StatusCode)
	}

	var started gameView
	decodeBody(t, resp, &started)
	if started.ID == "" {
		t.Fatal("started game should have an ID")
	}
	if started.Mode != "educational" {
		t.Errorf("mode = %q, want educational", started.Mode)
	}
	if len(started.Hand) != game.HandSize {
		t.Errorf("hand size = %d, want %d", len(started.Hand), game.HandSize)
	}
	if started.Challenge == "" {
		t.Error("started game should carry a challenge prompt")
	}

	// Fetch current state
	getResp, err := http.Get(srv.URL + "/api/games/" + started.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	var fetched gameView
	decodeBody(t, getResp, &fetched)
	if fetched.ID != started.ID {
		t.Errorf("fetched ID = %q, want %q", fetched.ID, started.ID)
	}

	// Tapping a card not in the hand is rejected
	resp = postJSON(t, srv.URL+"/api/games/"+started.ID+"/slap", map[string]string{
		"state": "Atlantis",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("slap unknown card status = %d, want 400", resp.StatusCode)
	}

	// Tapping a hand card always gets a verdict
	resp = postJSON(t, srv.URL+"/api/games/"+started.ID+"/slap", map[string]string{
		"state": started.Hand[0].Name,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("slap status = %d, want 200", resp.StatusCode)
	}
	var slap slapView
	decodeBody(t, resp, &slap)
	if slap.Feedback == "" {
		t.Error("slap should carry feedback text")
	}

	// End the game
	resp = postJSON(t, srv.URL+"/api/games/"+started.ID+"/end", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("end status = %d, want 200", resp.StatusCode)
	}
	var summary summaryView
	decodeBody(t, resp, &summary)
	if summary.Mode != "educational" {
		t.Errorf("summary mode = %q, want educational", summary.Mode)
	}

	if len(store.games) != 1 {
		t.Errorf("recorded games = %d, want 1", len(store.games))
	}

	// The session is gone after ending
	getResp, err = http.Get(srv.URL + "/api/games/" + started.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("get after end status = %d, want 404", getResp.StatusCode)
	}
}

func TestStartGameValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"unknown mode", map[string]interface{}{"profileId": 1, "mode": "marathon"}, http.StatusBadRequest},
		{"missing profile", map[string]interface{}{"mode": "speed"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/games", tt.body)
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestUnknownGameIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{
		"/api/games/nope",
		"/api/games/nope/slap",
		"/api/games/nope/hint",
		"/api/games/nope/scramble",
		"/api/games/nope/end",
	} {
		method := http.MethodPost
		if path == "/api/games/nope" {
			method = http.MethodGet
		}
		req, err := http.NewRequest(method, srv.URL+path, bytes.NewReader([]byte(`{"state":"Ohio"}`)))
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", method, path, resp.StatusCode)
		}
	}
}

func TestHintEndpointOnlyHelpsEducational(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/games", map[string]interface{}{
		"profileId": 1,
		"mode":      "match",
	})
	var started gameView
	decodeBody(t, resp, &started)

	resp = postJSON(t, srv.URL+"/api/games/"+started.ID+"/hint", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("hint status = %d, want 200", resp.StatusCode)
	}
	var hint struct {
		Hint      string `json:"hint"`
		Available bool   `json:"available"`
	}
	decodeBody(t, resp, &hint)
	if hint.Available || hint.Hint != "" {
		t.Errorf("hint in match mode = %+v, want unavailable", hint)
	}
}

func TestScrambleEndpointKeepsHand(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/games", map[string]interface{}{
		"profileId": 1,
		"mode":      "speed",
	})
	var started gameView
	decodeBody(t, resp, &started)

	resp = postJSON(t, srv.URL+"/api/games/"+started.ID+"/scramble", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scramble status = %d, want 200", resp.StatusCode)
	}
	var scrambled struct {
		Scrambled bool     `json:"scrambled"`
		Game      gameView `json:"game"`
	}
	decodeBody(t, resp, &scrambled)
	if !scrambled.Scrambled {
		t.Error("first scramble should succeed")
	}

	before := make(map[string]bool)
	for _, c := range started.Hand {
		before[c.Name] = true
	}
	for _, c := range scrambled.Game.Hand {
		if !before[c.Name] {
			t.Errorf("scramble introduced new card %s", c.Name)
		}
	}
	if len(scrambled.Game.Hand) != len(started.Hand) {
		t.Errorf("hand size changed from %d to %d", len(started.Hand), len(scrambled.Game.Hand))
	}
}
