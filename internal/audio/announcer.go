// Package audio implements the game announcer: challenge prompts are
// synthesized to cached MP3 clips the client fetches and plays.
package audio

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"scrambledstates/internal/game"
)

const ttsRequestTimeout = 10 * time.Second

// Announcer caches speech clips for challenge prompts under cacheDir.
// It implements the game's announcer port; sound events are only
// logged, since the effects ship with the client.
type Announcer struct {
	cacheDir string
	logger   zerolog.Logger
}

// NewAnnouncer creates an announcer caching clips in cacheDir
func NewAnnouncer(cacheDir string, logger zerolog.Logger) (*Announcer, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio cache: %w", err)
	}
	return &Announcer{cacheDir: cacheDir, logger: logger}, nil
}

// SpeakChallenge synthesizes the challenge prompt in the background.
// Sessions call this on every dealt round; failures only cost the clip.
func (a *Announcer) SpeakChallenge(text string) {
	if _, err := a.ClipFor(text); err != nil {
		a.logger.Warn().Err(err).Str("text", text).Msg("failed to synthesize challenge prompt")
	}
}

// PlaySound logs the categorical cue; playback happens client-side
func (a *Announcer) PlaySound(event game.SoundEvent) {
	a.logger.Debug().Int("event", int(event)).Msg("sound cue")
}

// ClipFor returns the cached clip filename for the given text,
// generating it on first use.
func (a *Announcer) ClipFor(text string) (string, error) {
	filename := clipFilename(text)
	path := filepath.Join(a.cacheDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := a.synthesize(text, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}
	return filename, nil
}

// ClipPath resolves a clip filename inside the cache directory,
// refusing names that escape it.
func (a *Announcer) ClipPath(filename string) (string, error) {
	if filepath.Base(filename) != filename || filepath.Ext(filename) != ".mp3" {
		return "", fmt.Errorf("invalid clip name: %q", filename)
	}
	path := filepath.Join(a.cacheDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("clip not found: %q", filename)
	}
	return path, nil
}

// clipFilename derives a stable filename from the prompt text. Hashing
// keeps letters like 'K' and full sentences equally safe as filenames.
func clipFilename(text string) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(text))))
	return "clip_" + hex.EncodeToString(sum[:8]) + ".mp3"
}

// synthesize fetches speech from Google Translate's TTS endpoint,
// which is free and needs no API key.
func (a *Announcer) synthesize(text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := "https://translate.google.com/translate_tts?" + params.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Google rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
