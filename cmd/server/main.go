package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scrambledstates/internal/audio"
	"scrambledstates/internal/config"
	"scrambledstates/internal/database"
	"scrambledstates/internal/game"
	"scrambledstates/internal/handlers"
	"scrambledstates/internal/repository"
	"scrambledstates/internal/service"
)

func main() {
	if os.Getenv("LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	log.Info().Str("type", cfg.DatabaseType).Msg("database connection established")

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// The username screening list comes from the network; missing it
	// should not keep the server down.
	if err := db.SeedBlockedWords(); err != nil {
		log.Warn().Err(err).Msg("failed to seed blocked words list")
	}

	profileRepo := repository.NewProfileRepository(db)
	profileService := service.NewProfileService(profileRepo, db)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.TokenDuration)

	if !authService.Enabled() {
		log.Warn().Msg("JWT_SECRET not set, running without authentication")
	}

	var announcer game.Announcer = game.NopAnnouncer{}
	var speech *audio.Announcer
	if cfg.AudioCachePath != "" {
		a, err := audio.NewAnnouncer(cfg.AudioCachePath, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize announcer")
		}
		announcer = a
		speech = a
		log.Info().Str("cache", cfg.AudioCachePath).Msg("speech announcer enabled")
	}

	gameService := service.NewGameService(profileService, announcer, log.Logger,
		game.WithSpeedLimit(cfg.SpeedTimeLimit))

	middleware := handlers.NewMiddleware(authService, log.Logger)
	profileHandler := handlers.NewProfileHandler(profileService, authService)
	gameHandler := handlers.NewGameHandler(gameService)

	var audioHandler *handlers.AudioHandler
	if speech != nil {
		audioHandler = handlers.NewAudioHandler(gameService, speech)
	}

	mux := http.NewServeMux()
	handlers.Routes(mux, middleware, profileHandler, gameHandler, audioHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Int("active_games", gameService.ActiveSessions()).Msg("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	// Running games are ended so their scores land in the history
	gameService.Shutdown()
}
