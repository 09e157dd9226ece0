/*
Package server implements the application's network transport layer.
It wires the feature packages to their collaborators, builds the echo
router and returns a configured *http.Server.
*/
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"HealthCompanion/internal/auth"
	"HealthCompanion/internal/companion"
	"HealthCompanion/internal/config"
	"HealthCompanion/internal/database"
	"HealthCompanion/internal/emergency"
	"HealthCompanion/internal/geminiservice"
	"HealthCompanion/internal/healthscore"
	"HealthCompanion/internal/healthtips"
	"HealthCompanion/internal/insights"
	"HealthCompanion/internal/mailer"
	"HealthCompanion/internal/tracking"
	"HealthCompanion/internal/user"

	"github.com/rs/zerolog/log"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	cfg *config.Config

	// db provides access to the database service and connection pool.
	db database.Service

	startedAt time.Time
}

// NewServer initializes every feature package and returns an *http.Server
// ready to listen.
func NewServer(ctx context.Context, cfg *config.Config, db database.Service) (*http.Server, error) {
	s := &Server{
		cfg:       cfg,
		db:        db,
		startedAt: time.Now(),
	}

	if err := s.initPackages(ctx); err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     s.RegisterRoutes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 15 * time.Second,
		// Chat replies are streamed, so writes get a generous budget.
		WriteTimeout: 2 * time.Minute,
	}, nil
}

func (s *Server) initPackages(ctx context.Context) error {
	store := s.db.Store()
	mail := mailer.NewSender(s.cfg.SMTP)

	// Interfaces stay nil unless the backing client is usable; handlers
	// answer 503 in that case.
	var (
		extractor tracking.Extractor
		generator insights.Generator
		streamer  companion.Streamer
	)

	if gem := geminiservice.NewClient(s.cfg.Gem); gem.Enabled() {
		extractor, generator = gem, gem
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set - insights and lab extraction disabled")
	}

	if s.cfg.Ark.Enabled() {
		svc, err := companion.NewService(ctx, s.cfg.Ark)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize chat model - chat disabled")
		} else {
			streamer = svc
		}
	} else {
		log.Warn().Msg("Ark chat model not configured - chat disabled")
	}

	if err := auth.InitAuth(store, mail, s.cfg); err != nil {
		return fmt.Errorf("could not initialize authentication: %w", err)
	}
	user.InitUserPackage(store)
	tracking.InitTrackingPackage(tracking.Deps{
		Store:             store,
		Mailer:            mail,
		Extractor:         extractor,
		UploadDir:         s.cfg.UploadDir,
		AppointmentNotify: s.cfg.AppointmentNotify,
	})
	healthscore.InitHealthScorePackage(store)
	insights.InitInsightsPackage(store, generator)
	companion.InitCompanionPackage(store, streamer, s.cfg.ReferralDoctor)
	emergency.InitEmergencyPackage(store, s.cfg.AppURL)
	healthtips.InitHealthTipsPackage(store)

	return nil
}
