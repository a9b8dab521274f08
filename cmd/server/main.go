package main

import (
	"fmt"
	"log"

	"hackfest/internal/auth/google"
	"hackfest/internal/config"
	"hackfest/internal/email/noop"
	"hackfest/internal/email/ses"
	"hackfest/internal/events"
	"hackfest/internal/handler"
	"hackfest/internal/port"
	"hackfest/internal/repository/postgres"
	"hackfest/internal/router"
	"hackfest/internal/service"
	s3storage "hackfest/internal/storage/s3"
)

// @title Hackfest Content API
// @version 1.0
// @description Content synchronization and admin authoring API for the hackathon landing page.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The accessor opens lazily; an unconfigured store is a supported
	// degraded mode, not a startup failure.
	acc := postgres.NewAccessor(&cfg.DB)
	defer acc.Close()

	contentRepo := postgres.NewContentRepo(acc)
	bus := events.NewBus()

	storage, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.ToAddress)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	verifier := google.NewVerifier(cfg.Google.ClientID)

	authSvc := service.NewAuthService(verifier, cfg.Admin)
	contentSvc := service.NewContentService(contentRepo, bus)
	mediaSvc := service.NewMediaService(storage, &cfg.S3)

	authH := handler.NewAuthHandler(authSvc)
	contentH := handler.NewContentHandler(contentSvc, bus)
	adminH := handler.NewAdminHandler(contentSvc, mediaSvc)
	contactH := handler.NewContactHandler(sender)
	healthH := handler.NewHealthHandler(acc)

	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, contentH, adminH, contactH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
