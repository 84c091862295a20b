package main

import (
	"log"

	api "ai-email-assistant/cmd/api"
	authdomain "ai-email-assistant/internal/auth/domain"
	authRepo "ai-email-assistant/internal/auth/repository"
	authUsecase "ai-email-assistant/internal/auth/usecase"
	emaildomain "ai-email-assistant/internal/email/domain"
	emailRepo "ai-email-assistant/internal/email/repository"
	emailUsecase "ai-email-assistant/internal/email/usecase"
	"ai-email-assistant/internal/match"
	resumedomain "ai-email-assistant/internal/resume/domain"
	resumeRepo "ai-email-assistant/internal/resume/repository"
	resumeUsecase "ai-email-assistant/internal/resume/usecase"
	"ai-email-assistant/internal/tone"
	"ai-email-assistant/pkg/ai"
	"ai-email-assistant/pkg/config"
	"ai-email-assistant/pkg/database"
	"ai-email-assistant/pkg/metrics"
	"ai-email-assistant/pkg/pdf"
	"ai-email-assistant/pkg/smtp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &emaildomain.EmailRecord{}, &resumedomain.Resume{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	emailRepository := emailRepo.NewEmailRepository(db)
	resumeRepository := resumeRepo.NewResumeRepository(db)

	// Initialize generation backends. The primary backend is only wired when
	// an API key is configured; the local model always serves as the fallback.
	var primary ai.Generator
	if cfg.OpenAIAPIKey != "" {
		primary = ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Printf("[AI] primary backend: %s", cfg.OpenAIModel)
	} else {
		log.Println("[AI] OPENAI_API_KEY not set, using local model only")
	}
	local := ai.NewLocalClient(cfg.LocalBaseURL, cfg.LocalModel)
	backend := ai.NewFallback(primary, local)

	// Tone and matching engines
	resolver := tone.NewResolver(tone.DefaultCatalog())
	extractor := match.NewExtractor()
	scorer := match.NewScorer(extractor)

	// Email composition pipeline
	composer := emailUsecase.NewComposer(resolver, backend, metrics.EmailGenerationCount)
	pipeline := emailUsecase.NewPipeline(scorer, composer)

	// SMTP sender and PDF converter
	sender := smtp.NewSender(&smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	converter := pdf.NewConverter(cfg.ChromePath)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepo, cfg)
	resumeUc := resumeUsecase.NewResumeUsecase(resumeRepository, scorer)
	emailUc := emailUsecase.NewEmailUsecase(composer, pipeline, emailRepository, sender, converter, resumeUc)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, emailUc, resumeUc, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
