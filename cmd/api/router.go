package api

import (
	"net/http"

	authDelivery "ai-email-assistant/internal/auth/delivery"
	authUsecase "ai-email-assistant/internal/auth/usecase"
	emailDelivery "ai-email-assistant/internal/email/delivery"
	emailUsecase "ai-email-assistant/internal/email/usecase"
	resumeDelivery "ai-email-assistant/internal/resume/delivery"
	resumeUsecase "ai-email-assistant/internal/resume/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, emailUc emailUsecase.EmailUsecase, resumeUc resumeUsecase.ResumeUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	emailHandler := emailDelivery.NewEmailHandler(emailUc)
	resumeHandler := resumeDelivery.NewResumeHandler(resumeUc)

	// Prometheus metrics (no auth required)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Email routes (protected)
		emails := api.Group("/email")
		emails.Use(authDelivery.AuthMiddleware(authUc))
		{
			emails.POST("/generate", emailHandler.Generate)
			emails.POST("/application", emailHandler.GenerateApplication)
			emails.POST("/send", emailHandler.Send)
			emails.POST("/analyze-tone", emailHandler.AnalyzeTone)
			emails.GET("/tones", emailHandler.Tones)
		}

		// Resume routes (protected)
		resumes := api.Group("/resume")
		resumes.Use(authDelivery.AuthMiddleware(authUc))
		{
			resumes.POST("/upload", resumeHandler.Upload)
			resumes.POST("/match", resumeHandler.Match)
			resumes.GET("", resumeHandler.List)
		}

		// History routes (protected)
		history := api.Group("/history")
		history.Use(authDelivery.AuthMiddleware(authUc))
		{
			history.GET("", emailHandler.History)
			history.GET("/export/:id", emailHandler.ExportPDF)
		}

		// Usage stats (protected)
		api.GET("/stats", authDelivery.AuthMiddleware(authUc), emailHandler.Stats)
	}
}
