package api

import (
	authUsecase "ai-email-assistant/internal/auth/usecase"
	emailUsecase "ai-email-assistant/internal/email/usecase"
	resumeUsecase "ai-email-assistant/internal/resume/usecase"
	"ai-email-assistant/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authUsecase.AuthUsecase
	emailUsecase  emailUsecase.EmailUsecase
	resumeUsecase resumeUsecase.ResumeUsecase
	config        *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, emailUc emailUsecase.EmailUsecase, resumeUc resumeUsecase.ResumeUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:   authUc,
		emailUsecase:  emailUc,
		resumeUsecase: resumeUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(h.config.CORSOrigins) == 0 || h.config.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = h.config.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	SetupRoutes(r, h.authUsecase, h.emailUsecase, h.resumeUsecase)

	return r.Run(addr)
}
