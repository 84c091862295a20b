package usecase

import (
	authdomain "ai-email-assistant/internal/auth/domain"
	authdto "ai-email-assistant/internal/auth/dto"
)

// AuthUsecase handles registration, login and token lifecycle.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(token string) (*authdomain.User, error)
}
