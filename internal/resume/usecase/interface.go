package usecase

import (
	"ai-email-assistant/internal/resume/dto"
	resumedomain "ai-email-assistant/internal/resume/domain"
)

// ResumeUsecase is the application surface for resume upload and matching.
// It also satisfies the email usecase's ResumeProvider.
type ResumeUsecase interface {
	Upload(userID, filename string, data []byte) (*resumedomain.Resume, error)
	Match(userID string, req *dto.MatchRequest) (*dto.MatchResponse, error)
	List(userID string) ([]resumedomain.Resume, error)

	FindContent(userID, resumeID string) (string, error)
	AverageMatchScore(userID string) (float64, error)
}
