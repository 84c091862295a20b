package repository

import resumedomain "ai-email-assistant/internal/resume/domain"

// ResumeRepository persists uploaded resumes.
type ResumeRepository interface {
	Create(resume *resumedomain.Resume) error
	FindByUser(userID string) ([]resumedomain.Resume, error)
	FindByID(userID, id string) (*resumedomain.Resume, error)
	Update(resume *resumedomain.Resume) error
	AverageMatchScore(userID string) (float64, error)
}
