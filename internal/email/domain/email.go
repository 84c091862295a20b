package domain

import (
	"time"

	"ai-email-assistant/internal/match"
	"ai-email-assistant/internal/tone"
)

// EmailRecord is a persisted generated email, owned by a user.
type EmailRecord struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body" gorm:"type:text"`
	Tone      string    `json:"tone"`
	Recipient string    `json:"recipient,omitempty"`
	ModelUsed string    `json:"model_used"`
	UserID    string    `json:"user_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedEmail is the result of one generation request. Not mutated after
// creation; callers persist it as an EmailRecord.
type GeneratedEmail struct {
	Content     string    `json:"content"`
	Tone        tone.Tone `json:"tone"`
	Subject     string    `json:"subject"`
	GeneratedAt time.Time `json:"generated_at"`
	ModelUsed   string    `json:"model_used"`
}

// ApplicationAnalysis accompanies a generated job-application email.
// Ephemeral, never persisted.
type ApplicationAnalysis struct {
	MatchScore          int                `json:"match_score"`
	DetailedScores      map[string]float64 `json:"detailed_scores"`
	MissingRequirements match.Missing      `json:"missing_requirements"`
	SkillsFound         []string           `json:"skills_found"`
}
