package dto

import (
	"ai-email-assistant/internal/match"
	resumedomain "ai-email-assistant/internal/resume/domain"
)

type MatchRequest struct {
	ResumeText     string `json:"resume_text"`
	ResumeID       string `json:"resume_id"`
	JobDescription string `json:"job_description" binding:"required"`
}

type MatchResponse struct {
	MatchScore          int                `json:"match_score"`
	DetailedScores      map[string]float64 `json:"detailed_scores"`
	MissingRequirements match.Missing      `json:"missing_requirements"`
	SkillsFound         []string           `json:"skills_found"`
	Requirements        match.Requirements `json:"requirements"`
}

type UploadResponse struct {
	Resume *resumedomain.Resume `json:"resume"`
}

type ListResponse struct {
	Resumes []resumedomain.Resume `json:"resumes"`
}
