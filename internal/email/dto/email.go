package dto

import emaildomain "ai-email-assistant/internal/email/domain"

type GenerateRequest struct {
	Subject       string `json:"subject" binding:"required"`
	Context       string `json:"context" binding:"required"`
	Tone          string `json:"tone"`
	RecipientName string `json:"recipient_name"`
}

type GenerateResponse struct {
	EmailID string                     `json:"email_id"`
	Email   emaildomain.GeneratedEmail `json:"email"`
}

type ApplicationRequest struct {
	ResumeText       string `json:"resume_text"`
	ResumeID         string `json:"resume_id"`
	JobDescription   string `json:"job_description" binding:"required"`
	Tone             string `json:"tone"`
	IncludeMatchInfo bool   `json:"include_match_info"`
}

type ApplicationResponse struct {
	EmailID  string                           `json:"email_id"`
	Email    emaildomain.GeneratedEmail       `json:"email"`
	Analysis *emaildomain.ApplicationAnalysis `json:"analysis,omitempty"`
}

type SendRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
	Body      string `json:"body" binding:"required"`
	EmailID   string `json:"email_id"`
}

type AnalyzeToneRequest struct {
	Text string `json:"text" binding:"required"`
}

type AnalyzeToneResponse struct {
	Tone       string  `json:"tone"`
	Confidence float64 `json:"confidence"`
}

type TonesResponse struct {
	Options     []string `json:"options"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type HistoryResponse struct {
	Emails []emaildomain.EmailRecord `json:"emails"`
	Total  int64                     `json:"total"`
}

type StatsResponse struct {
	EmailCount        int64    `json:"email_count"`
	AverageMatchScore float64  `json:"average_match_score"`
	ModelsUsed        []string `json:"models_used"`
}
