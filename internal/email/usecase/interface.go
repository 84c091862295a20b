package usecase

import (
	"context"

	"ai-email-assistant/internal/email/dto"
	"ai-email-assistant/pkg/smtp"
)

// EmailUsecase is the application surface for email generation, delivery,
// history and analysis.
type EmailUsecase interface {
	Generate(ctx context.Context, userID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	GenerateApplication(ctx context.Context, userID string, req *dto.ApplicationRequest) (*dto.ApplicationResponse, error)
	Send(ctx context.Context, userID string, req *dto.SendRequest) error
	AnalyzeTone(text string) *dto.AnalyzeToneResponse
	Tones(query string) *dto.TonesResponse
	History(userID string) (*dto.HistoryResponse, error)
	ExportPDF(ctx context.Context, userID, emailID string) ([]byte, string, error)
	Stats(userID string) (*dto.StatsResponse, error)
}

// MailSender delivers a composed message over SMTP.
type MailSender interface {
	Send(ctx context.Context, msg *smtp.Message) error
}

// PDFConverter renders HTML into PDF bytes.
type PDFConverter interface {
	ConvertHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ResumeProvider resolves stored resume content for application emails, and
// reports aggregate match statistics.
type ResumeProvider interface {
	FindContent(userID, resumeID string) (string, error)
	AverageMatchScore(userID string) (float64, error)
}
