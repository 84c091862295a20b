package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	emaildomain "ai-email-assistant/internal/email/domain"
	"ai-email-assistant/internal/email/dto"
	"ai-email-assistant/internal/email/repository"
	"ai-email-assistant/pkg/pdf"
	"ai-email-assistant/pkg/smtp"
)

// emailUsecase implements EmailUsecase
type emailUsecase struct {
	composer  *Composer
	pipeline  *Pipeline
	emailRepo repository.EmailRepository
	sender    MailSender
	converter PDFConverter
	resumes   ResumeProvider
}

// NewEmailUsecase creates a new instance of emailUsecase
func NewEmailUsecase(
	composer *Composer,
	pipeline *Pipeline,
	emailRepo repository.EmailRepository,
	sender MailSender,
	converter PDFConverter,
	resumes ResumeProvider,
) EmailUsecase {
	return &emailUsecase{
		composer:  composer,
		pipeline:  pipeline,
		emailRepo: emailRepo,
		sender:    sender,
		converter: converter,
		resumes:   resumes,
	}
}

func (u *emailUsecase) Generate(ctx context.Context, userID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	email := u.composer.Generate(ctx, req.Subject, req.Context, req.Tone, req.RecipientName)

	record := &emaildomain.EmailRecord{
		Subject:   email.Subject,
		Body:      email.Content,
		Tone:      string(email.Tone),
		ModelUsed: email.ModelUsed,
		UserID:    userID,
		CreatedAt: email.GeneratedAt,
	}
	if err := u.emailRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to save email: %w", err)
	}

	return &dto.GenerateResponse{
		EmailID: record.ID,
		Email:   email,
	}, nil
}

func (u *emailUsecase) GenerateApplication(ctx context.Context, userID string, req *dto.ApplicationRequest) (*dto.ApplicationResponse, error) {
	resumeText := req.ResumeText
	if resumeText == "" {
		if req.ResumeID == "" {
			return nil, errors.New("resume_text or resume_id is required")
		}
		content, err := u.resumes.FindContent(userID, req.ResumeID)
		if err != nil {
			return nil, err
		}
		resumeText = content
	}

	email, analysis := u.pipeline.GenerateApplicationEmail(ctx, resumeText, req.JobDescription, req.Tone)

	record := &emaildomain.EmailRecord{
		Subject:   email.Subject,
		Body:      email.Content,
		Tone:      string(email.Tone),
		ModelUsed: email.ModelUsed,
		UserID:    userID,
		CreatedAt: email.GeneratedAt,
	}
	if err := u.emailRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to save email: %w", err)
	}

	resp := &dto.ApplicationResponse{
		EmailID: record.ID,
		Email:   email,
	}
	if req.IncludeMatchInfo {
		resp.Analysis = &analysis
	}
	return resp, nil
}

func (u *emailUsecase) Send(ctx context.Context, userID string, req *dto.SendRequest) error {
	err := u.sender.Send(ctx, &smtp.Message{
		To:      req.Recipient,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return err
	}

	// Remember the recipient on the originating record, if any.
	if req.EmailID != "" {
		record, err := u.emailRepo.FindByID(userID, req.EmailID)
		if err != nil {
			log.Printf("[WARN] failed to load email record %s after send: %v", req.EmailID, err)
			return nil
		}
		if record != nil {
			record.Recipient = req.Recipient
			if err := u.emailRepo.Update(record); err != nil {
				log.Printf("[WARN] failed to update email record %s after send: %v", req.EmailID, err)
			}
		}
	}

	return nil
}

func (u *emailUsecase) AnalyzeTone(text string) *dto.AnalyzeToneResponse {
	detected, confidence := u.composer.Resolver().Analyze(text)
	return &dto.AnalyzeToneResponse{
		Tone:       string(detected),
		Confidence: confidence,
	}
}

func (u *emailUsecase) Tones(query string) *dto.TonesResponse {
	resp := &dto.TonesResponse{
		Options: u.composer.Resolver().Catalog().Options(),
	}
	if query != "" {
		resp.Suggestions = u.composer.Resolver().Suggest(query)
	}
	return resp
}

func (u *emailUsecase) History(userID string) (*dto.HistoryResponse, error) {
	records, err := u.emailRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryResponse{
		Emails: records,
		Total:  int64(len(records)),
	}, nil
}

func (u *emailUsecase) ExportPDF(ctx context.Context, userID, emailID string) ([]byte, string, error) {
	record, err := u.emailRepo.FindByID(userID, emailID)
	if err != nil {
		return nil, "", err
	}
	if record == nil {
		return nil, "", nil
	}

	html, err := pdf.RenderEmailHTML(record.Subject, record.Tone, record.Body, record.CreatedAt)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render email: %w", err)
	}

	buf, err := u.converter.ConvertHTMLToPDF(ctx, html)
	if err != nil {
		return nil, "", err
	}

	return buf, fmt.Sprintf("email_%s.pdf", record.ID), nil
}

func (u *emailUsecase) Stats(userID string) (*dto.StatsResponse, error) {
	count, err := u.emailRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	models, err := u.emailRepo.ModelsUsedByUser(userID)
	if err != nil {
		return nil, err
	}
	avg, err := u.resumes.AverageMatchScore(userID)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		EmailCount:        count,
		AverageMatchScore: avg,
		ModelsUsed:        models,
	}, nil
}
