package usecase

import (
	"errors"
	"strings"

	"ai-email-assistant/internal/match"
	resumedomain "ai-email-assistant/internal/resume/domain"
	"ai-email-assistant/internal/resume/dto"
	"ai-email-assistant/internal/resume/repository"
	"ai-email-assistant/pkg/metrics"
)

// resumeUsecase implements ResumeUsecase
type resumeUsecase struct {
	resumeRepo repository.ResumeRepository
	scorer     *match.Scorer
}

// NewResumeUsecase creates a new instance of resumeUsecase
func NewResumeUsecase(resumeRepo repository.ResumeRepository, scorer *match.Scorer) ResumeUsecase {
	return &resumeUsecase{
		resumeRepo: resumeRepo,
		scorer:     scorer,
	}
}

func (u *resumeUsecase) Upload(userID, filename string, data []byte) (*resumedomain.Resume, error) {
	content, err := extractText(filename, data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("resume contains no extractable text")
	}

	resume := &resumedomain.Resume{
		Filename: filename,
		Content:  content,
		UserID:   userID,
	}
	if err := u.resumeRepo.Create(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) Match(userID string, req *dto.MatchRequest) (*dto.MatchResponse, error) {
	resumeText := req.ResumeText
	var stored *resumedomain.Resume

	if resumeText == "" {
		if req.ResumeID == "" {
			return nil, errors.New("resume_text or resume_id is required")
		}
		found, err := u.resumeRepo.FindByID(userID, req.ResumeID)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, errors.New("resume not found")
		}
		stored = found
		resumeText = found.Content
	}

	result := u.scorer.ComputeMatchScore(resumeText, req.JobDescription)
	missing := u.scorer.MissingRequirements(resumeText, req.JobDescription)
	skills := u.scorer.Extractor().ExtractSkills(resumeText)
	reqs := u.scorer.Extractor().AnalyzeRequirements(req.JobDescription)

	metrics.ResumeMatchCount.Inc()

	// Remember the last match on the stored resume.
	if stored != nil {
		score := result.OverallScore
		stored.JobDescription = req.JobDescription
		stored.MatchedScore = &score
		if err := u.resumeRepo.Update(stored); err != nil {
			return nil, err
		}
	}

	return &dto.MatchResponse{
		MatchScore:          result.OverallScore,
		DetailedScores:      result.DetailedScores,
		MissingRequirements: missing,
		SkillsFound:         skills,
		Requirements:        reqs,
	}, nil
}

func (u *resumeUsecase) List(userID string) ([]resumedomain.Resume, error) {
	return u.resumeRepo.FindByUser(userID)
}

func (u *resumeUsecase) FindContent(userID, resumeID string) (string, error) {
	resume, err := u.resumeRepo.FindByID(userID, resumeID)
	if err != nil {
		return "", err
	}
	if resume == nil {
		return "", errors.New("resume not found")
	}
	return resume.Content, nil
}

func (u *resumeUsecase) AverageMatchScore(userID string) (float64, error) {
	return u.resumeRepo.AverageMatchScore(userID)
}
