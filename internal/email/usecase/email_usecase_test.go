package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	emaildomain "ai-email-assistant/internal/email/domain"
	"ai-email-assistant/internal/email/dto"
	"ai-email-assistant/internal/match"
	"ai-email-assistant/pkg/smtp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmailRepo is an in-memory EmailRepository for usecase tests.
type fakeEmailRepo struct {
	records map[string]*emaildomain.EmailRecord
	nextID  int
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{records: make(map[string]*emaildomain.EmailRecord)}
}

func (r *fakeEmailRepo) Create(record *emaildomain.EmailRecord) error {
	if record.ID == "" {
		r.nextID++
		record.ID = fmt.Sprintf("email-%d", r.nextID)
	}
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeEmailRepo) FindByUser(userID string) ([]emaildomain.EmailRecord, error) {
	var out []emaildomain.EmailRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeEmailRepo) FindByID(userID, id string) (*emaildomain.EmailRecord, error) {
	rec, ok := r.records[id]
	if !ok || rec.UserID != userID {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (r *fakeEmailRepo) Update(record *emaildomain.EmailRecord) error {
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeEmailRepo) CountByUser(userID string) (int64, error) {
	records, _ := r.FindByUser(userID)
	return int64(len(records)), nil
}

func (r *fakeEmailRepo) ModelsUsedByUser(userID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	records, _ := r.FindByUser(userID)
	for _, rec := range records {
		if !seen[rec.ModelUsed] {
			seen[rec.ModelUsed] = true
			out = append(out, rec.ModelUsed)
		}
	}
	return out, nil
}

type fakeSender struct {
	sent []*smtp.Message
	err  error
}

func (s *fakeSender) Send(_ context.Context, msg *smtp.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type fakeConverter struct{}

func (fakeConverter) ConvertHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	return []byte("%PDF-" + html[:4]), nil
}

type fakeResumes struct {
	content map[string]string
	avg     float64
}

func (r *fakeResumes) FindContent(_, resumeID string) (string, error) {
	content, ok := r.content[resumeID]
	if !ok {
		return "", errors.New("resume not found")
	}
	return content, nil
}

func (r *fakeResumes) AverageMatchScore(string) (float64, error) {
	return r.avg, nil
}

func newTestUsecase(t *testing.T) (EmailUsecase, *fakeEmailRepo, *fakeSender, *fakeResumes) {
	t.Helper()
	primary := &stubGenerator{name: "GPT-3.5", content: "generated body"}
	composer, _ := newTestComposer(primary, nil)
	pipeline := NewPipeline(match.NewScorer(match.NewExtractor()), composer)

	repo := newFakeEmailRepo()
	sender := &fakeSender{}
	resumes := &fakeResumes{content: map[string]string{}, avg: 72.5}
	uc := NewEmailUsecase(composer, pipeline, repo, sender, fakeConverter{}, resumes)
	return uc, repo, sender, resumes
}

func TestUsecaseGeneratePersistsRecord(t *testing.T) {
	uc, repo, _, _ := newTestUsecase(t)

	resp, err := uc.Generate(context.Background(), "user-1", &dto.GenerateRequest{
		Subject: "Meeting",
		Context: "schedule a sync",
		Tone:    "formal",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.EmailID)

	stored, err := repo.FindByID("user-1", resp.EmailID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "generated body", stored.Body)
	assert.Equal(t, "Formal", stored.Tone)
	assert.Equal(t, "GPT-3.5", stored.ModelUsed)
}

func TestUsecaseGenerateApplicationFromStoredResume(t *testing.T) {
	uc, _, _, resumes := newTestUsecase(t)
	resumes.content["resume-1"] = "Proficient in Python and Docker."

	resp, err := uc.GenerateApplication(context.Background(), "user-1", &dto.ApplicationRequest{
		ResumeID:         "resume-1",
		JobDescription:   "Python and SQL required.",
		Tone:             "persuasive",
		IncludeMatchInfo: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Analysis)
	assert.Equal(t, []string{"sql"}, resp.Analysis.MissingRequirements.Required)
}

func TestUsecaseGenerateApplicationWithoutAnalysis(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	resp, err := uc.GenerateApplication(context.Background(), "user-1", &dto.ApplicationRequest{
		ResumeText:     "Python developer",
		JobDescription: "Python required.",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Analysis)
}

func TestUsecaseGenerateApplicationRequiresResume(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	_, err := uc.GenerateApplication(context.Background(), "user-1", &dto.ApplicationRequest{
		JobDescription: "Python required.",
	})
	assert.Error(t, err)
}

func TestUsecaseSendRecordsRecipient(t *testing.T) {
	uc, repo, sender, _ := newTestUsecase(t)

	genResp, err := uc.Generate(context.Background(), "user-1", &dto.GenerateRequest{
		Subject: "Meeting", Context: "sync", Tone: "formal",
	})
	require.NoError(t, err)

	err = uc.Send(context.Background(), "user-1", &dto.SendRequest{
		Recipient: "alice@example.com",
		Subject:   "Meeting",
		Body:      "body",
		EmailID:   genResp.EmailID,
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].To)

	stored, _ := repo.FindByID("user-1", genResp.EmailID)
	require.NotNil(t, stored)
	assert.Equal(t, "alice@example.com", stored.Recipient)
}

func TestUsecaseSendPropagatesDeliveryError(t *testing.T) {
	uc, _, sender, _ := newTestUsecase(t)
	sender.err = errors.New("connection refused")

	err := uc.Send(context.Background(), "user-1", &dto.SendRequest{
		Recipient: "alice@example.com", Subject: "s", Body: "b",
	})
	assert.Error(t, err)
}

func TestUsecaseExportPDF(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	genResp, err := uc.Generate(context.Background(), "user-1", &dto.GenerateRequest{
		Subject: "Meeting", Context: "sync", Tone: "formal",
	})
	require.NoError(t, err)

	buf, filename, err := uc.ExportPDF(context.Background(), "user-1", genResp.EmailID)
	require.NoError(t, err)
	assert.NotEmpty(t, buf)
	assert.Equal(t, fmt.Sprintf("email_%s.pdf", genResp.EmailID), filename)
}

func TestUsecaseExportPDFNotFound(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	buf, filename, err := uc.ExportPDF(context.Background(), "user-1", "missing")
	require.NoError(t, err)
	assert.Nil(t, buf)
	assert.Empty(t, filename)
}

func TestUsecaseExportPDFOtherUsersEmail(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	genResp, err := uc.Generate(context.Background(), "user-1", &dto.GenerateRequest{
		Subject: "Meeting", Context: "sync", Tone: "formal",
	})
	require.NoError(t, err)

	buf, _, err := uc.ExportPDF(context.Background(), "user-2", genResp.EmailID)
	require.NoError(t, err)
	assert.Nil(t, buf, "another user's email must not be exportable")
}

func TestUsecaseAnalyzeTone(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	resp := uc.AnalyzeTone("I sincerely apologize for the inconvenience")
	assert.Equal(t, "Apologetic", resp.Tone)
	assert.LessOrEqual(t, resp.Confidence, 1.0)
}

func TestUsecaseTones(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	resp := uc.Tones("")
	assert.Equal(t, []string{"Formal", "Friendly", "Persuasive", "Apologetic", "Assertive"}, resp.Options)
	assert.Empty(t, resp.Suggestions)

	resp = uc.Tones("Formel")
	assert.Contains(t, resp.Suggestions, "Formal")
}

func TestUsecaseStats(t *testing.T) {
	uc, _, _, _ := newTestUsecase(t)

	for i := 0; i < 3; i++ {
		_, err := uc.Generate(context.Background(), "user-1", &dto.GenerateRequest{
			Subject: "S", Context: "ctx", Tone: "formal",
		})
		require.NoError(t, err)
	}

	stats, err := uc.Stats("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.EmailCount)
	assert.Equal(t, 72.5, stats.AverageMatchScore)
	assert.Equal(t, []string{"GPT-3.5"}, stats.ModelsUsed)
}
