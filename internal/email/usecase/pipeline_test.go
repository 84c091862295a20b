package usecase

import (
	"context"
	"testing"

	"ai-email-assistant/internal/match"
	"ai-email-assistant/internal/tone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(primary *stubGenerator) *Pipeline {
	composer, _ := newTestComposer(primary, nil)
	return NewPipeline(match.NewScorer(match.NewExtractor()), composer)
}

func TestPipelineGenerateApplicationEmail(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", content: "application email body"}
	p := newTestPipeline(primary)

	resume := "Proficient in Python and Docker."
	jd := "Python and SQL required. Kubernetes preferred."

	email, analysis := p.GenerateApplicationEmail(context.Background(), resume, jd, "persuasive")

	assert.Equal(t, "application email body", email.Content)
	assert.Equal(t, "Job Application", email.Subject)
	assert.Equal(t, tone.Persuasive, email.Tone)

	assert.Contains(t, analysis.SkillsFound, "python")
	assert.Contains(t, analysis.SkillsFound, "docker")
	assert.Equal(t, []string{"sql"}, analysis.MissingRequirements.Required)
	assert.Equal(t, []string{"kubernetes"}, analysis.MissingRequirements.Preferred)
	assert.GreaterOrEqual(t, analysis.MatchScore, 0)
	assert.LessOrEqual(t, analysis.MatchScore, 100)
	require.Len(t, analysis.DetailedScores, 3)
	assert.Equal(t, 50.0, analysis.DetailedScores["required_skills"])
}

func TestPipelinePromptMentionsAnalysis(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", content: "ok"}
	p := newTestPipeline(primary)

	_, analysis := p.GenerateApplicationEmail(context.Background(),
		"Proficient in Python.", "Python required.", "formal")

	require.Len(t, primary.prompts, 1)
	prompt := primary.prompts[0]
	assert.Contains(t, prompt, "Resume Skills:")
	assert.Contains(t, prompt, "python")
	assert.Contains(t, prompt, "Required: python")
	assert.Contains(t, prompt, "Write a formal job application email")
	assert.Contains(t, prompt, "Match Score:")
	assert.GreaterOrEqual(t, analysis.MatchScore, 0)
}

func TestPipelineDegradesWithEmailOnBackendFailure(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", content: "ok"}
	p := newTestPipeline(primary)

	// The analysis is always produced even when the resume is empty; the
	// composer never fails the pipeline.
	email, analysis := p.GenerateApplicationEmail(context.Background(), "", "Python required.", "formal")

	assert.NotEmpty(t, email.Content)
	assert.Equal(t, []string{"python"}, analysis.MissingRequirements.Required)
	assert.Empty(t, analysis.SkillsFound)
}
