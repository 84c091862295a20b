package usecase

import (
	"context"
	"fmt"
	"strings"

	emaildomain "ai-email-assistant/internal/email/domain"
	"ai-email-assistant/internal/match"
)

// Pipeline orchestrates resume matching and email composition into a
// tailored job-application email plus analysis payload.
type Pipeline struct {
	scorer   *match.Scorer
	composer *Composer
}

// NewPipeline creates an application-email pipeline.
func NewPipeline(scorer *match.Scorer, composer *Composer) *Pipeline {
	return &Pipeline{
		scorer:   scorer,
		composer: composer,
	}
}

// GenerateApplicationEmail produces a job-application email tailored to the
// resume/job pair, together with the match analysis. Skill extraction runs
// again on top of the extraction inside the scorer; it is pure and
// deterministic so the redundancy is harmless.
func (p *Pipeline) GenerateApplicationEmail(ctx context.Context, resumeText, jobDescription, rawTone string) (emaildomain.GeneratedEmail, emaildomain.ApplicationAnalysis) {
	result := p.scorer.ComputeMatchScore(resumeText, jobDescription)
	missing := p.scorer.MissingRequirements(resumeText, jobDescription)

	skills := p.scorer.Extractor().ExtractSkills(resumeText)
	reqs := p.scorer.Extractor().AnalyzeRequirements(jobDescription)

	t := p.composer.Resolver().Normalize(rawTone)
	promptContext := fmt.Sprintf(`Resume Skills:
%s

Job Requirements:
Required: %s
Preferred: %s

Match Score: %d%%

Write a %s job application email that:
1. Highlights matching skills
2. Addresses any missing requirements positively
3. Shows enthusiasm and relevant experience`,
		strings.Join(skills, ", "),
		strings.Join(reqs.RequiredSkills, ", "),
		strings.Join(reqs.PreferredSkills, ", "),
		result.OverallScore,
		strings.ToLower(string(t)))

	email := p.composer.Generate(ctx, "Job Application", promptContext, string(t), "")

	analysis := emaildomain.ApplicationAnalysis{
		MatchScore:          result.OverallScore,
		DetailedScores:      result.DetailedScores,
		MissingRequirements: missing,
		SkillsFound:         skills,
	}

	return email, analysis
}
