package match

import (
	"regexp"
	"strings"
)

var sentenceSplit = regexp.MustCompile(`[.!?\n]+`)

// Requirements is the per-category breakdown of a job description. Required
// and preferred skills are extracted tokens; experience and education keep
// the raw sentences.
type Requirements struct {
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Experience      []string `json:"experience"`
	Education       []string `json:"education"`
}

var (
	requiredKeywords   = []string{"required", "must have", "essential"}
	preferredKeywords  = []string{"preferred", "desired", "plus"}
	experienceKeywords = []string{"experience", "year"}
	educationKeywords  = []string{"degree", "education", "certification"}
)

// AnalyzeRequirements classifies each sentence of a job description into at
// most one bucket. Buckets are checked in order (required, preferred,
// experience, education) and the first match wins, so a sentence is never
// double-counted. Sentences matching no bucket contribute nothing.
func (e *Extractor) AnalyzeRequirements(jobDescription string) Requirements {
	var reqs Requirements

	for _, sentence := range sentenceSplit.Split(jobDescription, -1) {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)

		switch {
		case containsAny(lower, requiredKeywords):
			reqs.RequiredSkills = append(reqs.RequiredSkills, e.ExtractSkills(trimmed)...)
		case containsAny(lower, preferredKeywords):
			reqs.PreferredSkills = append(reqs.PreferredSkills, e.ExtractSkills(trimmed)...)
		case containsAny(lower, experienceKeywords):
			reqs.Experience = append(reqs.Experience, trimmed)
		case containsAny(lower, educationKeywords):
			reqs.Education = append(reqs.Education, trimmed)
		}
	}

	return reqs
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
