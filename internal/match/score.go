package match

import (
	"math"
	"regexp"
	"strings"
)

// Category weights for the overall match score.
var scoreWeights = map[string]float64{
	"required_skills":    0.4,
	"preferred_skills":   0.2,
	"content_similarity": 0.4,
}

// MatchResult holds the overall 0-100 match score and the per-category
// breakdown it was computed from. The overall score is always the weighted
// sum of the detailed scores, rounded down; it is never cached.
type MatchResult struct {
	OverallScore   int                `json:"match_score"`
	DetailedScores map[string]float64 `json:"detailed_scores"`
}

// Missing lists required and preferred job skills absent from the resume, in
// the order they appeared in the requirement breakdown.
type Missing struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// Scorer combines skill overlap and content similarity into a match score.
type Scorer struct {
	extractor *Extractor
}

// NewScorer creates a scorer over the given extractor.
func NewScorer(extractor *Extractor) *Scorer {
	return &Scorer{extractor: extractor}
}

// Extractor returns the underlying skill extractor.
func (s *Scorer) Extractor() *Extractor {
	return s.extractor
}

// ComputeMatchScore scores how well a resume fits a job description.
// Required and preferred skill overlap ratios are vacuously 1.0 when the job
// lists none; content similarity is TF-IDF cosine over the two cleaned texts.
// Deterministic for identical inputs.
func (s *Scorer) ComputeMatchScore(resumeText, jobDescription string) MatchResult {
	resumeClean := s.cleanTokens(resumeText)
	jobClean := s.cleanTokens(jobDescription)

	resumeSkills := toSet(s.extractor.ExtractSkills(resumeText))
	reqs := s.extractor.AnalyzeRequirements(jobDescription)
	required := toSet(reqs.RequiredSkills)
	preferred := toSet(reqs.PreferredSkills)

	requiredMatch := overlapRatio(resumeSkills, required)
	preferredMatch := overlapRatio(resumeSkills, preferred)
	contentSimilarity := tfidfCosine(resumeClean, jobClean)

	detailed := map[string]float64{
		"required_skills":    requiredMatch * 100,
		"preferred_skills":   preferredMatch * 100,
		"content_similarity": contentSimilarity * 100,
	}

	overall := 0.0
	for category, score := range detailed {
		overall += scoreWeights[category] * score
	}

	return MatchResult{
		OverallScore:   int(math.Floor(overall)),
		DetailedScores: detailed,
	}
}

// MissingRequirements lists the job's required and preferred skills that do
// not appear among the resume's extracted skills. Duplicates from the
// requirement breakdown are preserved.
func (s *Scorer) MissingRequirements(resumeText, jobDescription string) Missing {
	resumeSkills := toSet(s.extractor.ExtractSkills(resumeText))
	reqs := s.extractor.AnalyzeRequirements(jobDescription)

	missing := Missing{Required: []string{}, Preferred: []string{}}
	for _, skill := range reqs.RequiredSkills {
		if !resumeSkills[skill] {
			missing.Required = append(missing.Required, skill)
		}
	}
	for _, skill := range reqs.PreferredSkills {
		if !resumeSkills[skill] {
			missing.Preferred = append(missing.Preferred, skill)
		}
	}
	return missing
}

var nonWord = regexp.MustCompile(`[^\w\s-]`)

// cleanTokens lower-cases, strips punctuation (keeping hyphens for compound
// terms), drops stop words and short tokens, and lemmatizes. All-uppercase
// tokens (acronyms) and hyphenated tokens are kept verbatim.
func (s *Scorer) cleanTokens(text string) []string {
	stripped := nonWord.ReplaceAllString(text, " ")

	var tokens []string
	for _, token := range strings.Fields(stripped) {
		lower := strings.ToLower(token)
		if s.extractor.stopWords[lower] || len(lower) <= 2 {
			continue
		}
		if strings.Contains(token, "-") || token == strings.ToUpper(token) {
			tokens = append(tokens, lower)
			continue
		}
		tokens = append(tokens, lemmatize(lower))
	}
	return tokens
}

// lemmatize reduces common English noun inflections. A full lemmatizer is
// deliberately out of scope; overlap scoring only needs plural collapsing.
func lemmatize(token string) string {
	switch {
	case len(token) > 4 && strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case len(token) > 4 && (strings.HasSuffix(token, "ses") ||
		strings.HasSuffix(token, "xes") ||
		strings.HasSuffix(token, "zes") ||
		strings.HasSuffix(token, "ches") ||
		strings.HasSuffix(token, "shes")):
		return token[:len(token)-2]
	case len(token) > 3 && strings.HasSuffix(token, "s") &&
		!strings.HasSuffix(token, "ss") &&
		!strings.HasSuffix(token, "us") &&
		!strings.HasSuffix(token, "is"):
		return token[:len(token)-1]
	}
	return token
}

// tfidfCosine computes cosine similarity between the TF-IDF vectors of two
// token lists, using the two documents themselves as the corpus. IDF values
// are corpus-relative to just these two documents (smoothed, near-binary
// weighting); this matches the behavior the score was tuned against.
func tfidfCosine(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	countA := termCounts(a)
	countB := termCounts(b)

	vocab := make(map[string]bool, len(countA)+len(countB))
	for t := range countA {
		vocab[t] = true
	}
	for t := range countB {
		vocab[t] = true
	}

	// smoothed idf over n=2 documents: ln((1+n)/(1+df)) + 1
	var dot, normA, normB float64
	for term := range vocab {
		df := 0
		if countA[term] > 0 {
			df++
		}
		if countB[term] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1

		wa := float64(countA[term]) * idf
		wb := float64(countB[term]) * idf
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func overlapRatio(have, want map[string]bool) float64 {
	if len(want) == 0 {
		return 1.0
	}
	hits := 0
	for skill := range want {
		if have[skill] {
			hits++
		}
	}
	return float64(hits) / float64(len(want))
}
