package tone

import (
	"fmt"
	"strings"

	"ai-email-assistant/pkg/fuzzy"
)

// Resolver normalizes free-text tone input against a catalog and estimates
// the tone of arbitrary text.
type Resolver struct {
	catalog Catalog
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog the resolver was built with.
func (r *Resolver) Catalog() Catalog {
	return r.catalog
}

// Normalize maps raw tone input to a supported tone. Exact matches (after
// trimming and capitalizing) win; otherwise the first catalog tone whose name
// appears anywhere in the input is used; otherwise Formal. Never fails.
func (r *Resolver) Normalize(raw string) Tone {
	if raw == "" {
		return r.catalog[0].Name
	}

	clean := capitalize(strings.TrimSpace(raw))
	for _, p := range r.catalog {
		if string(p.Name) == clean {
			return p.Name
		}
	}

	lower := strings.ToLower(clean)
	for _, p := range r.catalog {
		if strings.Contains(lower, strings.ToLower(string(p.Name))) {
			return p.Name
		}
	}

	return r.catalog[0].Name
}

// PromptPrefix builds the deterministic prompt modifier for a tone: its first
// three preferred words, first two preferred phrases and first three words to
// avoid.
func (r *Resolver) PromptPrefix(t Tone) string {
	p := r.catalog.Profile(t)

	preferred := append(firstN(p.Words, 3), firstN(p.Phrases, 2)...)
	parts := []string{
		fmt.Sprintf("Write in a %s tone, incorporating these elements:", strings.ToLower(string(t))),
		"\nPreferred words and phrases:",
		strings.Join(preferred, ", "),
		"\nAvoid:",
		strings.Join(firstN(p.Avoid, 3), ", "),
	}

	return strings.Join(parts, "\n")
}

// Analyze estimates the tone of text. Each tone is scored by counting its
// preferred words (+1), preferred phrases (+2, stronger indicators) and avoid
// words (-1) found as substrings, normalized by the tone's marker count. The
// highest-scoring tone wins, first catalog entry on ties. Confidence is
// capped at 1.0; it can be negative when avoid words dominate.
func (r *Resolver) Analyze(text string) (Tone, float64) {
	lower := strings.ToLower(text)

	best := r.catalog[0].Name
	bestScore := -1e9

	for _, p := range r.catalog {
		score := 0
		for _, w := range p.Words {
			if strings.Contains(lower, strings.ToLower(w)) {
				score++
			}
		}
		for _, ph := range p.Phrases {
			if strings.Contains(lower, strings.ToLower(ph)) {
				score += 2
			}
		}
		for _, a := range p.Avoid {
			if strings.Contains(lower, strings.ToLower(a)) {
				score--
			}
		}

		normalized := float64(score) / float64(len(p.Words)+len(p.Phrases))
		if normalized > bestScore {
			bestScore = normalized
			best = p.Name
		}
	}

	confidence := bestScore
	if confidence > 1.0 {
		confidence = 1.0
	}
	return best, confidence
}

// Suggest returns catalog tone names close to the (unrecognized) input, for
// client-side hints. Empty when nothing is close.
func (r *Resolver) Suggest(raw string) []string {
	clean := capitalize(strings.TrimSpace(raw))
	return fuzzy.CloseMatches(clean, r.catalog.Options(), 3, 3)
}

// capitalize upper-cases the first letter and lower-cases the rest, matching
// how tone names are stored in the catalog.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
