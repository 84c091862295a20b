package match

import (
	"regexp"
	"sort"
	"strings"
)

// Known organization, product and language names used as the entity pass of
// skill extraction. Stands in for a full NER model: the downstream score only
// cares about set overlap, so a lexicon plus the pattern pass below is enough.
var entityLexicon = []string{
	"python", "java", "javascript", "typescript", "golang", "ruby", "php",
	"scala", "kotlin", "swift", "rust", "perl", "matlab", "fortran", "cobol",
	"sql", "nosql", "postgresql", "mysql", "sqlite", "mongodb", "redis",
	"cassandra", "elasticsearch", "oracle", "snowflake",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "git", "github", "gitlab", "linux", "unix", "bash",
	"react", "angular", "vue", "django", "flask", "spring", "rails", "node",
	"express", "laravel", "dotnet", "graphql", "rest",
	"tensorflow", "pytorch", "keras", "pandas", "numpy", "scikit-learn",
	"spark", "hadoop", "kafka", "airflow", "tableau", "excel", "powerbi",
	"microsoft", "google", "amazon", "salesforce", "sap", "ibm",
	"english", "spanish", "french", "german", "mandarin", "japanese",
}

var (
	// tool/language names like "C++", "Node.js", "C#"
	toolPattern = regexp.MustCompile(`[A-Za-z+#]+(?:\.[A-Za-z+]+)*`)
	// capitalized multi-word sequences like "Machine Learning"
	capitalizedPattern = regexp.MustCompile(`\b[A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*\b`)
	// phrases following skill statements
	statementPattern = regexp.MustCompile(`(?i)(?:proficient|experienced|skilled)\s+in\s+([^,.]+)`)
)

// Extractor pulls candidate skill tokens out of free text. It is heuristic:
// false positives are expected and accepted.
type Extractor struct {
	stopWords map[string]bool
	lexicon   map[string]bool
}

// NewExtractor creates a skill extractor with the built-in stop-word list and
// entity lexicon.
func NewExtractor() *Extractor {
	lexicon := make(map[string]bool, len(entityLexicon))
	for _, e := range entityLexicon {
		lexicon[e] = true
	}
	return &Extractor{
		stopWords: newStopWords(),
		lexicon:   lexicon,
	}
}

// ExtractSkills returns the deduplicated, lower-cased skill candidates found
// in text. Entries that are stop words or at most two characters long are
// dropped. The result is sorted for determinism; no semantic ordering is
// implied.
func (e *Extractor) ExtractSkills(text string) []string {
	skills := make(map[string]bool)

	// Entity pass: known org/product/language names appearing as tokens.
	for _, token := range toolPattern.FindAllString(text, -1) {
		lower := strings.ToLower(token)
		if e.lexicon[lower] {
			skills[lower] = true
		}
	}

	// Pattern pass.
	for _, m := range toolPattern.FindAllString(text, -1) {
		skills[strings.ToLower(m)] = true
	}
	for _, m := range capitalizedPattern.FindAllString(text, -1) {
		skills[strings.ToLower(m)] = true
	}
	for _, m := range statementPattern.FindAllStringSubmatch(text, -1) {
		skills[strings.ToLower(strings.TrimSpace(m[1]))] = true
	}

	result := make([]string, 0, len(skills))
	for skill := range skills {
		if len(skill) > 2 && !e.stopWords[skill] {
			result = append(result, skill)
		}
	}
	sort.Strings(result)
	return result
}
