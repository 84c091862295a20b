package tone

// Tone names a writing-style profile.
type Tone string

const (
	Formal     Tone = "Formal"
	Friendly   Tone = "Friendly"
	Persuasive Tone = "Persuasive"
	Apologetic Tone = "Apologetic"
	Assertive  Tone = "Assertive"
)

// Profile is an immutable catalog entry describing one tone: its
// characteristic vocabulary plus the greeting/closing templates used when
// composing emails. "[Name]" in the greeting is substituted with the
// recipient name.
type Profile struct {
	Name        Tone
	Description string
	Words       []string
	Phrases     []string
	Avoid       []string
	Greeting    string
	Closing     string
}

// Catalog is an ordered set of tone profiles. Enumeration order is
// significant: substring matching and analysis tie-breaking both resolve to
// the first entry.
type Catalog []Profile

// DefaultCatalog returns the built-in tone catalog. Constructed fresh so
// callers cannot mutate shared state.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:        Formal,
			Description: "professional and business-appropriate",
			Words: []string{
				"respectfully", "kindly", "accordingly", "pursuant", "regarding",
				"furthermore", "nevertheless", "therefore",
			},
			Phrases: []string{
				"I am writing to", "please be advised", "as per our discussion",
				"thank you for your consideration", "at your earliest convenience",
			},
			Avoid: []string{
				"hey", "yeah", "cool", "awesome", "thanks", "btw", "okay",
			},
			Greeting: "Dear [Name],",
			Closing:  "Best regards,",
		},
		{
			Name:        Friendly,
			Description: "warm and approachable while maintaining professionalism",
			Words: []string{
				"great", "wonderful", "appreciate", "thanks", "helpful",
				"excited", "looking forward", "pleased",
			},
			Phrases: []string{
				"hope you're doing well", "great to hear from you",
				"thanks so much", "looking forward to", "all the best",
			},
			Avoid: []string{
				"hereby", "pursuant", "moreover", "thus", "henceforth",
			},
			Greeting: "Hi [Name],",
			Closing:  "Thanks and best wishes,",
		},
		{
			Name:        Persuasive,
			Description: "convincing and compelling while being respectful",
			Words: []string{
				"opportunity", "benefit", "advantage", "valuable", "essential",
				"proven", "guaranteed", "exclusive",
			},
			Phrases: []string{
				"you'll be pleased to know", "I'm confident that",
				"this will ensure", "consider the benefits", "imagine how",
			},
			Avoid: []string{
				"maybe", "perhaps", "possibly", "might", "somewhat",
			},
			Greeting: "Dear [Name],",
			Closing:  "Looking forward to your positive response,",
		},
		{
			Name:        Apologetic,
			Description: "sincere and remorseful while maintaining professionalism",
			Words: []string{
				"apologize", "sorry", "regret", "understand", "inconvenience",
				"mistake", "error", "rectify",
			},
			Phrases: []string{
				"I sincerely apologize", "please accept our apologies",
				"we understand your frustration", "we will make this right",
			},
			Avoid: []string{
				"but", "however", "though", "excuse", "defend",
			},
			Greeting: "Dear [Name],",
			Closing:  "Sincerely apologizing,",
		},
		{
			Name:        Assertive,
			Description: "confident and direct while remaining professional",
			Words: []string{
				"will", "must", "require", "ensure", "immediate",
				"essential", "crucial", "necessary",
			},
			Phrases: []string{
				"I expect", "please ensure that", "it is essential",
				"this requires immediate attention", "I need",
			},
			Avoid: []string{
				"maybe", "kind of", "sort of", "hopefully", "if possible",
			},
			Greeting: "Dear [Name],",
			Closing:  "Best regards,",
		},
	}
}

// Options lists the tone names in catalog order.
func (c Catalog) Options() []string {
	options := make([]string, 0, len(c))
	for _, p := range c {
		options = append(options, string(p.Name))
	}
	return options
}

// Profile returns the entry for the given tone, falling back to the first
// (Formal) entry for unknown tones.
func (c Catalog) Profile(t Tone) Profile {
	for _, p := range c {
		if p.Name == t {
			return p
		}
	}
	return c[0]
}
