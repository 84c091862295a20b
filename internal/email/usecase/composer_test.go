package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-email-assistant/internal/tone"
	"ai-email-assistant/pkg/ai"

	"github.com/stretchr/testify/assert"
)

// stubGenerator is a scriptable ai.Generator recording the prompts it received.
type stubGenerator struct {
	name    string
	content string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func (s *stubGenerator) Name() string { return s.name }

type countingCounter struct {
	n int
}

func (c *countingCounter) Inc() { c.n++ }

func newTestComposer(primary, secondary ai.Generator) (*Composer, *countingCounter) {
	counter := &countingCounter{}
	resolver := tone.NewResolver(tone.DefaultCatalog())
	return NewComposer(resolver, ai.NewFallback(primary, secondary), counter), counter
}

func TestComposerGeneratePrimary(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", content: "Dear Alice,\n\nHello.\n\nBest regards,"}
	secondary := &stubGenerator{name: "phi", content: "fallback"}
	c, counter := newTestComposer(primary, secondary)

	got := c.Generate(context.Background(), "Meeting", "schedule a meeting", "formal", "Alice")

	assert.Equal(t, primary.content, got.Content)
	assert.Equal(t, "GPT-3.5", got.ModelUsed)
	assert.Equal(t, tone.Formal, got.Tone)
	assert.Equal(t, "Meeting", got.Subject)
	assert.False(t, got.GeneratedAt.IsZero())
	assert.Equal(t, 1, counter.n)
	assert.Empty(t, secondary.prompts, "fallback should not be consulted when primary succeeds")
}

func TestComposerGenerateFallback(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", err: errors.New("quota exceeded")}
	secondary := &stubGenerator{name: "phi", content: "local output"}
	c, counter := newTestComposer(primary, secondary)

	got := c.Generate(context.Background(), "Update", "status update", "friendly", "")

	assert.Equal(t, "local output", got.Content)
	assert.Equal(t, "phi", got.ModelUsed)
	assert.Equal(t, 1, counter.n)

	// The fallback receives the simplified prompt, not the structured one.
	assert.Len(t, secondary.prompts, 1)
	assert.Contains(t, secondary.prompts[0], "Write a friendly email.")
	assert.NotContains(t, secondary.prompts[0], "Email structure:")
}

func TestComposerGenerateBothFail(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", err: errors.New("connection refused")}
	secondary := &stubGenerator{name: "phi", err: errors.New("model not loaded")}
	c, counter := newTestComposer(primary, secondary)

	got := c.Generate(context.Background(), "Update", "status update", "formal", "")

	assert.True(t, strings.HasPrefix(got.Content, "Error generating email:"), "got content %q", got.Content)
	assert.Contains(t, got.Content, "model not loaded")
	assert.Equal(t, "none", got.ModelUsed)
	assert.Equal(t, tone.Formal, got.Tone)
	assert.Equal(t, 1, counter.n)
}

func TestComposerPromptStructure(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", content: "ok"}
	c, _ := newTestComposer(primary, nil)

	c.Generate(context.Background(), "Thanks", "thank the team", "friendly", "Alice")

	assert.Len(t, primary.prompts, 1)
	prompt := primary.prompts[0]
	assert.Contains(t, prompt, "Subject: Thanks")
	assert.Contains(t, prompt, "Context: thank the team")
	assert.Contains(t, prompt, "Use friendly tone")
	assert.Contains(t, prompt, `Start with: "Hi Alice,"`)
	assert.Contains(t, prompt, `End with: "Thanks and best wishes,"`)
}

func TestComposerPromptDefaultGreeting(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", content: "ok"}
	c, _ := newTestComposer(primary, nil)

	c.Generate(context.Background(), "Hello", "say hello", "formal", "")

	assert.Contains(t, primary.prompts[0], `Start with: "Dear Sir/Madam,"`)
}

func TestComposerNormalizesTone(t *testing.T) {
	primary := &stubGenerator{name: "GPT-3.5", content: "ok"}
	c, _ := newTestComposer(primary, nil)

	testCases := []struct {
		raw  string
		want tone.Tone
	}{
		{raw: "", want: tone.Formal},
		{raw: "PERSUASIVE", want: tone.Persuasive},
		{raw: "make it assertive", want: tone.Assertive},
		{raw: "gibberish", want: tone.Formal},
	}

	for _, tc := range testCases {
		got := c.Generate(context.Background(), "S", "ctx", tc.raw, "")
		assert.Equal(t, tc.want, got.Tone, "raw tone %q", tc.raw)
	}
}
