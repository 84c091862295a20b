package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	emaildomain "ai-email-assistant/internal/email/domain"
	"ai-email-assistant/internal/tone"
	"ai-email-assistant/pkg/ai"
)

// GenerationCounter receives one increment per generation request, regardless
// of which backend served it. Satisfied by prometheus counters.
type GenerationCounter interface {
	Inc()
}

// Composer builds generation prompts and drives the primary backend with a
// local fallback. It never returns an error for backend failure: when both
// backends fail, the failure is embedded in the content string.
type Composer struct {
	resolver *tone.Resolver
	backend  *ai.Fallback
	counter  GenerationCounter
}

// NewComposer creates a composer over the given tone resolver and backend
// router.
func NewComposer(resolver *tone.Resolver, backend *ai.Fallback, counter GenerationCounter) *Composer {
	return &Composer{
		resolver: resolver,
		backend:  backend,
		counter:  counter,
	}
}

// Resolver returns the tone resolver the composer was built with.
func (c *Composer) Resolver() *tone.Resolver {
	return c.resolver
}

// Generate produces an email for the given subject and context in the given
// tone. rawTone is normalized, so any input yields a valid tone. The
// generation counter is incremented exactly once per call.
func (c *Composer) Generate(ctx context.Context, subject, emailContext, rawTone, recipientName string) emaildomain.GeneratedEmail {
	c.counter.Inc()

	t := c.resolver.Normalize(rawTone)
	prompt := c.buildPrompt(subject, emailContext, t, recipientName)
	fallbackPrompt := c.buildFallbackPrompt(subject, emailContext, t)

	result, err := c.backend.Generate(ctx, prompt, fallbackPrompt)
	content := result.Content
	modelUsed := result.Model
	if err != nil {
		content = fmt.Sprintf("Error generating email: %v", err)
		if modelUsed == "" {
			modelUsed = "none"
		}
	}

	return emaildomain.GeneratedEmail{
		Content:     content,
		Tone:        t,
		Subject:     subject,
		GeneratedAt: time.Now(),
		ModelUsed:   modelUsed,
	}
}

// buildPrompt assembles the structured prompt for the primary backend:
// tone description, subject, context, tone-specific greeting and closing,
// and fixed structural instructions.
func (c *Composer) buildPrompt(subject, emailContext string, t tone.Tone, recipientName string) string {
	profile := c.resolver.Catalog().Profile(t)

	greeting := "Dear Sir/Madam,"
	if recipientName != "" {
		greeting = strings.ReplaceAll(profile.Greeting, "[Name]", recipientName)
	}

	return fmt.Sprintf(`Generate a %s email based on the following:

Subject: %s
Context: %s

Requirements:
- Use %s tone
- Be clear and concise
- Follow proper email structure
- Include appropriate greeting and closing
- Maintain professional language
- Address key points from the context

Email structure:
1. Start with: "%s"
2. Introduction paragraph
3. Main content paragraphs
4. Closing paragraph
5. End with: "%s"
`, profile.Description, subject, emailContext, strings.ToLower(string(t)), greeting, profile.Closing)
}

// buildFallbackPrompt is the simplified prompt for the local model.
func (c *Composer) buildFallbackPrompt(subject, emailContext string, t tone.Tone) string {
	return fmt.Sprintf(`Write a %s email.
Subject: %s
Details: %s
Make it clear, professional, and well-structured.
Use proper email format with greeting and closing.`, strings.ToLower(string(t)), subject, emailContext)
}
