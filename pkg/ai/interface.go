package ai

import "context"

// Generator is the interface for text-generation backends.
// Implement this interface to add new providers (OpenAI, local models, etc.)
type Generator interface {
	// Generate produces text for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// Name identifies the backing model, recorded as model_used on results.
	Name() string
}
