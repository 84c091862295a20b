package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
)

// Result is a tagged generation result identifying which backend produced it.
type Result struct {
	Content string
	Model   string
}

// Fallback routes generation to the primary backend and degrades to the
// secondary on any failure. At most one hop, no further retry.
type Fallback struct {
	primary   Generator
	secondary Generator
}

// NewFallback creates a fallback router over the two backends. Either may be
// nil when the corresponding backend is not configured.
func NewFallback(primary, secondary Generator) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
	}
}

// Generate tries the primary backend with prompt; on failure it invokes the
// secondary backend with fallbackPrompt (a simplified prompt suited to
// smaller local models). The returned Result records the serving model.
func (f *Fallback) Generate(ctx context.Context, prompt, fallbackPrompt string) (Result, error) {
	if f.primary != nil {
		content, err := f.primary.Generate(ctx, prompt)
		if err == nil {
			return Result{Content: content, Model: f.primary.Name()}, nil
		}

		switch {
		case isConnectionError(err):
			log.Printf("[AI] primary backend unreachable: %v, falling back to local model", err)
		case isQuotaError(err):
			log.Printf("[AI] primary backend quota exhausted: %v, falling back to local model", err)
		default:
			log.Printf("[AI] primary backend error: %v, falling back to local model", err)
		}
	}

	if f.secondary != nil {
		content, err := f.secondary.Generate(ctx, fallbackPrompt)
		if err == nil {
			return Result{Content: content, Model: f.secondary.Name()}, nil
		}
		return Result{}, fmt.Errorf("fallback generation failed: %w", err)
	}

	return Result{}, errors.New("no generation backend available")
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}
	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}
	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}
