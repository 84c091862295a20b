package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	name    string
	content string
	err     error
	calls   int
	last    string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.last = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func (f *fakeGenerator) Name() string { return f.name }

func TestFallbackPrimarySucceeds(t *testing.T) {
	primary := &fakeGenerator{name: "GPT-3.5", content: "primary output"}
	secondary := &fakeGenerator{name: "phi", content: "secondary output"}
	f := NewFallback(primary, secondary)

	got, err := f.Generate(context.Background(), "full prompt", "simple prompt")
	require.NoError(t, err)
	assert.Equal(t, "primary output", got.Content)
	assert.Equal(t, "GPT-3.5", got.Model)
	assert.Equal(t, "full prompt", primary.last)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackDegradesToSecondary(t *testing.T) {
	primary := &fakeGenerator{name: "GPT-3.5", err: errors.New("insufficient_quota")}
	secondary := &fakeGenerator{name: "phi", content: "secondary output"}
	f := NewFallback(primary, secondary)

	got, err := f.Generate(context.Background(), "full prompt", "simple prompt")
	require.NoError(t, err)
	assert.Equal(t, "secondary output", got.Content)
	assert.Equal(t, "phi", got.Model)
	assert.Equal(t, "simple prompt", secondary.last, "secondary should receive the simplified prompt")
	assert.Equal(t, 1, primary.calls)
}

func TestFallbackNoPrimary(t *testing.T) {
	secondary := &fakeGenerator{name: "phi", content: "secondary output"}
	f := NewFallback(nil, secondary)

	got, err := f.Generate(context.Background(), "full prompt", "simple prompt")
	require.NoError(t, err)
	assert.Equal(t, "phi", got.Model)
}

func TestFallbackBothFail(t *testing.T) {
	primary := &fakeGenerator{name: "GPT-3.5", err: errors.New("connection refused")}
	secondary := &fakeGenerator{name: "phi", err: errors.New("model not loaded")}
	f := NewFallback(primary, secondary)

	_, err := f.Generate(context.Background(), "full prompt", "simple prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
	// No retry beyond the single fallback hop.
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackNoBackends(t *testing.T) {
	f := NewFallback(nil, nil)

	_, err := f.Generate(context.Background(), "p", "fp")
	assert.Error(t, err)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, isConnectionError(errors.New("dial tcp: connection refused")))
	assert.True(t, isConnectionError(errors.New("lookup api.openai.com: no such host")))
	assert.False(t, isConnectionError(nil))

	assert.True(t, isQuotaError(errors.New("429: insufficient_quota")))
	assert.False(t, isQuotaError(errors.New("connection refused")))
	assert.False(t, isQuotaError(nil))
}
