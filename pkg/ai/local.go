package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// LocalClient implements Generator against an Ollama-compatible local
// inference server. It is the fallback path when the hosted backend fails.
type LocalClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewLocalClient creates a new local-model generator.
func NewLocalClient(baseURL, model string) *LocalClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "phi"
	}
	return &LocalClient{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

func (l *LocalClient) Generate(ctx context.Context, prompt string) (string, error) {
	url := l.baseURL + "/api/generate"

	payload := map[string]interface{}{
		"model":  l.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature":    0.7,
			"top_p":          0.9,
			"repeat_penalty": 1.2,
			"num_predict":    500,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("local model request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("local model API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return strings.TrimSpace(result.Response), nil
}

// Name reports the configured local model identifier.
func (l *LocalClient) Name() string {
	return l.model
}
