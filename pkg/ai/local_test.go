package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalClientGenerate(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"response": "  Dear Sir/Madam,\n\nHello.\n",
			"done":     true,
		})
	}))
	defer srv.Close()

	client := NewLocalClient(srv.URL, "phi")
	got, err := client.Generate(context.Background(), "write an email")
	require.NoError(t, err)
	assert.Equal(t, "Dear Sir/Madam,\n\nHello.", got)

	assert.Equal(t, "phi", received["model"])
	assert.Equal(t, "write an email", received["prompt"])
	assert.Equal(t, false, received["stream"])

	options, ok := received["options"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.7, options["temperature"])
	assert.Equal(t, 0.9, options["top_p"])
	assert.Equal(t, 1.2, options["repeat_penalty"])
}

func TestLocalClientGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewLocalClient(srv.URL, "phi")
	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLocalClientDefaults(t *testing.T) {
	client := NewLocalClient("", "")
	assert.Equal(t, "phi", client.Name())
}
