package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukisa95/ai-assist/internal/llm"
)

func TestOpenAI_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body["model"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-123",
			"object":  "chat.completion",
			"created": 1677652288,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": "**Done**"},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	p := llm.NewOpenAIProvider("sk-test", "", server.URL, time.Second)
	resp, err := p.Generate(context.Background(), llm.NewRequest("hi"))
	require.NoError(t, err)
	assert.Equal(t, "**Done**", resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.NotEmpty(t, resp.RequestID)
}

func TestOpenAI_Generate_Errors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantCred      bool
		wantTransient bool
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`,
			wantCred: true,
		},
		{
			name:          "rate limited",
			status:        http.StatusTooManyRequests,
			body:          `{"error":{"message":"Rate limit reached","type":"requests"}}`,
			wantTransient: true,
		},
		{
			name:          "unavailable without json",
			status:        http.StatusServiceUnavailable,
			body:          "upstream down",
			wantTransient: true,
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   `{"error":{"message":"bad model","type":"invalid_request_error"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := llm.NewOpenAIProvider("k", "", server.URL, time.Second).Generate(context.Background(), llm.NewRequest("x"))
			require.Error(t, err)
			assert.Equal(t, tt.wantCred, errors.Is(err, llm.ErrInvalidCredential), "credential: %v", err)
			assert.Equal(t, tt.wantTransient, llm.IsTransient(err), "transient: %v", err)
		})
	}
}
