package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukisa95/ai-assist/internal/llm"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      llm.Config
		wantName string
		wantErr  bool
	}{
		{"gemini", llm.Config{Provider: "gemini", APIKey: "k"}, "gemini", false},
		{"openai", llm.Config{Provider: "openai", APIKey: "k", Model: "gpt-4o"}, "openai", false},
		{"with retry keeps name", llm.Config{Provider: "gemini", APIKey: "k", Retry: llm.DefaultRetryConfig()}, "gemini", false},
		{"unknown provider", llm.Config{Provider: "ollama", APIKey: "k"}, "", true},
		{"missing provider", llm.Config{APIKey: "k"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := llm.NewProvider(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}

func TestNewProvider_NotConfigured(t *testing.T) {
	_, err := llm.NewProvider(llm.Config{Provider: "gemini"}, nil)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestGetProvider(t *testing.T) {
	info := llm.GetProvider("gemini")
	require.NotNil(t, info)
	assert.Contains(t, info.Models, "gemini-1.5-flash-latest")
	assert.Contains(t, info.Models, info.DefaultModel)
	assert.Nil(t, llm.GetProvider("nope"))
	assert.Equal(t, []string{"gemini", "openai"}, llm.ProviderIDs())
}
