package settings_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukisa95/ai-assist/internal/settings"
)

func newStore(t *testing.T) *settings.Store {
	t.Helper()
	st, err := settings.NewStore(filepath.Join(t.TempDir(), "aiassist", "settings.yaml"))
	require.NoError(t, err)
	return st
}

func TestStore_LoadMissing(t *testing.T) {
	st := newStore(t)
	assert.False(t, st.Exists())

	s, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestStore_APIKeyLifecycle(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.SetAPIKey("AIzaSyExampleKey1234"))
	assert.True(t, st.Exists())

	info, err := os.Stat(st.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	s, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "AIzaSyExampleKey1234", s.APIKey)
	assert.Equal(t, "AIza...1234", s.MaskedKey())

	require.NoError(t, st.RemoveAPIKey())
	s, err = st.Load()
	require.NoError(t, err)
	assert.Empty(t, s.APIKey)
	assert.Equal(t, "(not set)", s.MaskedKey())

	assert.Error(t, st.SetAPIKey(""))
}

func TestStore_SetModel(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.SetModel("gemini-1.5-pro-latest"))
	s, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro-latest", s.Model)

	assert.Error(t, st.SetModel("gpt-4o"), "openai model under gemini provider")
}

func TestStore_SetProvider(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.SetProvider("openai"))
	s, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "openai", s.Provider)
	assert.Equal(t, "gpt-4o-mini", s.Model)

	assert.Error(t, st.SetProvider("ollama"))
}

func TestStore_SetBoldInHeadings(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.SetBoldInHeadings(true))
	s, err := st.Load()
	require.NoError(t, err)
	assert.True(t, s.RenderConfig().BoldInHeadings)
	assert.Equal(t, "Heading 2", s.RenderConfig().HeadingStyleName(2))
}

func TestStore_LoadInvalidYAML(t *testing.T) {
	st := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0755))
	require.NoError(t, os.WriteFile(st.Path(), []byte("provider: [unclosed"), 0600))

	_, err := st.Load()
	assert.Error(t, err)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*settings.Settings)
		wantErr bool
	}{
		{"default", func(*settings.Settings) {}, false},
		{"unknown provider", func(s *settings.Settings) { s.Provider = "ollama" }, true},
		{"empty model", func(s *settings.Settings) { s.Model = "" }, true},
		{"bad base url", func(s *settings.Settings) { s.BaseURL = "not a url" }, true},
		{"good base url", func(s *settings.Settings) { s.BaseURL = "https://proxy.example.com/v1" }, false},
		{"negative timeout", func(s *settings.Settings) { s.TimeoutSeconds = -1 }, true},
		{"custom heading style", func(s *settings.Settings) { s.Render.HeadingStyle = "Überschrift %d" }, false},
		{"heading style with literal percent", func(s *settings.Settings) { s.Render.HeadingStyle = "100%% Heading %d" }, false},
		{"heading style without level", func(s *settings.Settings) { s.Render.HeadingStyle = "Titel" }, true},
		{"heading style with two levels", func(s *settings.Settings) { s.Render.HeadingStyle = "H%d.%d" }, true},
		{"heading style with other verb", func(s *settings.Settings) { s.Render.HeadingStyle = "%s %d" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings.Default()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettings_ApplyEnv(t *testing.T) {
	t.Setenv(settings.EnvProvider, "openai")
	t.Setenv(settings.EnvAPIKey, "sk-env")
	t.Setenv(settings.EnvModel, "gpt-4o")
	t.Setenv(settings.EnvBaseURL, "")

	s := settings.Default()
	s.TimeoutSeconds = 30
	s.ApplyEnv()

	cfg := s.LLMConfig()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-env", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestStore_SaveRejectsBadHeadingStyle(t *testing.T) {
	st := newStore(t)
	s := settings.Default()
	s.Render.HeadingStyle = "Titel"

	err := st.Save(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heading_style")
	assert.False(t, st.Exists())

	s.Render.HeadingStyle = "Titel %d"
	require.NoError(t, st.Save(s))
	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "Titel 3", loaded.RenderConfig().HeadingStyleName(3))
}
