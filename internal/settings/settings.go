// Package settings persists the user's generation and formatting settings.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"

	"github.com/Mukisa95/ai-assist/internal/llm"
	"github.com/Mukisa95/ai-assist/internal/types"
)

// Environment variables that override the file.
const (
	EnvProvider = "AIASSIST_PROVIDER"
	EnvAPIKey   = "AIASSIST_API_KEY"
	EnvModel    = "AIASSIST_MODEL"
	EnvBaseURL  = "AIASSIST_BASE_URL"
)

type Settings struct {
	Provider       string `json:"provider" yaml:"provider"`
	APIKey         string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Model          string `json:"model" yaml:"model"`
	BaseURL        string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty"`

	Render RenderSettings `json:"render" yaml:"render"`
}

type RenderSettings struct {
	BoldInHeadings bool   `json:"bold_in_headings" yaml:"bold_in_headings"`
	HeadingStyle   string `json:"heading_style,omitempty" yaml:"heading_style,omitempty"`
}

func Default() *Settings {
	return &Settings{
		Provider: llm.ProviderGemini,
		Model:    llm.GetProvider(llm.ProviderGemini).DefaultModel,
	}
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aiassist"), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// Validate checks the settings. An empty API key is allowed; generation
// reports it as not configured.
func (s *Settings) Validate() error {
	ids := make([]interface{}, 0, len(llm.Providers))
	for _, id := range llm.ProviderIDs() {
		ids = append(ids, id)
	}
	return validation.ValidateStruct(s,
		validation.Field(&s.Provider, validation.Required, validation.In(ids...)),
		validation.Field(&s.Model, validation.Required),
		validation.Field(&s.BaseURL, is.URL),
		validation.Field(&s.TimeoutSeconds, validation.Min(0)),
		validation.Field(&s.Render),
	)
}

// Validate checks the render settings.
func (r RenderSettings) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HeadingStyle, validation.By(headingPattern)),
	)
}

// headingPattern requires a fmt pattern with exactly one %d verb and no
// other verbs. "%%" is a literal percent sign.
func headingPattern(value interface{}) error {
	pattern, _ := value.(string)
	if pattern == "" {
		return nil
	}
	rest := strings.ReplaceAll(pattern, "%%", "")
	if strings.Count(rest, "%d") != 1 || strings.Count(rest, "%") != 1 {
		return errors.New(`must contain exactly one "%d" for the heading level`)
	}
	return nil
}

// ApplyEnv overrides fields from the environment.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv(EnvProvider); v != "" {
		s.Provider = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		s.Model = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		s.BaseURL = v
	}
}

// LLMConfig returns the generation configuration.
func (s *Settings) LLMConfig() llm.Config {
	return llm.Config{
		Provider: s.Provider,
		APIKey:   s.APIKey,
		Model:    s.Model,
		BaseURL:  s.BaseURL,
		Timeout:  time.Duration(s.TimeoutSeconds) * time.Second,
		Retry:    llm.DefaultRetryConfig(),
	}
}

// RenderConfig returns the converter configuration.
func (s *Settings) RenderConfig() *types.RenderConfig {
	c := types.DefaultRenderConfig()
	c.BoldInHeadings = s.Render.BoldInHeadings
	if s.Render.HeadingStyle != "" {
		c.HeadingStyle = s.Render.HeadingStyle
	}
	return c
}

// MaskedKey returns the API key with all but its ends hidden.
func (s *Settings) MaskedKey() string {
	switch n := len(s.APIKey); {
	case n == 0:
		return "(not set)"
	case n <= 8:
		return "********"
	default:
		return s.APIKey[:4] + "..." + s.APIKey[n-4:]
	}
}

// Store reads and writes one settings file.
type Store struct {
	path string
}

// NewStore returns a store for path, or for DefaultPath when path is empty.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{path: path}, nil
}

func (st *Store) Path() string {
	return st.path
}

// Exists reports whether the settings file exists.
func (st *Store) Exists() bool {
	_, err := os.Stat(st.path)
	return err == nil
}

// Load reads the settings. A missing file yields Default().
func (st *Store) Load() (*Settings, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", st.path, err)
	}
	return s, nil
}

// Save validates and writes the settings. The file holds the API key, so
// it is only readable by the owner.
func (st *Store) Save(s *Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0600)
}

func (st *Store) update(fn func(*Settings) error) error {
	s, err := st.Load()
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return st.Save(s)
}

func (st *Store) SetAPIKey(key string) error {
	if key == "" {
		return errors.New("api key must not be empty")
	}
	return st.update(func(s *Settings) error {
		s.APIKey = key
		return nil
	})
}

func (st *Store) RemoveAPIKey() error {
	return st.update(func(s *Settings) error {
		s.APIKey = ""
		return nil
	})
}

// SetModel selects a model. Unless a custom base URL is configured the
// model must be in the provider's catalogue.
func (st *Store) SetModel(model string) error {
	return st.update(func(s *Settings) error {
		if s.BaseURL == "" {
			info := llm.GetProvider(s.Provider)
			if info != nil && !slices.Contains(info.Models, model) {
				return fmt.Errorf("unknown %s model %q", s.Provider, model)
			}
		}
		s.Model = model
		return nil
	})
}

// SetProvider switches provider. A model the new provider does not offer is
// replaced by its default.
func (st *Store) SetProvider(id string) error {
	info := llm.GetProvider(id)
	if info == nil {
		return fmt.Errorf("unknown provider: %s", id)
	}
	return st.update(func(s *Settings) error {
		s.Provider = id
		if !slices.Contains(info.Models, s.Model) {
			s.Model = info.DefaultModel
		}
		return nil
	})
}

// SetBoldInHeadings toggles bold scanning inside headings.
func (st *Store) SetBoldInHeadings(enable bool) error {
	return st.update(func(s *Settings) error {
		s.Render.BoldInHeadings = enable
		return nil
	})
}
