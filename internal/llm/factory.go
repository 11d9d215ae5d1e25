package llm

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

// Config is the generation configuration. It is built once at startup and
// passed to every component that generates text.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	// BaseURL overrides the provider endpoint, e.g. for a proxy or an
	// OpenAI-compatible server.
	BaseURL string
	Timeout time.Duration
	Retry   RetryConfig
}

// Validate checks the configuration. A missing key is ErrNotConfigured.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrNotConfigured
	}
	ids := make([]interface{}, 0, len(Providers))
	for _, id := range ProviderIDs() {
		ids = append(ids, id)
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Provider, validation.Required, validation.In(ids...)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// NewProvider creates a provider from config, wrapped with retries.
func NewProvider(cfg Config, log *zap.SugaredLogger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}

	var p Provider
	switch cfg.Provider {
	case ProviderGemini:
		p = NewGeminiProvider(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
	case ProviderOpenAI:
		p = NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
	return WithRetry(p, cfg.Retry, log), nil
}
