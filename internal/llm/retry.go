package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryConfig holds retry configuration for generation requests.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int

	// BackoffBase is the initial backoff duration.
	BackoffBase time.Duration

	// BackoffMultiplier is applied to backoff on each retry.
	BackoffMultiplier float64

	// MaxBackoff caps the maximum backoff duration.
	MaxBackoff time.Duration
}

// DefaultRetryConfig returns sensible retry defaults for generation requests.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		BackoffBase:       2 * time.Second,
		BackoffMultiplier: 2.0,
		MaxBackoff:        30 * time.Second,
	}
}

type retryProvider struct {
	next   Provider
	config RetryConfig
	log    *zap.SugaredLogger
}

// WithRetry wraps p so transient failures are retried with exponential
// backoff. Other failures, including ErrInvalidCredential, return at once.
func WithRetry(p Provider, config RetryConfig, log *zap.SugaredLogger) Provider {
	if config.MaxAttempts <= 1 {
		return p
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &retryProvider{next: p, config: config, log: log}
}

func (r *retryProvider) Name() string {
	return r.next.Name()
}

func (r *retryProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	var (
		resp    *Response
		attempt int
	)
	operation := func() error {
		attempt++
		out, err := r.next.Generate(ctx, req)
		if err != nil {
			if IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		resp = out
		return nil
	}
	notify := func(err error, wait time.Duration) {
		r.log.Warnw("generation failed, retrying",
			"provider", r.next.Name(),
			"attempt", attempt,
			"wait", wait,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(operation, r.policy(ctx), notify); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *retryProvider) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.config.BackoffBase
	if r.config.BackoffMultiplier > 0 {
		b.Multiplier = r.config.BackoffMultiplier
	}
	if r.config.MaxBackoff > 0 {
		b.MaxInterval = r.config.MaxBackoff
	}
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.config.MaxAttempts-1)), ctx)
}
