package aiassist

import (
	"go.uber.org/zap"

	"github.com/Mukisa95/ai-assist/internal/inserter"
	"github.com/Mukisa95/ai-assist/internal/types"
)

// ConvertOptions holds options for conversion and insertion.
type ConvertOptions struct {
	Config   *RenderConfig
	Logger   *zap.SugaredLogger
	Observer Observer
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithBoldInHeadings sets whether ** spans inside headings are bolded. The
// current config is copied, never modified.
func WithBoldInHeadings(enable bool) Option {
	return func(opts *ConvertOptions) {
		c := *opts.Config
		c.BoldInHeadings = enable
		opts.Config = &c
	}
}

// WithLogger overrides the package Logger for one call.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(opts *ConvertOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithObserver sets the observer notified of inserts, degradations and
// fallbacks.
func WithObserver(o Observer) Option {
	return func(opts *ConvertOptions) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config:   DefaultConfig(),
		Logger:   Logger,
		Observer: types.NopObserver{},
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *ConvertOptions) inserter(doc Document, log *zap.SugaredLogger) *inserter.Inserter {
	return inserter.New(doc,
		inserter.WithConfig(o.Config),
		inserter.WithLogger(log),
		inserter.WithObserver(o.Observer),
	)
}
