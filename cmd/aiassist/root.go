package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	aiassist "github.com/Mukisa95/ai-assist"
	"github.com/Mukisa95/ai-assist/internal/llm"
	"github.com/Mukisa95/ai-assist/internal/settings"
)

const (
	Version = "0.1.0"
	appName = "aiassist"
)

// app holds state shared by all subcommands.
type app struct {
	settingsPath string
	verbose      bool

	log         *zap.SugaredLogger
	stdin       io.Reader
	newProvider func(llm.Config, *zap.SugaredLogger) (llm.Provider, error)
}

func newApp() *app {
	return &app{
		stdin:       os.Stdin,
		newProvider: llm.NewProvider,
	}
}

func rootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "AI writing assistant for word-processor documents",
		Long: `aiassist turns Markdown-flavoured model output into formatted document
paragraphs (headings, bullet and numbered lists, bold runs) and runs
writing tasks such as rewriting, summarizing and document generation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Settings file (default ~/.config/aiassist/settings.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newFormatCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

// setupLogger builds the process logger unless one was injected.
func (a *app) setupLogger() error {
	if a.log != nil {
		aiassist.SetLogger(a.log)
		return nil
	}

	var cfg zap.Config
	if a.verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = logger.Sugar()
	aiassist.SetLogger(a.log)
	return nil
}

func (a *app) store() (*settings.Store, error) {
	return settings.NewStore(a.settingsPath)
}

// loadSettings reads the settings file and applies environment overrides.
func (a *app) loadSettings() (*settings.Settings, error) {
	st, err := a.store()
	if err != nil {
		return nil, err
	}
	s, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	s.ApplyEnv()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", st.Path(), err)
	}
	return s, nil
}
