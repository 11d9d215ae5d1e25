// Package assist runs assistant tasks against a generation provider.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Mukisa95/ai-assist/internal/llm"
	"github.com/Mukisa95/ai-assist/internal/prompts"
)

// ErrEmptyInput is returned when a task gets no text to work on.
var ErrEmptyInput = errors.New("no input text")

// TaskError is a failed task.
type TaskError struct {
	Task prompts.Task
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %v", e.Task, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Service runs tasks with one provider.
type Service struct {
	provider llm.Provider
	log      *zap.SugaredLogger
}

func New(provider llm.Provider, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{provider: provider, log: log}
}

// Run builds the prompt for task and returns the generated text.
func (s *Service) Run(ctx context.Context, task prompts.Task, text string, params prompts.Params) (*llm.Response, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &TaskError{Task: task, Err: ErrEmptyInput}
	}
	if err := params.Validate(); err != nil {
		return nil, &TaskError{Task: task, Err: err}
	}
	prompt, err := prompts.Build(task, text, params)
	if err != nil {
		return nil, &TaskError{Task: task, Err: err}
	}

	resp, err := s.provider.Generate(ctx, llm.NewRequest(prompt))
	if err != nil {
		s.log.Errorw("generation failed",
			"task", string(task),
			"provider", s.provider.Name(),
			"invalid_credential", errors.Is(err, llm.ErrInvalidCredential),
			"error", err,
		)
		return nil, &TaskError{Task: task, Err: err}
	}
	s.log.Infow("generated",
		"task", string(task),
		"provider", s.provider.Name(),
		"model", resp.Model,
		"request_id", resp.RequestID,
		"chars", len(resp.Text),
	)
	return resp, nil
}

func (s *Service) text(ctx context.Context, task prompts.Task, text string, params prompts.Params) (string, error) {
	resp, err := s.Run(ctx, task, text, params)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (s *Service) AnalyzeTone(ctx context.Context, text, tone, audience string) (string, error) {
	return s.text(ctx, prompts.TaskAnalyzeTone, text, prompts.Params{Tone: tone, Audience: audience})
}

func (s *Service) AdaptForAudience(ctx context.Context, text, audience string) (string, error) {
	return s.text(ctx, prompts.TaskAdapt, text, prompts.Params{Audience: audience})
}

func (s *Service) Rewrite(ctx context.Context, text, style, audience string) (string, error) {
	return s.text(ctx, prompts.TaskRewrite, text, prompts.Params{Style: style, Audience: audience})
}

func (s *Service) PredictNext(ctx context.Context, text string) (string, error) {
	return s.text(ctx, prompts.TaskPredict, text, prompts.Params{})
}

func (s *Service) Summarize(ctx context.Context, text, style, audience string) (string, error) {
	return s.text(ctx, prompts.TaskSummarize, text, prompts.Params{Style: style, Audience: audience})
}

// GenerateDocument writes a new document from the user's instructions.
func (s *Service) GenerateDocument(ctx context.Context, instructions string, params prompts.Params) (string, error) {
	return s.text(ctx, prompts.TaskGenerate, instructions, params)
}

func (s *Service) AnswerQuestions(ctx context.Context, text string) (string, error) {
	return s.text(ctx, prompts.TaskAnswer, text, prompts.Params{})
}

// UserMessage renders a task failure for display.
func UserMessage(task prompts.Task, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, llm.ErrInvalidCredential):
		return "Error: Invalid API Key. Please check your settings."
	case errors.Is(err, llm.ErrNotConfigured):
		return "Generation is not configured. Please set the API key in settings."
	case errors.Is(err, ErrEmptyInput):
		return "Please provide some text first."
	default:
		return fmt.Sprintf("An error occurred while %s.", task.Action())
	}
}
