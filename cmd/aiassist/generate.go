package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	aiassist "github.com/Mukisa95/ai-assist"
	"github.com/Mukisa95/ai-assist/internal/assist"
	"github.com/Mukisa95/ai-assist/internal/llm"
	"github.com/Mukisa95/ai-assist/internal/prompts"
)

type generateOptions struct {
	input      string
	doc        string
	mode       string
	selectText string
	output     string
	comment    bool
	params     prompts.Params
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	tasks := make([]string, 0, len(prompts.Tasks()))
	for _, t := range prompts.Tasks() {
		tasks = append(tasks, string(t))
	}

	cmd := &cobra.Command{
		Use:   "generate <task>",
		Short: "Run an assistant task and insert the result",
		Long: fmt.Sprintf(`Run an assistant task on the input text and insert the Markdown response
into the document.

The input is read from --input, from the paragraph selected with --select
when a --doc is given, or from stdin. For "generate" the input holds the
instructions for the new document.

Tasks: %s`, strings.Join(tasks, ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: tasks,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, prompts.Task(args[0]), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Read the input text from this file")
	cmd.Flags().StringVar(&opts.doc, "doc", "", "Markdown file to load as the document")
	cmd.Flags().StringVar(&opts.mode, "mode", "end", "Insertion point: end or selection")
	cmd.Flags().StringVar(&opts.selectText, "select", "", "Select the first paragraph containing this text")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputMarkdown, "Output format: markdown, html or text")
	cmd.Flags().BoolVar(&opts.comment, "comment", false, "Attach the result as a comment on the selection instead of inserting it")
	cmd.Flags().StringVar(&opts.params.Tone, "tone", "", "Target tone ("+strings.Join(prompts.Keys(prompts.Tones), ", ")+")")
	cmd.Flags().StringVar(&opts.params.Audience, "audience", "", "Target audience ("+strings.Join(prompts.Keys(prompts.Audiences), ", ")+")")
	cmd.Flags().StringVar(&opts.params.Style, "style", "", "Writing style ("+strings.Join(prompts.Keys(prompts.RewritingStyles), ", ")+")")
	cmd.Flags().StringVar(&opts.params.Template, "template", "", "Document template ("+strings.Join(prompts.Keys(prompts.DocumentTemplates), ", ")+")")
	cmd.Flags().StringVar(&opts.params.Length, "length", "", "Document length ("+strings.Join(prompts.Keys(prompts.Lengths), ", ")+")")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, task prompts.Task, opts *generateOptions) error {
	if !slices.Contains(prompts.Tasks(), task) {
		return fmt.Errorf("unknown task %q", task)
	}
	mode, err := parseMode(opts.mode)
	if err != nil {
		return err
	}
	if err := checkOutput(opts.output); err != nil {
		return err
	}
	if opts.comment && opts.selectText == "" {
		return errors.New("--comment needs --select")
	}

	ctx := cmd.Context()

	base := ""
	if opts.doc != "" {
		if base, err = readSource(opts.doc, a.stdin); err != nil {
			return err
		}
	}
	doc, err := openDocument(base, opts.selectText)
	if err != nil {
		return err
	}

	var text string
	switch {
	case opts.input != "":
		text, err = readSource(opts.input, a.stdin)
	case opts.doc != "" && opts.selectText != "":
		text, err = aiassist.SelectedText(ctx, doc)
	default:
		text, err = readSource("-", a.stdin)
	}
	if err != nil {
		return err
	}

	s, err := a.loadSettings()
	if err != nil {
		return err
	}
	provider, err := a.newProvider(s.LLMConfig(), a.log)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return &userError{msg: assist.UserMessage(task, err), err: err}
		}
		return err
	}

	result, err := assist.New(provider, a.log).Run(ctx, task, text, opts.params)
	if err != nil {
		msg := assist.UserMessage(task, err)
		if errors.Is(err, llm.ErrInvalidCredential) {
			msg += "\nRun `" + appName + " config set-key <key>` to update it."
		}
		return &userError{msg: msg, err: err}
	}

	out := cmd.OutOrStdout()
	if opts.comment {
		if err := aiassist.AddCommentToSelection(ctx, doc, result.Text); err != nil {
			return err
		}
		if err := writeDocument(out, doc, opts.output); err != nil {
			return err
		}
		for _, c := range doc.Comments() {
			fmt.Fprintf(out, "\n[comment on %q]\n%s\n", c.Anchor, c.Text)
		}
		return nil
	}

	report, err := aiassist.InsertMarkdown(ctx, doc, result.Text, mode, aiassist.WithLogger(a.log), aiassist.WithConfig(s.RenderConfig()))
	if err != nil {
		return err
	}
	printReport(cmd.ErrOrStderr(), "generate", report)
	return writeDocument(out, doc, opts.output)
}
