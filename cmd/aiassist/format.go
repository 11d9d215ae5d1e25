package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	aiassist "github.com/Mukisa95/ai-assist"
	"github.com/Mukisa95/ai-assist/internal/memdoc"
	"github.com/Mukisa95/ai-assist/internal/metrics"
)

type formatOptions struct {
	doc          string
	mode         string
	selectText   string
	output       string
	boldHeadings bool
	metrics      bool
	jobs         int
}

// formatResult is one converted input.
type formatResult struct {
	name   string
	doc    *memdoc.Document
	report *aiassist.Report
}

func newFormatCmd(a *app) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Convert Markdown into a formatted document",
		Long: `Convert Markdown text (files, or stdin when none are given) into document
paragraphs and print the resulting document.

Each input is inserted into its own copy of the base document (--doc, or an
empty one). With --mode selection the paragraph matched by --select is
replaced; otherwise the text is appended.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFormat(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.doc, "doc", "", "Markdown file to load as the base document")
	cmd.Flags().StringVar(&opts.mode, "mode", "end", "Insertion point: end or selection")
	cmd.Flags().StringVar(&opts.selectText, "select", "", "Select the first paragraph containing this text")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputMarkdown, "Output format: markdown, html or text")
	cmd.Flags().BoolVar(&opts.boldHeadings, "bold-headings", false, "Apply **bold** markers inside headings")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print insertion metrics to stderr")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Number of inputs converted concurrently")

	return cmd
}

func (a *app) runFormat(cmd *cobra.Command, args []string, opts *formatOptions) error {
	mode, err := parseMode(opts.mode)
	if err != nil {
		return err
	}
	if err := checkOutput(opts.output); err != nil {
		return err
	}

	s, err := a.loadSettings()
	if err != nil {
		return err
	}
	config := s.RenderConfig()
	if opts.boldHeadings {
		config.BoldInHeadings = true
	}

	base := ""
	if opts.doc != "" {
		if base, err = readSource(opts.doc, a.stdin); err != nil {
			return err
		}
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	recorder := metrics.NewRecorder()
	convertOpts := []aiassist.Option{
		aiassist.WithConfig(config),
		aiassist.WithLogger(a.log),
		aiassist.WithObserver(recorder),
	}

	results := make([]formatResult, len(inputs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(opts.jobs, 1))
	for i, name := range inputs {
		i, name := i, name
		g.Go(func() error {
			raw, err := readSource(name, a.stdin)
			if err != nil {
				return err
			}
			doc, err := openDocument(base, opts.selectText)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			report, err := aiassist.InsertMarkdown(ctx, doc, raw, mode, convertOpts...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = formatResult{name: name, doc: doc, report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", r.name)
		}
		if err := writeDocument(out, r.doc, opts.output); err != nil {
			return err
		}
		printReport(errOut, r.name, r.report)
	}

	if opts.metrics {
		return recorder.WriteText(errOut)
	}
	return nil
}
