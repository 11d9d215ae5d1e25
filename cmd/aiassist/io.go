package main

import (
	"fmt"
	"io"
	"os"

	aiassist "github.com/Mukisa95/ai-assist"
	"github.com/Mukisa95/ai-assist/internal/memdoc"
)

const (
	outputMarkdown = "markdown"
	outputHTML     = "html"
	outputText     = "text"
)

func checkOutput(output string) error {
	switch output {
	case outputMarkdown, outputHTML, outputText:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want markdown, html or text)", output)
}

func parseMode(s string) (aiassist.AnchorMode, error) {
	mode, ok := aiassist.ParseAnchorMode(s)
	if !ok {
		return 0, fmt.Errorf("unknown mode %q (want end or selection)", s)
	}
	return mode, nil
}

// readSource reads a file, or r when path is "-".
func readSource(path string, r io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// openDocument returns a document loaded from base, with the first
// paragraph containing sel selected.
func openDocument(base, sel string) (*memdoc.Document, error) {
	doc := memdoc.Load(base)
	if sel != "" {
		if err := doc.SelectText(sel); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func writeDocument(w io.Writer, doc *memdoc.Document, output string) error {
	var out string
	switch output {
	case outputHTML:
		html, err := doc.HTML()
		if err != nil {
			return err
		}
		out = html
	case outputText:
		out = doc.PlainText() + "\n"
	default:
		out = doc.Markdown()
	}
	_, err := io.WriteString(w, out)
	return err
}

// printReport prints degradations and fallbacks. A clean run prints nothing.
func printReport(w io.Writer, name string, report *aiassist.Report) {
	if report == nil {
		return
	}
	if report.Fallback {
		fmt.Fprintf(w, "%s: formatting failed, text inserted unformatted\n", name)
	}
	for _, d := range report.Degradations {
		fmt.Fprintf(w, "%s: instruction %d (%s): %s skipped: %v\n", name, d.Index, d.Kind, d.Step, d.Err)
	}
}
