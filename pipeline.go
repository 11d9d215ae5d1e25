package aiassist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Apply writes instructions into doc starting at the anchor selected by
// mode. It returns an error only when a fatal document failure stopped the
// run; per-paragraph failures are listed in the report.
func Apply(ctx context.Context, doc Document, instructions []Instruction, mode AnchorMode, opts ...Option) (*Report, error) {
	options := applyOptions(opts...)
	return options.inserter(doc, options.Logger).Apply(ctx, instructions, mode)
}

// InsertMarkdown 转换 raw 并写入文档
//
// When a fatal failure stops an at-end insert, raw is appended unformatted
// as one block so the response is not lost; the report has Fallback set and
// the error is nil. An at-selection insert has already cleared the
// selection, so its failure is returned to the caller.
func InsertMarkdown(ctx context.Context, doc Document, raw string, mode AnchorMode, opts ...Option) (*Report, error) {
	options := applyOptions(opts...)
	log := options.Logger.With("run_id", uuid.NewString(), "mode", mode.String())

	instructions := Convert(raw, WithConfig(options.Config))
	log.Debugw("converted", "instructions", len(instructions), "bytes", len(raw))

	report, err := options.inserter(doc, log).Apply(ctx, instructions, mode)
	if err == nil {
		if report.Degraded() {
			log.Infow("inserted with degraded formatting", "degraded", len(report.Degradations))
		}
		return report, nil
	}

	if mode != AnchorAtEnd {
		log.Errorw("formatted insert failed", "error", err)
		return report, fmt.Errorf("insert at %s: %w", mode, err)
	}

	log.Errorw("formatted insert failed, appending raw text", "error", err)
	if ferr := appendRaw(ctx, doc, raw); ferr != nil {
		log.Errorw("raw append failed", "error", ferr)
		return report, errors.Join(
			fmt.Errorf("insert at %s: %w", mode, err),
			fmt.Errorf("append raw text: %w", ferr),
		)
	}
	report.Fallback = true
	options.Observer.ObserveFallback(mode)
	return report, nil
}

// ReplaceSelection replaces the current selection with formatted raw.
func ReplaceSelection(ctx context.Context, doc Document, raw string, opts ...Option) (*Report, error) {
	return InsertMarkdown(ctx, doc, raw, AnchorAtSelection, opts...)
}

// AppendMarkdown appends formatted raw to the end of the document.
func AppendMarkdown(ctx context.Context, doc Document, raw string, opts ...Option) (*Report, error) {
	return InsertMarkdown(ctx, doc, raw, AnchorAtEnd, opts...)
}

// appendRaw inserts raw unformatted at the end of the body.
func appendRaw(ctx context.Context, doc Document, raw string) error {
	body, err := doc.Body(ctx)
	if err != nil {
		return err
	}
	if _, err := doc.InsertText(ctx, body, raw+"\n", LocationEnd); err != nil {
		return err
	}
	return doc.Sync(ctx)
}
