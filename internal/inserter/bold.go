package inserter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mukisa95/ai-assist/internal/types"
)

// ErrSpanNotFound is recorded when a bold span does not occur in the
// inserted paragraph.
var ErrSpanNotFound = errors.New("bold span not found")

// applyBold bolds every case-sensitive match of each span inside p. Bold
// changes are committed before the next span is searched.
func (in *Inserter) applyBold(ctx context.Context, idx int, ins types.Instruction, p types.Range, report *types.Report) error {
	for _, span := range ins.BoldSpans {
		if err := in.boldSpan(ctx, p, span); err != nil {
			if err := in.degrade(report, idx, ins, types.StepBold, err); err != nil {
				return err
			}
		}
	}
	return nil
}

func (in *Inserter) boldSpan(ctx context.Context, p types.Range, span string) error {
	matches, err := in.doc.Search(ctx, p, span, types.SearchOptions{MatchCase: true})
	if err != nil {
		return fmt.Errorf("search %q: %w", span, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", ErrSpanNotFound, span)
	}

	var errs []error
	bolded := 0
	for _, m := range matches {
		if err := in.doc.SetBold(ctx, m); err != nil {
			if types.IsFatal(err) {
				return err
			}
			errs = append(errs, fmt.Errorf("bold %q: %w", span, err))
			continue
		}
		bolded++
	}
	if bolded > 0 {
		if err := in.doc.Sync(ctx); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
