package inserter

import (
	"context"
	"fmt"

	"github.com/Mukisa95/ai-assist/internal/types"
)

// anchor is the position the next paragraph is inserted at.
type anchor struct {
	at  types.Range
	loc types.Location
}

// advance moves the anchor to just after p.
func (a *anchor) advance(p types.Range) {
	a.at = p
	a.loc = types.LocationAfter
}

// initialAnchor acquires the starting point for mode. In at-selection mode
// the selection is cleared and committed first.
func (in *Inserter) initialAnchor(ctx context.Context, mode types.AnchorMode) (anchor, error) {
	switch mode {
	case types.AnchorAtSelection:
		sel, err := in.doc.Selection(ctx)
		if err != nil {
			return anchor{}, fmt.Errorf("get selection: %w", err)
		}
		if err := in.doc.Clear(ctx, sel); err != nil {
			return anchor{}, fmt.Errorf("clear selection: %w", err)
		}
		if err := in.doc.Sync(ctx); err != nil {
			return anchor{}, fmt.Errorf("sync cleared selection: %w", err)
		}
		return anchor{at: sel, loc: types.LocationAfter}, nil
	case types.AnchorAtEnd:
		body, err := in.doc.Body(ctx)
		if err != nil {
			return anchor{}, fmt.Errorf("get body: %w", err)
		}
		return anchor{at: body, loc: types.LocationEnd}, nil
	default:
		return anchor{}, fmt.Errorf("unknown anchor mode %d", int(mode))
	}
}
