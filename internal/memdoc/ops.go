package memdoc

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mukisa95/ai-assist/internal/buffer"
	"github.com/Mukisa95/ai-assist/internal/types"
)

var (
	_ types.Document         = (*Document)(nil)
	_ types.ParagraphLocator = (*Document)(nil)
)

func subjectOf(p *Paragraph) string {
	if p == nil {
		return ""
	}
	return p.Text
}

// Selection returns the live selection handle.
func (d *Document) Selection(ctx context.Context) (types.Range, error) {
	if err := d.begin(ctx, OpSelection, ""); err != nil {
		return nil, err
	}
	return d.selection, nil
}

func (d *Document) Body(ctx context.Context) (types.Range, error) {
	if err := d.begin(ctx, OpBody, ""); err != nil {
		return nil, err
	}
	return bodyRange{doc: d}, nil
}

// Text reads the text under r. It fails with ErrNotSynced while mutations
// are pending.
func (d *Document) Text(ctx context.Context, r types.Range) (string, error) {
	if err := d.begin(ctx, OpText, ""); err != nil {
		return "", err
	}
	if d.pending > 0 {
		return "", fmt.Errorf("%w: %d pending", ErrNotSynced, d.pending)
	}
	return d.textOf(r)
}

// Clear removes the content of r. A selection or the body loses its
// paragraphs; a paragraph or text range loses its text.
func (d *Document) Clear(ctx context.Context, r types.Range) error {
	if err := d.begin(ctx, OpClear, ""); err != nil {
		return err
	}
	switch r := r.(type) {
	case *selectionRange:
		if err := d.checkOwner(r.doc); err != nil {
			return err
		}
		d.removeRange(r.start, r.end)
	case bodyRange:
		if err := d.checkOwner(r.doc); err != nil {
			return err
		}
		d.removeRange(0, len(d.paragraphs))
	case textRange:
		if _, err := d.paragraphOf(r); err != nil {
			return err
		}
		splice(r.p, r.span.Offset, r.span.End(), "")
	default:
		p, err := d.paragraphOf(r)
		if err != nil {
			return err
		}
		p.Text, p.Bold = "", nil
	}
	d.pending++
	return nil
}

// InsertParagraph adds one paragraph relative to at and returns it.
func (d *Document) InsertParagraph(ctx context.Context, at types.Range, text string, loc types.Location) (types.Range, error) {
	if err := d.begin(ctx, OpInsertParagraph, text); err != nil {
		return nil, err
	}
	i, err := d.insertionPoint(at, loc)
	if err != nil {
		return nil, err
	}
	p := &Paragraph{Text: text}
	d.insertAt(i, p)
	d.pending++
	return p, nil
}

// InsertText adds text relative to at.
//
// Single-line text aimed at a paragraph or text range is spliced into that
// paragraph and the inserted run is returned. Anything else becomes one new
// paragraph per line; the last one is returned.
func (d *Document) InsertText(ctx context.Context, at types.Range, text string, loc types.Location) (types.Range, error) {
	if err := d.begin(ctx, OpInsertText, text); err != nil {
		return nil, err
	}

	if !strings.Contains(text, "\n") {
		switch r := at.(type) {
		case *Paragraph, textRange:
			p, err := d.paragraphOf(r)
			if err != nil {
				return nil, err
			}
			start, end := 0, buffer.UTF16Len(p.Text)
			if tr, ok := r.(textRange); ok {
				start, end = tr.span.Offset, tr.span.End()
			}
			switch loc {
			case types.LocationBefore:
				end = start
			case types.LocationAfter, types.LocationEnd:
				start = end
			}
			span := splice(p, start, end, text)
			d.pending++
			return textRange{p: p, span: span}, nil
		}
	}

	i, err := d.insertionPoint(at, loc)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	ps := make([]*Paragraph, len(lines))
	for j, line := range lines {
		ps[j] = &Paragraph{Text: line}
	}
	d.insertAt(i, ps...)
	d.pending++
	return ps[len(ps)-1], nil
}

// SetStyle applies a named style. Unknown names fail with ErrUnknownStyle.
func (d *Document) SetStyle(ctx context.Context, r types.Range, style string) error {
	p, perr := d.paragraphOf(r)
	if err := d.begin(ctx, OpSetStyle, subjectOf(p)); err != nil {
		return err
	}
	if perr != nil {
		return perr
	}
	if !validStyle(style) {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	if style == StyleNormal {
		style = ""
	}
	p.Style = style
	d.pending++
	return nil
}

func (d *Document) ApplyListFormat(ctx context.Context, r types.Range, kind types.ListKind) error {
	p, perr := d.paragraphOf(r)
	if err := d.begin(ctx, OpListFormat, subjectOf(p)); err != nil {
		return err
	}
	if perr != nil {
		return perr
	}
	p.List = kind
	d.pending++
	return nil
}

// Search finds non-overlapping occurrences of text within r. It fails with
// ErrNotSynced while mutations are pending.
func (d *Document) Search(ctx context.Context, within types.Range, text string, opts types.SearchOptions) ([]types.Range, error) {
	if err := d.begin(ctx, OpSearch, text); err != nil {
		return nil, err
	}
	if d.pending > 0 {
		return nil, fmt.Errorf("%w: %d pending", ErrNotSynced, d.pending)
	}
	if text == "" {
		return nil, ErrEmptySearch
	}
	windows, err := d.searchWindows(within)
	if err != nil {
		return nil, err
	}
	var out []types.Range
	for _, w := range windows {
		out = append(out, w.find(text, opts.MatchCase)...)
	}
	return out, nil
}

// SetBold marks a text range, or a whole paragraph, bold.
func (d *Document) SetBold(ctx context.Context, r types.Range) error {
	p, perr := d.paragraphOf(r)
	span := Span{}
	subject := ""
	if perr == nil {
		span = Span{Offset: 0, Length: buffer.UTF16Len(p.Text)}
		if tr, ok := r.(textRange); ok {
			span = tr.span
		}
		subject = spanText(p.Text, span)
	}
	if err := d.begin(ctx, OpSetBold, subject); err != nil {
		return err
	}
	if perr != nil {
		return perr
	}
	if span.End() > buffer.UTF16Len(p.Text) {
		return fmt.Errorf("%w: bold past paragraph end", ErrInvalidRange)
	}
	p.Bold = mergeSpan(p.Bold, span)
	d.pending++
	return nil
}

// InsertComment anchors a comment to the text under r.
func (d *Document) InsertComment(ctx context.Context, r types.Range, text string) error {
	if err := d.begin(ctx, OpInsertComment, text); err != nil {
		return err
	}
	anchor, err := d.textOf(r)
	if err != nil {
		return err
	}
	d.comments = append(d.comments, Comment{Anchor: anchor, Text: text})
	d.pending++
	return nil
}

// Sync commits pending mutations.
func (d *Document) Sync(ctx context.Context) error {
	if err := d.begin(ctx, OpSync, ""); err != nil {
		return err
	}
	d.pending = 0
	d.syncs++
	return nil
}

// ParagraphAt returns the paragraph the range starts in.
func (d *Document) ParagraphAt(ctx context.Context, r types.Range) (types.Range, error) {
	if err := d.begin(ctx, OpParagraphAt, ""); err != nil {
		return nil, err
	}
	switch r := r.(type) {
	case *selectionRange:
		if err := d.checkOwner(r.doc); err != nil {
			return nil, err
		}
		if len(d.paragraphs) == 0 {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidRange)
		}
		return d.paragraphs[min(r.start, len(d.paragraphs)-1)], nil
	case bodyRange:
		if err := d.checkOwner(r.doc); err != nil {
			return nil, err
		}
		if len(d.paragraphs) == 0 {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidRange)
		}
		return d.paragraphs[0], nil
	default:
		return d.paragraphOf(r)
	}
}
