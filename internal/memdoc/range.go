package memdoc

import (
	"fmt"
	"strings"

	"github.com/Mukisa95/ai-assist/internal/buffer"
	"github.com/Mukisa95/ai-assist/internal/types"
)

// selectionRange covers the paragraphs in [start, end). The document keeps
// one and hands it out, so clearing it moves the document selection.
type selectionRange struct {
	doc        *Document
	start, end int
}

type bodyRange struct {
	doc *Document
}

// textRange is a run of characters inside one paragraph.
type textRange struct {
	p    *Paragraph
	span Span
}

// paragraphOf resolves ranges that address a single paragraph.
func (d *Document) paragraphOf(r types.Range) (*Paragraph, error) {
	var p *Paragraph
	switch r := r.(type) {
	case *Paragraph:
		p = r
	case textRange:
		p = r.p
	default:
		return nil, fmt.Errorf("%w: %T is not a paragraph", ErrUnsupported, r)
	}
	if d.index(p) < 0 {
		return nil, fmt.Errorf("%w: paragraph not in document", ErrInvalidRange)
	}
	return p, nil
}

func (d *Document) checkOwner(doc *Document) error {
	if doc != d {
		return fmt.Errorf("%w: range from another document", ErrInvalidRange)
	}
	return nil
}

// textOf returns the text covered by r. Paragraphs are joined with "\n".
func (d *Document) textOf(r types.Range) (string, error) {
	switch r := r.(type) {
	case *selectionRange:
		if err := d.checkOwner(r.doc); err != nil {
			return "", err
		}
		return joinText(d.paragraphs[r.start:r.end]), nil
	case bodyRange:
		if err := d.checkOwner(r.doc); err != nil {
			return "", err
		}
		return joinText(d.paragraphs), nil
	case textRange:
		if _, err := d.paragraphOf(r); err != nil {
			return "", err
		}
		if r.span.End() > buffer.UTF16Len(r.p.Text) {
			return "", fmt.Errorf("%w: text range past paragraph end", ErrInvalidRange)
		}
		return spanText(r.p.Text, r.span), nil
	default:
		p, err := d.paragraphOf(r)
		if err != nil {
			return "", err
		}
		return p.Text, nil
	}
}

func joinText(ps []*Paragraph) string {
	texts := make([]string, len(ps))
	for i, p := range ps {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}

// insertionPoint returns the paragraph index new paragraphs go to. For
// LocationReplace the replaced content is removed first.
func (d *Document) insertionPoint(at types.Range, loc types.Location) (int, error) {
	switch r := at.(type) {
	case *selectionRange:
		if err := d.checkOwner(r.doc); err != nil {
			return 0, err
		}
		switch loc {
		case types.LocationBefore:
			return r.start, nil
		case types.LocationReplace:
			d.removeRange(r.start, r.end)
			return r.start, nil
		default:
			return r.end, nil
		}
	case bodyRange:
		if err := d.checkOwner(r.doc); err != nil {
			return 0, err
		}
		switch loc {
		case types.LocationBefore:
			return 0, nil
		case types.LocationReplace:
			d.removeRange(0, len(d.paragraphs))
			return 0, nil
		default:
			return len(d.paragraphs), nil
		}
	default:
		p, err := d.paragraphOf(at)
		if err != nil {
			return 0, err
		}
		i := d.index(p)
		switch loc {
		case types.LocationBefore:
			return i, nil
		case types.LocationReplace:
			d.removeRange(i, i+1)
			return i, nil
		default:
			return i + 1, nil
		}
	}
}

// searchWindows lists the paragraphs covered by r, each with the byte window
// a search may match in.
func (d *Document) searchWindows(r types.Range) ([]window, error) {
	var ps []*Paragraph
	switch r := r.(type) {
	case *selectionRange:
		if err := d.checkOwner(r.doc); err != nil {
			return nil, err
		}
		ps = d.paragraphs[r.start:r.end]
	case bodyRange:
		if err := d.checkOwner(r.doc); err != nil {
			return nil, err
		}
		ps = d.paragraphs
	case textRange:
		if _, err := d.paragraphOf(r); err != nil {
			return nil, err
		}
		lo := byteOffset(r.p.Text, r.span.Offset)
		hi := byteOffset(r.p.Text, r.span.End())
		return []window{{p: r.p, lo: lo, hi: hi}}, nil
	default:
		p, err := d.paragraphOf(r)
		if err != nil {
			return nil, err
		}
		ps = []*Paragraph{p}
	}
	out := make([]window, len(ps))
	for i, p := range ps {
		out[i] = window{p: p, lo: 0, hi: len(p.Text)}
	}
	return out, nil
}

type window struct {
	p      *Paragraph
	lo, hi int
}

// find returns the non-overlapping matches of needle in the window, left to
// right, as text ranges.
func (w window) find(needle string, matchCase bool) []types.Range {
	hay := w.p.Text[:w.hi]
	var out []types.Range
	for i := w.lo; i+len(needle) <= len(hay); {
		candidate := hay[i : i+len(needle)]
		if candidate == needle || (!matchCase && strings.EqualFold(candidate, needle)) {
			out = append(out, textRange{p: w.p, span: Span{
				Offset: buffer.UTF16Len(w.p.Text[:i]),
				Length: buffer.UTF16Len(candidate),
			}})
			i += len(needle)
			continue
		}
		i++
	}
	return out
}
