// Package memdoc is an in-memory word-processor document.
//
// It implements types.Document with the same lazy-commit discipline as a
// real host: mutations are queued and reads fail with ErrNotSynced until
// Sync is called. Faults can be injected per operation to exercise the
// failure paths of callers.
//
// A Document is not safe for concurrent use.
package memdoc

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Mukisa95/ai-assist/internal/buffer"
	"github.com/Mukisa95/ai-assist/internal/types"
)

var (
	// ErrNotSynced is returned by reads issued while mutations are pending.
	ErrNotSynced = errors.New("memdoc: read before sync")
	// ErrInvalidRange is returned for handles this document did not issue
	// or that point at removed content.
	ErrInvalidRange = errors.New("memdoc: invalid range")
	// ErrUnknownStyle is returned by SetStyle for style names the document
	// does not define.
	ErrUnknownStyle = errors.New("memdoc: unknown style")
	// ErrEmptySearch is returned by Search for an empty needle.
	ErrEmptySearch = errors.New("memdoc: empty search text")
	// ErrUnsupported is returned for operations that make no sense on the
	// given range.
	ErrUnsupported = errors.New("memdoc: unsupported operation")
)

// StyleNormal is the style of a paragraph with no explicit style.
const StyleNormal = "Normal"

// Span is a bold run inside a paragraph, in UTF-16 code units.
type Span = buffer.Span

// Paragraph is one block of the document.
type Paragraph struct {
	Text  string
	Style string
	List  types.ListKind
	Bold  []Span
}

// StyleName returns the paragraph style, StyleNormal when unset.
func (p *Paragraph) StyleName() string {
	if p.Style == "" {
		return StyleNormal
	}
	return p.Style
}

// HeadingLevel returns 1-9 for "Heading N" styles and 0 otherwise.
func (p *Paragraph) HeadingLevel() int {
	return headingLevel(p.Style)
}

// BoldTexts returns the text covered by each bold span.
func (p *Paragraph) BoldTexts() []string {
	if len(p.Bold) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.Bold))
	for _, s := range p.Bold {
		out = append(out, spanText(p.Text, s))
	}
	return out
}

// String renders the paragraph for logs and test failures.
func (p *Paragraph) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(p.StyleName())
	if p.List != types.ListNone {
		sb.WriteString("|")
		sb.WriteString(p.List.String())
	}
	sb.WriteString("] ")
	sb.WriteString(renderInline(p))
	return sb.String()
}

func (p *Paragraph) clone() *Paragraph {
	c := *p
	if p.Bold != nil {
		c.Bold = append([]Span(nil), p.Bold...)
	}
	return &c
}

// Comment is a note anchored to a piece of text.
type Comment struct {
	Anchor string
	Text   string
}

// Document is an in-memory document body with a selection.
type Document struct {
	paragraphs []*Paragraph
	selection  *selectionRange
	comments   []Comment
	faults     []*Fault

	pending int
	syncs   int
	calls   map[Op]int
}

// New creates a document holding copies of paragraphs. The selection is a
// collapsed point at the end of the body.
func New(paragraphs ...Paragraph) *Document {
	d := &Document{calls: make(map[Op]int)}
	for i := range paragraphs {
		d.paragraphs = append(d.paragraphs, paragraphs[i].clone())
	}
	d.selection = &selectionRange{doc: d, start: len(d.paragraphs), end: len(d.paragraphs)}
	return d
}

// Select sets the selection to the paragraphs in [start, end).
func (d *Document) Select(start, end int) error {
	if start < 0 || end < start || end > len(d.paragraphs) {
		return fmt.Errorf("%w: select [%d, %d) of %d paragraphs", ErrInvalidRange, start, end, len(d.paragraphs))
	}
	d.selection.start, d.selection.end = start, end
	return nil
}

// SelectText selects the paragraphs containing the first occurrence of
// substr. A substr spanning paragraphs is not found.
func (d *Document) SelectText(substr string) error {
	for i, p := range d.paragraphs {
		if substr != "" && strings.Contains(p.Text, substr) {
			return d.Select(i, i+1)
		}
	}
	return fmt.Errorf("%w: %q not found", ErrInvalidRange, substr)
}

// SelectionBounds returns the selected paragraph indices.
func (d *Document) SelectionBounds() (start, end int) {
	return d.selection.start, d.selection.end
}

// Paragraphs returns a snapshot of the document body.
func (d *Document) Paragraphs() []Paragraph {
	out := make([]Paragraph, len(d.paragraphs))
	for i, p := range d.paragraphs {
		out[i] = *p.clone()
	}
	return out
}

// Len returns the number of paragraphs.
func (d *Document) Len() int {
	return len(d.paragraphs)
}

// Comments returns the comments added so far.
func (d *Document) Comments() []Comment {
	return append([]Comment(nil), d.comments...)
}

// Pending returns the number of mutations queued since the last Sync.
func (d *Document) Pending() int {
	return d.pending
}

// Syncs returns how many times Sync succeeded.
func (d *Document) Syncs() int {
	return d.syncs
}

// Calls returns how many times op was invoked, including failed calls.
func (d *Document) Calls(op Op) int {
	return d.calls[op]
}

func (d *Document) index(p *Paragraph) int {
	for i, q := range d.paragraphs {
		if q == p {
			return i
		}
	}
	return -1
}

func (d *Document) insertAt(i int, ps ...*Paragraph) {
	d.paragraphs = slices.Insert(d.paragraphs, i, ps...)
	n := len(ps)
	switch {
	case i <= d.selection.start:
		d.selection.start += n
		d.selection.end += n
	case i < d.selection.end:
		d.selection.end += n
	}
}

func (d *Document) removeRange(start, end int) {
	if start >= end {
		return
	}
	d.paragraphs = slices.Delete(d.paragraphs, start, end)
	n := end - start
	shift := func(pos int) int {
		switch {
		case pos >= end:
			return pos - n
		case pos > start:
			return start
		default:
			return pos
		}
	}
	d.selection.start = shift(d.selection.start)
	d.selection.end = shift(d.selection.end)
}

func headingLevel(style string) int {
	rest, ok := strings.CutPrefix(style, "Heading ")
	if !ok || len(rest) != 1 || rest[0] < '1' || rest[0] > '9' {
		return 0
	}
	return int(rest[0] - '0')
}

func validStyle(style string) bool {
	switch style {
	case StyleNormal, "Title", "Subtitle", "Quote", "List Paragraph":
		return true
	}
	return headingLevel(style) > 0
}
