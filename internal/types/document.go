package types

import (
	"context"
	"errors"
)

// Range is an opaque handle to a position, span or paragraph in the host
// document. Handles are only meaningful to the Document that issued them.
type Range interface{}

// Location tells InsertParagraph/InsertText where to put new content
// relative to the target range.
type Location int

const (
	LocationBefore Location = iota
	LocationAfter
	LocationReplace
	LocationEnd
)

// String returns the string representation of Location.
func (l Location) String() string {
	switch l {
	case LocationBefore:
		return "before"
	case LocationAfter:
		return "after"
	case LocationReplace:
		return "replace"
	case LocationEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ListKind is the list formatting applied to a paragraph.
type ListKind int

const (
	ListNone ListKind = iota
	ListBullet
	ListNumber
)

// String returns the string representation of ListKind.
func (k ListKind) String() string {
	switch k {
	case ListBullet:
		return "bullet"
	case ListNumber:
		return "number"
	default:
		return "none"
	}
}

// SearchOptions controls Document.Search.
type SearchOptions struct {
	MatchCase bool
}

// ErrConnectionLost is returned (possibly wrapped) by a Document whose
// connection to the host has failed. It is never recovered locally.
var ErrConnectionLost = errors.New("document connection lost")

// IsFatal reports whether err must abort the remaining work of a call.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConnectionLost) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Document is the document-editing capability of the host.
//
// Operations are queued lazily by the host. Sync commits the queue; a handle
// returned by an insert must be committed before anything reads through it.
type Document interface {
	// Selection returns the current selection.
	Selection(ctx context.Context) (Range, error)
	// Body returns the whole document body.
	Body(ctx context.Context) (Range, error)
	// Text reads the text covered by r.
	Text(ctx context.Context, r Range) (string, error)
	// Clear removes the content of r, collapsing it to a point.
	Clear(ctx context.Context, r Range) error

	InsertParagraph(ctx context.Context, at Range, text string, loc Location) (Range, error)
	InsertText(ctx context.Context, at Range, text string, loc Location) (Range, error)

	// SetStyle applies a named paragraph style such as "Heading 2".
	SetStyle(ctx context.Context, paragraph Range, style string) error
	ApplyListFormat(ctx context.Context, paragraph Range, kind ListKind) error

	Search(ctx context.Context, within Range, text string, opts SearchOptions) ([]Range, error)
	SetBold(ctx context.Context, r Range) error

	InsertComment(ctx context.Context, r Range, text string) error

	// Sync commits queued operations.
	Sync(ctx context.Context) error
}

// ParagraphLocator is implemented by documents that can resolve the
// paragraph a range starts in.
type ParagraphLocator interface {
	// ParagraphAt returns the paragraph containing the start of r. A
	// collapsed point past the last paragraph resolves to the last one.
	ParagraphAt(ctx context.Context, r Range) (Range, error)
}
