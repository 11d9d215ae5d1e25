package aiassist

import (
	"context"
	"errors"
	"strings"
)

// ErrNoParagraphs is returned by CurrentParagraph for documents that cannot
// resolve paragraphs.
var ErrNoParagraphs = errors.New("document cannot locate paragraphs")

// ErrEmptySelection is returned when an operation needs selected text and
// the selection is blank.
var ErrEmptySelection = errors.New("no text is selected; select some text to add a comment")

// SelectedText returns the text of the current selection.
func SelectedText(ctx context.Context, doc Document) (string, error) {
	sel, err := doc.Selection(ctx)
	if err != nil {
		return "", err
	}
	if err := doc.Sync(ctx); err != nil {
		return "", err
	}
	return doc.Text(ctx, sel)
}

// DocumentText returns the text of the whole body.
func DocumentText(ctx context.Context, doc Document) (string, error) {
	body, err := doc.Body(ctx)
	if err != nil {
		return "", err
	}
	if err := doc.Sync(ctx); err != nil {
		return "", err
	}
	return doc.Text(ctx, body)
}

// CurrentParagraph returns the text of the paragraph containing the start of
// the selection. doc must implement ParagraphLocator.
func CurrentParagraph(ctx context.Context, doc Document) (string, error) {
	locator, ok := doc.(ParagraphLocator)
	if !ok {
		return "", ErrNoParagraphs
	}
	sel, err := doc.Selection(ctx)
	if err != nil {
		return "", err
	}
	p, err := locator.ParagraphAt(ctx, sel)
	if err != nil {
		return "", err
	}
	if err := doc.Sync(ctx); err != nil {
		return "", err
	}
	return doc.Text(ctx, p)
}

// InsertTextAtSelection replaces the selection with text, unformatted.
func InsertTextAtSelection(ctx context.Context, doc Document, text string) error {
	sel, err := doc.Selection(ctx)
	if err != nil {
		return err
	}
	if _, err := doc.InsertText(ctx, sel, text, LocationReplace); err != nil {
		return err
	}
	return doc.Sync(ctx)
}

// AddCommentToSelection anchors a comment to the selection. It fails with
// ErrEmptySelection when nothing but whitespace is selected.
func AddCommentToSelection(ctx context.Context, doc Document, comment string) error {
	text, err := SelectedText(ctx, doc)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptySelection
	}
	sel, err := doc.Selection(ctx)
	if err != nil {
		return err
	}
	if err := doc.InsertComment(ctx, sel, comment); err != nil {
		return err
	}
	return doc.Sync(ctx)
}
