package buffer

import "strings"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Word-style hosts measure character offsets in UTF-16 code units, not Go
// string bytes or runes. Characters outside the BMP take 2 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// Span is a run of characters in UTF-16 code units.
type Span struct {
	Offset int
	Length int
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// TextBuffer accumulates the text of one paragraph and the spans opened and
// closed while writing it.
type TextBuffer struct {
	sb          strings.Builder
	utf16Offset int
	open        []int
	spans       []Span
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.sb.WriteString(text)
	tb.utf16Offset += UTF16Len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// Open starts a span at the current offset.
func (tb *TextBuffer) Open() {
	tb.open = append(tb.open, tb.utf16Offset)
}

// Close ends the innermost open span. Empty spans are dropped.
func (tb *TextBuffer) Close() {
	if len(tb.open) == 0 {
		return
	}
	start := tb.open[len(tb.open)-1]
	tb.open = tb.open[:len(tb.open)-1]
	if tb.utf16Offset > start {
		tb.spans = append(tb.spans, Span{Offset: start, Length: tb.utf16Offset - start})
	}
}

// Spans returns the closed spans in closing order.
func (tb *TextBuffer) Spans() []Span {
	if len(tb.spans) == 0 {
		return nil
	}
	out := make([]Span, len(tb.spans))
	copy(out, tb.spans)
	return out
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.sb.Reset()
	tb.utf16Offset = 0
	tb.open = tb.open[:0]
	tb.spans = tb.spans[:0]
}
