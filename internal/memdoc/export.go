package memdoc

import (
	"strconv"
	"strings"

	"github.com/Mukisa95/ai-assist/internal/parser"
	"github.com/Mukisa95/ai-assist/internal/types"
)

// Markdown renders the document as Markdown. Consecutive list paragraphs of
// the same kind form one list; empty paragraphs are dropped.
func (d *Document) Markdown() string {
	var sb strings.Builder
	prevList := types.ListNone
	number := 0
	first := true

	for _, p := range d.paragraphs {
		if p.Text == "" && p.List == types.ListNone && p.HeadingLevel() == 0 {
			prevList = types.ListNone
			continue
		}

		if !first {
			if p.List != types.ListNone && p.List == prevList {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		first = false

		if p.List != prevList {
			number = 0
		}
		prevList = p.List

		switch {
		case p.List == types.ListBullet:
			sb.WriteString("- ")
		case p.List == types.ListNumber:
			number++
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString(". ")
		case p.HeadingLevel() > 0:
			sb.WriteString(strings.Repeat("#", min(p.HeadingLevel(), 6)))
			sb.WriteString(" ")
		case p.Style == "Title":
			sb.WriteString("# ")
		case p.Style == "Quote":
			sb.WriteString("> ")
		}
		sb.WriteString(renderInline(p))
	}
	if !first {
		sb.WriteString("\n")
	}
	return sb.String()
}

// HTML renders the document through its Markdown form.
func (d *Document) HTML() (string, error) {
	return parser.RenderHTML(d.Markdown())
}

// PlainText returns the paragraph texts joined with "\n".
func (d *Document) PlainText() string {
	return joinText(d.paragraphs)
}

// renderInline wraps bold spans in ** markers.
func renderInline(p *Paragraph) string {
	if len(p.Bold) == 0 {
		return p.Text
	}
	var sb strings.Builder
	last := 0
	for _, s := range p.Bold {
		start := byteOffset(p.Text, s.Offset)
		end := byteOffset(p.Text, s.End())
		if start < last || end <= start {
			continue
		}
		sb.WriteString(p.Text[last:start])
		sb.WriteString("**")
		sb.WriteString(p.Text[start:end])
		sb.WriteString("**")
		last = end
	}
	sb.WriteString(p.Text[last:])
	return sb.String()
}
