package memdoc

import (
	"sort"

	"github.com/Mukisa95/ai-assist/internal/buffer"
)

func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// byteOffset converts a UTF-16 offset into a byte index of text. Offsets
// inside a surrogate pair round up to the next rune.
func byteOffset(text string, offset int) int {
	cum := 0
	for i, r := range text {
		if cum >= offset {
			return i
		}
		cum += utf16Width(r)
	}
	return len(text)
}

func spanText(text string, s Span) string {
	return text[byteOffset(text, s.Offset):byteOffset(text, s.End())]
}

// mergeSpan adds s to spans, keeping them sorted and merging overlapping or
// touching runs.
func mergeSpan(spans []Span, s Span) []Span {
	if s.Length <= 0 {
		return spans
	}
	all := append(append([]Span(nil), spans...), s)
	sort.Slice(all, func(i, j int) bool { return all[i].Offset < all[j].Offset })

	out := all[:1]
	for _, next := range all[1:] {
		last := &out[len(out)-1]
		if next.Offset <= last.End() {
			if next.End() > last.End() {
				last.Length = next.End() - last.Offset
			}
			continue
		}
		out = append(out, next)
	}
	return out
}

// splice replaces the UTF-16 range [start, end) of p with text. Spans are
// clipped around the replaced range and shifted past it; the new text is
// not bold.
func splice(p *Paragraph, start, end int, text string) Span {
	bs, be := byteOffset(p.Text, start), byteOffset(p.Text, end)
	p.Text = p.Text[:bs] + text + p.Text[be:]

	inserted := buffer.UTF16Len(text)
	delta := inserted - (end - start)

	var spans []Span
	for _, s := range p.Bold {
		if lo, hi := s.Offset, min(s.End(), start); hi > lo {
			spans = append(spans, Span{Offset: lo, Length: hi - lo})
		}
		if lo, hi := max(s.Offset, end), s.End(); hi > lo {
			spans = append(spans, Span{Offset: lo + delta, Length: hi - lo})
		}
	}
	p.Bold = nil
	for _, s := range spans {
		p.Bold = mergeSpan(p.Bold, s)
	}
	return Span{Offset: start, Length: inserted}
}
