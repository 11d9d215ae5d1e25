package memdoc

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/Mukisa95/ai-assist/internal/buffer"
	"github.com/Mukisa95/ai-assist/internal/parser"
	"github.com/Mukisa95/ai-assist/internal/types"
)

// Load builds a document from Markdown. Headings become "Heading N"
// paragraphs, list items get list formatting and **strong** runs become bold
// spans. Other inline markup keeps its text and drops its formatting.
func Load(markdown string) *Document {
	root, source := parser.Parse(markdown)
	w := newImportWalker(source)
	_ = ast.Walk(root, w.Walk)
	w.flush()
	return New(w.paragraphs...)
}

// importWalker 遍历 goldmark AST 并生成段落
type importWalker struct {
	buf    *buffer.TextBuffer
	source []byte

	paragraphs []Paragraph
	open       bool
	style      string
	list       types.ListKind

	listStack []types.ListKind
}

func newImportWalker(source []byte) *importWalker {
	return &importWalker{
		buf:    buffer.New(),
		source: source,
	}
}

// Walk 遍历 AST 节点
func (w *importWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Blocks ---
	case *ast.Heading:
		if entering {
			w.begin(fmt.Sprintf("Heading %d", n.Level), types.ListNone)
		} else {
			w.flush()
		}

	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			w.begin("", w.currentList())
		} else {
			w.flush()
		}

	case *ast.List:
		if entering {
			kind := types.ListBullet
			if n.IsOrdered() {
				kind = types.ListNumber
			}
			w.listStack = append(w.listStack, kind)
		} else {
			w.listStack = w.listStack[:len(w.listStack)-1]
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				w.begin("", types.ListNone)
				w.buf.Write(strings.TrimRight(string(line.Value(w.source)), "\r\n"))
				w.flush()
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock, *ast.RawHTML, *ast.ThematicBreak:
		return ast.WalkSkipChildren, nil

	// --- Tables: one paragraph per row ---
	case *east.TableHeader, *east.TableRow:
		if entering {
			w.begin("", types.ListNone)
		} else {
			w.flush()
		}

	case *east.TableCell:
		if !entering && n.NextSibling() != nil {
			w.write("\t")
		}

	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.write(string(n.Segment.Value(w.source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.write(" ")
			}
		}

	case *ast.String:
		if entering {
			w.write(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.onCodeSpan(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			w.write(string(n.URL(w.source)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		if n.Level == 2 {
			if entering {
				w.buf.Open()
			} else {
				w.buf.Close()
			}
		}
	}
	return ast.WalkContinue, nil
}

func (w *importWalker) currentList() types.ListKind {
	if len(w.listStack) == 0 {
		return types.ListNone
	}
	return w.listStack[len(w.listStack)-1]
}

func (w *importWalker) begin(style string, list types.ListKind) {
	w.flush()
	w.open = true
	w.style = style
	w.list = list
}

// write appends inline text, opening a plain paragraph for text that sits
// outside any block this walker knows.
func (w *importWalker) write(s string) {
	if !w.open {
		w.begin("", types.ListNone)
	}
	w.buf.Write(s)
}

func (w *importWalker) flush() {
	if !w.open {
		return
	}
	w.paragraphs = append(w.paragraphs, Paragraph{
		Text:  w.buf.String(),
		Style: w.style,
		List:  w.list,
		Bold:  normalizeSpans(w.buf.Spans()),
	})
	w.buf.Reset()
	w.open = false
}

func (w *importWalker) onCodeSpan(n *ast.CodeSpan) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			w.write(string(t.Segment.Value(w.source)))
		case *ast.String:
			w.write(string(t.Value))
		}
	}
}

func normalizeSpans(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		out = mergeSpan(out, s)
	}
	return out
}
