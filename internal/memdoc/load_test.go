package memdoc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Mukisa95/ai-assist/internal/types"
)

func TestLoad(t *testing.T) {
	input := "# Title\n\nIntro with **bold** word.\n\n- one\n- two\n\n1. first\n2. second\n"
	want := []Paragraph{
		{Text: "Title", Style: "Heading 1"},
		{Text: "Intro with bold word.", Bold: []Span{{Offset: 11, Length: 4}}},
		{Text: "one", List: types.ListBullet},
		{Text: "two", List: types.ListBullet},
		{Text: "first", List: types.ListNumber},
		{Text: "second", List: types.ListNumber},
	}
	got := Load(input).Paragraphs()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() =\n%v\nwant\n%v", got, want)
	}
}

func TestLoad_InlineMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"code span", "use `go test` here", "use go test here"},
		{"link keeps text", "see [docs](https://example.com)", "see docs"},
		{"soft break joins lines", "line one\nline two", "line one line two"},
		{"italic drops markers", "an *aside*", "an aside"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := Load(tt.in).Paragraphs()
			if len(ps) != 1 || ps[0].Text != tt.want {
				t.Errorf("Load(%q) = %v, want one paragraph %q", tt.in, ps, tt.want)
			}
		})
	}
}

func TestLoad_CodeBlock(t *testing.T) {
	ps := Load("```\nfmt.Println(1)\nreturn\n```\n").Paragraphs()
	var got []string
	for _, p := range ps {
		got = append(got, p.Text)
	}
	want := []string{"fmt.Println(1)", "return"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("code block paragraphs = %q, want %q", got, want)
	}
}

func TestLoad_Table(t *testing.T) {
	ps := Load("| a | b |\n|---|---|\n| 1 | 2 |\n").Paragraphs()
	if len(ps) != 2 {
		t.Fatalf("Load() = %v, want 2 rows", ps)
	}
	if ps[0].Text != "a\tb" || ps[1].Text != "1\t2" {
		t.Errorf("rows = %q, %q", ps[0].Text, ps[1].Text)
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	input := "# Title\n\nIntro with **bold** word.\n\n- one\n- two\n\n1. first\n2. second\n"
	if got := Load(input).Markdown(); got != input {
		t.Errorf("Markdown() =\n%q\nwant\n%q", got, input)
	}
}

func TestMarkdown_SkipsEmptyParagraphs(t *testing.T) {
	d := New(
		Paragraph{Text: "a", List: types.ListNumber},
		Paragraph{},
		Paragraph{Text: "b", List: types.ListNumber},
	)
	want := "1. a\n\n1. b\n"
	if got := d.Markdown(); got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestHTML(t *testing.T) {
	d := Load("# Header\n\nSome **bold** text\n")
	html, err := d.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"<h1>Header</h1>", "<strong>bold</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() = %q, missing %q", html, want)
		}
	}
}
