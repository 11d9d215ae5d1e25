package memdoc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Mukisa95/ai-assist/internal/types"
)

func texts(d *Document) []string {
	var out []string
	for _, p := range d.Paragraphs() {
		out = append(out, p.Text)
	}
	return out
}

func TestReadBeforeSync(t *testing.T) {
	ctx := context.Background()
	d := New()
	body, _ := d.Body(ctx)

	if _, err := d.InsertParagraph(ctx, body, "hello", types.LocationEnd); err != nil {
		t.Fatalf("InsertParagraph() error = %v", err)
	}
	if _, err := d.Text(ctx, body); !errors.Is(err, ErrNotSynced) {
		t.Errorf("Text() before Sync error = %v, want ErrNotSynced", err)
	}
	if _, err := d.Search(ctx, body, "hello", types.SearchOptions{}); !errors.Is(err, ErrNotSynced) {
		t.Errorf("Search() before Sync error = %v, want ErrNotSynced", err)
	}

	if err := d.Sync(ctx); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	got, err := d.Text(ctx, body)
	if err != nil || got != "hello" {
		t.Errorf("Text() = %q, %v, want hello", got, err)
	}
	if d.Pending() != 0 || d.Syncs() != 1 {
		t.Errorf("Pending() = %d, Syncs() = %d, want 0 and 1", d.Pending(), d.Syncs())
	}
}

func TestSelectionTracksInserts(t *testing.T) {
	ctx := context.Background()
	d := New(Paragraph{Text: "a"}, Paragraph{Text: "b"}, Paragraph{Text: "c"})
	if err := d.Select(1, 2); err != nil {
		t.Fatal(err)
	}
	sel, _ := d.Selection(ctx)
	if err := d.Clear(ctx, sel); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if start, end := d.SelectionBounds(); start != 1 || end != 1 {
		t.Fatalf("selection after Clear = [%d, %d), want [1, 1)", start, end)
	}

	x, err := d.InsertParagraph(ctx, sel, "x", types.LocationAfter)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.InsertParagraph(ctx, x, "y", types.LocationAfter); err != nil {
		t.Fatal(err)
	}

	want := []string{"a", "x", "y", "c"}
	if got := texts(d); !reflect.DeepEqual(got, want) {
		t.Errorf("paragraphs = %q, want %q", got, want)
	}
	if start, end := d.SelectionBounds(); start != 3 || end != 3 {
		t.Errorf("selection = [%d, %d), want [3, 3)", start, end)
	}
}

func TestInsertText(t *testing.T) {
	ctx := context.Background()

	t.Run("multi-line at body end", func(t *testing.T) {
		d := New(Paragraph{Text: "first"})
		body, _ := d.Body(ctx)
		if _, err := d.InsertText(ctx, body, "# raw\n- text\n", types.LocationEnd); err != nil {
			t.Fatal(err)
		}
		want := []string{"first", "# raw", "- text"}
		if got := texts(d); !reflect.DeepEqual(got, want) {
			t.Errorf("paragraphs = %q, want %q", got, want)
		}
	})

	t.Run("prepend shifts bold", func(t *testing.T) {
		d := New(Paragraph{Text: "bold end", Bold: []Span{{Offset: 0, Length: 4}}})
		p := d.paragraphs[0]
		if _, err := d.InsertText(ctx, p, "not ", types.LocationBefore); err != nil {
			t.Fatal(err)
		}
		if p.Text != "not bold end" {
			t.Errorf("Text = %q", p.Text)
		}
		if got := p.BoldTexts(); !reflect.DeepEqual(got, []string{"bold"}) {
			t.Errorf("BoldTexts() = %q, want [bold]", got)
		}
	})

	t.Run("append", func(t *testing.T) {
		d := New(Paragraph{Text: "a"})
		p := d.paragraphs[0]
		if _, err := d.InsertText(ctx, p, "b", types.LocationEnd); err != nil {
			t.Fatal(err)
		}
		if p.Text != "ab" {
			t.Errorf("Text = %q, want ab", p.Text)
		}
	})
}

func TestSetStyle(t *testing.T) {
	ctx := context.Background()
	d := New(Paragraph{Text: "x"})
	p := d.paragraphs[0]

	if err := d.SetStyle(ctx, p, "Heading 2"); err != nil {
		t.Fatalf("SetStyle() error = %v", err)
	}
	if p.HeadingLevel() != 2 {
		t.Errorf("HeadingLevel() = %d, want 2", p.HeadingLevel())
	}
	if err := d.SetStyle(ctx, p, "Fancy"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("SetStyle(Fancy) error = %v, want ErrUnknownStyle", err)
	}
	if err := d.SetStyle(ctx, p, StyleNormal); err != nil || p.StyleName() != StyleNormal {
		t.Errorf("SetStyle(Normal) = %v, style %q", err, p.StyleName())
	}
}

func TestStaleHandle(t *testing.T) {
	ctx := context.Background()
	d := New(Paragraph{Text: "gone"})
	p := d.paragraphs[0]
	body, _ := d.Body(ctx)
	if err := d.Clear(ctx, body); err != nil {
		t.Fatal(err)
	}
	if err := d.SetStyle(ctx, p, "Heading 1"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetStyle() on removed paragraph error = %v, want ErrInvalidRange", err)
	}
	other := New()
	otherBody, _ := other.Body(ctx)
	if _, err := d.InsertParagraph(ctx, otherBody, "x", types.LocationEnd); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("InsertParagraph() with foreign range error = %v, want ErrInvalidRange", err)
	}
}

func TestSearchAndBold(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		text      string
		needle    string
		matchCase bool
		wantN     int
		wantBold  []string
	}{
		{"single", "Some bold text", "bold", true, 1, []string{"bold"}},
		{"case sensitive miss", "Some Bold text", "bold", true, 0, nil},
		{"case insensitive hit", "Some Bold text", "bold", false, 1, []string{"Bold"}},
		{"non-overlapping", "aaaa", "aa", true, 2, []string{"aaaa"}},
		{"surrogate pairs", "😀 hi", "hi", true, 1, []string{"hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(Paragraph{Text: tt.text})
			p := d.paragraphs[0]
			found, err := d.Search(ctx, p, tt.needle, types.SearchOptions{MatchCase: tt.matchCase})
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(found) != tt.wantN {
				t.Fatalf("Search() found %d, want %d", len(found), tt.wantN)
			}
			for _, r := range found {
				if err := d.SetBold(ctx, r); err != nil {
					t.Fatalf("SetBold() error = %v", err)
				}
			}
			if got := p.BoldTexts(); !reflect.DeepEqual(got, tt.wantBold) {
				t.Errorf("BoldTexts() = %q, want %q", got, tt.wantBold)
			}
		})
	}
}

func TestSearchEmpty(t *testing.T) {
	d := New(Paragraph{Text: "x"})
	if _, err := d.Search(context.Background(), d.paragraphs[0], "", types.SearchOptions{}); !errors.Is(err, ErrEmptySearch) {
		t.Errorf("Search(\"\") error = %v, want ErrEmptySearch", err)
	}
}

func TestFaults(t *testing.T) {
	ctx := context.Background()
	d := New(Paragraph{Text: "Header"}, Paragraph{Text: "other"})
	f := d.Inject(Fault{Op: OpSetStyle, Match: "Header", Times: 1})

	if err := d.SetStyle(ctx, d.paragraphs[1], "Heading 1"); err != nil {
		t.Errorf("SetStyle(other) error = %v, want nil", err)
	}
	if err := d.SetStyle(ctx, d.paragraphs[0], "Heading 1"); !errors.Is(err, ErrInjected) {
		t.Errorf("SetStyle(Header) error = %v, want ErrInjected", err)
	}
	if err := d.SetStyle(ctx, d.paragraphs[0], "Heading 1"); err != nil {
		t.Errorf("second SetStyle(Header) error = %v, want nil", err)
	}
	if f.Hits() != 1 {
		t.Errorf("Hits() = %d, want 1", f.Hits())
	}
	if d.Calls(OpSetStyle) != 3 {
		t.Errorf("Calls(OpSetStyle) = %d, want 3", d.Calls(OpSetStyle))
	}

	d.Inject(Fault{Op: OpSync, Err: types.ErrConnectionLost})
	if err := d.Sync(ctx); !types.IsFatal(err) {
		t.Errorf("Sync() error = %v, want fatal", err)
	}
	d.ClearFaults()
	if err := d.Sync(ctx); err != nil {
		t.Errorf("Sync() after ClearFaults error = %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := New()
	if _, err := d.Body(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Body() error = %v, want context.Canceled", err)
	}
}

func TestInsertComment(t *testing.T) {
	ctx := context.Background()
	d := New(Paragraph{Text: "draft"})
	if err := d.Select(0, 1); err != nil {
		t.Fatal(err)
	}
	sel, _ := d.Selection(ctx)
	if err := d.InsertComment(ctx, sel, "needs work"); err != nil {
		t.Fatal(err)
	}
	want := []Comment{{Anchor: "draft", Text: "needs work"}}
	if got := d.Comments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Comments() = %v, want %v", got, want)
	}
}

func TestParagraphAt(t *testing.T) {
	ctx := context.Background()
	d := New(Paragraph{Text: "alpha"}, Paragraph{Text: "beta gamma"})

	body, _ := d.Body(ctx)
	p, err := d.ParagraphAt(ctx, body)
	if err != nil || p.(*Paragraph).Text != "alpha" {
		t.Errorf("ParagraphAt(body) = %v, %v, want alpha", p, err)
	}

	second := d.paragraphs[1]
	matches, err := d.Search(ctx, second, "gamma", types.SearchOptions{})
	if err != nil || len(matches) != 1 {
		t.Fatalf("Search() = %v, %v", matches, err)
	}
	p, err = d.ParagraphAt(ctx, matches[0])
	if err != nil || p != types.Range(second) {
		t.Errorf("ParagraphAt(text range) = %v, %v, want beta gamma", p, err)
	}

	other := New(Paragraph{Text: "x"})
	sel, _ := other.Selection(ctx)
	if _, err := d.ParagraphAt(ctx, sel); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("ParagraphAt(foreign selection) error = %v, want ErrInvalidRange", err)
	}
}
