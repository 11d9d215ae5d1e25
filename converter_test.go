package aiassist

import (
	"reflect"
	"testing"
)

// TestConvert_Headings 测试标题与粗体的组合
func TestConvert_Headings(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		wantText  string
		wantSpans []string
	}{
		{"default keeps markers", nil, "**Bold Heading**", nil},
		{"bold in headings", []Option{WithBoldInHeadings(true)}, "Bold Heading", []string{"Bold Heading"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert("## **Bold Heading**", tt.opts...)
			if len(got) != 1 || got[0].Kind != KindHeading || got[0].Level != 2 {
				t.Fatalf("Convert() = %v, want one level 2 heading", got)
			}
			if got[0].Text != tt.wantText || !reflect.DeepEqual(got[0].BoldSpans, tt.wantSpans) {
				t.Errorf("Convert() = %v, want text %q spans %q", got[0], tt.wantText, tt.wantSpans)
			}
		})
	}
}

// TestWithBoldInHeadings_DoesNotMutateDefault 默认配置不可被选项修改
func TestWithBoldInHeadings_DoesNotMutateDefault(t *testing.T) {
	Convert("# x", WithBoldInHeadings(true))
	if DefaultConfig().BoldInHeadings {
		t.Error("WithBoldInHeadings modified DefaultConfig()")
	}
}

func TestConvert_ListMarkers(t *testing.T) {
	got := Convert("1. First item\n- Buy milk\n* Eggs")
	want := []struct {
		kind Kind
		text string
	}{
		{KindNumberItem, "First item"},
		{KindBulletItem, "Buy milk"},
		{KindBulletItem, "Eggs"},
	}
	if len(got) != len(want) {
		t.Fatalf("Convert() = %v", got)
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Text != w.text {
			t.Errorf("instruction %d = %v, want %s %q", i, got[i], w.kind, w.text)
		}
	}
}

func TestParseAnchorMode(t *testing.T) {
	tests := []struct {
		in     string
		want   AnchorMode
		wantOK bool
	}{
		{"end", AnchorAtEnd, true},
		{"at-end", AnchorAtEnd, true},
		{"selection", AnchorAtSelection, true},
		{"at-selection", AnchorAtSelection, true},
		{"middle", AnchorAtEnd, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAnchorMode(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseAnchorMode(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
