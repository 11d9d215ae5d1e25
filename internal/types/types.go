package types

import "fmt"

// Kind classifies a parsed line.
type Kind int

const (
	KindPlain Kind = iota
	KindHeading
	KindBulletItem
	KindNumberItem
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindHeading:
		return "heading"
	case KindBulletItem:
		return "bullet_item"
	case KindNumberItem:
		return "number_item"
	default:
		return "unknown"
	}
}

// Instruction 描述一个待插入的段落及其格式
type Instruction struct {
	Kind  Kind
	Level int // 1-6, only for KindHeading

	// Text has its structural marker and ** markers removed.
	Text string

	// BoldSpans are the inner texts of **…** spans, in order of appearance.
	BoldSpans []string

	// BlankSeparator marks an empty paragraph; all other fields are ignored.
	BlankSeparator bool

	// Line is the index of the source line after normalization.
	Line int
}

// String renders the instruction for logs and test failures.
func (ins Instruction) String() string {
	if ins.BlankSeparator {
		return fmt.Sprintf("#%d blank", ins.Line)
	}
	if ins.Kind == KindHeading {
		return fmt.Sprintf("#%d heading(%d) %q", ins.Line, ins.Level, ins.Text)
	}
	if len(ins.BoldSpans) > 0 {
		return fmt.Sprintf("#%d %s %q bold=%q", ins.Line, ins.Kind, ins.Text, ins.BoldSpans)
	}
	return fmt.Sprintf("#%d %s %q", ins.Line, ins.Kind, ins.Text)
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// HeadingStyle is a fmt pattern taking the heading level.
	HeadingStyle string

	// BoldInHeadings enables ** scanning inside heading lines.
	BoldInHeadings bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		HeadingStyle:   "Heading %d",
		BoldInHeadings: false,
	}
}

// HeadingStyleName returns the host style name for a heading level.
func (c *RenderConfig) HeadingStyleName(level int) string {
	pattern := c.HeadingStyle
	if pattern == "" {
		pattern = "Heading %d"
	}
	return fmt.Sprintf(pattern, level)
}
