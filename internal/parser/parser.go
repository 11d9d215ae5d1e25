package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, autolinks, task lists
	),
}

// New returns a goldmark instance configured with StandardOptions.
func New() goldmark.Markdown {
	return goldmark.New(StandardOptions...)
}

// Parse 仅解析为 AST，返回根节点与源字节
func Parse(markdown string) (ast.Node, []byte) {
	source := []byte(markdown)
	reader := text.NewReader(source)
	return New().Parser().Parse(reader), source
}

// RenderHTML renders Markdown to an HTML fragment.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := New().Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
