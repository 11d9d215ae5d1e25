// Package aiassist 将语言模型返回的 Markdown 写入文档并保留原生格式
//
// The package turns Markdown-ish model output into native document
// formatting: "#" headings become heading styles, "-"/"*" and "N." lines
// become list paragraphs and **bold** spans are bolded in place.
//
// 核心功能：
//   - Convert(): 纯函数，文本 → 段落指令
//   - Apply(): 按顺序将指令写入文档，逐条隔离格式化失败
//   - InsertMarkdown(): Convert + Apply，并按锚点模式处理致命错误
//
// 示例：
//
//	doc := memdoc.New()
//	report, err := aiassist.AppendMarkdown(ctx, doc, "# Title\n- **one**\n- two")
//	if err != nil {
//	    // selection mode only; append mode falls back to raw text
//	}
//	if report.Degraded() {
//	    // some paragraphs lost formatting, never text
//	}
package aiassist
