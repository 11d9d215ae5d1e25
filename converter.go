package aiassist

import (
	"github.com/Mukisa95/ai-assist/internal/converter"
)

// Convert 将模型输出解析为有序的段落指令
//
// Convert is pure and never fails: unrecognized markup becomes plain
// paragraphs. Blank-line runs collapse to a single blank separator and a
// trailing run of blank lines produces nothing.
//
// 参数:
//   - raw: 模型返回的原始文本
//   - opts: WithConfig / WithBoldInHeadings
func Convert(raw string, opts ...Option) []Instruction {
	return converter.Convert(raw, applyOptions(opts...).Config)
}
