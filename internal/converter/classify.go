package converter

import (
	"regexp"

	"github.com/Mukisa95/ai-assist/internal/types"
)

var (
	// 标题：1-6 个 #，后跟空白与可选文本。空白含 Unicode 空格（如 U+00A0）
	headingRe = regexp.MustCompile(`^(#{1,6})(?:[\s\p{Zs}]+(.*))?$`)

	// 有序列表：数字 + 点 + 空白
	orderedRe = regexp.MustCompile(`^\d+\.[\s\p{Zs}]+`)

	// 无序列表：* 或 - 后跟空白
	bulletRe = regexp.MustCompile(`^[*-][\s\p{Zs}]+`)

	// 粗体：非贪婪，从左到右取不重叠的匹配
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// Classify turns one trimmed, non-empty line into an instruction.
//
// Precedence is heading, ordered item, bullet item, plain. Headings skip
// bold scanning unless config.BoldInHeadings is set.
func Classify(line string, config *types.RenderConfig) types.Instruction {
	if config == nil {
		config = types.DefaultRenderConfig()
	}

	if m := headingRe.FindStringSubmatch(line); m != nil {
		ins := types.Instruction{
			Kind:  types.KindHeading,
			Level: len(m[1]),
			Text:  trimLine(m[2]),
		}
		if config.BoldInHeadings {
			ins.Text, ins.BoldSpans = ExtractBold(ins.Text)
		}
		return ins
	}

	ins := types.Instruction{Kind: types.KindPlain, Text: line}
	if loc := orderedRe.FindStringIndex(line); loc != nil {
		ins.Kind = types.KindNumberItem
		ins.Text = line[loc[1]:]
	} else if loc := bulletRe.FindStringIndex(line); loc != nil {
		ins.Kind = types.KindBulletItem
		ins.Text = line[loc[1]:]
	}

	ins.Text, ins.BoldSpans = ExtractBold(ins.Text)
	return ins
}

// ExtractBold removes ** markers from text and returns the inner text of each
// span in order. Unbalanced markers are left in place.
func ExtractBold(text string) (string, []string) {
	matches := boldRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, nil
	}
	spans := make([]string, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, m[1])
	}
	return boldRe.ReplaceAllString(text, "${1}"), spans
}
