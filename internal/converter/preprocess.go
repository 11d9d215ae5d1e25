package converter

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// blankRunRe 匹配一个或多个空行（空行中可含空白字符）
	blankRunRe = regexp.MustCompile(`\n\s*\n`)
)

// Normalize canonicalizes line breaks to "\n" and collapses every run of
// blank lines to exactly one blank line.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return blankRunRe.ReplaceAllString(text, "\n\n")
}

// SplitLines normalizes text and splits it into lines.
func SplitLines(text string) []string {
	return strings.Split(Normalize(text), "\n")
}

// trimLine trims Unicode whitespace and byte-order marks from both ends.
func trimLine(line string) string {
	return strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
