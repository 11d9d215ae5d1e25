// Package converter turns model output into an ordered list of paragraph
// instructions. It has no side effects and never fails: anything it does not
// recognize becomes a plain paragraph.
package converter

import (
	"github.com/Mukisa95/ai-assist/internal/types"
)

// Convert parses raw text into instructions, one per line, in source order.
//
// A run of empty lines yields one blank separator, wherever it occurs, except
// at the end of the input where it yields nothing.
func Convert(raw string, config *types.RenderConfig) []types.Instruction {
	if config == nil {
		config = types.DefaultRenderConfig()
	}

	lines := SplitLines(raw)
	last := len(lines) - 1
	for last >= 0 && trimLine(lines[last]) == "" {
		last--
	}

	instructions := make([]types.Instruction, 0, last+1)
	prevBlank := false
	for i, line := range lines[:last+1] {
		trimmed := trimLine(line)
		if trimmed == "" {
			if !prevBlank {
				instructions = append(instructions, types.Instruction{
					BlankSeparator: true,
					Line:           i,
				})
			}
			prevBlank = true
			continue
		}
		prevBlank = false
		ins := Classify(trimmed, config)
		ins.Line = i
		instructions = append(instructions, ins)
	}
	return instructions
}
