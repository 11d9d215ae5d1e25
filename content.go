package aiassist

import "github.com/Mukisa95/ai-assist/internal/types"

// 导出类型别名
type (
	Kind        = types.Kind
	Instruction = types.Instruction
	AnchorMode  = types.AnchorMode
	Step        = types.Step
	Degradation = types.Degradation
	Report      = types.Report
	Observer    = types.Observer

	Document      = types.Document
	Range         = types.Range
	Location      = types.Location
	ListKind      = types.ListKind
	SearchOptions = types.SearchOptions

	ParagraphLocator = types.ParagraphLocator
)

const (
	KindPlain      = types.KindPlain
	KindHeading    = types.KindHeading
	KindBulletItem = types.KindBulletItem
	KindNumberItem = types.KindNumberItem

	AnchorAtSelection = types.AnchorAtSelection
	AnchorAtEnd       = types.AnchorAtEnd

	StepInsert  = types.StepInsert
	StepHeading = types.StepHeading
	StepList    = types.StepList
	StepBold    = types.StepBold

	LocationBefore  = types.LocationBefore
	LocationAfter   = types.LocationAfter
	LocationReplace = types.LocationReplace
	LocationEnd     = types.LocationEnd

	ListNone   = types.ListNone
	ListBullet = types.ListBullet
	ListNumber = types.ListNumber
)

// ErrConnectionLost marks a fatal document failure.
var ErrConnectionLost = types.ErrConnectionLost

// IsFatal reports whether err aborts an insert.
func IsFatal(err error) bool {
	return types.IsFatal(err)
}

// ParseAnchorMode parses "at-selection"/"selection" or "at-end"/"end".
func ParseAnchorMode(s string) (AnchorMode, bool) {
	switch s {
	case "at-selection", "selection":
		return AnchorAtSelection, true
	case "at-end", "end":
		return AnchorAtEnd, true
	default:
		return AnchorAtEnd, false
	}
}
