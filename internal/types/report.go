package types

// AnchorMode selects where a conversion starts inserting.
type AnchorMode int

const (
	// AnchorAtSelection clears the selection and inserts from its start.
	AnchorAtSelection AnchorMode = iota
	// AnchorAtEnd appends to the end of the document body.
	AnchorAtEnd
)

// String returns the string representation of AnchorMode.
func (m AnchorMode) String() string {
	switch m {
	case AnchorAtSelection:
		return "at-selection"
	case AnchorAtEnd:
		return "at-end"
	default:
		return "unknown"
	}
}

// Step names the stage of an instruction that degraded.
type Step string

const (
	StepInsert  Step = "insert"
	StepHeading Step = "heading_style"
	StepList    Step = "list_format"
	StepBold    Step = "bold"
)

// Degradation records a non-fatal failure for one instruction.
type Degradation struct {
	Index int
	Kind  Kind
	Step  Step
	Err   error
}

// Report summarizes one Apply call.
type Report struct {
	Attempted int
	Inserted  int
	Blank     int

	Degradations []Degradation

	// Fallback is set when the formatted insert aborted and the raw text
	// was appended as a single block instead.
	Fallback bool
}

// Degraded reports whether any instruction lost formatting or content.
func (r *Report) Degraded() bool {
	return len(r.Degradations) > 0
}

// StepCount counts degradations for a step.
func (r *Report) StepCount(step Step) int {
	n := 0
	for _, d := range r.Degradations {
		if d.Step == step {
			n++
		}
	}
	return n
}

// Observer receives insertion events, e.g. for metrics.
type Observer interface {
	ObserveInsert(kind Kind, blank bool)
	ObserveDegradation(step Step)
	ObserveFallback(mode AnchorMode)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) ObserveInsert(Kind, bool)   {}
func (NopObserver) ObserveDegradation(Step)    {}
func (NopObserver) ObserveFallback(AnchorMode) {}
