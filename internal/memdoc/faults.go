package memdoc

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Op names a document operation for fault injection and call counting.
type Op string

const (
	OpSelection       Op = "selection"
	OpBody            Op = "body"
	OpText            Op = "text"
	OpClear           Op = "clear"
	OpInsertParagraph Op = "insert_paragraph"
	OpInsertText      Op = "insert_text"
	OpSetStyle        Op = "set_style"
	OpListFormat      Op = "list_format"
	OpSearch          Op = "search"
	OpSetBold         Op = "set_bold"
	OpInsertComment   Op = "insert_comment"
	OpSync            Op = "sync"
	OpParagraphAt     Op = "paragraph_at"
)

// ErrInjected is the default error of a Fault.
var ErrInjected = errors.New("memdoc: injected fault")

// Fault makes matching calls fail.
type Fault struct {
	Op Op
	// Match restricts the fault to calls whose subject contains it: the
	// inserted text, the paragraph text for style and list calls, the search
	// needle or the bolded text. Empty matches every call.
	Match string
	// Err is returned wrapped; nil means ErrInjected.
	Err error
	// Times caps how many calls fail. Zero fails every matching call.
	Times int

	hits int
}

// Hits returns how many calls the fault failed.
func (f *Fault) Hits() int {
	return f.hits
}

// Inject registers a fault and returns it for later inspection.
func (d *Document) Inject(f Fault) *Fault {
	fp := &f
	d.faults = append(d.faults, fp)
	return fp
}

// ClearFaults removes every injected fault.
func (d *Document) ClearFaults() {
	d.faults = nil
}

func (d *Document) begin(ctx context.Context, op Op, subject string) error {
	d.calls[op]++
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, f := range d.faults {
		if f.Op != op || !strings.Contains(subject, f.Match) {
			continue
		}
		if f.Times > 0 && f.hits >= f.Times {
			continue
		}
		f.hits++
		err := f.Err
		if err == nil {
			err = ErrInjected
		}
		return fmt.Errorf("%s %q: %w", op, subject, err)
	}
	return nil
}
