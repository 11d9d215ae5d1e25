// Package inserter applies converter instructions to a document.
//
// Instructions run one at a time. Each paragraph is inserted right after the
// previous one and committed before it is formatted. Formatting and
// per-instruction insertion failures are recorded in the Report and the run
// continues; fatal document failures stop the run and are returned.
package inserter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Mukisa95/ai-assist/internal/types"
)

// Inserter writes instructions into one document.
type Inserter struct {
	doc      types.Document
	config   *types.RenderConfig
	log      *zap.SugaredLogger
	observer types.Observer
}

// Option configures an Inserter.
type Option func(*Inserter)

// WithConfig sets the render configuration.
func WithConfig(config *types.RenderConfig) Option {
	return func(in *Inserter) {
		if config != nil {
			in.config = config
		}
	}
}

// WithLogger sets the logger degradations are reported to.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(in *Inserter) {
		if log != nil {
			in.log = log
		}
	}
}

// WithObserver sets the observer notified of inserts and degradations.
func WithObserver(o types.Observer) Option {
	return func(in *Inserter) {
		if o != nil {
			in.observer = o
		}
	}
}

// New creates an Inserter for doc.
func New(doc types.Document, opts ...Option) *Inserter {
	in := &Inserter{
		doc:      doc,
		config:   types.DefaultRenderConfig(),
		log:      zap.NewNop().Sugar(),
		observer: types.NopObserver{},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Apply inserts instructions in order from the anchor selected by mode.
//
// The returned report is never nil. A non-nil error means the run stopped
// early; everything inserted before that point stays in the document.
func (in *Inserter) Apply(ctx context.Context, instructions []types.Instruction, mode types.AnchorMode) (*types.Report, error) {
	report := &types.Report{}

	a, err := in.initialAnchor(ctx, mode)
	if err != nil {
		return report, err
	}

	in.log.Debugw("applying instructions", "count", len(instructions), "mode", mode.String())
	for i, ins := range instructions {
		report.Attempted++
		if err := in.applyOne(ctx, i, ins, &a, report); err != nil {
			in.log.Errorw("insert aborted",
				"index", i,
				"line", ins.Line,
				"inserted", report.Inserted,
				"remaining", len(instructions)-i,
				"error", err,
			)
			return report, err
		}
	}
	in.log.Debugw("instructions applied",
		"inserted", report.Inserted,
		"blank", report.Blank,
		"degraded", len(report.Degradations),
	)
	return report, nil
}

// applyOne runs one instruction. It returns an error only for fatal failures.
func (in *Inserter) applyOne(ctx context.Context, idx int, ins types.Instruction, a *anchor, report *types.Report) error {
	text := ins.Text
	if ins.BlankSeparator {
		text = ""
	}

	p, err := in.doc.InsertParagraph(ctx, a.at, text, a.loc)
	if err != nil {
		return in.degrade(report, idx, ins, types.StepInsert, err)
	}
	a.advance(p)
	report.Inserted++
	if ins.BlankSeparator {
		report.Blank++
	}
	in.observer.ObserveInsert(ins.Kind, ins.BlankSeparator)

	if err := in.doc.Sync(ctx); err != nil {
		if err := in.degrade(report, idx, ins, types.StepInsert, err); err != nil {
			return err
		}
	}
	if ins.BlankSeparator {
		return nil
	}

	if err := in.format(ctx, idx, ins, p, report); err != nil {
		return err
	}

	if len(ins.BoldSpans) > 0 && (ins.Kind != types.KindHeading || in.config.BoldInHeadings) {
		return in.applyBold(ctx, idx, ins, p, report)
	}
	return nil
}

// format applies the heading style or list format of the instruction.
func (in *Inserter) format(ctx context.Context, idx int, ins types.Instruction, p types.Range, report *types.Report) error {
	var (
		step types.Step
		err  error
	)
	switch ins.Kind {
	case types.KindHeading:
		step = types.StepHeading
		err = in.doc.SetStyle(ctx, p, in.config.HeadingStyleName(ins.Level))
	case types.KindBulletItem:
		step = types.StepList
		err = in.doc.ApplyListFormat(ctx, p, types.ListBullet)
	case types.KindNumberItem:
		step = types.StepList
		err = in.doc.ApplyListFormat(ctx, p, types.ListNumber)
	default:
		return nil
	}
	if err != nil {
		return in.degrade(report, idx, ins, step, err)
	}
	if err := in.doc.Sync(ctx); err != nil {
		return in.degrade(report, idx, ins, step, err)
	}
	return nil
}

// degrade records a non-fatal failure and returns nil, or returns a fatal
// failure wrapped with its position.
func (in *Inserter) degrade(report *types.Report, idx int, ins types.Instruction, step types.Step, err error) error {
	if types.IsFatal(err) {
		return fmt.Errorf("instruction %d (%s): %w", idx, step, err)
	}
	report.Degradations = append(report.Degradations, types.Degradation{
		Index: idx,
		Kind:  ins.Kind,
		Step:  step,
		Err:   err,
	})
	in.observer.ObserveDegradation(step)
	in.log.Warnw("formatting degraded",
		"index", idx,
		"line", ins.Line,
		"kind", ins.Kind.String(),
		"step", string(step),
		"error", err,
	)
	return nil
}
