// Package metrics counts insertion events with Prometheus collectors.
package metrics

import (
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/Mukisa95/ai-assist/internal/types"
)

const namespace = "aiassist"

// Recorder implements types.Observer. Each Recorder owns its registry so
// several can coexist in one process.
type Recorder struct {
	registry *prometheus.Registry

	inserts      *prometheus.CounterVec
	degradations *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
}

var _ types.Observer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paragraphs_inserted_total",
			Help:      "Paragraphs inserted, by instruction kind.",
		}, []string{"kind", "blank"}),
		degradations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "formatting_degradations_total",
			Help:      "Formatting steps that failed and were skipped.",
		}, []string{"step"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raw_fallbacks_total",
			Help:      "Insertions that fell back to raw text.",
		}, []string{"mode"}),
	}
	r.registry.MustRegister(r.inserts, r.degradations, r.fallbacks)
	return r
}

func (r *Recorder) ObserveInsert(kind types.Kind, blank bool) {
	r.inserts.WithLabelValues(kind.String(), strconv.FormatBool(blank)).Inc()
}

func (r *Recorder) ObserveDegradation(step types.Step) {
	r.degradations.WithLabelValues(string(step)).Inc()
}

func (r *Recorder) ObserveFallback(mode types.AnchorMode) {
	r.fallbacks.WithLabelValues(mode.String()).Inc()
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
