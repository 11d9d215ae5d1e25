package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukisa95/ai-assist/internal/metrics"
	"github.com/Mukisa95/ai-assist/internal/types"
)

func TestRecorder_Counts(t *testing.T) {
	r := metrics.NewRecorder()

	r.ObserveInsert(types.KindHeading, false)
	r.ObserveInsert(types.KindPlain, false)
	r.ObserveInsert(types.KindPlain, false)
	r.ObserveInsert(types.KindPlain, true)
	r.ObserveDegradation(types.StepBold)
	r.ObserveFallback(types.AnchorAtEnd)

	count, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	var sb strings.Builder
	require.NoError(t, r.WriteText(&sb))
	out := sb.String()
	assert.Contains(t, out, "# TYPE aiassist_paragraphs_inserted_total counter")
	assert.Contains(t, out, `aiassist_paragraphs_inserted_total{blank="false",kind="plain"} 2`)
	assert.Contains(t, out, `aiassist_formatting_degradations_total{step="bold"} 1`)
	assert.Contains(t, out, `aiassist_raw_fallbacks_total{mode="`+types.AnchorAtEnd.String()+`"} 1`)
}

func TestRecorder_Independent(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.ObserveDegradation(types.StepList)

	count, err := testutil.GatherAndCount(b.Registry())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecorder_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, metrics.NewRecorder().WriteText(&sb))
	assert.Empty(t, sb.String())
}
