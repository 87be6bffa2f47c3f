package autoeda

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
)

func TestRegistry(t *testing.T) {
	RegisterStatistical(nil)
	RegisterGraphical(nil)
	t.Cleanup(func() {
		RegisterStatistical(nil)
		RegisterGraphical(nil)
	})

	_, ok := Statistical()
	assert.False(t, ok)
	_, ok = Graphical()
	assert.False(t, ok)

	r := NewSummaryReporter()
	RegisterStatistical(r)
	got, ok := Statistical()
	assert.True(t, ok)
	assert.Same(t, r, got)

	// A later registration replaces the earlier one.
	other := &SummaryReporter{MaxValueCounts: 1}
	RegisterStatistical(other)
	got, _ = Statistical()
	assert.Same(t, other, got)
}

func TestSummaryReporter(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"age", "score", "city"},
		{"30", "1.5", "rome"},
		{"25", "2.5", "lima"},
		{"NA", "3.5", "rome"},
		{"40", "4.5", "oslo"},
	})
	require.NoError(t, err)

	report, err := NewSummaryReporter().Analyze(df)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Show(&buf))
	text := buf.String()

	assert.Contains(t, text, "4 rows x 3 columns (12 cells)")
	assert.Contains(t, text, "age")
	assert.Contains(t, text, "score")
	assert.Contains(t, text, "Numeric columns")
	assert.Contains(t, text, "city value counts")
	assert.Contains(t, text, "rome: 2")
	assert.Contains(t, text, "Correlations")
}

func TestSummaryReporterCapsValueCounts(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"label"},
		{"a"}, {"b"}, {"c"}, {"a"},
	})
	require.NoError(t, err)

	r := &SummaryReporter{MaxValueCounts: 1}
	report, err := r.Analyze(df)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Show(&buf))

	assert.Contains(t, buf.String(), "a: 2")
	assert.Contains(t, buf.String(), "... 2 more")
	assert.NotContains(t, buf.String(), "b: 1")
}
