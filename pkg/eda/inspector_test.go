package eda

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/autoeda"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// sampleFrame is the 3x2 dataset from the documentation: a=[1,2,2],
// b=["x","y","y"].
func sampleFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df, err := dataset.LoadRecords([][]string{
		{"a", "b"},
		{"1", "x"},
		{"2", "y"},
		{"2", "y"},
	})
	require.NoError(t, err)
	return df
}

func TestDescriptionBeforeSetFails(t *testing.T) {
	insp := New(sampleFrame(t))

	_, err := insp.Description()
	assert.ErrorIs(t, err, ErrNoDescription)

	insp.SetDescription("x")
	text, err := insp.Description()
	require.NoError(t, err)
	assert.Equal(t, "x", text)
}

func TestEmptyDescriptionIsStillSet(t *testing.T) {
	insp := New(sampleFrame(t))
	insp.SetDescription("")

	text, err := insp.Description()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestShapeAndSize(t *testing.T) {
	insp := New(sampleFrame(t))

	rows, cols := insp.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 6, insp.Size())
}

func TestColumnsAndTypes(t *testing.T) {
	insp := New(sampleFrame(t))

	assert.Equal(t, []string{"a", "b"}, insp.Columns())
	assert.Equal(t, map[string]string{"a": "int", "b": "string"}, insp.Types())
}

func TestHead(t *testing.T) {
	insp := New(sampleFrame(t))
	assert.Equal(t, 3, insp.Head().Nrow())

	df, err := dataset.LoadRecords([][]string{
		{"n"},
		{"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, New(df).Head().Nrow())
}

func TestNullsAndUniques(t *testing.T) {
	insp := New(sampleFrame(t))

	assert.Equal(t, map[string]int{"a": 0, "b": 0}, insp.Nulls())
	assert.Equal(t, map[string]int{"a": 2, "b": 2}, insp.Uniques())
}

func TestNullsCountsMissing(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"a", "b"},
		{"1", "x"},
		{"NA", "y"},
		{"3", "NaN"},
	})
	require.NoError(t, err)
	insp := New(df)

	nulls := insp.Nulls()
	assert.Equal(t, 1, nulls["a"])
	assert.Equal(t, 1, nulls["b"])

	total := 0
	for _, n := range nulls {
		total += n
	}
	assert.Equal(t, 2, total)
}

func TestColumnClassPartition(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"id", "name", "ratio", "city"},
		{"1", "ann", "0.5", "rome"},
		{"2", "bob", "0.7", "lima"},
	})
	require.NoError(t, err)
	insp := New(df)

	numeric := insp.NumericColumns()
	categorical := insp.CategoricalColumns()
	assert.Equal(t, []string{"id", "ratio"}, numeric)
	assert.Equal(t, []string{"name", "city"}, categorical)

	// The two classes cover all columns with no overlap.
	seen := make(map[string]bool)
	for _, name := range append(append([]string{}, numeric...), categorical...) {
		assert.False(t, seen[name], "column %s in both classes", name)
		seen[name] = true
	}
	assert.Len(t, seen, 4)
}

func TestStatistics(t *testing.T) {
	insp := New(sampleFrame(t))

	summaries := insp.Statistics()
	require.Contains(t, summaries, "a")
	require.NotContains(t, summaries, "b")

	s := summaries["a"]
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 5.0/3.0, s.Mean, 1e-9)
	assert.InDelta(t, 1, s.Min, 1e-9)
	assert.InDelta(t, 2, s.Max, 1e-9)
	assert.InDelta(t, 2, s.Median, 1e-9)
}

func TestCountUniques(t *testing.T) {
	insp := New(sampleFrame(t))

	report := insp.CountUniques()
	assert.Contains(t, report, "Column: a")
	assert.Contains(t, report, "Column: b")
	assert.Contains(t, report, "  2: 2")
	assert.Contains(t, report, "  y: 2")
	assert.Contains(t, report, "  x: 1")

	// One block per column.
	assert.Equal(t, 2, strings.Count(report, "Column: "))
}

func TestChartRendering(t *testing.T) {
	insp := New(sampleFrame(t))

	var box, hist, bar, corr bytes.Buffer
	require.NoError(t, insp.Boxplots(&box))
	require.NoError(t, insp.Histograms(&hist, 0)) // 0 falls back to 10 bins
	require.NoError(t, insp.BarCharts(&bar))
	require.NoError(t, insp.CorrelationMatrix(&corr))

	for name, buf := range map[string]*bytes.Buffer{
		"boxplots": &box, "histograms": &hist, "barcharts": &bar, "correlation": &corr,
	} {
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "%s is not a PNG", name)
	}
}

func TestChartsWithoutEligibleColumns(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"name"},
		{"ann"},
		{"bob"},
	})
	require.NoError(t, err)
	insp := New(df)

	var buf bytes.Buffer
	assert.Error(t, insp.Boxplots(&buf))
	assert.Error(t, insp.CorrelationMatrix(&buf))
	assert.NoError(t, insp.BarCharts(&buf))
}

type recordingGraphical struct {
	path string
}

func (g *recordingGraphical) AutoViz(csvPath string) (autoeda.Report, error) {
	g.path = csvPath
	return textShower("graphical report"), nil
}

type textShower string

func (t textShower) Show(w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

func TestStatisticalReportUnavailable(t *testing.T) {
	autoeda.RegisterStatistical(nil)
	t.Cleanup(func() { autoeda.RegisterStatistical(nil) })

	insp := New(sampleFrame(t))
	var buf bytes.Buffer
	assert.ErrorIs(t, insp.StatisticalReport(&buf), autoeda.ErrUnavailable)
}

func TestStatisticalReportDelegates(t *testing.T) {
	autoeda.RegisterStatistical(autoeda.NewSummaryReporter())
	t.Cleanup(func() { autoeda.RegisterStatistical(nil) })

	insp := New(sampleFrame(t))
	var buf bytes.Buffer
	require.NoError(t, insp.StatisticalReport(&buf))
	assert.Contains(t, buf.String(), "3 rows x 2 columns")
}

func TestGraphicalReportExportsCSV(t *testing.T) {
	gen := &recordingGraphical{}
	autoeda.RegisterGraphical(gen)
	t.Cleanup(func() { autoeda.RegisterGraphical(nil) })

	// The export lands in the working directory by design.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	insp := New(sampleFrame(t))
	var buf bytes.Buffer
	require.NoError(t, insp.GraphicalReport(&buf))

	assert.Equal(t, autoeda.ExportFilename, gen.path)
	_, err = os.Stat(autoeda.ExportFilename)
	assert.NoError(t, err, "export file should remain on disk")
	assert.Equal(t, "graphical report", buf.String())
}

func TestGraphicalReportUnavailable(t *testing.T) {
	autoeda.RegisterGraphical(nil)
	t.Cleanup(func() { autoeda.RegisterGraphical(nil) })

	insp := New(sampleFrame(t))
	var buf bytes.Buffer
	assert.ErrorIs(t, insp.GraphicalReport(&buf), autoeda.ErrUnavailable)
}
