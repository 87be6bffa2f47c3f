// Package eda implements the dataset inspector: structural and statistical
// queries plus chart rendering over one bound tabular dataset.
//
// The inspector borrows the frame it is built with and never modifies it.
// Every operation is independent; there is no state beyond the bound frame
// and the optional description.
package eda

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/autoeda"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/plots"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/stats"
)

// ErrNoDescription is returned by Description before SetDescription is called.
var ErrNoDescription = errors.New("eda: description not set")

// headRows is how many leading rows Head returns.
const headRows = 5

// defaultBins is the histogram bin count when the caller passes none.
const defaultBins = 10

// Inspector answers queries about a bound dataset and renders visual
// summaries of it.
type Inspector struct {
	df             dataframe.DataFrame
	description    string
	hasDescription bool
}

// New binds an inspector to the given frame.
func New(df dataframe.DataFrame) *Inspector {
	return &Inspector{df: df}
}

// SetDescription attaches a free-text label to the inspector.
func (in *Inspector) SetDescription(text string) {
	in.description = text
	in.hasDescription = true
}

// Description returns the label set by SetDescription.
// It fails with ErrNoDescription if no label has been set.
func (in *Inspector) Description() (string, error) {
	if !in.hasDescription {
		return "", ErrNoDescription
	}
	return in.description, nil
}

// Shape returns the row and column counts of the dataset.
func (in *Inspector) Shape() (rows, cols int) {
	return in.df.Dims()
}

// Size returns the total cell count (rows times columns).
func (in *Inspector) Size() int {
	rows, cols := in.df.Dims()
	return rows * cols
}

// Head returns the first 5 rows of the dataset (fewer if it is shorter).
func (in *Inspector) Head() dataframe.DataFrame {
	n := in.df.Nrow()
	if n > headRows {
		n = headRows
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return in.df.Subset(idx)
}

// Columns returns the column names in their original order.
func (in *Inspector) Columns() []string {
	return in.df.Names()
}

// Types maps each column name to its inferred type.
func (in *Inspector) Types() map[string]string {
	out := make(map[string]string)
	for _, col := range dataset.Schema(in.df) {
		out[col.Name] = col.Type
	}
	return out
}

// Statistics returns descriptive statistics for every numeric column.
func (in *Inspector) Statistics() map[string]stats.Summary {
	out := make(map[string]stats.Summary)
	for _, name := range in.NumericColumns() {
		out[name] = stats.Describe(dataset.Floats(in.df, name))
	}
	return out
}

// Nulls maps each column name to its count of missing values.
func (in *Inspector) Nulls() map[string]int {
	out := make(map[string]int)
	for _, name := range in.df.Names() {
		out[name] = dataset.NullCount(in.df, name)
	}
	return out
}

// Uniques maps each column name to its count of distinct non-missing values.
func (in *Inspector) Uniques() map[string]int {
	out := make(map[string]int)
	for _, name := range in.df.Names() {
		out[name] = dataset.UniqueCount(in.df, name)
	}
	return out
}

// CountUniques returns a formatted report with one block per column listing
// each distinct value and its frequency, most frequent first.
func (in *Inspector) CountUniques() string {
	var b strings.Builder
	for _, name := range in.df.Names() {
		fmt.Fprintf(&b, "\nColumn: %s\n", name)
		for _, vc := range stats.ValueCounts(dataset.NonNullRecords(in.df, name)) {
			fmt.Fprintf(&b, "  %s: %d\n", vc.Value, vc.Count)
		}
	}
	return b.String()
}

// NumericColumns returns the names of the int and float columns, in order.
func (in *Inspector) NumericColumns() []string {
	return dataset.NumericColumns(in.df)
}

// CategoricalColumns returns the names of the string columns, in order.
func (in *Inspector) CategoricalColumns() []string {
	return dataset.CategoricalColumns(in.df)
}

// Boxplots renders a grid of box plots, one per numeric column, as PNG.
func (in *Inspector) Boxplots(w io.Writer) error {
	names := in.NumericColumns()
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = stats.DropNaN(dataset.Floats(in.df, name))
	}
	return plots.Boxplots(names, cols, w)
}

// Histograms renders a grid of histograms, one per numeric column, as PNG.
// A non-positive bins value defaults to 10.
func (in *Inspector) Histograms(w io.Writer, bins int) error {
	if bins <= 0 {
		bins = defaultBins
	}
	names := in.NumericColumns()
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = stats.DropNaN(dataset.Floats(in.df, name))
	}
	return plots.Histograms(names, cols, bins, w)
}

// BarCharts renders a grid of value-frequency bar charts, one per
// categorical column, as PNG.
func (in *Inspector) BarCharts(w io.Writer) error {
	names := in.CategoricalColumns()
	counts := make([][]stats.ValueCount, len(names))
	for i, name := range names {
		counts[i] = stats.ValueCounts(dataset.NonNullRecords(in.df, name))
	}
	return plots.BarCharts(names, counts, w)
}

// CorrelationMatrix computes pairwise Pearson correlations over the numeric
// columns and renders them as an annotated heat map, as PNG.
func (in *Inspector) CorrelationMatrix(w io.Writer) error {
	names := in.NumericColumns()
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = dataset.Floats(in.df, name)
	}
	return plots.CorrelationHeatmap(names, stats.CorrelationMatrix(cols), w)
}

// StatisticalReport delegates whole-dataset analysis to the registered
// statistical generator and renders its report to w. Returns
// autoeda.ErrUnavailable when no generator is registered.
func (in *Inspector) StatisticalReport(w io.Writer) error {
	gen, ok := autoeda.Statistical()
	if !ok {
		return autoeda.ErrUnavailable
	}
	report, err := gen.Analyze(in.df)
	if err != nil {
		return fmt.Errorf("statistical report: %w", err)
	}
	return report.Show(w)
}

// GraphicalReport serializes the dataset to the fixed-named CSV in the
// working directory, hands the path to the registered graphical generator
// and renders its report to w. The CSV is overwritten on each call and is
// not removed afterwards. Returns autoeda.ErrUnavailable when no generator
// is registered.
func (in *Inspector) GraphicalReport(w io.Writer) error {
	gen, ok := autoeda.Graphical()
	if !ok {
		return autoeda.ErrUnavailable
	}
	if err := dataset.ExportCSV(in.df, autoeda.ExportFilename); err != nil {
		return fmt.Errorf("graphical report: %w", err)
	}
	report, err := gen.AutoViz(autoeda.ExportFilename)
	if err != nil {
		return fmt.Errorf("graphical report: %w", err)
	}
	return report.Show(w)
}
