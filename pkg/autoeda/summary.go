package autoeda

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/stats"
)

// SummaryReporter is the built-in statistical report generator: a plain-text
// account of the dataset's structure, missing values, distributions and
// correlations. External generators can replace it through the registry.
type SummaryReporter struct {
	// MaxValueCounts caps the listed distinct values per column.
	MaxValueCounts int
}

// NewSummaryReporter returns a reporter listing at most 10 values per column.
func NewSummaryReporter() *SummaryReporter {
	return &SummaryReporter{MaxValueCounts: 10}
}

// Analyze builds the text report for the frame.
func (r *SummaryReporter) Analyze(df dataframe.DataFrame) (Report, error) {
	var b strings.Builder

	rows, cols := df.Dims()
	fmt.Fprintf(&b, "Dataset: %d rows x %d columns (%d cells)\n\n", rows, cols, rows*cols)

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\ttype\tnulls\tuniques")
	for _, col := range dataset.Schema(df) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
			col.Name, col.Type,
			dataset.NullCount(df, col.Name),
			dataset.UniqueCount(df, col.Name))
	}
	tw.Flush()

	numeric := dataset.NumericColumns(df)
	if len(numeric) > 0 {
		fmt.Fprintf(&b, "\nNumeric columns\n")
		tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax\toutliers")
		for _, name := range numeric {
			xs := dataset.Floats(df, name)
			s := stats.Describe(xs)
			fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%d\n",
				name, s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max,
				stats.CountOutliers(xs))
		}
		tw.Flush()
	}

	categorical := dataset.CategoricalColumns(df)
	for _, name := range categorical {
		fmt.Fprintf(&b, "\n%s value counts\n", name)
		vcs := stats.ValueCounts(dataset.NonNullRecords(df, name))
		limit := r.MaxValueCounts
		if limit <= 0 || limit > len(vcs) {
			limit = len(vcs)
		}
		for _, vc := range vcs[:limit] {
			fmt.Fprintf(&b, "  %s: %d\n", vc.Value, vc.Count)
		}
		if limit < len(vcs) {
			fmt.Fprintf(&b, "  ... %d more\n", len(vcs)-limit)
		}
	}

	if len(numeric) >= 2 {
		colVals := make([][]float64, len(numeric))
		for i, name := range numeric {
			colVals[i] = dataset.Floats(df, name)
		}
		m := stats.CorrelationMatrix(colVals)

		fmt.Fprintf(&b, "\nCorrelations\n")
		tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "\t%s\n", strings.Join(numeric, "\t"))
		for i, name := range numeric {
			fmt.Fprintf(tw, "%s", name)
			for j := range numeric {
				fmt.Fprintf(tw, "\t%.2f", m[i][j])
			}
			fmt.Fprintln(tw)
		}
		tw.Flush()
	}

	return textReport(b.String()), nil
}

// textReport renders itself by writing the prepared text.
type textReport string

func (r textReport) Show(w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}
