package prep

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mstats "github.com/aclements/go-moremath/stats"
	"github.com/go-gota/gota/dataframe"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
)

// CleanMissing selects an imputation strategy per column based on data type,
// distribution and missing ratio. Columns whose missing ratio exceeds
// dropThreshold are dropped entirely. Returns a new frame.
func CleanMissing(df dataframe.DataFrame, dropThreshold float64) (dataframe.DataFrame, error) {
	records := df.Records()
	if len(records) < 2 {
		return df, nil
	}
	header := records[0]
	rows := records[1:]
	nRows := len(rows)

	var keptHeader []string
	var keptCols [][]string

	for c, name := range header {
		col := make([]string, nRows)
		missingCount := 0
		for r := range rows {
			col[r] = rows[r][c]
			if col[r] == missing {
				missingCount++
			}
		}
		ratio := float64(missingCount) / float64(nRows)

		if ratio > dropThreshold {
			fmt.Printf("Dropping column %s (%.1f%% missing)\n", name, ratio*100)
			continue
		}

		if missingCount > 0 {
			col = imputeColumn(name, col, ratio)
		}
		keptHeader = append(keptHeader, name)
		keptCols = append(keptCols, col)
	}

	if len(keptHeader) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("clean: every column exceeded the drop threshold")
	}

	out := make([][]string, nRows+1)
	out[0] = keptHeader
	for r := 0; r < nRows; r++ {
		row := make([]string, len(keptCols))
		for c := range keptCols {
			row[c] = keptCols[c][r]
		}
		out[r+1] = row
	}
	return dataset.LoadRecords(out)
}

// imputeColumn picks mean, median, mode or a constant depending on the
// column's type, skewness and missing ratio.
func imputeColumn(name string, col []string, missingRatio float64) []string {
	if isNumericColumn(col) {
		nums := numericValues(col)
		s := mstats.Sample{Xs: nums}
		s.Sort()
		mean := s.Mean()
		median := s.Quantile(0.5)
		skew := math.Abs(mean-median) / (s.StdDev() + 1e-9)

		switch {
		case missingRatio < 0.05:
			fmt.Printf("Column %s: imputed with mean\n", name)
			return ImputeMean(col)
		case skew > 1.0:
			fmt.Printf("Column %s: imputed with median (skewed)\n", name)
			return ImputeMedian(col)
		case missingRatio < 0.2:
			fmt.Printf("Column %s: imputed with median\n", name)
			return ImputeMedian(col)
		default:
			fmt.Printf("Column %s: imputed with constant 0\n", name)
			return ImputeConstant(col, "0")
		}
	}

	// Categorical
	if missingRatio < 0.1 {
		fmt.Printf("Column %s: imputed with mode\n", name)
		return ImputeMode(col)
	}
	fmt.Printf("Column %s: imputed with constant Unknown\n", name)
	return ImputeConstant(col, "Unknown")
}

// isNumericColumn reports whether every non-missing value parses as a number.
func isNumericColumn(col []string) bool {
	seen := false
	for _, v := range col {
		if v == missing {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// DropDuplicates removes duplicate rows, keeping the first occurrence.
func DropDuplicates(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	records := df.Records()
	if len(records) < 2 {
		return df, nil
	}
	seen := make(map[string]struct{})
	out := [][]string{records[0]}
	for _, row := range records[1:] {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return dataset.LoadRecords(out)
}
