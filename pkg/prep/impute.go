// Package prep cleans datasets before inspection: missing-value imputation,
// column dropping and duplicate removal. Every function returns a new frame;
// the input is never modified.
package prep

import (
	"strconv"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/stats"
)

// missing is the token gota uses for NA entries in Records output.
const missing = "NaN"

// numericValues parses the non-missing entries of a column.
func numericValues(col []string) []float64 {
	var nums []float64
	for _, v := range col {
		if v == missing {
			continue
		}
		if num, err := strconv.ParseFloat(v, 64); err == nil {
			nums = append(nums, num)
		}
	}
	return nums
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// ImputeMean replaces missing numeric values with the column mean.
func ImputeMean(col []string) []string {
	s := mstats.Sample{Xs: numericValues(col)}
	return ImputeConstant(col, formatNum(s.Mean()))
}

// ImputeMedian replaces missing numeric values with the column median.
func ImputeMedian(col []string) []string {
	s := mstats.Sample{Xs: numericValues(col)}
	s.Sort()
	return ImputeConstant(col, formatNum(s.Quantile(0.5)))
}

// ImputeMode replaces missing values with the most frequent value.
// Works for categorical columns as well as numeric ones.
func ImputeMode(col []string) []string {
	var present []string
	for _, v := range col {
		if v != missing {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return col
	}
	vcs := stats.ValueCounts(present)
	return ImputeConstant(col, vcs[0].Value)
}

// ImputeConstant replaces missing values with a fixed constant.
func ImputeConstant(col []string, constant string) []string {
	out := make([]string, len(col))
	for i, v := range col {
		if v == missing {
			out[i] = constant
		} else {
			out[i] = v
		}
	}
	return out
}
