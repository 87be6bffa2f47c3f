package stats

import (
	"math"
	"sort"

	mstats "github.com/aclements/go-moremath/stats"
)

// Summary holds the descriptive statistics of one numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes descriptive statistics over the given values.
// NaN entries are treated as missing and excluded from every figure.
func Describe(xs []float64) Summary {
	clean := DropNaN(xs)
	if len(clean) == 0 {
		return Summary{}
	}
	s := mstats.Sample{Xs: clean}
	s.Sort()
	return Summary{
		Count:  len(clean),
		Mean:   s.Mean(),
		Std:    s.StdDev(),
		Min:    s.Quantile(0),
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    s.Quantile(1),
	}
}

// DropNaN returns a copy of xs without NaN entries.
func DropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mode returns the most frequent value in the slice, ignoring NaN.
// Ties resolve to the value seen first.
func Mode(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	counts := make(map[float64]int)
	maxCount := 0
	mode := 0.0
	for _, v := range xs {
		if math.IsNaN(v) {
			continue
		}
		counts[v]++
		if counts[v] > maxCount {
			maxCount = counts[v]
			mode = v
		}
	}
	return mode
}

// ValueCount is one distinct value of a column together with its frequency.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts tallies the distinct values of a column, most frequent first.
// Ties are broken by value so the ordering is deterministic.
func ValueCounts(records []string) []ValueCount {
	counts := make(map[string]int)
	for _, v := range records {
		counts[v]++
	}
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
