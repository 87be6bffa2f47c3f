package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Correlation computes the Pearson correlation coefficient between two
// columns. Rows where either value is NaN are skipped (pairwise-complete).
// Returns NaN when fewer than two complete pairs remain or a column is
// constant.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) {
		return math.NaN()
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// CorrelationMatrix computes the pairwise Pearson correlations between the
// given columns. The result is symmetric with ones on the diagonal.
func CorrelationMatrix(cols [][]float64) [][]float64 {
	n := len(cols)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Correlation(cols[i], cols[j])
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m
}
