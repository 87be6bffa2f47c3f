package stats

import (
	mstats "github.com/aclements/go-moremath/stats"
)

// IQRBounds returns the Tukey fences for the given values: quartiles
// extended by 1.5 times the interquartile range on each side.
func IQRBounds(xs []float64) (lo, hi float64) {
	clean := DropNaN(xs)
	if len(clean) == 0 {
		return 0, 0
	}
	s := mstats.Sample{Xs: clean}
	s.Sort()
	q1 := s.Quantile(0.25)
	q3 := s.Quantile(0.75)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// CountOutliers counts values falling outside the Tukey fences.
func CountOutliers(xs []float64) int {
	lo, hi := IQRBounds(xs)
	n := 0
	for _, v := range DropNaN(xs) {
		if v < lo || v > hi {
			n++
		}
	}
	return n
}
