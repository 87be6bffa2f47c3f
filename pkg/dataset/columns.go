package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NumericColumns returns the names of int and float columns, in frame order.
func NumericColumns(df dataframe.DataFrame) []string {
	var out []string
	names := df.Names()
	for i, t := range df.Types() {
		if t == series.Int || t == series.Float {
			out = append(out, names[i])
		}
	}
	return out
}

// CategoricalColumns returns the names of string columns, in frame order.
// Boolean columns belong to neither class, mirroring how numeric and
// object dtypes partition a pandas frame.
func CategoricalColumns(df dataframe.DataFrame) []string {
	var out []string
	names := df.Names()
	for i, t := range df.Types() {
		if t == series.String {
			out = append(out, names[i])
		}
	}
	return out
}

// Floats returns the column's values as float64, with missing entries as NaN.
func Floats(df dataframe.DataFrame, name string) []float64 {
	return df.Col(name).Float()
}

// NullCount counts the missing entries in the column.
func NullCount(df dataframe.DataFrame, name string) int {
	n := 0
	for _, isNA := range df.Col(name).IsNaN() {
		if isNA {
			n++
		}
	}
	return n
}

// NonNullRecords returns the column's values as strings, missing entries
// excluded.
func NonNullRecords(df dataframe.DataFrame, name string) []string {
	col := df.Col(name)
	records := col.Records()
	mask := col.IsNaN()
	out := make([]string, 0, len(records))
	for i, v := range records {
		if !mask[i] {
			out = append(out, v)
		}
	}
	return out
}

// UniqueCount counts the distinct non-missing values in the column.
func UniqueCount(df dataframe.DataFrame, name string) int {
	seen := make(map[string]struct{})
	for _, v := range NonNullRecords(df, name) {
		seen[v] = struct{}{}
	}
	return len(seen)
}
