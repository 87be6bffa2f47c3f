package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
)

func TestImputeMean(t *testing.T) {
	out := ImputeMean([]string{"1", "NaN", "3"})
	assert.Equal(t, []string{"1", "2.0000", "3"}, out)
}

func TestImputeMedian(t *testing.T) {
	out := ImputeMedian([]string{"1", "NaN", "2", "10"})
	assert.Equal(t, []string{"1", "2.0000", "2", "10"}, out)
}

func TestImputeMode(t *testing.T) {
	out := ImputeMode([]string{"red", "NaN", "red", "blue"})
	assert.Equal(t, []string{"red", "red", "red", "blue"}, out)

	// All missing stays untouched.
	allMissing := []string{"NaN", "NaN"}
	assert.Equal(t, allMissing, ImputeMode(allMissing))
}

func TestImputeConstant(t *testing.T) {
	out := ImputeConstant([]string{"x", "NaN"}, "Unknown")
	assert.Equal(t, []string{"x", "Unknown"}, out)
}

func TestCleanMissingDropsSparseColumns(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"keep", "sparse"},
		{"1", "NA"},
		{"2", "NA"},
		{"3", "x"},
		{"4", "NA"},
	})
	require.NoError(t, err)

	cleaned, err := CleanMissing(df, 0.5)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep"}, cleaned.Names())
	assert.Equal(t, 4, cleaned.Nrow())
}

func TestCleanMissingImputesNumeric(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"v"},
		{"1"}, {"2"}, {"3"}, {"4"}, {"5"},
		{"6"}, {"7"}, {"8"}, {"9"}, {"10"},
		{"11"}, {"12"}, {"13"}, {"14"}, {"15"},
		{"16"}, {"17"}, {"18"}, {"19"}, {"NA"},
	})
	require.NoError(t, err)

	cleaned, err := CleanMissing(df, 0.5)
	require.NoError(t, err)

	require.Equal(t, 20, cleaned.Nrow())
	// 5% missing falls in the median branch; no NA remains.
	assert.Equal(t, 0, dataset.NullCount(cleaned, "v"))
}

func TestCleanMissingImputesCategorical(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"city"},
		{"rome"}, {"rome"}, {"lima"}, {"rome"}, {"rome"},
		{"rome"}, {"rome"}, {"lima"}, {"rome"}, {"rome"},
		{"rome"}, {"rome"}, {"lima"}, {"rome"}, {"rome"},
		{"rome"}, {"rome"}, {"lima"}, {"rome"}, {"NA"},
	})
	require.NoError(t, err)

	cleaned, err := CleanMissing(df, 0.5)
	require.NoError(t, err)

	assert.Equal(t, 0, dataset.NullCount(cleaned, "city"))
	// Mode imputation fills with the most frequent value.
	records := dataset.NonNullRecords(cleaned, "city")
	assert.Equal(t, "rome", records[len(records)-1])
}

func TestCleanMissingAllColumnsDropped(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"only"},
		{"NA"},
		{"NA"},
	})
	require.NoError(t, err)

	_, err = CleanMissing(df, 0.5)
	assert.Error(t, err)
}

func TestDropDuplicates(t *testing.T) {
	df, err := dataset.LoadRecords([][]string{
		{"a", "b"},
		{"1", "x"},
		{"1", "x"},
		{"2", "y"},
		{"1", "x"},
	})
	require.NoError(t, err)

	out, err := DropDuplicates(df)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Nrow())
}
