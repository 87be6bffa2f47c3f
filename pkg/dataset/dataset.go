// Package dataset loads and exports the tabular datasets the inspector
// binds to. Datasets are gota data frames: named, typed columns over an
// ordered collection of rows. Nothing in this package mutates a frame;
// transforms always produce a new one.
package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// missingTokens are the raw values treated as missing on load.
var missingTokens = []string{"", "NA", "N/A", "n/a", "NaN", "null", "NULL"}

// ReadCSV loads a CSV stream with a header row into a data frame.
// Column types are inferred from the values; missing tokens become NaN.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingTokens),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read csv: %w", df.Error())
	}
	return df, nil
}

// ReadCSVFile loads a CSV file from disk.
func ReadCSVFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// LoadRecords builds a data frame from in-memory records. The first record
// is the header row.
func LoadRecords(records [][]string) (dataframe.DataFrame, error) {
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingTokens),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load records: %w", df.Error())
	}
	return df, nil
}

// ExportCSV writes the frame to path, overwriting any existing file.
// The file is not removed afterwards; callers own the artifact.
func ExportCSV(df dataframe.DataFrame, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

// WriteCSV writes the frame to an arbitrary writer.
func WriteCSV(df dataframe.DataFrame, w io.Writer) error {
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
