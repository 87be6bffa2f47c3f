package dataset

import (
	"github.com/go-gota/gota/dataframe"
)

// Column describes one column of a dataset.
type Column struct {
	Name string
	Type string // "int", "float", "string" or "bool"
}

// Schema returns the columns of the frame in their original order.
func Schema(df dataframe.DataFrame) []Column {
	names := df.Names()
	types := df.Types()
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Type: string(types[i])}
	}
	return cols
}
