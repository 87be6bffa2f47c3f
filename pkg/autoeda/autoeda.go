// Package autoeda defines the pluggable automated report generators the
// inspector can delegate whole-dataset analysis to. Generators are
// registered up front by the caller; nothing is resolved or installed at
// analysis time. When no generator is registered the delegating operation
// reports ErrUnavailable and the analysis simply proceeds without it.
package autoeda

import (
	"errors"
	"io"
	"sync"

	"github.com/go-gota/gota/dataframe"
)

// ExportFilename is the fixed name of the CSV the graphical path writes to
// the working directory. The file is overwritten on each call and never
// removed.
const ExportFilename = "temp_dataset.csv"

// ErrUnavailable is reported when a delegating operation runs with no
// generator registered for it.
var ErrUnavailable = errors.New("autoeda: no report generator registered")

// Report is a finished automated analysis, ready to be rendered.
type Report interface {
	Show(w io.Writer) error
}

// StatisticalReporter produces a statistical report from a bound dataset.
type StatisticalReporter interface {
	Analyze(df dataframe.DataFrame) (Report, error)
}

// GraphicalReporter produces a graphical report from a dataset previously
// serialized to a CSV file.
type GraphicalReporter interface {
	AutoViz(csvPath string) (Report, error)
}

var (
	mu          sync.RWMutex
	statistical StatisticalReporter
	graphical   GraphicalReporter
)

// RegisterStatistical installs the statistical report generator.
// A later registration replaces an earlier one.
func RegisterStatistical(r StatisticalReporter) {
	mu.Lock()
	defer mu.Unlock()
	statistical = r
}

// RegisterGraphical installs the graphical report generator.
func RegisterGraphical(r GraphicalReporter) {
	mu.Lock()
	defer mu.Unlock()
	graphical = r
}

// Statistical returns the registered statistical generator, if any.
func Statistical() (StatisticalReporter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return statistical, statistical != nil
}

// Graphical returns the registered graphical generator, if any.
func Graphical() (GraphicalReporter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return graphical, graphical != nil
}
