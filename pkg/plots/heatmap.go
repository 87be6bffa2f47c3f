package plots

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ.
// Row 0 is drawn at the bottom of the heat map.
type corrGrid struct {
	labels []string
	m      [][]float64
}

func (g corrGrid) Dims() (c, r int)   { return len(g.labels), len(g.labels) }
func (g corrGrid) Z(c, r int) float64 { return g.m[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// CorrelationHeatmap renders the matrix as an annotated heat map with a
// diverging blue-red palette over [-1, 1]. NaN cells (constant or empty
// columns) are annotated as such and drawn at zero.
func CorrelationHeatmap(labels []string, m [][]float64, w io.Writer) error {
	if len(labels) == 0 {
		return fmt.Errorf("no numeric columns to correlate")
	}

	// The heat map cannot draw NaN cells; draw them at zero and mark the
	// annotation n/a instead.
	filled := make([][]float64, len(m))
	for i := range m {
		filled[i] = make([]float64, len(m[i]))
		for j, v := range m[i] {
			if math.IsNaN(v) {
				filled[i][j] = 0
			} else {
				filled[i][j] = v
			}
		}
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	h := plotter.NewHeatMap(corrGrid{labels: labels, m: filled}, cm.Palette(256))
	h.Min = -1
	h.Max = 1

	p := plot.New()
	p.Title.Text = "Correlation Matrix"
	p.Add(h)
	p.NominalX(labels...)
	p.NominalY(labels...)

	// Annotate each cell with its coefficient.
	xys := make(plotter.XYs, 0, len(labels)*len(labels))
	texts := make([]string, 0, len(labels)*len(labels))
	for r := range m {
		for c := range m[r] {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			if math.IsNaN(m[r][c]) {
				texts = append(texts, "n/a")
			} else {
				texts = append(texts, fmt.Sprintf("%.2f", m[r][c]))
			}
		}
	}
	ann, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("heat map labels: %w", err)
	}
	p.Add(ann)

	side := vg.Length(len(labels)) * vg.Inch
	if side < 6*vg.Inch {
		side = 6 * vg.Inch
	}
	return writePNG(p, side, side, w)
}
