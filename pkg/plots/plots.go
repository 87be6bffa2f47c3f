// Package plots renders chart grids for dataset columns using gonum/plot.
// Every renderer lays one subplot per column into a fixed 3-column grid and
// encodes the result as a PNG.
package plots

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/stats"
)

// gridCols is the number of subplot columns per figure.
const gridCols = 3

// Subplot tile size.
const (
	tileWidth  = 4 * vg.Inch
	tileHeight = 3 * vg.Inch
)

// GridDims returns the subplot grid dimensions for n charts:
// 3 columns and as many rows as needed to hold them all.
func GridDims(n int) (rows, cols int) {
	if n <= 0 {
		return 0, gridCols
	}
	return (n + gridCols - 1) / gridCols, gridCols
}

// Boxplots renders one box plot per column into a subplot grid.
// Values must be free of NaN entries.
func Boxplots(names []string, cols [][]float64, w io.Writer) error {
	subplots := make([]*plot.Plot, 0, len(names))
	for i, name := range names {
		p := plot.New()
		p.Title.Text = name
		b, err := plotter.NewBoxPlot(vg.Points(30), 0, plotter.Values(cols[i]))
		if err != nil {
			return fmt.Errorf("boxplot %s: %w", name, err)
		}
		p.Add(b)
		p.NominalX(name)
		subplots = append(subplots, p)
	}
	return renderGrid(subplots, w)
}

// Histograms renders one histogram per column into a subplot grid.
// Values must be free of NaN entries.
func Histograms(names []string, cols [][]float64, bins int, w io.Writer) error {
	subplots := make([]*plot.Plot, 0, len(names))
	for i, name := range names {
		p := plot.New()
		p.Title.Text = name
		h, err := plotter.NewHist(plotter.Values(cols[i]), bins)
		if err != nil {
			return fmt.Errorf("histogram %s: %w", name, err)
		}
		p.Add(h)
		subplots = append(subplots, p)
	}
	return renderGrid(subplots, w)
}

// BarCharts renders one bar chart of value frequencies per column into a
// subplot grid.
func BarCharts(names []string, counts [][]stats.ValueCount, w io.Writer) error {
	subplots := make([]*plot.Plot, 0, len(names))
	for i, name := range names {
		vcs := counts[i]
		vals := make(plotter.Values, len(vcs))
		labels := make([]string, len(vcs))
		for j, vc := range vcs {
			vals[j] = float64(vc.Count)
			labels[j] = vc.Value
		}
		p := plot.New()
		p.Title.Text = name
		bars, err := plotter.NewBarChart(vals, vg.Points(20))
		if err != nil {
			return fmt.Errorf("bar chart %s: %w", name, err)
		}
		p.Add(bars)
		p.NominalX(labels...)
		subplots = append(subplots, p)
	}
	return renderGrid(subplots, w)
}

// renderGrid tiles the subplots into the 3-column grid and writes a PNG.
// Grid cells past the last subplot stay blank.
func renderGrid(subplots []*plot.Plot, w io.Writer) error {
	if len(subplots) == 0 {
		return fmt.Errorf("no columns to plot")
	}
	rows, cols := GridDims(len(subplots))

	grid := make([][]*plot.Plot, rows)
	idx := 0
	for r := 0; r < rows; r++ {
		grid[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			if idx < len(subplots) {
				grid[r][c] = subplots[idx]
				idx++
			}
		}
	}

	img := vgimg.New(tileWidth*vg.Length(cols), tileHeight*vg.Length(rows))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// writePNG draws a single plot onto a fresh canvas and encodes it.
func writePNG(p *plot.Plot, width, height vg.Length, w io.Writer) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)
	p.Draw(dc)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
