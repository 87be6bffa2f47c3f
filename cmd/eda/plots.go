package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/eda"
)

func newPlotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plots <file.csv>",
		Short: "Render box plots, histograms, bar charts and the correlation heat map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := dataset.ReadCSVFile(args[0])
			if err != nil {
				return err
			}
			insp := eda.New(df)

			outDir := viper.GetString("out")
			bins := viper.GetInt("bins")
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			charts := []struct {
				file   string
				render func(io.Writer) error
			}{
				{"boxplots.png", insp.Boxplots},
				{"histograms.png", func(w io.Writer) error { return insp.Histograms(w, bins) }},
				{"barcharts.png", insp.BarCharts},
				{"correlation.png", insp.CorrelationMatrix},
			}
			for _, chart := range charts {
				path := filepath.Join(outDir, chart.file)
				if err := renderToFile(path, chart.render); err != nil {
					// A dataset without numeric or categorical columns is
					// not fatal for the remaining charts.
					log.Printf("skipping %s: %v", chart.file, err)
					continue
				}
				fmt.Printf("wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().String("out", ".", "output directory for PNG files")
	cmd.Flags().Int("bins", 10, "histogram bin count")
	viper.BindPFlag("out", cmd.Flags().Lookup("out"))
	viper.BindPFlag("bins", cmd.Flags().Lookup("bins"))
	return cmd
}

func renderToFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}
