package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/autoeda"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/eda"
)

func newReportCmd() *cobra.Command {
	var graphical bool

	cmd := &cobra.Command{
		Use:   "report <file.csv>",
		Short: "Run the automated statistical report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := dataset.ReadCSVFile(args[0])
			if err != nil {
				return err
			}
			insp := eda.New(df)

			autoeda.RegisterStatistical(autoeda.NewSummaryReporter())
			if err := insp.StatisticalReport(os.Stdout); err != nil {
				return err
			}

			if graphical {
				// No graphical generator ships with this module; external
				// ones are registered by importing their package. Missing
				// one is reported, not fatal.
				if err := insp.GraphicalReport(os.Stdout); err != nil {
					if errors.Is(err, autoeda.ErrUnavailable) {
						fmt.Fprintln(os.Stderr, "graphical report generator not registered; skipping")
						return nil
					}
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&graphical, "graphical", false, "also run the graphical report")
	return cmd
}
