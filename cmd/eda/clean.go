package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/prep"
)

func newCleanCmd() *cobra.Command {
	var threshold float64
	var output string

	cmd := &cobra.Command{
		Use:   "clean <file.csv>",
		Short: "Impute missing values, drop sparse columns and duplicates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := dataset.ReadCSVFile(args[0])
			if err != nil {
				return err
			}
			cleaned, err := prep.CleanMissing(df, threshold)
			if err != nil {
				return err
			}
			cleaned, err = prep.DropDuplicates(cleaned)
			if err != nil {
				return err
			}
			if err := dataset.ExportCSV(cleaned, output); err != nil {
				return err
			}
			rows, cols := cleaned.Dims()
			fmt.Printf("wrote %s (%d rows x %d columns)\n", output, rows, cols)
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "drop columns with a higher missing ratio")
	cmd.Flags().StringVar(&output, "output", "cleaned.csv", "output CSV path")
	return cmd
}
