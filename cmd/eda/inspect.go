package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/dataset"
	"github.com/jj-tena/ExploratoryDataAnalysis/pkg/eda"
)

func newInspectCmd() *cobra.Command {
	var describe string

	cmd := &cobra.Command{
		Use:   "inspect <file.csv>",
		Short: "Print structure, missing values and statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := dataset.ReadCSVFile(args[0])
			if err != nil {
				return err
			}
			insp := eda.New(df)
			if describe != "" {
				insp.SetDescription(describe)
			}

			if text, err := insp.Description(); err == nil {
				fmt.Printf("Description: %s\n", text)
			}
			rows, cols := insp.Shape()
			fmt.Printf("Shape: %d rows x %d columns\n", rows, cols)
			fmt.Printf("Size:  %d cells\n\n", insp.Size())

			fmt.Println("Head:")
			fmt.Println(insp.Head())

			nulls := insp.Nulls()
			uniques := insp.Uniques()
			types := insp.Types()
			fmt.Println("Columns:")
			for _, name := range insp.Columns() {
				fmt.Printf("  %-20s %-8s nulls=%-5d uniques=%d\n",
					name, types[name], nulls[name], uniques[name])
			}

			if summaries := insp.Statistics(); len(summaries) > 0 {
				fmt.Println("\nNumeric statistics:")
				for _, name := range insp.NumericColumns() {
					s := summaries[name]
					fmt.Printf("  %-20s count=%d mean=%.4g std=%.4g min=%.4g q1=%.4g median=%.4g q3=%.4g max=%.4g\n",
						name, s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)
				}
			}

			fmt.Println("\nValue counts:")
			fmt.Println(insp.CountUniques())
			return nil
		},
	}

	cmd.Flags().StringVar(&describe, "describe", "", "attach a dataset description")
	return cmd
}
