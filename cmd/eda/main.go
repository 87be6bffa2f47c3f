// Command eda inspects tabular CSV datasets: structure, statistics, charts
// and automated reports.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eda",
		Short: "Exploratory data analysis over CSV datasets",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional .env next to the binary; absence is fine.
			_ = godotenv.Load()
			viper.SetEnvPrefix("EDA")
			viper.AutomaticEnv()
		},
		SilenceUsage: true,
	}
	root.AddCommand(newInspectCmd())
	root.AddCommand(newPlotsCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newCleanCmd())
	return root
}
