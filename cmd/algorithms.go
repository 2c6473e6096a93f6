package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherine-k/schedsim/pkg/chart"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List supported scheduling algorithms",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), chart.NewGenerator().GenerateAlgorithmsTable(simulation.Policies()))
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
