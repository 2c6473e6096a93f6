package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherine-k/schedsim/pkg/chart"
	"github.com/sherine-k/schedsim/pkg/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each algorithm ran, and runs per day",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if settings.DBPath == "" {
		return fmt.Errorf("run history is disabled: pass --db or set %s", config.EnvDBPath)
	}
	env, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	byAlgo, err := env.store.CountsByAlgorithm(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read run history: %w", err)
	}
	byDay, err := env.store.CountsByDay(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read run history: %w", err)
	}

	chartGen := chart.NewGenerator()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, chartGen.GenerateCountsTable("Runs by Algorithm", "Algorithm", byAlgo))
	fmt.Fprintln(out, chartGen.GenerateCountsTable("Runs by Day (UTC)", "Day", byDay))
	return nil
}
