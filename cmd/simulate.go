package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sherine-k/schedsim/pkg/chart"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

var (
	simulateFlags    workloadFlags
	showTimeline     bool
	timelineLimit    int
	showEventSummary bool
	outputFormat     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a workload to completion",
	Long: `Run a workload to completion and print its Gantt chart and statistics.

Use --output json or --output yaml for machine-readable results.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateFlags.register(simulateCmd)
	simulateCmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show detailed timeline of events")
	simulateCmd.Flags().IntVarP(&timelineLimit, "timeline-limit", "l", 50, "Limit number of timeline events to display")
	simulateCmd.Flags().BoolVarP(&showEventSummary, "summary", "s", true, "Show event summary")
	simulateCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if outputFormat != "table" && outputFormat != "json" && outputFormat != "yaml" {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	w, err := simulateFlags.load(cmd)
	if err != nil {
		return err
	}

	env, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	result, err := env.runner.Simulate(cmd.Context(), w)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(result)
	}

	printWorkload(cmd, simulateFlags.configFile, w)
	printResult(cmd, result)

	chartGen := chart.NewGenerator()
	if showEventSummary {
		fmt.Fprintln(out, chartGen.GenerateEventSummary(result.Events))
	}
	if showTimeline {
		fmt.Fprintln(out, chartGen.GenerateDetailedTimeline(result.Events, timelineLimit))
	}
	return nil
}

func printResult(cmd *cobra.Command, result simulation.SimulationResult) {
	chartGen := chart.NewGenerator()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, chartGen.GenerateGanttChart(result.Gantt))
	fmt.Fprintln(out, chartGen.GenerateStatsTable(result))
}
