package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

// workloadFlags are the flags shared by commands that run a workload file.
type workloadFlags struct {
	configFile      string
	algorithm       string
	timeQuantum     int
	roundRobinOrder string
}

func (f *workloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "workload.yaml", "Path to workload file")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "Scheduling algorithm, overrides the workload file")
	cmd.Flags().IntVarP(&f.timeQuantum, "quantum", "q", 0, "Round Robin time quantum, overrides the workload file")
	cmd.Flags().StringVar(&f.roundRobinOrder, "rr-order", "",
		fmt.Sprintf("Round Robin requeue order (%s, %s)", simulation.ArrivalsFirst, simulation.PreemptedFirst))
}

// load reads the workload file and applies explicitly set flags on top.
func (f *workloadFlags) load(cmd *cobra.Command) (*config.Workload, error) {
	w, err := config.LoadConfig(f.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load workload: %w", err)
	}

	if cmd.Flags().Changed("algorithm") {
		w.Algorithm = f.algorithm
	}
	if cmd.Flags().Changed("quantum") {
		w.TimeQuantum = f.timeQuantum
	}
	if cmd.Flags().Changed("rr-order") {
		w.RoundRobinOrder = simulation.RoundRobinOrder(f.roundRobinOrder)
	}
	if w.Algorithm == "" {
		return nil, fmt.Errorf("no algorithm given: set algorithm in %s or pass --algorithm", f.configFile)
	}
	return w, nil
}

func printWorkload(cmd *cobra.Command, path string, w *config.Workload) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded workload from %s\n", path)
	fmt.Fprintf(out, "  - Algorithm: %s\n", w.Algorithm)
	if w.TimeQuantum > 0 {
		fmt.Fprintf(out, "  - Time Quantum: %d\n", w.TimeQuantum)
	}
	fmt.Fprintf(out, "  - Processes: %d\n\n", len(w.Processes))
}
