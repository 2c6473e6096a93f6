package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sherine-k/schedsim/pkg/chart"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

var (
	liveFlags workloadFlags
	liveTick  string
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Run a workload one time unit per tick",
	Long: `Run a workload live, advancing one simulated time unit per tick and
printing the CPU and ready queue after each one. Ctrl-C stops the run.

The tick schedule is a cron expression or a descriptor such as "@every 2s".
Intervals under one second are rounded up to one second.`,
	Args: cobra.NoArgs,
	RunE: runLive,
}

func init() {
	liveFlags.register(liveCmd)
	liveCmd.Flags().StringVar(&liveTick, "tick", settings.TickSpec, "Tick schedule")
	rootCmd.AddCommand(liveCmd)
}

func runLive(cmd *cobra.Command, args []string) error {
	w, err := liveFlags.load(cmd)
	if err != nil {
		return err
	}
	schedule, err := simulation.ParseTickSpec(liveTick)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := setup(ctx, simulation.WithSchedule(schedule))
	if err != nil {
		return err
	}
	defer env.Close()

	printWorkload(cmd, liveFlags.configFile, w)
	out := cmd.OutOrStdout()

	handle, err := env.runner.StartLive(ctx, w,
		func(snap simulation.Snapshot) {
			fmt.Fprintln(out, chart.FormatSnapshot(snap))
		},
		func(result simulation.SimulationResult) {
			fmt.Fprintln(out)
			printResult(cmd, result)
		},
	)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if err := handle.Wait(); errors.Is(err, simulation.ErrCancelled) {
		fmt.Fprintln(out, "\nlive run cancelled")
	}
	return nil
}
