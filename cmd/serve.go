package cmd

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sherine-k/schedsim/pkg/server"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

var serveTick string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&settings.Addr, "addr", settings.Addr, "Listen address")
	serveCmd.Flags().StringVar(&serveTick, "tick", settings.TickSpec, "Tick schedule for live runs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	schedule, err := simulation.ParseTickSpec(serveTick)
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

	var stats server.Stats
	if env.store != nil {
		stats = env.store
	}
	srv := server.New(env.runner, stats, env.logger)
	if err := srv.ListenAndServe(ctx, settings.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
