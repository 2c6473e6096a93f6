package config

import (
	"os"

	"github.com/sherine-k/schedsim/pkg/simulation"
)

// Workload is a process set plus the policy to run it under, as read from a
// workload file or an API request body.
type Workload struct {
	Algorithm       string                     `json:"algorithm" yaml:"algorithm"`
	TimeQuantum     int                        `json:"time_quantum,omitempty" yaml:"timeQuantum,omitempty"`
	RoundRobinOrder simulation.RoundRobinOrder `json:"round_robin_order,omitempty" yaml:"roundRobinOrder,omitempty"`
	Processes       []simulation.Process       `json:"processes" yaml:"processes"`
}

// Params returns the policy parameters carried by the workload.
func (w *Workload) Params() simulation.Params {
	return simulation.Params{
		TimeQuantum:     w.TimeQuantum,
		RoundRobinOrder: w.RoundRobinOrder,
	}
}

// EnvDBPath overrides Settings.DBPath when set.
const EnvDBPath = "SCHEDSIM_DB"

// Settings are the runtime options shared by every command.
type Settings struct {
	LogLevel  string
	LogFormat string
	// DBPath is the run history database. Empty disables history.
	DBPath   string
	Addr     string
	TickSpec string
}

// DefaultSettings returns the built-in defaults with environment overrides
// applied.
func DefaultSettings() Settings {
	s := Settings{
		LogLevel:  "info",
		LogFormat: "text",
		DBPath:    "schedsim.db",
		Addr:      ":8080",
		TickSpec:  "@every 1s",
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok {
		s.DBPath = v
	}
	return s
}
