package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sherine-k/schedsim/pkg/simulation"
)

// LoadConfig loads and parses a workload file. JSON files are accepted too.
func LoadConfig(filename string) (*Workload, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload file: %w", err)
	}

	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return w, nil
}

// Parse decodes and validates a workload document.
func Parse(data []byte) (*Workload, error) {
	var w Workload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse workload: %w", err)
	}

	if err := validateWorkload(&w); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	return &w, nil
}

// validateWorkload checks what can be checked before flags are applied.
// The algorithm may be left empty in the file and supplied on the command
// line; quantum checks happen when the run is prepared.
func validateWorkload(w *Workload) error {
	if w.Algorithm != "" {
		if _, err := simulation.Lookup(w.Algorithm); err != nil {
			return err
		}
	}
	if w.TimeQuantum < 0 {
		return fmt.Errorf("timeQuantum must not be negative")
	}
	return simulation.Validate(w.Processes)
}
