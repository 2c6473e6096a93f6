package simulation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCancelled is reported by a LiveHandle whose run was stopped before it
// finished. It is not a failure.
var ErrCancelled = errors.New("live run cancelled")

// FieldError describes a problem with a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed input before any simulation
// state is created.
type ValidationError struct {
	Problems []FieldError `json:"problems"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Field + ": " + p.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// UnsupportedAlgorithmError is returned for an unknown policy name.
type UnsupportedAlgorithmError struct {
	Name string `json:"name"`
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q", e.Name)
}
