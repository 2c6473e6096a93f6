package simulation

import (
	"fmt"
	"strings"
)

// Algorithm is the canonical name of a scheduling discipline.
type Algorithm string

const (
	AlgorithmFCFS               Algorithm = "fcfs"
	AlgorithmSJF                Algorithm = "sjf"
	AlgorithmSRTF               Algorithm = "srtf"
	AlgorithmPriority           Algorithm = "priority"
	AlgorithmPriorityPreemptive Algorithm = "priority-preemptive"
	AlgorithmLJF                Algorithm = "ljf"
	AlgorithmLRTF               Algorithm = "lrtf"
	AlgorithmRoundRobin         Algorithm = "rr"
)

// RoundRobinOrder decides where a process whose quantum expired is placed
// relative to processes arriving at that same instant.
type RoundRobinOrder string

const (
	// ArrivalsFirst queues same-instant arrivals ahead of the preempted process.
	ArrivalsFirst RoundRobinOrder = "arrivals-first"
	// PreemptedFirst queues the preempted process ahead of same-instant arrivals.
	PreemptedFirst RoundRobinOrder = "preempted-first"
)

// Params carries policy parameters. Only Round Robin reads them.
type Params struct {
	TimeQuantum     int             `json:"time_quantum,omitempty" yaml:"timeQuantum,omitempty"`
	RoundRobinOrder RoundRobinOrder `json:"round_robin_order,omitempty" yaml:"roundRobinOrder,omitempty"`
}

// Policy is one row of the selection table: how candidates are ordered and
// when a running process must give up the CPU.
type Policy struct {
	Algorithm   Algorithm `json:"algorithm"`
	Aliases     []string  `json:"aliases"`
	Description string    `json:"description"`
	Preemptive  bool      `json:"preemptive"`
	Quantum     bool      `json:"quantum"`

	// metric is the primary sort key; nil means FIFO order (Round Robin).
	metric     func(*workItem) int
	descending bool
}

var policies = []Policy{
	{
		Algorithm:   AlgorithmFCFS,
		Aliases:     []string{"FCFS", "First Come First Serve"},
		Description: "First come, first served",
		metric:      func(w *workItem) int { return w.ArrivalTime },
	},
	{
		Algorithm:   AlgorithmSJF,
		Aliases:     []string{"SJF Non Preemptive", "SJF"},
		Description: "Shortest job first (non-preemptive)",
		metric:      func(w *workItem) int { return w.BurstTime },
	},
	{
		Algorithm:   AlgorithmSRTF,
		Aliases:     []string{"SJF Preemptive", "SJF Premitive"},
		Description: "Shortest remaining time first (preemptive SJF)",
		Preemptive:  true,
		metric:      func(w *workItem) int { return w.remaining },
	},
	{
		Algorithm:   AlgorithmPriority,
		Aliases:     []string{"Priority Non Preemptive"},
		Description: "Priority, lower value first (non-preemptive)",
		metric:      func(w *workItem) int { return w.priority() },
	},
	{
		Algorithm:   AlgorithmPriorityPreemptive,
		Aliases:     []string{"Priority Preemptive"},
		Description: "Priority, lower value first (preemptive)",
		Preemptive:  true,
		metric:      func(w *workItem) int { return w.priority() },
	},
	{
		Algorithm:   AlgorithmLJF,
		Aliases:     []string{"LJF Non Preemptive", "LJF"},
		Description: "Longest job first (non-preemptive)",
		metric:      func(w *workItem) int { return w.BurstTime },
		descending:  true,
	},
	{
		Algorithm:   AlgorithmLRTF,
		Aliases:     []string{"LJF Preemptive"},
		Description: "Longest remaining time first (preemptive LJF)",
		Preemptive:  true,
		metric:      func(w *workItem) int { return w.remaining },
		descending:  true,
	},
	{
		Algorithm:   AlgorithmRoundRobin,
		Aliases:     []string{"Round Robin", "RR"},
		Description: "Round robin with a fixed time quantum",
		Preemptive:  true,
		Quantum:     true,
	},
}

// Policies returns the supported policy table.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// Lookup resolves a canonical name or alias, ignoring case and surrounding
// space.
func Lookup(name string) (Policy, error) {
	key := strings.TrimSpace(name)
	for _, p := range policies {
		if strings.EqualFold(key, string(p.Algorithm)) {
			return p, nil
		}
		for _, alias := range p.Aliases {
			if strings.EqualFold(key, alias) {
				return p, nil
			}
		}
	}
	return Policy{}, &UnsupportedAlgorithmError{Name: name}
}

// less is the total order used to pick the next candidate: primary metric,
// then arrival time, then id.
func (p *Policy) less(a, b *workItem) bool {
	if p.metric != nil {
		ma, mb := p.metric(a), p.metric(b)
		if ma != mb {
			if p.descending {
				return ma > mb
			}
			return ma < mb
		}
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// preempts reports whether candidate must displace running. Only metric
// based preemptive policies preempt on arrival; Round Robin preempts on
// quantum expiry instead.
func (p *Policy) preempts(candidate, running *workItem) bool {
	if !p.Preemptive || p.metric == nil {
		return false
	}
	mc, mr := p.metric(candidate), p.metric(running)
	if p.descending {
		return mc > mr
	}
	return mc < mr
}

// plan is a resolved, validated run configuration.
type plan struct {
	policy  Policy
	quantum int
	order   RoundRobinOrder
}

// prepare resolves the policy and validates all input. No engine state
// exists until it succeeds.
func prepare(processes []Process, algorithm string, params Params) (plan, error) {
	policy, err := Lookup(algorithm)
	if err != nil {
		return plan{}, err
	}
	if err := Validate(processes); err != nil {
		return plan{}, err
	}

	pl := plan{policy: policy}
	if !policy.Quantum {
		return pl, nil
	}

	var problems []FieldError
	if params.TimeQuantum < 1 {
		problems = append(problems, FieldError{
			Field:   "time_quantum",
			Message: fmt.Sprintf("must be a positive integer, got %d", params.TimeQuantum),
		})
	}
	switch params.RoundRobinOrder {
	case "":
		pl.order = ArrivalsFirst
	case ArrivalsFirst, PreemptedFirst:
		pl.order = params.RoundRobinOrder
	default:
		problems = append(problems, FieldError{
			Field:   "round_robin_order",
			Message: fmt.Sprintf("must be %q or %q, got %q", ArrivalsFirst, PreemptedFirst, params.RoundRobinOrder),
		})
	}
	if len(problems) > 0 {
		return plan{}, &ValidationError{Problems: problems}
	}
	pl.quantum = params.TimeQuantum
	return pl, nil
}
