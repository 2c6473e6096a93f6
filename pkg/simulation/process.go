package simulation

import (
	"fmt"
	"sort"
)

// Process is a caller-owned input record. The engines never modify it.
type Process struct {
	ID          int  `json:"id" yaml:"id"`
	ArrivalTime int  `json:"arrival_time" yaml:"arrivalTime"`
	BurstTime   int  `json:"burst_time" yaml:"burstTime"`
	Priority    *int `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// priority returns the process priority, treating an unset value as 0.
func (p Process) priority() int {
	if p.Priority == nil {
		return 0
	}
	return *p.Priority
}

// workItem is the per-run working copy of a Process.
type workItem struct {
	Process
	index     int // position in the caller's slice
	remaining int

	firstDispatch *int
	completion    *int
}

func (w *workItem) view() WorkView {
	return WorkView{
		ID:          w.ID,
		ArrivalTime: w.ArrivalTime,
		BurstTime:   w.BurstTime,
		Priority:    copyInt(w.Priority),
		Remaining:   w.remaining,
	}
}

// WorkView is an immutable snapshot of a work item, used in live snapshots.
type WorkView struct {
	ID          int  `json:"id"`
	ArrivalTime int  `json:"arrival_time"`
	BurstTime   int  `json:"burst_time"`
	Priority    *int `json:"priority,omitempty"`
	Remaining   int  `json:"remaining"`
}

// newWorkItems copies processes into work items ordered by arrival time,
// then id.
func newWorkItems(processes []Process) []*workItem {
	items := make([]*workItem, len(processes))
	for i, p := range processes {
		p.Priority = copyInt(p.Priority)
		items[i] = &workItem{Process: p, index: i, remaining: p.BurstTime}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ArrivalTime != items[j].ArrivalTime {
			return items[i].ArrivalTime < items[j].ArrivalTime
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// Validate checks a process list. It returns a *ValidationError listing
// every problem found, or nil. An empty list is valid.
func Validate(processes []Process) error {
	var problems []FieldError
	seen := make(map[int]int, len(processes))

	for i, p := range processes {
		field := fmt.Sprintf("processes[%d]", i)
		if p.ArrivalTime < 0 {
			problems = append(problems, FieldError{
				Field:   field + ".arrival_time",
				Message: fmt.Sprintf("must not be negative, got %d", p.ArrivalTime),
			})
		}
		if p.BurstTime <= 0 {
			problems = append(problems, FieldError{
				Field:   field + ".burst_time",
				Message: fmt.Sprintf("must be greater than 0, got %d", p.BurstTime),
			})
		}
		if prev, ok := seen[p.ID]; ok {
			problems = append(problems, FieldError{
				Field:   field + ".id",
				Message: fmt.Sprintf("duplicate id %d (also used by processes[%d])", p.ID, prev),
			})
		} else {
			seen[p.ID] = i
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
