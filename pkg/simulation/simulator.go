package simulation

import (
	"math"
	"sort"
)

// simulator holds the state of one run. Work items move only between its
// collections: unarrived (items[next:]) -> ready -> running -> completed or
// back to ready on preemption.
type simulator struct {
	plan  plan
	items []*workItem // every item, arrival order

	next    int // index of the first unarrived item
	ready   []*workItem
	running *workItem
	slice   int // time the running item has held the CPU since dispatch
	time    int

	timeline timeline
}

func newSimulator(pl plan, processes []Process) *simulator {
	return &simulator{
		plan:  pl,
		items: newWorkItems(processes),
	}
}

// done reports whether nothing is left to arrive, wait or run.
func (s *simulator) done() bool {
	return s.next == len(s.items) && len(s.ready) == 0 && s.running == nil
}

// admit returns the items that have arrived by now, in arrival order.
func (s *simulator) admit(now int) []*workItem {
	var arrived []*workItem
	for s.next < len(s.items) && s.items[s.next].ArrivalTime <= now {
		w := s.items[s.next]
		arrived = append(arrived, w)
		s.timeline.event(now, EventTypeArrival, w)
		s.next++
	}
	return arrived
}

// decide applies the scheduling rules at instant now: admission, quantum
// expiry or arrival preemption, then dispatch onto a free CPU. Arrival
// preemption weighs the running item against the whole ready set, not only
// the items that just arrived.
func (s *simulator) decide(now int) {
	arrived := s.admit(now)
	policy := &s.plan.policy

	if policy.Quantum {
		if s.running != nil && s.slice >= s.plan.quantum {
			expired := s.running
			s.running = nil
			s.timeline.event(now, EventTypeQuantumExpired, expired)
			if s.plan.order == PreemptedFirst {
				s.ready = append(s.ready, expired)
				s.ready = append(s.ready, arrived...)
			} else {
				s.ready = append(s.ready, arrived...)
				s.ready = append(s.ready, expired)
			}
		} else {
			s.ready = append(s.ready, arrived...)
		}
	} else {
		s.ready = append(s.ready, arrived...)
		if s.running != nil && len(arrived) > 0 && policy.preempts(s.best(s.ready), s.running) {
			s.timeline.event(now, EventTypePreempt, s.running)
			s.ready = append(s.ready, s.running)
			s.running = nil
		}
	}

	if s.running == nil && len(s.ready) > 0 {
		s.dispatch(now)
	}
}

// best returns the top candidate among items under the policy.
func (s *simulator) best(items []*workItem) *workItem {
	top := items[0]
	for _, w := range items[1:] {
		if s.plan.policy.less(w, top) {
			top = w
		}
	}
	return top
}

func (s *simulator) dispatch(now int) {
	idx := 0
	if !s.plan.policy.Quantum {
		for i := 1; i < len(s.ready); i++ {
			if s.plan.policy.less(s.ready[i], s.ready[idx]) {
				idx = i
			}
		}
	}

	w := s.ready[idx]
	s.ready = append(s.ready[:idx], s.ready[idx+1:]...)
	s.running = w
	s.slice = 0
	if w.firstDispatch == nil {
		at := now
		w.firstDispatch = &at
	}
	s.timeline.event(now, EventTypeDispatch, w)
}

// advance runs the CPU (or idles it) for d units starting at now.
func (s *simulator) advance(now, d int) {
	end := now + d
	s.timeline.record(s.running, now, end)
	s.time = end

	w := s.running
	if w == nil {
		return
	}
	w.remaining -= d
	s.slice += d
	if w.remaining == 0 {
		at := end
		w.completion = &at
		s.timeline.event(end, EventTypeComplete, w)
		s.running = nil
	}
}

// nextBoundary is the earliest instant after now at which a decision can
// change: the next arrival, the running item's completion, or its quantum
// expiry.
func (s *simulator) nextBoundary(now int) int {
	b := math.MaxInt
	if s.next < len(s.items) {
		b = s.items[s.next].ArrivalTime
	}
	if s.running != nil {
		b = min(b, now+s.running.remaining)
		if s.plan.policy.Quantum {
			b = min(b, now+s.plan.quantum-s.slice)
		}
	}
	return b
}

// readyViews returns the ready set in the order the policy would pick it.
func (s *simulator) readyViews() []WorkView {
	ordered := make([]*workItem, len(s.ready))
	copy(ordered, s.ready)
	if !s.plan.policy.Quantum {
		sort.SliceStable(ordered, func(i, j int) bool {
			return s.plan.policy.less(ordered[i], ordered[j])
		})
	}
	views := make([]WorkView, len(ordered))
	for i, w := range ordered {
		views[i] = w.view()
	}
	return views
}

func (s *simulator) result() SimulationResult {
	stats, avgWT, avgTAT, avgRT := summarize(s.items)
	return SimulationResult{
		Algorithm:      s.plan.policy.Algorithm,
		ProcessStats:   stats,
		Gantt:          s.timeline.gantt(),
		Events:         s.timeline.eventLog(),
		AvgWT:          avgWT,
		AvgTAT:         avgTAT,
		AvgRT:          avgRT,
		CompletionTime: s.time,
	}
}
