package simulation

// Live is a steppable simulation that advances one time unit per Tick. It
// has no clock of its own; StartLive drives it periodically, tests drive it
// directly.
type Live struct {
	sim      *simulator
	tickTime int
}

// NewLive validates the input and prepares a live run. Errors are the same
// as Simulate's.
func NewLive(processes []Process, algorithm string, params Params) (*Live, error) {
	pl, err := prepare(processes, algorithm, params)
	if err != nil {
		return nil, err
	}
	return &Live{sim: newSimulator(pl, processes)}, nil
}

// Tick applies one unit of simulated time. It returns false, changing
// nothing, once the run is done.
func (l *Live) Tick() bool {
	s := l.sim
	if s.done() {
		return false
	}
	now := s.time
	s.decide(now)
	s.advance(now, 1)
	l.tickTime = now
	return true
}

// Done reports whether every process has completed.
func (l *Live) Done() bool {
	return l.sim.done()
}

// Time is the simulated time the next Tick starts at.
func (l *Live) Time() int {
	return l.sim.time
}

// Snapshot returns the state after the most recent tick.
func (l *Live) Snapshot() Snapshot {
	s := l.sim
	snap := Snapshot{
		Time:       l.tickTime,
		ReadyQueue: s.readyViews(),
		Gantt:      s.timeline.gantt(),
	}
	if s.running != nil {
		v := s.running.view()
		snap.CPU = &v
	}

	if n := len(snap.Gantt); n > 0 && !s.done() {
		last := &snap.Gantt[n-1]
		switch {
		case s.running != nil:
			last.Open = !last.IsIdle() && *last.ProcessID == s.running.ID
		default:
			last.Open = last.IsIdle()
		}
	}
	return snap
}

// Result returns the statistics and timeline accumulated so far. Once Done
// it equals what Simulate returns for the same input.
func (l *Live) Result() SimulationResult {
	return l.sim.result()
}
