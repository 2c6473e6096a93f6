package simulation

// Simulate runs the named discipline over processes to completion and
// returns the full result. Simulated time jumps from one decision instant
// to the next; idle gaps become a single idle segment.
//
// It returns *UnsupportedAlgorithmError for an unknown name and
// *ValidationError for malformed input, in both cases before doing any work.
func Simulate(processes []Process, algorithm string, params Params) (SimulationResult, error) {
	pl, err := prepare(processes, algorithm, params)
	if err != nil {
		return SimulationResult{}, err
	}

	s := newSimulator(pl, processes)
	for !s.done() {
		s.decide(s.time)
		s.advance(s.time, s.nextBoundary(s.time)-s.time)
	}
	return s.result(), nil
}
