package simulation

import "time"

func pid(id int) *int { return &id }

func run(id, start, end int) GanttSegment {
	return GanttSegment{ProcessID: pid(id), Start: start, End: end}
}

func idle(start, end int) GanttSegment {
	return GanttSegment{Start: start, End: end}
}

func proc(id, arrival, burst int) Process {
	return Process{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func procPrio(id, arrival, burst, priority int) Process {
	return Process{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: pid(priority)}
}

// everySchedule ticks at a fixed, arbitrarily small interval.
type everySchedule time.Duration

func (e everySchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(e))
}

// runLive drives a Live to completion synchronously and returns every
// snapshot it produced.
func runLive(l *Live) []Snapshot {
	var snaps []Snapshot
	for l.Tick() {
		snaps = append(snaps, l.Snapshot())
	}
	return snaps
}

// mixedWorkload exercises ties, preemption, priorities and an idle gap.
func mixedWorkload() []Process {
	return []Process{
		procPrio(1, 0, 7, 3),
		procPrio(2, 2, 4, 1),
		procPrio(3, 4, 1, 4),
		procPrio(4, 5, 4, 2),
		procPrio(6, 20, 2, 1),
		procPrio(5, 20, 3, 1),
		procPrio(7, 21, 1, 0),
	}
}

func allAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmFCFS,
		AlgorithmSJF,
		AlgorithmSRTF,
		AlgorithmPriority,
		AlgorithmPriorityPreemptive,
		AlgorithmLJF,
		AlgorithmLRTF,
		AlgorithmRoundRobin,
	}
}
