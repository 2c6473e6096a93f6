package simulation

import "sort"

// timeline aggregates Gantt segments and the event log for one run. Both
// engines feed it the same way, so their output is identical.
type timeline struct {
	segments []GanttSegment
	events   []Event
}

// record attributes [start, end) to w, or to idle when w is nil. An interval
// contiguous with the previous segment of the same owner extends it.
func (t *timeline) record(w *workItem, start, end int) {
	if end <= start {
		return
	}
	var id *int
	if w != nil {
		v := w.ID
		id = &v
	}

	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.End == start && sameOwner(last.ProcessID, id) {
			last.End = end
			return
		}
	}

	if id == nil {
		t.event(start, EventTypeIdle, nil)
	}
	t.segments = append(t.segments, GanttSegment{ProcessID: id, Start: start, End: end})
}

func (t *timeline) event(at int, typ EventType, w *workItem) {
	e := Event{Time: at, Type: typ}
	if w != nil {
		id := w.ID
		e.ProcessID = &id
		e.Remaining = w.remaining
	}
	t.events = append(t.events, e)
}

// gantt returns an independent copy of the segments.
func (t *timeline) gantt() []GanttSegment {
	out := make([]GanttSegment, len(t.segments))
	for i, s := range t.segments {
		s.ProcessID = copyInt(s.ProcessID)
		out[i] = s
	}
	return out
}

func (t *timeline) eventLog() []Event {
	out := make([]Event, len(t.events))
	for i, e := range t.events {
		e.ProcessID = copyInt(e.ProcessID)
		out[i] = e
	}
	return out
}

func sameOwner(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// summarize computes per-process metrics for completed items, in the
// caller's input order, and their averages. Averages are 0 when nothing
// completed.
func summarize(items []*workItem) (stats []ProcessStat, avgWT, avgTAT, avgRT float64) {
	ordered := make([]*workItem, len(items))
	copy(ordered, items)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].index < ordered[j].index })

	stats = make([]ProcessStat, 0, len(items))
	var sumWT, sumTAT, sumRT int
	for _, w := range ordered {
		if w.completion == nil {
			continue
		}
		tat := *w.completion - w.ArrivalTime
		wt := tat - w.BurstTime
		rt := *w.firstDispatch - w.ArrivalTime

		stats = append(stats, ProcessStat{
			ID:             w.ID,
			ArrivalTime:    w.ArrivalTime,
			BurstTime:      w.BurstTime,
			Priority:       copyInt(w.Priority),
			CompletionTime: *w.completion,
			TurnaroundTime: tat,
			WaitingTime:    wt,
			ResponseTime:   rt,
		})
		sumWT += wt
		sumTAT += tat
		sumRT += rt
	}

	if n := float64(len(stats)); n > 0 {
		avgWT = float64(sumWT) / n
		avgTAT = float64(sumTAT) / n
		avgRT = float64(sumRT) / n
	}
	return stats, avgWT, avgTAT, avgRT
}
