package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherine-k/schedsim/pkg/history"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

func pid(id int) *int { return &id }

func TestGenerateGanttChart(t *testing.T) {
	g := NewGenerator()
	out := g.GenerateGanttChart([]simulation.GanttSegment{
		{Start: 0, End: 2},
		{ProcessID: pid(0), Start: 2, End: 3},
		{ProcessID: pid(1), Start: 3, End: 5},
	})

	assert.Contains(t, out, "| idle | P0 | P1 |")
	assert.Contains(t, out, "0      2    3    5")
	assert.Contains(t, out, "A - P0")
	assert.Contains(t, out, "B - P1")
	assert.Contains(t, out, ". - idle")

	var bar string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "    |") {
			bar = strings.Trim(line, " |")
		}
	}
	require.NotEmpty(t, bar)
	// 5 units scale to 14 columns each
	assert.Equal(t, strings.Repeat(".", 28)+strings.Repeat("A", 14)+strings.Repeat("B", 28), bar)
}

func TestGenerateGanttChart_LongTimelineIsScaledDown(t *testing.T) {
	g := NewGenerator()
	out := g.GenerateGanttChart([]simulation.GanttSegment{
		{ProcessID: pid(3), Start: 0, End: 500},
		{ProcessID: pid(4), Start: 500, End: 1000},
	})

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), chartWidth)
	}
	assert.Contains(t, out, strings.Repeat("A", 37)+strings.Repeat("B", 37))
}

func TestGenerateGanttChart_OpenSegment(t *testing.T) {
	out := NewGenerator().GenerateGanttChart([]simulation.GanttSegment{
		{ProcessID: pid(2), Start: 0, End: 1, Open: true},
	})
	assert.Contains(t, out, "| P2> |")
}

func TestGenerateGanttChart_Empty(t *testing.T) {
	assert.Equal(t, "No data to display\n", NewGenerator().GenerateGanttChart(nil))
}

func TestGenerateStatsTable(t *testing.T) {
	result := simulation.SimulationResult{
		Algorithm: simulation.AlgorithmRoundRobin,
		ProcessStats: []simulation.ProcessStat{
			{ID: 0, ArrivalTime: 0, BurstTime: 5, CompletionTime: 8, TurnaroundTime: 8, WaitingTime: 3},
			{ID: 1, ArrivalTime: 1, BurstTime: 3, Priority: pid(2), CompletionTime: 7, TurnaroundTime: 6, WaitingTime: 3, ResponseTime: 1},
		},
		AvgWT:          3,
		AvgTAT:         7,
		AvgRT:          0.5,
		CompletionTime: 8,
	}

	out := NewGenerator().GenerateStatsTable(result)
	assert.Contains(t, out, "Process Statistics (rr)")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "7.00")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "0.50")
	assert.Regexp(t, `\|\s+1\s+\|\s+2\s+\|\s+1\s+\|\s+3\s+\|\s+7\s+\|\s+6\s+\|\s+3\s+\|\s+1\s+\|`, out)
}

func TestGenerateDetailedTimeline(t *testing.T) {
	events := []simulation.Event{
		{Time: 0, Type: simulation.EventTypeIdle},
		{Time: 2, Type: simulation.EventTypeArrival, ProcessID: pid(0), Remaining: 1},
		{Time: 2, Type: simulation.EventTypeDispatch, ProcessID: pid(0), Remaining: 1},
		{Time: 3, Type: simulation.EventTypeComplete, ProcessID: pid(0)},
	}
	g := NewGenerator()

	all := g.GenerateDetailedTimeline(events, 0)
	assert.Contains(t, all, "[t=   0] . idle")
	assert.Contains(t, all, "[t=   3] - complete")
	assert.NotContains(t, all, "more events")

	some := g.GenerateDetailedTimeline(events, 2)
	assert.Contains(t, some, "showing first 2 events")
	assert.Contains(t, some, "... and 2 more events")
	assert.NotContains(t, some, "dispatch")
}

func TestGenerateEventSummary(t *testing.T) {
	out := NewGenerator().GenerateEventSummary([]simulation.Event{
		{Type: simulation.EventTypeArrival},
		{Type: simulation.EventTypePreempt},
		{Type: simulation.EventTypePreempt},
	})
	assert.Contains(t, out, "Total Events: 3")
	assert.Contains(t, out, "Preemptions: 2")
	assert.Contains(t, out, "Quantum Expiries: 0")
}

func TestFormatSnapshot(t *testing.T) {
	s := simulation.Snapshot{
		Time:       2,
		CPU:        &simulation.WorkView{ID: 1, Remaining: 1},
		ReadyQueue: []simulation.WorkView{{ID: 0, Remaining: 3}, {ID: 4, Remaining: 2}},
	}
	assert.Equal(t, "t=2    cpu=P1(1)      ready=[P0(3) P4(2)]", FormatSnapshot(s))
	assert.Equal(t, "t=0    cpu=idle       ready=[]", FormatSnapshot(simulation.Snapshot{}))
}

func TestGenerateCountsTable(t *testing.T) {
	g := NewGenerator()
	out := g.GenerateCountsTable("Runs by Algorithm", "Algorithm", []history.Count{
		{Key: "rr", Runs: 3},
		{Key: "fcfs", Runs: 1},
	})
	assert.Contains(t, out, "Runs by Algorithm")
	assert.Regexp(t, `\|\s+rr\s+\|\s+3\s+\|`, out)
	assert.Regexp(t, `TOTAL\s+\|\s+4`, out)

	assert.Contains(t, g.GenerateCountsTable("Runs by Day", "Day", nil), "No runs recorded")
}

func TestGenerateAlgorithmsTable(t *testing.T) {
	out := NewGenerator().GenerateAlgorithmsTable(simulation.Policies())
	assert.Regexp(t, `\|\s+rr\s+\|\s+Round Robin, RR\s+\|\s+yes\s+\|`, out)
	assert.Regexp(t, `\|\s+fcfs\s+\|`, out)
	assert.Contains(t, out, "SJF Premitive")
}
