package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sherine-k/schedsim/pkg/history"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

const (
	chartWidth = 80
	idleSymbol = '.'
)

// symbols label processes in the scaled chart, in order of first appearance.
const symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator generates ASCII charts and tables
type Generator struct {
	width int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{width: chartWidth}
}

func (g *Generator) header(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")
}

func label(id *int) string {
	if id == nil {
		return "idle"
	}
	return "P" + strconv.Itoa(*id)
}

// GenerateGanttChart draws the timeline twice: as a strip of labelled
// segments with their boundaries, and as a bar scaled to the chart width.
func (g *Generator) GenerateGanttChart(gantt []simulation.GanttSegment) string {
	if len(gantt) == 0 {
		return "No data to display\n"
	}

	var sb strings.Builder
	g.header(&sb, "Gantt Chart")

	// Segment strip
	var bar, axis strings.Builder
	bar.WriteString("|")
	axis.WriteString(strconv.Itoa(gantt[0].Start))
	for _, seg := range gantt {
		name := label(seg.ProcessID)
		if seg.Open {
			name += ">"
		}
		cell := len(name) + 2
		left := (cell - len(name)) / 2
		bar.WriteString(strings.Repeat(" ", left))
		bar.WriteString(name)
		bar.WriteString(strings.Repeat(" ", cell-left-len(name)))
		bar.WriteString("|")

		end := strconv.Itoa(seg.End)
		pad := max(bar.Len()-1-axis.Len(), 1)
		axis.WriteString(strings.Repeat(" ", pad))
		axis.WriteString(end)
	}
	sb.WriteString(bar.String())
	sb.WriteString("\n")
	sb.WriteString(axis.String())
	sb.WriteString("\n\n")

	// Scaled bar
	last := gantt[len(gantt)-1].End
	cols := g.width - 6
	used := cols
	if last <= cols {
		used = last * (cols / last)
	}

	legend := map[int]byte{}
	var order []int
	symbolFor := func(id *int) byte {
		if id == nil {
			return idleSymbol
		}
		if s, ok := legend[*id]; ok {
			return s
		}
		s := byte('?')
		if len(order) < len(symbols) {
			s = symbols[len(order)]
		}
		legend[*id] = s
		order = append(order, *id)
		return s
	}

	sb.WriteString("    |")
	seg := 0
	for x := 0; x < used; x++ {
		t := x * last / used
		for gantt[seg].End <= t {
			seg++
		}
		sb.WriteByte(symbolFor(gantt[seg].ProcessID))
	}
	sb.WriteString("|\n")
	sb.WriteString("    0")
	endLabel := strconv.Itoa(last)
	sb.WriteString(strings.Repeat(" ", max(used+1-len(endLabel), 1)))
	sb.WriteString(endLabel)
	sb.WriteString("\n\n")

	sb.WriteString("Legend:\n")
	for _, id := range order {
		sb.WriteString(fmt.Sprintf("  %c - P%d\n", legend[id], id))
	}
	sb.WriteString(fmt.Sprintf("  %c - idle\n", idleSymbol))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateStatsTable renders per-process metrics with the averages in the
// footer.
func (g *Generator) GenerateStatsTable(result simulation.SimulationResult) string {
	var sb strings.Builder
	g.header(&sb, fmt.Sprintf("Process Statistics (%s)", result.Algorithm))

	rows := make([][]string, len(result.ProcessStats))
	for i, s := range result.ProcessStats {
		prio := "-"
		if s.Priority != nil {
			prio = strconv.Itoa(*s.Priority)
		}
		rows[i] = []string{
			strconv.Itoa(s.ID),
			prio,
			strconv.Itoa(s.ArrivalTime),
			strconv.Itoa(s.BurstTime),
			strconv.Itoa(s.CompletionTime),
			strconv.Itoa(s.TurnaroundTime),
			strconv.Itoa(s.WaitingTime),
			strconv.Itoa(s.ResponseTime),
		}
	}

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"ID", "Priority", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("End %d", result.CompletionTime),
		fmt.Sprintf("Avg %.2f", result.AvgTAT),
		fmt.Sprintf("Avg %.2f", result.AvgWT),
		fmt.Sprintf("Avg %.2f", result.AvgRT)})
	table.Render()

	sb.WriteString("\n")
	return sb.String()
}

// GenerateEventSummary counts events by type
func (g *Generator) GenerateEventSummary(events []simulation.Event) string {
	var sb strings.Builder
	g.header(&sb, "Event Summary")

	byType := make(map[simulation.EventType]int)
	for _, e := range events {
		byType[e.Type]++
	}

	sb.WriteString(fmt.Sprintf("Total Events: %d\n", len(events)))
	sb.WriteString(fmt.Sprintf("  - Arrivals: %d\n", byType[simulation.EventTypeArrival]))
	sb.WriteString(fmt.Sprintf("  - Dispatches: %d\n", byType[simulation.EventTypeDispatch]))
	sb.WriteString(fmt.Sprintf("  - Preemptions: %d\n", byType[simulation.EventTypePreempt]))
	sb.WriteString(fmt.Sprintf("  - Quantum Expiries: %d\n", byType[simulation.EventTypeQuantumExpired]))
	sb.WriteString(fmt.Sprintf("  - Completions: %d\n", byType[simulation.EventTypeComplete]))
	sb.WriteString(fmt.Sprintf("  - Idle Periods: %d\n", byType[simulation.EventTypeIdle]))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateDetailedTimeline lists events in order. A positive limit caps the
// number shown.
func (g *Generator) GenerateDetailedTimeline(events []simulation.Event, limit int) string {
	var sb strings.Builder

	title := "Detailed Timeline"
	if limit > 0 && limit < len(events) {
		title += fmt.Sprintf(" (showing first %d events)", limit)
	}
	g.header(&sb, title)

	displayCount := len(events)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for _, e := range events[:displayCount] {
		typeIcon := " "
		switch e.Type {
		case simulation.EventTypeArrival:
			typeIcon = "+"
		case simulation.EventTypeDispatch:
			typeIcon = ">"
		case simulation.EventTypePreempt:
			typeIcon = "!"
		case simulation.EventTypeQuantumExpired:
			typeIcon = "Q"
		case simulation.EventTypeComplete:
			typeIcon = "-"
		case simulation.EventTypeIdle:
			typeIcon = "."
		}

		if e.ProcessID == nil {
			sb.WriteString(fmt.Sprintf("[t=%4d] %s %s\n", e.Time, typeIcon, e.Type))
			continue
		}
		sb.WriteString(fmt.Sprintf("[t=%4d] %s %-15s %-5s remaining=%d\n",
			e.Time, typeIcon, e.Type, label(e.ProcessID), e.Remaining))
	}

	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf("\n... and %d more events\n", len(events)-limit))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatSnapshot renders a live snapshot on one line
func FormatSnapshot(s simulation.Snapshot) string {
	cpu := "idle"
	if s.CPU != nil {
		cpu = fmt.Sprintf("P%d(%d)", s.CPU.ID, s.CPU.Remaining)
	}

	ready := make([]string, len(s.ReadyQueue))
	for i, v := range s.ReadyQueue {
		ready[i] = fmt.Sprintf("P%d(%d)", v.ID, v.Remaining)
	}
	return fmt.Sprintf("t=%-4d cpu=%-10s ready=[%s]", s.Time, cpu, strings.Join(ready, " "))
}

// GenerateCountsTable renders run counts under a title
func (g *Generator) GenerateCountsTable(title, keyHeader string, counts []history.Count) string {
	var sb strings.Builder
	g.header(&sb, title)

	if len(counts) == 0 {
		sb.WriteString("No runs recorded\n\n")
		return sb.String()
	}

	total := 0
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{keyHeader, "Runs"})
	for _, c := range counts {
		table.Append([]string{c.Key, strconv.Itoa(c.Runs)})
		total += c.Runs
	}
	table.SetFooter([]string{"Total", strconv.Itoa(total)})
	table.Render()

	sb.WriteString("\n")
	return sb.String()
}

// GenerateAlgorithmsTable lists the supported policies
func (g *Generator) GenerateAlgorithmsTable(policies []simulation.Policy) string {
	var sb strings.Builder
	g.header(&sb, "Supported Algorithms")

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Name", "Aliases", "Preemptive", "Description"})
	table.SetAutoWrapText(false)
	for _, p := range policies {
		preemptive := "no"
		if p.Preemptive {
			preemptive = "yes"
		}
		table.Append([]string{string(p.Algorithm), strings.Join(p.Aliases, ", "), preemptive, p.Description})
	}
	table.Render()

	sb.WriteString("\n")
	return sb.String()
}
