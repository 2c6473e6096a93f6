package simulation

// EventType defines the type of event in the simulation
type EventType string

const (
	EventTypeArrival        EventType = "arrival"
	EventTypeDispatch       EventType = "dispatch"
	EventTypePreempt        EventType = "preempt"
	EventTypeQuantumExpired EventType = "quantum-expired"
	EventTypeComplete       EventType = "complete"
	EventTypeIdle           EventType = "idle"
)

// Event represents a point-in-time scheduling decision
type Event struct {
	Time      int       `json:"time" yaml:"time"`
	Type      EventType `json:"type" yaml:"type"`
	ProcessID *int      `json:"process_id,omitempty" yaml:"processId,omitempty"`
	Remaining int       `json:"remaining" yaml:"remaining"`
}

// GanttSegment is a maximal interval attributed to one process, or to idle
// when ProcessID is nil.
type GanttSegment struct {
	ProcessID *int `json:"process_id" yaml:"processId"`
	Start     int  `json:"start_time" yaml:"startTime"`
	End       int  `json:"end_time" yaml:"endTime"`
	// Open marks the segment still executing in a live snapshot; End is the
	// progress reached so far.
	Open bool `json:"open,omitempty" yaml:"open,omitempty"`
}

// IsIdle reports whether the segment is an idle period.
func (g GanttSegment) IsIdle() bool {
	return g.ProcessID == nil
}

// ProcessStat holds the timing metrics of one completed process.
type ProcessStat struct {
	ID             int  `json:"id" yaml:"id"`
	ArrivalTime    int  `json:"arrival_time" yaml:"arrivalTime"`
	BurstTime      int  `json:"burst_time" yaml:"burstTime"`
	Priority       *int `json:"priority,omitempty" yaml:"priority,omitempty"`
	CompletionTime int  `json:"completion_time" yaml:"completionTime"`
	TurnaroundTime int  `json:"turnaround_time" yaml:"turnaroundTime"`
	WaitingTime    int  `json:"waiting_time" yaml:"waitingTime"`
	ResponseTime   int  `json:"response_time" yaml:"responseTime"`
}

// SimulationResult is the outcome of one run. It shares no memory with the
// input or the engine.
type SimulationResult struct {
	Algorithm      Algorithm      `json:"algorithm" yaml:"algorithm"`
	ProcessStats   []ProcessStat  `json:"process_stats" yaml:"processStats"`
	Gantt          []GanttSegment `json:"gantt" yaml:"gantt"`
	Events         []Event        `json:"events" yaml:"events"`
	AvgWT          float64        `json:"avg_wt" yaml:"avgWT"`
	AvgTAT         float64        `json:"avg_tat" yaml:"avgTAT"`
	AvgRT          float64        `json:"avg_rt" yaml:"avgRT"`
	CompletionTime int            `json:"completion_time" yaml:"completionTime"`
}

// Snapshot is the observable state after one live tick.
type Snapshot struct {
	Time       int            `json:"time"`
	ReadyQueue []WorkView     `json:"ready_queue"`
	CPU        *WorkView      `json:"cpu"`
	Gantt      []GanttSegment `json:"gantt"`
}
