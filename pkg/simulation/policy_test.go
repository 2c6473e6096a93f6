package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
	}{
		{"fcfs", AlgorithmFCFS},
		{"FCFS", AlgorithmFCFS},
		{"SJF Non Preemptive", AlgorithmSJF},
		{"SJF Premitive", AlgorithmSRTF},
		{"sjf preemptive", AlgorithmSRTF},
		{"Priority Non Preemptive", AlgorithmPriority},
		{"Priority Preemptive", AlgorithmPriorityPreemptive},
		{"LJF Non Preemptive", AlgorithmLJF},
		{"LJF Preemptive", AlgorithmLRTF},
		{" Round Robin ", AlgorithmRoundRobin},
		{"rr", AlgorithmRoundRobin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Algorithm)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("multilevel feedback")

	var unsupported *UnsupportedAlgorithmError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "multilevel feedback", unsupported.Name)
	assert.Equal(t, `unsupported algorithm "multilevel feedback"`, err.Error())
}

func TestPolicies_Table(t *testing.T) {
	byName := map[Algorithm]Policy{}
	for _, p := range Policies() {
		byName[p.Algorithm] = p
	}
	require.Len(t, byName, 8)

	for _, a := range []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmLJF} {
		assert.False(t, byName[a].Preemptive, a)
	}
	for _, a := range []Algorithm{AlgorithmSRTF, AlgorithmPriorityPreemptive, AlgorithmLRTF, AlgorithmRoundRobin} {
		assert.True(t, byName[a].Preemptive, a)
	}
	assert.True(t, byName[AlgorithmRoundRobin].Quantum)
}

func TestPolicy_LessBreaksTiesByArrivalThenID(t *testing.T) {
	p, err := Lookup("sjf")
	require.NoError(t, err)

	a := &workItem{Process: proc(2, 1, 3), remaining: 3}
	b := &workItem{Process: proc(1, 1, 3), remaining: 3}
	c := &workItem{Process: proc(0, 2, 3), remaining: 3}
	d := &workItem{Process: proc(9, 9, 1), remaining: 1}

	assert.True(t, p.less(b, a), "equal burst and arrival: lower id first")
	assert.True(t, p.less(a, c), "equal burst: earlier arrival first")
	assert.True(t, p.less(d, b), "shorter burst wins regardless of arrival")
	assert.False(t, p.less(a, a))
}

func TestPolicy_DescendingMetric(t *testing.T) {
	p, err := Lookup("ljf")
	require.NoError(t, err)

	long := &workItem{Process: proc(1, 5, 8), remaining: 8}
	short := &workItem{Process: proc(0, 0, 2), remaining: 2}
	assert.True(t, p.less(long, short))
}

func TestPolicy_Preempts(t *testing.T) {
	running := &workItem{Process: procPrio(0, 0, 5, 2), remaining: 3}
	equal := &workItem{Process: procPrio(1, 2, 3, 2), remaining: 3}
	better := &workItem{Process: procPrio(2, 2, 2, 1), remaining: 2}
	longer := &workItem{Process: procPrio(3, 2, 6, 5), remaining: 6}

	tests := []struct {
		algorithm string
		candidate *workItem
		want      bool
	}{
		{"srtf", better, true},
		{"srtf", equal, false},
		{"srtf", longer, false},
		{"priority-preemptive", better, true},
		{"priority-preemptive", equal, false},
		{"lrtf", longer, true},
		{"lrtf", equal, false},
		{"sjf", better, false},
		{"priority", better, false},
		{"fcfs", better, false},
		{"rr", better, false},
	}
	for _, tt := range tests {
		p, err := Lookup(tt.algorithm)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.preempts(tt.candidate, running), "%s candidate %d", tt.algorithm, tt.candidate.ID)
	}
}

func TestPrepare_RoundRobinParams(t *testing.T) {
	_, err := prepare(nil, "rr", Params{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "time_quantum", verr.Problems[0].Field)

	_, err = prepare(nil, "rr", Params{TimeQuantum: 2, RoundRobinOrder: "sideways"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "round_robin_order", verr.Problems[0].Field)

	pl, err := prepare(nil, "rr", Params{TimeQuantum: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, pl.quantum)
	assert.Equal(t, ArrivalsFirst, pl.order)
}

func TestPrepare_QuantumIgnoredOutsideRoundRobin(t *testing.T) {
	_, err := prepare(nil, "fcfs", Params{TimeQuantum: -4, RoundRobinOrder: "sideways"})
	assert.NoError(t, err)
}

func TestPrepare_UnknownAlgorithmBeforeValidation(t *testing.T) {
	_, err := prepare([]Process{proc(1, -1, 0)}, "nope", Params{})
	var unsupported *UnsupportedAlgorithmError
	assert.True(t, errors.As(err, &unsupported))
}
