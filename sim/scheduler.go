// Implements the three pluggable scheduling disciplines: Round-Robin,
// static Priority with aging, and a three-level Multi-Level Feedback
// Queue with periodic boost. All three share the same admit/dispatch/
// quantum/aging contract so the engine stays policy-agnostic.

package sim

import (
	"fmt"
	"sort"
)

// SchedulingPolicy admits and dispatches ready processes and owns the
// ready structure's discipline-specific bookkeeping (sort order, level
// assignment, aging/boost).
type SchedulingPolicy interface {
	// Add admits p to the ready structure. It sets p.State, p.LastReadyTime.
	Add(p *Process, now int)
	// Next pops and returns the next process to run, or nil if empty.
	Next() *Process
	// ShouldPreempt reports whether p's current CPU burst has run long
	// enough to be preempted, given executed ticks since last dispatch.
	// May mutate p.QueueLevel (MLFQ demotion).
	ShouldPreempt(p *Process, executed int) bool
	// ApplyAging performs any time-based ready-structure adjustment
	// (PRIO aging, MLFQ boost), emitting trace lines via sink as needed.
	ApplyAging(now int, sink TraceSink)
	// Name reports the policy's configured algorithm name.
	Name() string
	// Empty reports whether the ready structure holds no process at all,
	// across every level for MLFQ.
	Empty() bool
}

// NewSchedulingPolicy builds a SchedulingPolicy by algorithm name.
// Valid names: "rr", "prio", "mlfq". Panics on unrecognized names, since
// an invalid algorithm should already have been rejected by CLI flag
// validation before construction ever happens.
func NewSchedulingPolicy(algorithm string, quantum int) SchedulingPolicy {
	switch algorithm {
	case "rr":
		return &RoundRobinPolicy{quantum: quantum}
	case "prio":
		return &PriorityPolicy{}
	case "mlfq":
		return &MLFQPolicy{quantum: quantum}
	default:
		panic(fmt.Sprintf("unhandled scheduling algorithm %q", algorithm))
	}
}

// IsValidAlgorithm reports whether name is a recognized algorithm.
func IsValidAlgorithm(name string) bool {
	switch name {
	case "rr", "prio", "mlfq":
		return true
	default:
		return false
	}
}

// RoundRobinPolicy preempts a running process once it has consumed
// quantum CPU ticks in its current burst; the ready structure is a
// single FIFO sequence.
type RoundRobinPolicy struct {
	quantum int
	ready   ProcessQueue
}

func (r *RoundRobinPolicy) Add(p *Process, now int) {
	p.State = StateReady
	p.LastReadyTime = now
	r.ready.Enqueue(p)
}

func (r *RoundRobinPolicy) Next() *Process { return r.ready.Dequeue() }

func (r *RoundRobinPolicy) ShouldPreempt(_ *Process, executed int) bool {
	return executed >= r.quantum
}

func (r *RoundRobinPolicy) ApplyAging(_ int, _ TraceSink) {}

func (r *RoundRobinPolicy) Name() string { return "rr" }

func (r *RoundRobinPolicy) Empty() bool { return r.ready.Len() == 0 }

// PriorityPolicy keeps the ready sequence sorted by (priority ascending,
// arrival time ascending) and is purely cooperative: a burst only ends
// by completing, blocking on IO, or blocking on a resource. Waiting
// READY processes age: once more than 50 ticks have passed since a
// process entered READY (or last aged), its priority drops by one,
// floored at 0.
type PriorityPolicy struct {
	ready ProcessQueue
}

func (pp *PriorityPolicy) Add(p *Process, now int) {
	p.State = StateReady
	p.LastReadyTime = now
	pp.ready.Enqueue(p)
	pp.sort()
}

func (pp *PriorityPolicy) Next() *Process { return pp.ready.Dequeue() }

func (pp *PriorityPolicy) ShouldPreempt(_ *Process, _ int) bool { return false }

func (pp *PriorityPolicy) ApplyAging(now int, _ TraceSink) {
	changed := false
	for _, p := range pp.ready.Items() {
		if now-p.LastReadyTime > 50 {
			if p.Priority > 0 {
				p.Priority--
				changed = true
			}
			p.LastReadyTime = now
		}
	}
	if changed {
		pp.sort()
	}
}

func (pp *PriorityPolicy) sort() {
	pp.ready.Reorder(func(items []*Process) {
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Priority != items[j].Priority {
				return items[i].Priority < items[j].Priority
			}
			return items[i].Arrival < items[j].Arrival
		})
	})
}

func (pp *PriorityPolicy) Name() string { return "prio" }

func (pp *PriorityPolicy) Empty() bool { return pp.ready.Len() == 0 }

// MLFQPolicy runs three strict-priority levels (0 highest, 2 lowest).
// A process whose burst reaches quantum*2^level in its current level is
// preempted and demoted
// (floored at level 2). Every 200 ticks, all processes in levels 1 and
// 2 are boosted back to level 0.
type MLFQPolicy struct {
	quantum int
	levels  [3]ProcessQueue
}

func (m *MLFQPolicy) Add(p *Process, now int) {
	p.State = StateReady
	p.LastReadyTime = now
	m.levels[p.QueueLevel].Enqueue(p)
}

func (m *MLFQPolicy) Next() *Process {
	for i := range m.levels {
		if p := m.levels[i].Dequeue(); p != nil {
			return p
		}
	}
	return nil
}

func (m *MLFQPolicy) ShouldPreempt(p *Process, executed int) bool {
	limit := m.quantum << uint(p.QueueLevel)
	if executed < limit {
		return false
	}
	if p.QueueLevel < 2 {
		p.QueueLevel++
	}
	return true
}

func (m *MLFQPolicy) ApplyAging(now int, sink TraceSink) {
	if now <= 0 || now%200 != 0 {
		return
	}
	boosted := false
	for level := 1; level < 3; level++ {
		for {
			p := m.levels[level].Dequeue()
			if p == nil {
				break
			}
			p.QueueLevel = 0
			m.levels[0].Enqueue(p)
			boosted = true
		}
	}
	if boosted && sink != nil {
		sink.Emit(fmt.Sprintf("Time %d [BOOST] All MLFQ processes moved to Level 0", now))
	}
}

func (m *MLFQPolicy) Name() string { return "mlfq" }

func (m *MLFQPolicy) Empty() bool {
	for i := range m.levels {
		if m.levels[i].Len() > 0 {
			return false
		}
	}
	return true
}
