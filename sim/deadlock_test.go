package sim

import (
	"testing"

	"github.com/emreebayir/cpu-scheduling-simulator/sim/trace"
)

func newIdleSimulator(processes []*Process, capacities []int, policy SchedulingPolicy) (*Simulator, *CollectingSink) {
	sink := &CollectingSink{}
	s := NewSimulator(processes, capacities, policy, sink, trace.LevelNone)
	return s, sink
}

func TestCheckAndResolveDeadlockNoOpWhenRunning(t *testing.T) {
	a := NewProcess("A", 0, 0, nil)
	s, _ := newIdleSimulator([]*Process{a}, nil, &RoundRobinPolicy{quantum: 4})
	s.running = a

	if got := s.checkAndResolveDeadlock(); got != nil {
		t.Errorf("checkAndResolveDeadlock should no-op while a process is running, got %v", got)
	}
}

func TestCheckAndResolveDeadlockNoOpWhenReadySetNonEmpty(t *testing.T) {
	a := NewProcess("A", 0, 0, nil)
	policy := &RoundRobinPolicy{quantum: 4}
	s, _ := newIdleSimulator([]*Process{a}, nil, policy)
	policy.Add(a, 0)

	if got := s.checkAndResolveDeadlock(); got != nil {
		t.Errorf("checkAndResolveDeadlock should no-op while the ready set is non-empty, got %v", got)
	}
}

func TestCheckAndResolveDeadlockNoOpWhenAnyIOWaiter(t *testing.T) {
	a := NewProcess("A", 0, 0, nil)
	a.State = StateBlocked
	a.BlockReason = ReasonWaitingResource
	b := NewProcess("B", 0, 0, nil)
	b.State = StateBlocked
	b.BlockReason = ReasonWaitingIO

	s, _ := newIdleSimulator([]*Process{a, b}, []int{1}, &RoundRobinPolicy{quantum: 4})

	if got := s.checkAndResolveDeadlock(); got != nil {
		t.Errorf("an IO waiter means eventual progress; deadlock should not be declared, got %v", got)
	}
}

func TestCheckAndResolveDeadlockPicksFirstWaiterInDiscoveryOrder(t *testing.T) {
	a := NewProcess("A", 0, 0, []Instruction{ReqInstr(1, 1)})
	a.State = StateBlocked
	a.BlockReason = ReasonWaitingResource
	b := NewProcess("B", 0, 0, []Instruction{ReqInstr(1, 1)})
	b.State = StateBlocked
	b.BlockReason = ReasonWaitingResource

	s, sink := newIdleSimulator([]*Process{a, b}, []int{1}, &RoundRobinPolicy{quantum: 4})
	s.resources.Request(a, 1, 1)

	victim := s.checkAndResolveDeadlock()
	if victim != a {
		t.Fatalf("checkAndResolveDeadlock() victim = %v, want A (first in discovery order)", victim)
	}
	if victim.State != StateTerminated {
		t.Errorf("victim should be TERMINATED, got %s", victim.State)
	}
	wantLines := []string{
		"\n*** DEADLOCK DETECTED at time 0 ***",
		"[DEADLOCK RECOVERY] Aborting process A",
		"[RECOVERY] Releasing 1 of R1 from aborted A",
	}
	if len(sink.Lines) != len(wantLines) {
		t.Fatalf("sink lines = %v, want %v", sink.Lines, wantLines)
	}
	for i, want := range wantLines {
		if sink.Lines[i] != want {
			t.Errorf("sink line %d = %q, want %q", i, sink.Lines[i], want)
		}
	}
}
