// Implements the multi-unit Resource Manager: a fixed set of countable
// resources, each with a capacity, an available count, and a per-holder
// allocation map, plus a strict FIFO wait queue for processes that
// requested more units than were available.

package sim

import (
	"fmt"
	"sort"
)

// Resource tracks one countable, multi-unit resource.
type Resource struct {
	ID         int
	Capacity   int
	Available  int
	Allocation map[string]int // pid -> units held, entries removed at 0
}

// ResourceManager owns every Resource and its wait queue. It never runs
// concurrently with the tick loop and needs no locking: every mutation
// happens synchronously from Simulator.tick.
type ResourceManager struct {
	resources map[int]*Resource
	waiting   map[int]*ProcessQueue
	admit     func(p *Process) // hands a newly-unblocked process back to the scheduler
}

// NewResourceManager builds a manager with the given capacities, indexed
// 1..len(capacities). admit is called for every waiter that becomes
// runnable on release; it should place the process onto the scheduler's
// ready structure exactly as a fresh admission would.
func NewResourceManager(capacities []int, admit func(p *Process)) *ResourceManager {
	rm := &ResourceManager{
		resources: make(map[int]*Resource, len(capacities)),
		waiting:   make(map[int]*ProcessQueue, len(capacities)),
		admit:     admit,
	}
	for i, cap := range capacities {
		id := i + 1
		rm.resources[id] = &Resource{ID: id, Capacity: cap, Available: cap, Allocation: map[string]int{}}
		rm.waiting[id] = &ProcessQueue{}
	}
	return rm
}

// Resource returns the resource record for id, or nil if unknown.
func (rm *ResourceManager) Resource(id int) *Resource {
	return rm.resources[id]
}

// Request attempts to grant count units of resource id to p. On success
// the caller is responsible for advancing p.PC and keeping it runnable.
// On refusal p is enqueued on that resource's wait queue and the caller
// is responsible for blocking p.
func (rm *ResourceManager) Request(p *Process, id, count int) (granted bool) {
	r, ok := rm.resources[id]
	if !ok {
		return false
	}
	if r.Available >= count {
		r.Available -= count
		r.Allocation[p.PID] += count
		return true
	}
	rm.waiting[id].Enqueue(p)
	return false
}

// Release returns count units of resource id previously held by p (p may
// be nil, e.g. when releasing on behalf of a process that has already
// been fully detached), then drains the wait queue head-of-line: waiters
// are granted in FIFO order and only while the head of the queue can be
// fully satisfied. A granted waiter has its request instruction advanced
// exactly once and is handed to admit for scheduler-specific readmission.
func (rm *ResourceManager) Release(p *Process, id, count int, trace TraceSink) {
	r, ok := rm.resources[id]
	if !ok {
		return
	}
	r.Available += count
	if p != nil {
		r.Allocation[p.PID] -= count
		if r.Allocation[p.PID] <= 0 {
			delete(r.Allocation, p.PID)
		}
	}

	q := rm.waiting[id]
	for {
		waiter := q.Peek()
		if waiter == nil {
			return
		}
		instr, ok := waiter.CurrentInstruction()
		if !ok || instr.Op != OpREQ {
			// Malformed input: the waiter's pc no longer points at the
			// request that blocked it. Drop it rather than loop forever.
			q.Dequeue()
			continue
		}
		needed := instr.Count
		if r.Available < needed {
			return
		}
		r.Available -= needed
		r.Allocation[waiter.PID] += needed
		q.Dequeue()

		waiter.State = StateReady
		waiter.BlockReason = ReasonNone
		waiter.BlockedForResource = 0
		waiter.PC++
		if trace != nil {
			trace.Emit(fmt.Sprintf("[UNBLOCK] Process %s got Resource R%d", waiter.PID, id))
		}
		rm.admit(waiter)
	}
}

// ReleaseAll removes p from every resource wait queue, then returns every
// unit p currently holds across all resources, in ascending resource-id
// order. Used by deadlock recovery to unwind an aborted process, which
// must never be granted a resource and re-admitted later. The engine is
// single-threaded and deterministic, so the order recovery/unblock lines
// are emitted in must not depend on Go's randomized map iteration order.
func (rm *ResourceManager) ReleaseAll(p *Process, trace TraceSink) {
	for _, q := range rm.waiting {
		q.Remove(p)
	}
	for _, id := range rm.HeldBy(p) {
		r := rm.resources[id]
		count := r.Allocation[p.PID]
		if trace != nil {
			trace.Emit(fmt.Sprintf("[RECOVERY] Releasing %d of R%d from aborted %s", count, id, p.PID))
		}
		rm.Release(p, id, count, trace)
	}
}

// HeldBy returns the resource ids p currently holds units of, in
// ascending order, for deterministic iteration by callers such as
// ReleaseAll and tests.
func (rm *ResourceManager) HeldBy(p *Process) []int {
	var ids []int
	for id, r := range rm.resources {
		if r.Allocation[p.PID] > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
