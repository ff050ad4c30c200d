// Implements ProcessQueue, a FIFO queue of processes. Used both as the
// ready sequence for RR/PRIO/each MLFQ level, and as the per-resource
// wait queue in the resource manager.

package sim

import (
	"fmt"
	"strings"
)

// ProcessQueue is a FIFO queue of processes.
type ProcessQueue struct {
	items []*Process
}

// Enqueue adds a process to the back of the queue.
func (q *ProcessQueue) Enqueue(p *Process) {
	q.items = append(q.items, p)
}

func (q *ProcessQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.items {
		sb.WriteString(p.PID)
		if i < len(q.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (q *ProcessQueue) Len() int {
	return len(q.items)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *ProcessQueue) Peek() *Process {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// PrependFront inserts a process at the front of the queue.
func (q *ProcessQueue) PrependFront(p *Process) {
	if p == nil {
		panic("PrependFront: p must not be nil")
	}
	q.items = append([]*Process{p}, q.items...)
}

// Items returns the queue contents for iteration. The returned slice is
// the queue's internal storage: callers may iterate over it but must not
// append to or reslice it. For reordering, use Reorder instead.
func (q *ProcessQueue) Items() []*Process {
	return q.items
}

// Reorder applies fn to the queue contents in place, e.g. to re-sort the
// PRIO ready sequence after aging changes priorities. fn must not change
// the slice length.
func (q *ProcessQueue) Reorder(fn func([]*Process)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(q.items)
	fn(q.items)
	if len(q.items) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(q.items)))
	}
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (q *ProcessQueue) Dequeue() *Process {
	if len(q.items) == 0 {
		return nil
	}
	p := q.items[0]
	q.items = q.items[1:]
	return p
}

// Remove deletes the first occurrence of p from the queue, preserving the
// order of the remaining items. Used by deadlock recovery, which never
// needs it for the ready queue (only resource wait queues cross-reference
// processes that must be spliced out mid-queue).
func (q *ProcessQueue) Remove(p *Process) bool {
	for i, item := range q.items {
		if item == p {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}
