// Implements deadlock detection and recovery per the fixed precondition:
// no process RUNNING and the ready set empty across every scheduling
// level. Declares deadlock only when at least one process is blocked
// waiting on a resource and none are waiting on IO (an IO-waiter will
// eventually unblock on its own and make progress possible again).

package sim

import "fmt"

// checkAndResolveDeadlock inspects engine state after dispatch and, if
// the precondition holds and a genuine deadlock is found, aborts the
// first WAITING_RESOURCE process in discovery order and returns its
// resources to the pool. Returns the aborted process, or nil if no
// deadlock was declared.
func (s *Simulator) checkAndResolveDeadlock() *Process {
	if s.running != nil {
		return nil
	}
	if !s.policy.Empty() {
		return nil
	}

	var blockedOnResource []*Process
	anyIO := false
	for _, p := range s.processes {
		if p.State != StateBlocked {
			continue
		}
		switch p.BlockReason {
		case ReasonWaitingResource:
			blockedOnResource = append(blockedOnResource, p)
		case ReasonWaitingIO:
			anyIO = true
		}
	}

	if len(blockedOnResource) == 0 || anyIO {
		return nil
	}

	s.sink.Emit(fmt.Sprintf("\n*** DEADLOCK DETECTED at time %d ***", s.now))
	victim := blockedOnResource[0]
	s.sink.Emit(fmt.Sprintf("[DEADLOCK RECOVERY] Aborting process %s", victim.PID))
	Logger.Warnf("tick %d: deadlock declared, %d process(es) blocked on resources, victim=%s", s.now, len(blockedOnResource), victim.PID)

	s.resources.ReleaseAll(victim, s.sink)
	victim.State = StateTerminated
	victim.FinishTime = s.now
	return victim
}
