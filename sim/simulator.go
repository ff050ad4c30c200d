// Implements the tick loop that drives arrivals, IO progress, aging,
// dispatch, deadlock detection, and instruction execution in the fixed
// stage order the engine requires. This is deliberately a plain
// for-loop over discrete ticks rather than an event-driven jump to the
// next interesting timestamp: the scheduling and deadlock semantics are
// defined in terms of what happens on every tick, not only on the ticks
// where something changes.

package sim

import (
	"fmt"

	"github.com/emreebayir/cpu-scheduling-simulator/sim/trace"
)

// Simulator owns every process, the resource manager, the scheduling
// policy, and the trace sink, and advances them one tick at a time
// until every process has terminated.
type Simulator struct {
	now       int
	processes []*Process
	resources *ResourceManager
	policy    SchedulingPolicy

	running       *Process
	burstExecuted int
	completed     int

	sink  TraceSink
	trace *trace.SimulationTrace
}

// NewSimulator builds a Simulator ready to Run. capacities indexes
// resources 1..len(capacities). sink receives every trace line in
// emission order; if traceLevel is not trace.LevelNone, the same events
// are also recorded structurally and available via Trace() afterward.
func NewSimulator(processes []*Process, capacities []int, policy SchedulingPolicy, sink TraceSink, traceLevel trace.TraceLevel) *Simulator {
	s := &Simulator{
		processes: processes,
		policy:    policy,
	}
	if traceLevel != trace.LevelNone {
		s.trace = trace.NewSimulationTrace(traceLevel)
	}
	s.sink = multiSink{sink: sink, trace: s.trace, now: func() int { return s.now }}
	s.resources = NewResourceManager(capacities, func(p *Process) { s.policy.Add(p, s.now) })
	return s
}

// Trace returns the structured trace recorded during Run, or nil if
// structured recording was disabled.
func (s *Simulator) Trace() *trace.SimulationTrace { return s.trace }

// Now returns the current simulated tick (only meaningful during or
// after Run).
func (s *Simulator) Now() int { return s.now }

// Processes returns every loaded process, in load order, for metrics
// collection after Run completes.
func (s *Simulator) Processes() []*Process { return s.processes }

// Run executes the tick loop to completion: every loaded process
// reaches TERMINATED. Emits the mandated "--- Timeline Log ---" header
// before the first tick.
func (s *Simulator) Run() {
	s.sink.Emit("--- Timeline Log ---")
	for s.completed < len(s.processes) {
		s.tick()
	}
}

// tick executes exactly one pass of the fixed eight-stage procedure. A
// process dispatched with its pc already past the end of its program
// terminates without consuming a tick of simulated time: the clock only
// advances when executeOneUnit reports genuine forward progress.
func (s *Simulator) tick() {
	s.admitArrivals()
	s.advanceIO()
	s.policy.ApplyAging(s.now, s.sink)
	s.dispatch()
	if victim := s.checkAndResolveDeadlock(); victim != nil {
		s.completed++
	}
	if s.running != nil && s.running.State == StateTerminated {
		s.running = nil
		s.completed++
	}
	if s.executeOneUnit() {
		s.now++
	}
}

// admitArrivals is stage 1: any NEW process whose arrival time has come
// due joins the ready structure.
func (s *Simulator) admitArrivals() {
	for _, p := range s.processes {
		if p.State == StateNew && p.Arrival == s.now {
			s.policy.Add(p, s.now)
		}
	}
}

// advanceIO is stage 2: every IO-blocked process ticks its remaining
// delay down by one and rejoins the ready structure once it reaches
// zero.
func (s *Simulator) advanceIO() {
	for _, p := range s.processes {
		if p.State != StateBlocked || p.BlockReason != ReasonWaitingIO {
			continue
		}
		p.RemainingCurrentOp--
		p.TotalIOTime++
		if p.RemainingCurrentOp <= 0 {
			p.PC++
			p.State = StateReady
			p.BlockReason = ReasonNone
			s.policy.Add(p, s.now)
		}
	}
}

// dispatch is stage 4: if no process currently holds the CPU, take the
// next one from the scheduling policy and prepare its burst.
func (s *Simulator) dispatch() {
	if s.running != nil {
		return
	}
	p := s.policy.Next()
	s.burstExecuted = 0
	if p == nil {
		return
	}
	p.State = StateRunning
	p.MarkStarted(s.now)
	if instr, ok := p.CurrentInstruction(); ok {
		if instr.Op == OpCPU && p.RemainingCurrentOp <= 0 {
			p.RemainingCurrentOp = instr.Duration
		}
	}
	s.running = p
	Logger.Debugf("tick %d: dispatched %s (level=%d)", s.now, p.PID, p.QueueLevel)
}

// executeOneUnit is stage 6: advance whatever the running process is
// doing by exactly one tick's worth of work, or emit IDLE if there is
// none. Returns whether the clock should advance: false only when a
// just-dispatched process is discovered to have exhausted its program,
// in which case it terminates immediately and the tick is replayed at
// the same simulated time once a new process is dispatched.
func (s *Simulator) executeOneUnit() bool {
	p := s.running
	if p == nil {
		s.sink.Emit(fmt.Sprintf("Time %d: IDLE", s.now))
		s.recordTick("", trace.KindIdle, 0, 0)
		return true
	}

	instr, ok := p.CurrentInstruction()
	if !ok {
		s.terminate(p, s.now)
		return false
	}

	switch instr.Op {
	case OpCPU:
		s.executeCPU(p, instr)
	case OpIO:
		s.executeIO(p, instr)
	case OpREQ:
		s.executeREQ(p, instr)
	case OpREL:
		s.executeREL(p, instr)
	default:
		// Malformed program: skip the unrecognized instruction.
		p.PC++
	}
	return true
}

func (s *Simulator) executeCPU(p *Process, instr Instruction) {
	s.sink.Emit(fmt.Sprintf("Time %d: %s RUNNING", s.now, p.PID))
	s.recordTick(p.PID, trace.KindRunning, 0, 0)

	p.RemainingCurrentOp--
	p.TotalCPUTime++
	s.burstExecuted++

	if p.RemainingCurrentOp <= 0 {
		p.PC++
		if p.PC >= len(p.Program) {
			p.State = StateTerminated
			p.FinishTime = s.now + 1
			s.completed++
			s.running = nil
			return
		}
		p.State = StateReady
		s.policy.Add(p, s.now)
		s.running = nil
		return
	}

	if s.policy.ShouldPreempt(p, s.burstExecuted) {
		p.State = StateReady
		s.policy.Add(p, s.now)
		s.running = nil
	}
}

func (s *Simulator) executeIO(p *Process, instr Instruction) {
	p.State = StateBlocked
	p.BlockReason = ReasonWaitingIO
	p.RemainingCurrentOp = instr.Duration
	s.sink.Emit(fmt.Sprintf("Time %d: %s BLOCK (IO)", s.now, p.PID))
	s.recordTick(p.PID, trace.KindBlockIO, 0, 0)
	s.running = nil
}

func (s *Simulator) executeREQ(p *Process, instr Instruction) {
	s.sink.Emit(fmt.Sprintf("Time %d: %s REQUEST R%d (%d)", s.now, p.PID, instr.ResourceID, instr.Count))
	s.recordTick(p.PID, trace.KindRequest, instr.ResourceID, instr.Count)

	if s.resources.Request(p, instr.ResourceID, instr.Count) {
		p.PC++
		p.State = StateReady
		s.policy.Add(p, s.now)
	} else {
		p.State = StateBlocked
		p.BlockReason = ReasonWaitingResource
		p.BlockedForResource = instr.ResourceID
		s.sink.Emit(fmt.Sprintf("Time %d: %s BLOCKED (Resource R%d)", s.now, p.PID, instr.ResourceID))
		s.recordTick(p.PID, trace.KindBlockedResource, instr.ResourceID, 0)
	}
	s.running = nil
}

func (s *Simulator) executeREL(p *Process, instr Instruction) {
	s.sink.Emit(fmt.Sprintf("Time %d: %s RELEASE R%d (%d)", s.now, p.PID, instr.ResourceID, instr.Count))
	s.recordTick(p.PID, trace.KindRelease, instr.ResourceID, instr.Count)

	s.resources.Release(p, instr.ResourceID, instr.Count, s.sink)
	p.PC++
	p.State = StateReady
	s.policy.Add(p, s.now)
	s.running = nil
}

func (s *Simulator) terminate(p *Process, now int) {
	p.State = StateTerminated
	p.FinishTime = now
	s.completed++
	s.running = nil
	s.recordTick(p.PID, trace.KindTerminated, 0, 0)
}

func (s *Simulator) recordTick(pid string, kind trace.TickKind, resourceID, count int) {
	if s.trace == nil {
		return
	}
	s.trace.RecordTick(trace.TickEvent{Time: s.now, PID: pid, Kind: kind, ResourceID: resourceID, Count: count})
}
