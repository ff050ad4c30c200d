package trace

import "testing"

func TestSummarizeNilTrace(t *testing.T) {
	s := Summarize(nil)
	if s.TotalTicks != 0 {
		t.Errorf("Summarize(nil) should return a zero-value summary, got %+v", s)
	}
}

func TestSummarizeCountsTickKinds(t *testing.T) {
	st := NewSimulationTrace(LevelFull)
	st.RecordTick(TickEvent{Time: 0, PID: "A", Kind: KindRunning})
	st.RecordTick(TickEvent{Time: 1, PID: "A", Kind: KindBlockIO})
	st.RecordTick(TickEvent{Time: 2, Kind: KindIdle})
	st.RecordTick(TickEvent{Time: 3, PID: "A", Kind: KindBlockedResource})
	st.RecordTick(TickEvent{Time: 4, PID: "A", Kind: KindTerminated})

	s := Summarize(st)
	if s.RunningTicks != 1 || s.BlockedIOTicks != 1 || s.IdleTicks != 1 || s.BlockedResourceTicks != 1 || s.TerminationCount != 1 {
		t.Errorf("Summarize() = %+v, want one of each kind", s)
	}
	if s.TotalTicks != 5 {
		t.Errorf("TotalTicks = %d, want 5 distinct ticks", s.TotalTicks)
	}
}

func TestSummarizeCountsAuxEvents(t *testing.T) {
	st := NewSimulationTrace(LevelFull)
	st.RecordAux(AuxEvent{Time: 0, Message: "[UNBLOCK] Process A got Resource R1"})
	st.RecordAux(AuxEvent{Time: 200, Message: "Time 200 [BOOST] All MLFQ processes moved to Level 0"})
	st.RecordAux(AuxEvent{Time: 5, Message: "[DEADLOCK RECOVERY] Aborting process A"})

	s := Summarize(st)
	if s.UnblockCount != 1 {
		t.Errorf("UnblockCount = %d, want 1", s.UnblockCount)
	}
	if s.BoostCount != 1 {
		t.Errorf("BoostCount = %d, want 1", s.BoostCount)
	}
	if s.DeadlockRecoveryCount != 1 {
		t.Errorf("DeadlockRecoveryCount = %d, want 1", s.DeadlockRecoveryCount)
	}
}
