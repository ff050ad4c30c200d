package trace

// TraceSummary aggregates statistics from a SimulationTrace. Useful for
// tests and for an optional post-run diagnostic dump, distinct from the
// mandatory metrics table.
type TraceSummary struct {
	TotalTicks            int
	RunningTicks          int
	IdleTicks             int
	BlockedIOTicks        int
	BlockedResourceTicks  int
	TerminationCount      int
	UnblockCount          int
	BoostCount            int
	DeadlockRecoveryCount int
}

// Summarize computes aggregate statistics from a SimulationTrace. Safe
// for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	seen := map[int]bool{}
	for _, e := range st.Ticks {
		seen[e.Time] = true
		switch e.Kind {
		case KindRunning:
			summary.RunningTicks++
		case KindIdle:
			summary.IdleTicks++
		case KindBlockIO:
			summary.BlockedIOTicks++
		case KindBlockedResource:
			summary.BlockedResourceTicks++
		case KindTerminated:
			summary.TerminationCount++
		}
	}
	summary.TotalTicks = len(seen)

	for _, e := range st.Aux {
		switch {
		case containsPrefix(e.Message, "[UNBLOCK]"):
			summary.UnblockCount++
		case containsPrefix(e.Message, "[BOOST]") || containsPrefix(e.Message, "Time"):
			if containsSubstring(e.Message, "[BOOST]") {
				summary.BoostCount++
			}
		case containsPrefix(e.Message, "[DEADLOCK RECOVERY]"):
			summary.DeadlockRecoveryCount++
		}
	}

	return summary
}

func containsPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func containsSubstring(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
