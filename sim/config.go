package sim

// SchedulerConfig groups the scheduling policy selection and its base
// quantum, mirroring how CLI flags and an optional config bundle both
// populate the same shape before NewSchedulingPolicy consumes it.
type SchedulerConfig struct {
	Algorithm string // "rr" (default), "prio", or "mlfq"
	Quantum   int    // positive integer, default 10
}

// TraceConfig groups the structured-trace verbosity and whether the
// percentile section is printed, both independent of the mandated
// stdout timeline.
type TraceConfig struct {
	Level      string // "none" (default) or "full"
	Percentile bool   // whether to print the non-mandated percentile section
}
