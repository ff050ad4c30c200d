// Package sim provides the core discrete-time simulation engine for the
// CPU scheduling and resource management simulator.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process lifecycle (NEW -> READY -> RUNNING -> BLOCKED -> TERMINATED)
//   - instruction.go: the tagged-union program instructions a process executes
//   - simulator.go: the tick loop that drives everything else
//
// # Architecture
//
// The sim package defines the engine and its extension points; decision
// tracing lives in the sim/trace sub-package so it has no dependency on
// the engine's internal types.
//
// # Key Interfaces
//
//   - SchedulingPolicy: admits and dispatches ready processes (RR, PRIO, MLFQ)
//   - TraceSink: receives every formatted timeline and auxiliary line in
//     emission order; trace.SimulationTrace records them for later inspection
package sim
