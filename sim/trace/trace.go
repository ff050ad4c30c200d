// Package trace provides decision-trace recording for the simulation
// engine. It has no dependency on the sim package: it stores pure data
// types so tests can assert on recorded sequences without depending on
// engine internals or captured stdout.
package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// LevelNone disables structured recording (zero overhead beyond the
	// mandatory stdout timeline, which is unaffected by this setting).
	LevelNone TraceLevel = "none"
	// LevelFull records every tick event and auxiliary event.
	LevelFull TraceLevel = "full"
)

var validTraceLevels = map[TraceLevel]bool{
	LevelNone: true,
	LevelFull: true,
	"":        true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is recognized.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects structured records during a run.
type SimulationTrace struct {
	Level TraceLevel
	Ticks []TickEvent
	Aux   []AuxEvent
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level: level,
		Ticks: make([]TickEvent, 0),
		Aux:   make([]AuxEvent, 0),
	}
}

// RecordTick appends a per-tick event, unless recording is disabled.
func (st *SimulationTrace) RecordTick(e TickEvent) {
	if st == nil || st.Level == LevelNone {
		return
	}
	st.Ticks = append(st.Ticks, e)
}

// RecordAux appends an auxiliary event (UNBLOCK/BOOST/RECOVERY/DEADLOCK),
// unless recording is disabled.
func (st *SimulationTrace) RecordAux(e AuxEvent) {
	if st == nil || st.Level == LevelNone {
		return
	}
	st.Aux = append(st.Aux, e)
}
