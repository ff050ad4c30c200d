// Defines TraceSink, the injection point mentioned in the engine's
// design notes: emission of trace lines is routed through an interface
// so tests can assert on exact line sequences instead of capturing
// stdout, while the CLI wires a sink that writes the mandated timeline
// format to stdout.

package sim

import (
	"fmt"
	"io"

	"github.com/emreebayir/cpu-scheduling-simulator/sim/trace"
)

// TraceSink receives one formatted trace line at a time, in emission
// order. Both per-tick lines (Time T: ...) and auxiliary lines
// ([UNBLOCK]/[BOOST]/[RECOVERY]/[DEADLOCK RECOVERY]) are routed through
// the same sink, matching the interleaving the original program prints.
type TraceSink interface {
	Emit(line string)
}

// WriterSink writes each emitted line to w, terminated by a newline.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a TraceSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(line string) {
	fmt.Fprintln(s.w, line)
}

// CollectingSink stores every emitted line in order. Intended for tests
// that want to assert on the exact trace sequence.
type CollectingSink struct {
	Lines []string
}

func (s *CollectingSink) Emit(line string) {
	s.Lines = append(s.Lines, line)
}

// multiSink fans a line out to a display sink and, if non-nil, records
// it as an auxiliary event in a structured SimulationTrace.
type multiSink struct {
	sink  TraceSink
	trace *trace.SimulationTrace
	now   func() int
}

func (m multiSink) Emit(line string) {
	if m.sink != nil {
		m.sink.Emit(line)
	}
	if m.trace != nil {
		m.trace.RecordAux(trace.AuxEvent{Time: m.now(), Message: line})
	}
}
