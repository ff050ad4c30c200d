package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcess(t *testing.T) {
	program := []Instruction{CPUInstr(5)}
	p := NewProcess("A", 0, 3, program)

	assert.Equal(t, "A", p.PID)
	assert.Equal(t, 0, p.Arrival)
	assert.Equal(t, 3, p.Priority)
	assert.Equal(t, StateNew, p.State)
	assert.Equal(t, 0, p.PC)
}

func TestCurrentInstruction(t *testing.T) {
	program := []Instruction{CPUInstr(5), IOInstr(2)}
	p := NewProcess("A", 0, 0, program)

	in, ok := p.CurrentInstruction()
	if !ok || in.Op != OpCPU {
		t.Fatalf("CurrentInstruction() at pc=0 = %+v, %v; want CPU, true", in, ok)
	}

	p.PC = 2
	if _, ok := p.CurrentInstruction(); ok {
		t.Errorf("CurrentInstruction() past end of program should return false")
	}
}

func TestMarkStartedOnlySetsOnce(t *testing.T) {
	p := NewProcess("A", 0, 0, nil)
	p.MarkStarted(5)
	if p.StartTime != 5 || !p.StartSet {
		t.Fatalf("MarkStarted(5) did not set StartTime, got %d", p.StartTime)
	}
	p.MarkStarted(10)
	if p.StartTime != 5 {
		t.Errorf("MarkStarted(10) overwrote StartTime, got %d, want 5", p.StartTime)
	}
}
