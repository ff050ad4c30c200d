package sim

import "testing"

func TestCPUInstr(t *testing.T) {
	in := CPUInstr(5)
	if in.Op != OpCPU || in.Duration != 5 {
		t.Errorf("CPUInstr(5) = %+v, want Op=CPU Duration=5", in)
	}
}

func TestIOInstr(t *testing.T) {
	in := IOInstr(3)
	if in.Op != OpIO || in.Duration != 3 {
		t.Errorf("IOInstr(3) = %+v, want Op=IO Duration=3", in)
	}
}

func TestReqInstr(t *testing.T) {
	in := ReqInstr(2, 4)
	if in.Op != OpREQ || in.ResourceID != 2 || in.Count != 4 {
		t.Errorf("ReqInstr(2,4) = %+v, want Op=REQ ResourceID=2 Count=4", in)
	}
}

func TestRelInstr(t *testing.T) {
	in := RelInstr(2, 4)
	if in.Op != OpREL || in.ResourceID != 2 || in.Count != 4 {
		t.Errorf("RelInstr(2,4) = %+v, want Op=REL ResourceID=2 Count=4", in)
	}
}

func TestInstructionString(t *testing.T) {
	cases := []struct {
		in   Instruction
		want string
	}{
		{CPUInstr(5), "CPU 5"},
		{IOInstr(3), "IO 3"},
		{ReqInstr(1, 2), "REQ R1 (2)"},
		{RelInstr(1, 2), "REL R1 (2)"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
