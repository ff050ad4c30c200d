package sim

import "testing"

func TestSchedulerConfigFieldEquivalence(t *testing.T) {
	c := SchedulerConfig{Algorithm: "rr", Quantum: 4}
	if c.Algorithm != "rr" || c.Quantum != 4 {
		t.Errorf("SchedulerConfig = %+v, want Algorithm=rr Quantum=4", c)
	}
}

func TestTraceConfigFieldEquivalence(t *testing.T) {
	c := TraceConfig{Level: "full", Percentile: true}
	if c.Level != "full" || !c.Percentile {
		t.Errorf("TraceConfig = %+v, want Level=full Percentile=true", c)
	}
}
