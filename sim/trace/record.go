package trace

// TickKind names the category of a per-tick event.
type TickKind string

const (
	KindRunning        TickKind = "RUNNING"
	KindBlockIO        TickKind = "BLOCK_IO"
	KindRequest        TickKind = "REQUEST"
	KindBlockedResource TickKind = "BLOCKED_RESOURCE"
	KindRelease        TickKind = "RELEASE"
	KindTerminated     TickKind = "TERMINATED"
	KindIdle           TickKind = "IDLE"
)

// TickEvent captures what happened to (at most) one process in one tick.
type TickEvent struct {
	Time       int
	PID        string // empty for IDLE
	Kind       TickKind
	ResourceID int // REQUEST, BLOCKED_RESOURCE, RELEASE only
	Count      int // REQUEST, RELEASE only
}

// AuxEvent captures one line emitted through the engine's trace sink:
// the auxiliary lines ([UNBLOCK], [BOOST], [RECOVERY], [DEADLOCK
// RECOVERY]) as well as the timeline header and the per-tick lines,
// which are also recorded as TickEvents.
type AuxEvent struct {
	Time    int
	Message string
}
