package flappy

// RunState is the top-level phase of a play session. It is the single
// source of truth for whether physics and collision update on a tick.
type RunState int

const (
	StateIdle    RunState = iota // Waiting for the first flap
	StateRunning                 // Full simulation active
	StateEnded                   // Frozen until an explicit restart
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
