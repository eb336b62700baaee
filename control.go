package stopwatch

// RunState is the control unit's state. Idle and Frozen gate counting off
// identically; Idle is the state after reset, Frozen is entered via pause
// or stop.
type RunState uint8

const (
	Idle RunState = iota
	Running
	Frozen
)

// Signals are the control lines as sampled for one cycle.
type Signals struct {
	Start, Pause, Stop, Reset bool
}

// nextState resolves the control lines against the previous cycle's state.
// Reset dominates everything else. Otherwise the first asserted line of
// start, pause, stop wins, so a start issued together with a freeze request
// resumes. No line asserted keeps the previous state.
func nextState(prev RunState, sig Signals) RunState {
	switch {
	case sig.Reset:
		return Idle
	case sig.Start:
		return Running
	case sig.Pause:
		return Frozen
	case sig.Stop:
		return Frozen
	default:
		return prev
	}
}
