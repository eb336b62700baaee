// Package stopwatch implements a synchronous stopwatch peripheral: a 100 Hz
// elapsed-time counter (minutes:seconds:hundredths) behind a small register
// interface, advanced one clock cycle at a time by an external driver.
package stopwatch

// Stopwatch is the stopwatch machine. All state advances in Step; the pulse
// methods only latch control lines for the next cycle, so any driver that
// calls Step — a timer loop, a simulation, a test — sees identical behavior.
type Stopwatch struct {
	state   RunState
	div     ClockDivider
	counter TimeCounter
	laps    LapMemory

	pending Signals
	lap     bool
}

// New builds a stopwatch driven by a clock of the given frequency in Hz.
// One tick is 1/100 s, so the divider fires every max(1, hz/100) cycles;
// this ratio is fixed for the machine's lifetime.
func New(hz int) *Stopwatch {
	return &Stopwatch{div: newDivider(hz)}
}

// The pulse methods assert a control line for exactly the next Step.
// Several sources asserting the same line in one cycle (a register write
// and a front-panel button, say) OR together into a single pulse.

// Start begins or resumes counting.
func (sw *Stopwatch) Start() { sw.pending.Start = true }

// Pause freezes the counter, preserving its value.
func (sw *Stopwatch) Pause() { sw.pending.Pause = true }

// Halt freezes the counter, preserving its value. Same effect as Pause.
func (sw *Stopwatch) Halt() { sw.pending.Stop = true }

// Clear resets the counter to 00:00.00 and freezes it.
func (sw *Stopwatch) Clear() { sw.pending.Reset = true }

// Lap latches a lap-capture request for the next Step.
func (sw *Stopwatch) Lap() { sw.lap = true }

// Step evaluates one clock cycle. Every decision reads the state as it
// stood at the end of the previous cycle: the control lines resolve against
// the old run state, and the counter advances on a tick-enable pulse only if
// the machine was already Running when the pulse fired. Reset overrides
// everything, forcing the triple and the divider to 0 on the same cycle.
func (sw *Stopwatch) Step() {
	sig := sw.pending
	sw.pending = Signals{}
	lap := sw.lap
	sw.lap = false

	running := sw.state == Running
	sw.state = nextState(sw.state, sig)

	if sig.Reset {
		sw.counter.clear()
		sw.div.clear()
		return
	}
	if sw.div.step() && running {
		sw.counter.advance()
	}
	if lap {
		sw.laps.capture(sw.counter.Time())
	}
}

// State returns the run state as of the most recently completed cycle.
func (sw *Stopwatch) State() RunState { return sw.state }

// Time returns the elapsed time as of the most recently completed cycle.
func (sw *Stopwatch) Time() TimeValue { return sw.counter.Time() }

// Laps returns the machine's lap memory.
func (sw *Stopwatch) Laps() *LapMemory { return &sw.laps }
