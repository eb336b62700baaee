package stopwatch

// TimeValue is the (minutes, seconds, ticks) triple. A tick is one hundredth
// of a second. All three fields are always in range.
type TimeValue struct {
	Minutes uint8 // 0-59
	Seconds uint8 // 0-59
	Ticks   uint8 // 0-99
}

// TimeCounter holds the elapsed time and applies the carry chain once per
// tick-enable pulse.
type TimeCounter struct {
	t TimeValue
}

// advance adds one tick. A ticks overflow carries into seconds, a seconds
// overflow carries into minutes, and a minutes overflow wraps to 0 with no
// further carry: elapsed time is modulo 60 minutes. The whole chain is
// computed in one step so a reader never sees a partially carried triple.
func (tc *TimeCounter) advance() {
	if tc.t.Ticks < 99 {
		tc.t.Ticks++
		return
	}
	tc.t.Ticks = 0
	if tc.t.Seconds < 59 {
		tc.t.Seconds++
		return
	}
	tc.t.Seconds = 0
	if tc.t.Minutes < 59 {
		tc.t.Minutes++
		return
	}
	tc.t.Minutes = 0
}

func (tc *TimeCounter) clear() { tc.t = TimeValue{} }

// Time returns the triple as of the most recently completed cycle.
func (tc *TimeCounter) Time() TimeValue { return tc.t }
