package stopwatch

import "fmt"

// String renders the triple as mm:ss.tt.
func (t TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d.%02d", t.Minutes, t.Seconds, t.Ticks)
}

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Frozen:
		return "frozen"
	default:
		return fmt.Sprintf("RunState(%d)", uint8(s))
	}
}
