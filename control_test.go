package stopwatch

import (
	"testing"

	"github.com/matryer/is"
)

func TestNextStateResetDominates(t *testing.T) {
	is := is.New(t)

	// reset wins against every combination of the other lines, from every
	// state.
	for _, prev := range []RunState{Idle, Running, Frozen} {
		for n := 0; n < 8; n++ {
			sig := Signals{
				Start: n&1 != 0,
				Pause: n&2 != 0,
				Stop:  n&4 != 0,
				Reset: true,
			}
			is.Equal(nextState(prev, sig), Idle)
		}
	}
}

func TestNextStatePriority(t *testing.T) {
	is := is.New(t)

	// start > pause > stop, first asserted wins
	is.Equal(nextState(Frozen, Signals{Start: true, Pause: true}), Running)
	is.Equal(nextState(Frozen, Signals{Start: true, Stop: true}), Running)
	is.Equal(nextState(Frozen, Signals{Start: true, Pause: true, Stop: true}), Running)
	is.Equal(nextState(Running, Signals{Pause: true, Stop: true}), Frozen)
}

func TestNextStateSingleLines(t *testing.T) {
	is := is.New(t)

	for _, prev := range []RunState{Idle, Running, Frozen} {
		is.Equal(nextState(prev, Signals{Start: true}), Running)
		is.Equal(nextState(prev, Signals{Pause: true}), Frozen)
		is.Equal(nextState(prev, Signals{Stop: true}), Frozen)
	}
}

func TestNextStateRetains(t *testing.T) {
	is := is.New(t)

	for _, prev := range []RunState{Idle, Running, Frozen} {
		is.Equal(nextState(prev, Signals{}), prev)
	}
}
