package stopwatch

import (
	"testing"

	"github.com/matryer/is"
)

func TestDividerCadence(t *testing.T) {
	is := is.New(t)

	// 500 Hz -> one pulse every 5 cycles
	d := newDivider(500)
	for i := 1; i <= 20; i++ {
		is.Equal(d.step(), i%5 == 0)
	}
}

func TestDividerClamp(t *testing.T) {
	is := is.New(t)

	// below 100 Hz the ratio clamps to 1: a pulse every cycle
	for _, hz := range []int{0, 1, 30, 99, 100} {
		d := newDivider(hz)
		for i := 0; i < 10; i++ {
			is.True(d.step())
		}
	}
}

func TestDividerClear(t *testing.T) {
	is := is.New(t)

	d := newDivider(400)
	d.step()
	d.step()
	d.clear()
	for i := 1; i <= 8; i++ {
		is.Equal(d.step(), i%4 == 0)
	}
}
