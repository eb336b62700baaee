package stopwatch

// ClockDivider divides the driving clock down to the 100 Hz tick rate. It
// free-runs: it knows nothing about the run state, the counter decides
// whether to act on the pulse.
type ClockDivider struct {
	cyclesPerTick uint32
	count         uint32
}

// newDivider derives cyclesPerTick from the driving clock frequency.
// Frequencies below 100 Hz clamp to 1, so the machine degrades to one tick
// per cycle instead of failing.
func newDivider(hz int) ClockDivider {
	cpt := hz / 100
	if cpt < 1 {
		cpt = 1
	}
	return ClockDivider{cyclesPerTick: uint32(cpt)}
}

// step advances the divider one cycle and reports whether the tick-enable
// pulse fires. The pulse fires on the cycle the count reaches
// cyclesPerTick-1; the count restarts at 0 on the next.
func (d *ClockDivider) step() bool {
	if d.count == d.cyclesPerTick-1 {
		d.count = 0
		return true
	}
	d.count++
	return false
}

func (d *ClockDivider) clear() { d.count = 0 }
