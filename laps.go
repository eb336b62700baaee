package stopwatch

const maxLaps = 16

// LapMemory is a bounded store of lap records captured from the live
// counter. It survives a machine reset; only ClearLaps empties it.
type LapMemory struct {
	records [maxLaps]TimeValue
	n       uint8
}

// capture appends t. Once the store is full further captures are dropped.
func (lm *LapMemory) capture(t TimeValue) {
	if lm.n >= maxLaps {
		return
	}
	lm.records[lm.n] = t
	lm.n++
}

// Count returns the number of stored records.
func (lm *LapMemory) Count() int { return int(lm.n) }

// Record returns record i, or the zero value when i is out of range.
func (lm *LapMemory) Record(i int) TimeValue {
	if i < 0 || i >= int(lm.n) {
		return TimeValue{}
	}
	return lm.records[i]
}

// ClearLaps empties the store.
func (lm *LapMemory) ClearLaps() { *lm = LapMemory{} }
