package stopwatch

import "github.com/pkg/errors"

// Register offsets. One register per field, 4-byte stride, byte-wide values.
const (
	RegStart   = 0x00 // W  pulse: begin/resume counting
	RegPause   = 0x04 // W  pulse: freeze, preserve value
	RegStop    = 0x08 // W  pulse: freeze, preserve value
	RegReset   = 0x0c // W  pulse: clear to 00:00.00 and freeze
	RegMinutes = 0x10 // R  0-59
	RegSeconds = 0x14 // R  0-59
	RegTicks   = 0x18 // R  0-99, hundredths of a second

	RegLap      = 0x1c // W  pulse: capture current time into lap memory
	RegLapCount = 0x20 // R  number of stored lap records
	RegLapIdx   = 0x24 // W  select lap record for readback
	RegLapMin   = 0x28 // R  minutes of selected record
	RegLapSec   = 0x2c // R  seconds of selected record
	RegLapTick  = 0x30 // R  ticks of selected record
)

// Registers is the external read/write surface of a Stopwatch. It owns no
// time state of its own: writes forward pulses into the machine, reads
// reflect the machine as of its most recently completed Step, so a read
// never observes a partially carried triple.
type Registers struct {
	sw     *Stopwatch
	lapIdx uint8
}

func NewRegisters(sw *Stopwatch) *Registers { return &Registers{sw: sw} }

// Write stores v at off. The control and lap registers treat any nonzero v
// as a one-cycle pulse and a zero write as a no-op, so CSR-style drivers
// that write 1 then 0 issue exactly one pulse. There is no queuing: two
// pulses written in the same cycle resolve by the control priority alone.
func (r *Registers) Write(off uint32, v uint8) error {
	switch off {
	case RegStart:
		if v != 0 {
			r.sw.Start()
		}
	case RegPause:
		if v != 0 {
			r.sw.Pause()
		}
	case RegStop:
		if v != 0 {
			r.sw.Halt()
		}
	case RegReset:
		if v != 0 {
			r.sw.Clear()
		}
	case RegLap:
		if v != 0 {
			r.sw.Lap()
		}
	case RegLapIdx:
		r.lapIdx = v
	case RegMinutes, RegSeconds, RegTicks, RegLapCount, RegLapMin, RegLapSec, RegLapTick:
		return errors.Errorf("write to read-only register %#02x", off)
	default:
		return errors.Errorf("write to invalid register %#02x", off)
	}
	return nil
}

// Read returns the value at off. Reading a lap field with an index at or
// past the record count returns 0.
func (r *Registers) Read(off uint32) (uint8, error) {
	switch off {
	case RegMinutes:
		return r.sw.Time().Minutes, nil
	case RegSeconds:
		return r.sw.Time().Seconds, nil
	case RegTicks:
		return r.sw.Time().Ticks, nil
	case RegLapCount:
		return uint8(r.sw.Laps().Count()), nil
	case RegLapMin:
		return r.sw.Laps().Record(int(r.lapIdx)).Minutes, nil
	case RegLapSec:
		return r.sw.Laps().Record(int(r.lapIdx)).Seconds, nil
	case RegLapTick:
		return r.sw.Laps().Record(int(r.lapIdx)).Ticks, nil
	case RegStart, RegPause, RegStop, RegReset, RegLap, RegLapIdx:
		return 0, errors.Errorf("read from write-only register %#02x", off)
	default:
		return 0, errors.Errorf("read from invalid register %#02x", off)
	}
}
