// stopwatch front panel and register-interface demo.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	stopwatch "github.com/DinhKhanhDang27/stopwatch-soc"
)

func main() {
	var cli struct {
		Run  runCmd  `cmd:"" default:"1" help:"interactive stopwatch front panel"`
		Demo demoCmd `cmd:"" help:"scripted control sequence through the register interface"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Hz int `name:"hz" default:"100" help:"driving clock frequency"`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	sw := stopwatch.New(r.Hz)

	restore, err := rawmode(os.Stdin.Fd())
	if err != nil {
		return err
	}
	defer restore()

	keys := make(chan byte)
	go func() {
		var buf [1]byte
		for {
			if _, err := os.Stdin.Read(buf[:]); err != nil {
				close(keys)
				return
			}
			keys <- buf[0]
		}
	}()

	// One tick is 1/100 s, so each 10 ms of wall clock runs the cycles that
	// make up one tick.
	cycles := r.Hz / 100
	if cycles < 1 {
		cycles = 1
	}
	ticks := time.NewTicker(10 * time.Millisecond)
	defer ticks.Stop()

	fmt.Println("s start  p pause  x stop  r reset  l lap  q quit")
	for {
		select {
		case c, ok := <-keys:
			if !ok {
				return nil
			}
			switch c {
			case 's':
				sw.Start()
			case 'p':
				sw.Pause()
			case 'x':
				sw.Halt()
			case 'r':
				sw.Clear()
			case 'l':
				sw.Lap()
			case 'q':
				fmt.Println()
				printlaps(sw.Laps())
				return nil
			}
		case <-ticks.C:
			for i := 0; i < cycles; i++ {
				sw.Step()
			}
			fmt.Printf("\r%s  %-7s  laps %2d ", sw.Time(), sw.State(), sw.Laps().Count())
		}
	}
}

func printlaps(lm *stopwatch.LapMemory) {
	for i := 0; i < lm.Count(); i++ {
		fmt.Printf("lap %2d  %s\n", i+1, lm.Record(i))
	}
}

type demoCmd struct {
	Hz int `name:"hz" default:"200" help:"driving clock frequency"`
}

// Run drives a scripted start/pause/resume/stop/reset sequence against the
// register interface, CSR-driver style: write 1, cycle, write 0, cycle.
func (d *demoCmd) Run(ctx *kong.Context) error {
	sw := stopwatch.New(d.Hz)
	regs := stopwatch.NewRegisters(sw)

	cycles := d.Hz / 100
	if cycles < 1 {
		cycles = 1
	}
	pulse := func(off uint32) error {
		if err := regs.Write(off, 1); err != nil {
			return err
		}
		sw.Step()
		if err := regs.Write(off, 0); err != nil {
			return err
		}
		sw.Step()
		return nil
	}
	show := func(label string) error {
		var v [3]uint8
		for i, off := range []uint32{stopwatch.RegMinutes, stopwatch.RegSeconds, stopwatch.RegTicks} {
			b, err := regs.Read(off)
			if err != nil {
				return err
			}
			v[i] = b
		}
		fmt.Printf("  %-18s %02d:%02d.%02d\n", label, v[0], v[1], v[2])
		return nil
	}

	for _, s := range []struct {
		label string
		off   uint32
		ticks int
	}{
		{"reset", stopwatch.RegReset, 0},
		{"start, 10 ticks", stopwatch.RegStart, 10},
		{"pause, 15 ticks", stopwatch.RegPause, 15},
		{"resume, 8 ticks", stopwatch.RegStart, 8},
		{"stop, 20 ticks", stopwatch.RegStop, 20},
		{"resume, 5 ticks", stopwatch.RegStart, 5},
		{"reset again", stopwatch.RegReset, 0},
	} {
		if err := pulse(s.off); err != nil {
			return err
		}
		for i := 0; i < s.ticks*cycles; i++ {
			sw.Step()
		}
		if err := show(s.label); err != nil {
			return err
		}
	}
	return nil
}
