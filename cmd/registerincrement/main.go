// Command registerincrement steps a single register-and-wire module
// three times and checks that the register value tracks the cycle
// count while out lags it by one.
package main

import (
	"fmt"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/mafic/engine"
	"github.com/sarchlab/mafic/facade"
)

func main() {
	sim := facade.New()

	reg := facade.AllocRegister(sim, uint32(0))
	out := facade.AllocWire[uint32](sim)

	for k := 1; k <= 3; k++ {
		sim.Schedule("incrementer", func(ctx *engine.Context) {
			v := engine.SampleRegister(ctx, reg)
			engine.DriveWire(ctx, out, v)
			engine.DriveRegister(ctx, reg, v+1)
		})

		if err := sim.Engine().Run(); err != nil {
			panic(err)
		}

		// Observe out before the wires are reset at the cycle boundary.
		outv, ok := facade.PeekWire(sim, out)
		if !ok || int(outv) != k-1 {
			panic(fmt.Sprintf("cycle %d: expected out = %d, got %d (driven=%v)", k, k-1, outv, ok))
		}

		sim.Engine().ResetWires()
		sim.Engine().CommitRegisters()

		got := facade.PeekRegister(sim, reg)
		if int(got) != k {
			panic(fmt.Sprintf("after step %d: expected reg = %d, got %d", k, k, got))
		}
		fmt.Printf("step %d: reg = %d\n", k, got)
	}

	fmt.Println("registerincrement: ok")
	atexit.Exit(0)
}
