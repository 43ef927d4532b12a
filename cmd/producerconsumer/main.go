// Command producerconsumer runs the canonical producer/consumer
// scenario: two tasks trading values over a pair of wires within a
// single cycle, regardless of scheduling order.
package main

import (
	"fmt"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/mafic/engine"
	"github.com/sarchlab/mafic/facade"
)

func main() {
	sim := facade.New()

	m := facade.AllocWire[uint32](sim)
	r := facade.AllocWire[uint32](sim)

	sim.Schedule("A", func(ctx *engine.Context) {
		engine.DriveWire(ctx, m, 0xdeadbeef)
		v := engine.SampleWire(ctx, r)
		if v != 0xdeadbeef+1 {
			panic(fmt.Sprintf("A: expected r = 0x%x, got 0x%x", 0xdeadbeef+1, v))
		}
		fmt.Printf("A observed r = 0x%x\n", v)
	})
	sim.Schedule("B", func(ctx *engine.Context) {
		v := engine.SampleWire(ctx, m)
		engine.DriveWire(ctx, r, v+1)
	})

	if err := sim.Step(); err != nil {
		panic(err)
	}

	fmt.Println("producerconsumer: ok")
	atexit.Exit(0)
}
