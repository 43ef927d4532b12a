// Command rom models a 16-word read-only memory exposed through two
// independent read ports, only one of which is enabled this cycle.
package main

import (
	"fmt"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/mafic/engine"
	"github.com/sarchlab/mafic/facade"
	"github.com/sarchlab/mafic/signal"
)

const romSize = 16

type readPort struct {
	idx  signal.WireHandle[int]
	en   signal.WireHandle[bool]
	data signal.WireHandle[uint32]
}

type rom struct {
	words [romSize]uint32
	ports [2]readPort
}

func newROM(sim *facade.Simulation) *rom {
	r := &rom{}
	for i := range r.words {
		r.words[i] = uint32(i)
	}
	for i := range r.ports {
		r.ports[i] = readPort{
			idx:  facade.AllocWire[int](sim),
			en:   facade.AllocWire[bool](sim),
			data: facade.AllocWire[uint32](sim),
		}
	}
	return r
}

func (r *rom) RunBody() (string, engine.TaskFunc) {
	return "rom", func(ctx *engine.Context) {
		for _, p := range r.ports {
			if engine.SampleWire(ctx, p.en) {
				idx := engine.SampleWire(ctx, p.idx)
				engine.DriveWire(ctx, p.data, r.words[idx])
			}
		}
	}
}

func main() {
	sim := facade.New()
	m := newROM(sim)

	sim.Schedule("stimulus", func(ctx *engine.Context) {
		engine.DriveWire(ctx, m.ports[0].idx, 5)
		engine.DriveWire(ctx, m.ports[0].en, true)
		engine.DriveWire(ctx, m.ports[1].en, false)
	})
	sim.ScheduleModule(m)

	if err := sim.Engine().Run(); err != nil {
		panic(err)
	}

	data0, ok0 := signal.PeekWire(sim.State().Wires, m.ports[0].data)
	if !ok0 || data0 != 5 {
		panic(fmt.Sprintf("expected rp[0].data = 5, got 0x%x (driven=%v)", data0, ok0))
	}
	fmt.Printf("rp[0].data = %d\n", data0)

	_, ok1 := signal.PeekWire(sim.State().Wires, m.ports[1].data)
	if ok1 {
		panic("expected rp[1].data to remain undriven")
	}
	fmt.Println("rp[1].data = <undriven>, as expected")

	fmt.Println("rom: ok")
	atexit.Exit(0)
}
