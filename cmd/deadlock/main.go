// Command deadlock schedules two tasks with a cyclic wire dependency
// (A waits on w1 then drives w2; B waits on w2 then drives w1) and
// shows the scheduler failing closed with a *engine.StallDeadlockError
// instead of hanging.
package main

import (
	"errors"
	"fmt"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/mafic/engine"
	"github.com/sarchlab/mafic/facade"
)

func main() {
	sim := facade.New()

	w1 := facade.AllocWire[uint32](sim)
	w2 := facade.AllocWire[uint32](sim)

	sim.Schedule("A", func(ctx *engine.Context) {
		v := engine.SampleWire(ctx, w1)
		engine.DriveWire(ctx, w2, v)
	})
	sim.Schedule("B", func(ctx *engine.Context) {
		v := engine.SampleWire(ctx, w2)
		engine.DriveWire(ctx, w1, v)
	})

	err := sim.Step()
	if err == nil {
		panic("expected a deadlock, but Step succeeded")
	}

	var deadlock *engine.StallDeadlockError
	if !errors.As(err, &deadlock) {
		panic(fmt.Sprintf("expected *engine.StallDeadlockError, got: %v", err))
	}
	fmt.Printf("deadlock: ok, pending tasks: %v\n", deadlock.Pending)

	atexit.Exit(0)
}
