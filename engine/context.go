package engine

import (
	"runtime"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mafic/signal"
)

// Context is what a running task body receives. It carries no engine
// API beyond the sample/drive helpers in this file — a task cannot
// reach into the scheduler to enqueue more work or inspect other
// tasks, matching the Rust source's ContextBuilder-ext-only surface.
type Context struct {
	state *signal.State
	task  *task
	eng   *Engine
}

// suspend reports a pending result to the engine and blocks until the
// engine grants the task another turn. Every suspension point in this
// package funnels through here. If the engine abandons the task
// instead of granting it another turn (Run returning a stall error),
// grant is closed rather than sent on, and the task exits immediately
// via runtime.Goexit instead of resuming the body — otherwise a task
// parked here when its Run call fails would block forever.
func (c *Context) suspend() {
	c.eng.InvokeHook(sim.HookCtx{
		Domain: c.eng,
		Pos:    HookPosTaskSuspended,
		Item:   c.task.name,
	})
	c.task.report <- taskResult{pending: true}
	if _, ok := <-c.task.grant; !ok {
		runtime.Goexit()
	}
}

// SampleWire blocks (suspending the task) until h has been driven this
// cycle, then returns its value.
func SampleWire[V any](ctx *Context, h signal.WireHandle[V]) V {
	for {
		v, ok := signal.PeekWire(ctx.state.Wires, h)
		if ok {
			return v
		}
		ctx.suspend()
	}
}

// DriveWire writes v to h. Panics with *signal.WireConflictError if h
// was already driven this cycle.
func DriveWire[V any](ctx *Context, h signal.WireHandle[V], v V) {
	outcome := signal.Write(ctx.state.Wires, h, v)
	if outcome.Conflict {
		panic(&signal.WireConflictError{ID: h.ID(), Prev: outcome.Prev, New: v})
	}
	ctx.eng.InvokeHook(sim.HookCtx{
		Domain: ctx.eng,
		Pos:    HookPosWireDriven,
		Item:   h.ID(),
	})
}

// AssignWire samples src and drives dst with the sampled value,
// suspending until src is driven. Equivalent to DriveWire(ctx, dst,
// SampleWire(ctx, src)) but kept as a single primitive for callers that
// only ever wire one signal straight through to another.
func AssignWire[V any](ctx *Context, src, dst signal.WireHandle[V]) {
	v := SampleWire(ctx, src)
	DriveWire(ctx, dst, v)
}

// SampleRegister returns h's current (pre-commit) value. Never
// suspends: a register always has a current value.
func SampleRegister[V any](ctx *Context, h signal.RegisterHandle[V]) V {
	return signal.PeekRegister(ctx.state.Registers, h)
}

// DriveRegister stages v as h's next value. Panics with
// *signal.RegisterConflictError if h was already staged this cycle.
func DriveRegister[V any](ctx *Context, h signal.RegisterHandle[V], v V) {
	outcome := signal.Stage(ctx.state.Registers, h, v)
	if outcome.Conflict {
		panic(&signal.RegisterConflictError{ID: h.ID(), Prev: outcome.Prev, New: v})
	}
	ctx.eng.InvokeHook(sim.HookCtx{
		Domain: ctx.eng,
		Pos:    HookPosRegisterStaged,
		Item:   h.ID(),
	})
}
