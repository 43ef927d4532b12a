package engine

import "github.com/sarchlab/akita/v4/sim"

// TickingAdapter lets an Engine be driven as one tick source inside a
// larger akita-based testbench, without making the Engine's own Step
// depend on an external event queue.
type TickingAdapter struct {
	name   string
	engine *Engine
}

// AsTickingComponent wraps e in a TickingAdapter named name.
func (e *Engine) AsTickingComponent(name string) *TickingAdapter {
	return &TickingAdapter{name: name, engine: e}
}

// Name returns the adapter's name, satisfying sim.Named.
func (a *TickingAdapter) Name() string { return a.name }

// Tick advances the wrapped Engine by one Step and reports whether the
// cycle made any observable change: at least one wire was driven
// during the cycle, the same signal an akita TickingComponent uses to
// decide whether to keep scheduling itself. now is accepted only to
// match akita's sim.TickingComponent.Tick shape; mafic's own cycle
// semantics do not depend on simulated time.
//
// Tick panics if Step returns an error (deadlock or step-limit
// overrun): a ticking testbench has no natural place to route a stall
// error other than up through its own panic/recover boundary.
func (a *TickingAdapter) Tick(now sim.VTimeInSec) bool {
	_ = now
	if err := a.engine.Step(); err != nil {
		panic(err)
	}

	return a.engine.LastStepDrivenCount() > 0
}
