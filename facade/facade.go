// Package facade is the thin external convenience layer over signal
// and engine: allocate signals, schedule modules, step a cycle,
// without the caller ever touching a *signal.State directly.
package facade

import (
	"sync"

	"github.com/sarchlab/mafic/engine"
	"github.com/sarchlab/mafic/signal"
)

// Simulation bundles a signal.State with one or more engines bound to
// it. The zero value is not usable; construct with New.
//
// Unlike the Rust source's thread_local singleton, Simulation carries
// no package-level global state: each New call produces an
// independent simulation. A sync.Mutex serializes the Simulation's own
// Schedule, ScheduleModule and Step calls. Engines reached through
// Engine or NewEngine are not covered by that lock, so two goroutines
// can still drive the same state at once through them.
type Simulation struct {
	mu sync.Mutex

	state  *signal.State
	engine *engine.Engine
}

// New constructs a fresh Simulation with its own signal.State and a
// default Engine bound to it.
func New(opts ...engine.Option) *Simulation {
	state := signal.NewState()
	return &Simulation{
		state:  state,
		engine: engine.New(state, opts...),
	}
}

// AllocWire allocates a new wire over the simulation's shared state.
func AllocWire[V any](s *Simulation) signal.WireHandle[V] {
	return signal.AllocWire[V](s.state.Wires)
}

// AllocRegister allocates a new register with the given reset value.
func AllocRegister[V any](s *Simulation, init V) signal.RegisterHandle[V] {
	return signal.AllocRegister(s.state.Registers, init)
}

// PeekWire returns a wire's value and whether it has been driven this
// cycle.
func PeekWire[V any](s *Simulation, h signal.WireHandle[V]) (V, bool) {
	return signal.PeekWire(s.state.Wires, h)
}

// PeekRegister returns a register's current (pre-commit) value.
func PeekRegister[V any](s *Simulation, h signal.RegisterHandle[V]) V {
	return signal.PeekRegister(s.state.Registers, h)
}

// NewEngine constructs an additional Engine bound to the same shared
// state, e.g. a reset-driver engine run with a different step limit
// than the simulation's default engine.
func (s *Simulation) NewEngine(opts ...engine.Option) *engine.Engine {
	return engine.New(s.state, opts...)
}

// Schedule enqueues a task on the simulation's default engine.
func (s *Simulation) Schedule(name string, body engine.TaskFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Schedule(name, body)
}

// ScheduleModule enqueues a module's task on the simulation's default
// engine.
func (s *Simulation) ScheduleModule(m engine.Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.ScheduleModule(m)
}

// Step advances the simulation's default engine by one cycle.
func (s *Simulation) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Step()
}

// Engine exposes the simulation's default engine for callers that need
// direct access (e.g. to read Cycles/Steps or wrap it in
// engine.AsTickingComponent).
func (s *Simulation) Engine() *engine.Engine { return s.engine }

// State exposes the simulation's shared signal state for callers
// composing additional engines or tracing tools over it.
func (s *Simulation) State() *signal.State { return s.state }
