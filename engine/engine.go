package engine

import (
	"sync/atomic"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mafic/signal"
)

// defaultStepLimit bounds a single Run: the total number of task
// grants that resulted in a suspend, across the whole cycle, not just
// one rotation. It exists to turn a modeling bug (a task that can
// never be unblocked) into a returned error instead of a hang. Because
// it counts suspends rather than rotations, a wide acyclic dependency
// chain can trip it on a legitimate schedule before draining; raise it
// with WithStepLimit for models with many sequential hops per cycle.
const defaultStepLimit = 1024

// Engine is a single-threaded, cooperative scheduler that drives a
// signal.State to a per-cycle fixed point. It owns no goroutines of
// its own beyond the ones it starts for scheduled tasks, and performs
// no I/O; everything it does is driven by explicit calls to Step (or
// Run directly, for single-cycle use).
type Engine struct {
	sim.HookableBase

	state *signal.State
	tasks *taskQueue

	steps     int
	cycles    int
	stepLimit int

	lastStepDrivenCount int

	running atomic.Bool
}

// Option configures an Engine constructed with New.
type Option func(*Engine)

// WithStepLimit overrides the default per-Run step limit.
func WithStepLimit(n int) Option {
	return func(e *Engine) { e.stepLimit = n }
}

// New constructs an Engine bound to state, applying any Options.
func New(state *signal.State, opts ...Option) *Engine {
	e := &Engine{
		state:     state,
		tasks:     newTaskQueue(),
		stepLimit: defaultStepLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Builder is a fluent alternative to New; the facade and cmd/* samples
// construct their engines with New. Its zero value is a usable builder
// with the default step limit.
type Builder struct {
	stepLimit int
}

// NewBuilder returns a Builder with the default step limit.
func NewBuilder() Builder {
	return Builder{}
}

// WithStepLimit sets the step limit for the Engine to be built.
func (b Builder) WithStepLimit(n int) Builder {
	b.stepLimit = n
	return b
}

// Build constructs the Engine bound to state.
func (b Builder) Build(state *signal.State) *Engine {
	limit := b.stepLimit
	if limit == 0 {
		limit = defaultStepLimit
	}
	return New(state, WithStepLimit(limit))
}

// Schedule enqueues a new task and starts its goroutine. It panics
// with *ReentrantScheduleError if called while Run is executing.
func (e *Engine) Schedule(name string, body TaskFunc) {
	if e.running.Load() {
		panic(&ReentrantScheduleError{})
	}

	t := newTask(name)
	ctx := &Context{state: e.state, task: t, eng: e}
	t.start(ctx, body)
	e.tasks.pushBack(t)
}

// ScheduleModule calls m.RunBody and schedules the returned task.
func (e *Engine) ScheduleModule(m Module) {
	name, body := m.RunBody()
	e.Schedule(name, body)
}

// Run drains the task queue to a single-cycle fixed point: every task
// is granted a turn in FIFO order; a task that suspends is pushed back
// to the end of the queue; a task that finishes is dropped. A full
// rotation (one pass over every task present at its start) that
// completes no task and drives no new wire, while tasks remain queued,
// is a deadlock. Exceeding the step limit aborts the run.
//
// Run returns nil once the queue drains. It never panics on its own
// account; a *signal.WireConflictError or *signal.TypeMismatchError
// raised by a task body propagates up through the task's goroutine as
// a panic that crashes the process — that is a broken model, not a
// property of the schedule. Run only returns the conditions that are
// legitimately about the schedule itself: deadlock and step-limit
// exhaustion.
func (e *Engine) Run() error {
	e.running.Store(true)
	defer e.running.Store(false)

	runSteps := 0
	for e.tasks.len() > 0 {
		rotationLen := e.tasks.len()
		drivenBefore := e.state.Wires.DrivenCount()
		completed := false

		for i := 0; i < rotationLen; i++ {
			t := e.tasks.popFront()

			t.grant <- struct{}{}
			result := <-t.report

			if result.pending {
				e.steps++
				runSteps++
				if runSteps > e.stepLimit {
					t.cancel()
					e.abandon()
					return &StallLimitError{Limit: e.stepLimit, Steps: runSteps}
				}
				e.tasks.pushBack(t)
			} else {
				completed = true
			}
		}

		drivenAfter := e.state.Wires.DrivenCount()
		if !completed && drivenAfter == drivenBefore && e.tasks.len() > 0 {
			pending := e.tasks.names()
			e.abandon()
			return &StallDeadlockError{Pending: pending}
		}
	}

	return nil
}

// abandon cancels every task still queued, so their goroutines exit
// instead of blocking forever on a grant that a failed Run will never
// send. Called only on the error paths out of Run.
func (e *Engine) abandon() {
	for e.tasks.len() > 0 {
		e.tasks.popFront().cancel()
	}
}

// ResetWires resets every wire back to undriven.
func (e *Engine) ResetWires() {
	e.state.Wires.Reset()
}

// CommitRegisters moves every register's staged value into current.
func (e *Engine) CommitRegisters() {
	e.state.Registers.Commit()
}

// Step advances simulated time by exactly one clock cycle: it runs the
// queue to a fixed point, then resets wires and commits registers. If
// Run returns an error, the cycle is not committed: wires are left as
// they were and registers are not committed, so the caller can inspect
// the stalled state before deciding what to do.
func (e *Engine) Step() error {
	if err := e.Run(); err != nil {
		return err
	}

	e.lastStepDrivenCount = e.state.Wires.DrivenCount()
	e.ResetWires()
	e.CommitRegisters()
	e.cycles++

	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosCycleCommitted,
		Item:   e.cycles,
	})

	return nil
}

// Cycles reports how many cycles have been committed by Step.
func (e *Engine) Cycles() int { return e.cycles }

// Steps reports the cumulative number of task suspensions across every
// Run this Engine has performed.
func (e *Engine) Steps() int { return e.steps }

// LastStepDrivenCount reports how many wires were driven during the
// most recently completed Step, measured just before they were reset.
// Used by TickingAdapter to decide whether a tick made progress.
func (e *Engine) LastStepDrivenCount() int { return e.lastStepDrivenCount }
