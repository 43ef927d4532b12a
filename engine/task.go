package engine

// taskResult is sent from a task's goroutine back to the scheduler at
// every yield point: either it suspended (Pending) or its body
// returned (Pending == false, final).
type taskResult struct {
	pending bool
}

// task is the goroutine-backed counterpart of the Rust source's pinned
// boxed future. Unlike a future, a task never exposes a poll method to
// the scheduler: it runs synchronously on its own goroutine and only
// ever talks back through grant/report, reproducing poll-only-yields-
// at-Pending semantics without a compiler-generated state machine.
type task struct {
	name string

	// grant is sent by the engine to let the task's goroutine run (or
	// resume after a suspend). Unbuffered: the engine never grants a
	// second turn until the first has been acknowledged.
	grant chan struct{}

	// report is sent by the task's goroutine back to the engine,
	// either from a suspend point (pending=true) or once the body has
	// returned (pending=false).
	report chan taskResult
}

func newTask(name string) *task {
	return &task{
		name:   name,
		grant:  make(chan struct{}),
		report: make(chan taskResult),
	}
}

// cancel unblocks a task parked on a suspend point without granting it
// another turn. Closing grant makes the pending receive in
// Context.suspend return immediately with ok == false, which the task
// goroutine takes as its signal to exit via runtime.Goexit instead of
// resuming the body.
func (t *task) cancel() {
	close(t.grant)
}

// start launches the task's goroutine. It blocks immediately on the
// first grant; nothing runs until the engine gives it its first turn.
func (t *task) start(ctx *Context, body TaskFunc) {
	go func() {
		if _, ok := <-t.grant; !ok {
			return
		}
		body(ctx)
		t.report <- taskResult{pending: false}
	}()
}

// taskQueue is a plain FIFO; the engine pops the whole queue length at
// the start of a rotation so it can detect a full pass with no
// progress.
type taskQueue struct {
	items []*task
}

func newTaskQueue() *taskQueue {
	return &taskQueue{}
}

func (q *taskQueue) pushBack(t *task) {
	q.items = append(q.items, t)
}

func (q *taskQueue) popFront() *task {
	t := q.items[0]
	q.items = q.items[1:]
	return t
}

func (q *taskQueue) len() int {
	return len(q.items)
}

func (q *taskQueue) names() []string {
	names := make([]string, len(q.items))
	for i, t := range q.items {
		names[i] = t.name
	}
	return names
}
