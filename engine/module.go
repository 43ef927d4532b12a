package engine

// TaskFunc is the body of a scheduled task. It runs on its own
// goroutine and communicates with the Engine only through the Context
// it is given and the sample/drive helpers in this package.
type TaskFunc func(ctx *Context)

// Module is the entire contract the engine requires of a simulated
// component. RunBody is called once per ScheduleModule invocation and
// must return a human-readable name and the task body to enqueue.
//
// mafic intentionally does not mandate a NewInstance-style allocator
// constructor on Module: wire/register allocation is the caller's
// concern, performed however it likes before ScheduleModule is called.
type Module interface {
	RunBody() (name string, body TaskFunc)
}
