package engine

import (
	"fmt"
	"strings"
)

// StallDeadlockError is returned by Run/Step when a full rotation of
// the task queue completes with no task finishing and no new wire
// becoming driven, while tasks remain queued. Pending lists the names
// of the tasks still waiting, in queue order, for diagnostics.
type StallDeadlockError struct {
	Pending []string
}

func (e *StallDeadlockError) Error() string {
	return fmt.Sprintf("engine: deadlock, no progress with %d task(s) still pending: %s",
		len(e.Pending), strings.Join(e.Pending, ", "))
}

// StallLimitError is returned by Run/Step when the scheduler's total
// step count (task grants that resulted in a suspend) exceeds Limit
// without the queue draining.
type StallLimitError struct {
	Limit int
	Steps int
}

func (e *StallLimitError) Error() string {
	return fmt.Sprintf("engine: step limit exceeded: %d steps against a limit of %d", e.Steps, e.Limit)
}

// ReentrantScheduleError is raised when Schedule or ScheduleModule is
// called while Run is already executing on the same Engine. Scheduling
// new work mid-cycle has no well-defined place in the current
// rotation, so it is rejected rather than silently queued or dropped.
type ReentrantScheduleError struct{}

func (e *ReentrantScheduleError) Error() string {
	return "engine: Schedule called reentrantly while Run is executing"
}
