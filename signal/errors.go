package signal

import "fmt"

// UnknownHandleError is raised when a handle refers to an id that was
// never allocated from the map it is being used against.
type UnknownHandleError struct {
	Kind Kind
	ID   uint64
}

func (e *UnknownHandleError) Error() string {
	return fmt.Sprintf("signal: unknown %s handle id %d", e.Kind, e.ID)
}

// TypeMismatchError is raised when a handle's TypeTag disagrees with
// the value type at the call site, or with the tag recorded when the
// cell was allocated.
type TypeMismatchError struct {
	Kind     Kind
	ID       uint64
	Want, Got TypeTag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("signal: type mismatch on %s %d: cell holds %s, accessed as %s",
		e.Kind, e.ID, e.Want, e.Got)
}

// WireConflictError is raised when a wire is driven a second time in
// the same cycle. Drive conflicts are never silently resolved
// last-writer-wins.
type WireConflictError struct {
	ID        uint64
	Prev, New any
}

func (e *WireConflictError) Error() string {
	return fmt.Sprintf("signal: wire %d driven twice in one cycle: had %#v, attempted %#v",
		e.ID, e.Prev, e.New)
}

// RegisterConflictError is raised when a register's pending slot is
// staged a second time in the same cycle.
type RegisterConflictError struct {
	ID        uint64
	Prev, New any
}

func (e *RegisterConflictError) Error() string {
	return fmt.Sprintf("signal: register %d staged twice in one cycle: had %#v, attempted %#v",
		e.ID, e.Prev, e.New)
}
