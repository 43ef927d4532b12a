package signal

import (
	"sort"
	"sync"
)

// StageOutcome reports whether a register drive landed on an empty
// pending slot or found one already staged this cycle.
type StageOutcome struct {
	Conflict bool
	Prev     any
}

type registerCell struct {
	tag        TypeTag
	current    any
	resetValue any
	pending    any
	hasPending bool
}

// RegisterMap allocates register cells and serves typed peeks/stages.
// A register's current value always exists; its pending slot is empty
// at the start of every cycle and set at most once by a drive.
type RegisterMap struct {
	mu     sync.Mutex
	cells  map[uint64]*registerCell
	nextID uint64
}

// NewRegisterMap constructs an empty RegisterMap. Ids are assigned
// monotonically starting at 1, independent of WireMap's namespace.
func NewRegisterMap() *RegisterMap {
	return &RegisterMap{cells: make(map[uint64]*registerCell), nextID: 1}
}

// AllocRegister allocates a new register with current = reset_value =
// init and an empty pending slot.
func AllocRegister[V any](rm *RegisterMap, init V) RegisterHandle[V] {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	id := rm.nextID
	rm.nextID++

	h := newRegisterHandle[V](id)
	rm.cells[id] = &registerCell{tag: h.tag, current: init, resetValue: init}
	return h
}

func (rm *RegisterMap) cellFor(id uint64, tag TypeTag) *registerCell {
	cell, ok := rm.cells[id]
	if !ok {
		panic(&UnknownHandleError{Kind: KindRegister, ID: id})
	}
	if cell.tag != tag {
		panic(&TypeMismatchError{Kind: KindRegister, ID: id, Want: cell.tag, Got: tag})
	}
	return cell
}

// PeekRegister returns the register's current value.
func PeekRegister[V any](rm *RegisterMap, h RegisterHandle[V]) V {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	cell := rm.cellFor(h.id, h.tag)
	return cell.current.(V)
}

// Stage sets the register's pending next value. Reports
// StageOutcome.Conflict if a pending value was already staged this
// cycle — last-writer-wins is never permitted.
func Stage[V any](rm *RegisterMap, h RegisterHandle[V], v V) StageOutcome {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	cell := rm.cellFor(h.id, h.tag)
	if cell.hasPending {
		return StageOutcome{Conflict: true, Prev: cell.pending}
	}
	cell.pending = v
	cell.hasPending = true
	return StageOutcome{}
}

// Commit moves every register's pending value into current and clears
// pending. Called only by the step driver at the end of a cycle.
func (rm *RegisterMap) Commit() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	for _, cell := range rm.cells {
		if cell.hasPending {
			cell.current = cell.pending
			cell.pending = nil
			cell.hasPending = false
		}
	}
}

// ResetAll sets every register's current value back to its reset
// value and clears any pending write. This is an explicit operation,
// never invoked automatically by Commit or the step driver.
func (rm *RegisterMap) ResetAll() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	for _, cell := range rm.cells {
		cell.current = cell.resetValue
		cell.pending = nil
		cell.hasPending = false
	}
}

// Len reports how many registers have been allocated, for diagnostics.
func (rm *RegisterMap) Len() int {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return len(rm.cells)
}

// RegisterSnapshot is a type-erased, read-only view of one register
// cell, for diagnostic dumps (see package tracing).
type RegisterSnapshot struct {
	ID         uint64
	Tag        TypeTag
	Current    any
	Pending    any
	HasPending bool
}

// Snapshot returns a point-in-time view of every allocated register,
// ordered by id.
func (rm *RegisterMap) Snapshot() []RegisterSnapshot {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	out := make([]RegisterSnapshot, 0, len(rm.cells))
	for id, cell := range rm.cells {
		out = append(out, RegisterSnapshot{
			ID: id, Tag: cell.tag, Current: cell.current,
			Pending: cell.pending, HasPending: cell.hasPending,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
