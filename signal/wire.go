package signal

import (
	"sort"
	"sync"
)

// WriteOutcome reports whether a wire drive landed on an empty cell or
// found one already driven this cycle.
type WriteOutcome struct {
	// Conflict is true if the cell already held a value.
	Conflict bool
	// Prev is the value that was already present, only meaningful when
	// Conflict is true.
	Prev any
}

type wireCell struct {
	tag    TypeTag
	value  any
	driven bool
}

// WireMap allocates wire cells and serves typed peeks/writes. A wire's
// state is None (undriven) at the start of every cycle and becomes
// Some(v) on its first drive; cycle isolation is restored by Reset.
type WireMap struct {
	mu     sync.Mutex
	cells  map[uint64]*wireCell
	nextID uint64
}

// NewWireMap constructs an empty WireMap. Ids are assigned
// monotonically starting at 1.
func NewWireMap() *WireMap {
	return &WireMap{cells: make(map[uint64]*wireCell), nextID: 1}
}

// AllocWire allocates a new wire cell with empty state and returns a
// handle carrying V's type tag.
func AllocWire[V any](wm *WireMap) WireHandle[V] {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	id := wm.nextID
	wm.nextID++

	h := newWireHandle[V](id)
	wm.cells[id] = &wireCell{tag: h.tag}
	return h
}

func (wm *WireMap) cellFor(id uint64, tag TypeTag) *wireCell {
	cell, ok := wm.cells[id]
	if !ok {
		panic(&UnknownHandleError{Kind: KindWire, ID: id})
	}
	if cell.tag != tag {
		panic(&TypeMismatchError{Kind: KindWire, ID: id, Want: cell.tag, Got: tag})
	}
	return cell
}

// PeekWire returns the current value of the wire, and whether it has
// been driven yet this cycle. Panics if h is unknown or type-mismatched.
func PeekWire[V any](wm *WireMap, h WireHandle[V]) (V, bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	cell := wm.cellFor(h.id, h.tag)
	if !cell.driven {
		var zero V
		return zero, false
	}
	return cell.value.(V), true
}

// Write drives the wire cell with v. It reports WriteOutcome.Conflict
// if the cell was already driven this cycle; the caller (engine) is
// responsible for turning a conflict into a fatal WireConflictError —
// WireMap itself only reports the fact.
func Write[V any](wm *WireMap, h WireHandle[V], v V) WriteOutcome {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	cell := wm.cellFor(h.id, h.tag)
	if cell.driven {
		return WriteOutcome{Conflict: true, Prev: cell.value}
	}
	cell.value = v
	cell.driven = true
	return WriteOutcome{}
}

// Reset clears every wire cell back to undriven, restoring the cycle
// isolation invariant. Called only by the step driver, never mid-cycle.
func (wm *WireMap) Reset() {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	for _, cell := range wm.cells {
		cell.value = nil
		cell.driven = false
	}
}

// Len reports how many wires have been allocated, for diagnostics.
func (wm *WireMap) Len() int {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	return len(wm.cells)
}

// DrivenCount reports how many wires currently hold a value. Used by
// the engine's no-progress detector to notice whether a rotation drove
// any new wire, without needing to know which task drove it.
func (wm *WireMap) DrivenCount() int {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	n := 0
	for _, cell := range wm.cells {
		if cell.driven {
			n++
		}
	}
	return n
}

// WireSnapshot is a type-erased, read-only view of one wire cell, for
// diagnostic dumps (see package tracing). It is never used by the
// scheduler itself.
type WireSnapshot struct {
	ID     uint64
	Tag    TypeTag
	Driven bool
	Value  any
}

// Snapshot returns a point-in-time view of every allocated wire,
// ordered by id.
func (wm *WireMap) Snapshot() []WireSnapshot {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	out := make([]WireSnapshot, 0, len(wm.cells))
	for id, cell := range wm.cells {
		out = append(out, WireSnapshot{ID: id, Tag: cell.tag, Driven: cell.driven, Value: cell.value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
