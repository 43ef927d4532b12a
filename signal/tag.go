// Package signal implements the simulated signal state plane: wires
// (combinational, reset every cycle) and registers (stateful, committed
// at cycle boundaries). It holds no scheduling logic; see package engine
// for the cooperative task scheduler that drives this state to a
// per-cycle fixed point.
package signal

import "reflect"

// TypeTag identifies the value type carried by a handle. Two handles
// only ever compare equal if both their id and their TypeTag match,
// which is what lets WireMap/RegisterMap store values behind a single
// type-erased map while still rejecting a type-mismatched access.
type TypeTag struct {
	rt reflect.Type
}

func tagOf[V any]() TypeTag {
	var zero V
	return TypeTag{rt: reflect.TypeOf(&zero).Elem()}
}

// String renders the underlying Go type name, for diagnostics.
func (t TypeTag) String() string {
	if t.rt == nil {
		return "<untyped>"
	}
	return t.rt.String()
}

// Kind distinguishes a wire handle from a register handle. The two
// live in independent id namespaces (spec: "Ids share an independent
// namespace from wires").
type Kind int

const (
	// KindWire marks a handle allocated from a WireMap.
	KindWire Kind = iota
	// KindRegister marks a handle allocated from a RegisterMap.
	KindRegister
)

func (k Kind) String() string {
	switch k {
	case KindWire:
		return "wire"
	case KindRegister:
		return "register"
	default:
		return "unknown"
	}
}

// WireHandle is a cheap, copyable token identifying a wire cell. It
// carries no reference to the cell itself; all access goes back
// through the WireMap it was allocated from.
type WireHandle[V any] struct {
	id  uint64
	tag TypeTag
}

// ID returns the numeric identifier of the wire.
func (h WireHandle[V]) ID() uint64 { return h.id }

// Tag returns the value-type tag carried by the handle.
func (h WireHandle[V]) Tag() TypeTag { return h.tag }

func newWireHandle[V any](id uint64) WireHandle[V] {
	return WireHandle[V]{id: id, tag: tagOf[V]()}
}

// RegisterHandle is a cheap, copyable token identifying a register
// cell. See WireHandle.
type RegisterHandle[V any] struct {
	id  uint64
	tag TypeTag
}

// ID returns the numeric identifier of the register.
func (h RegisterHandle[V]) ID() uint64 { return h.id }

// Tag returns the value-type tag carried by the handle.
func (h RegisterHandle[V]) Tag() TypeTag { return h.tag }

func newRegisterHandle[V any](id uint64) RegisterHandle[V] {
	return RegisterHandle[V]{id: id, tag: tagOf[V]()}
}
