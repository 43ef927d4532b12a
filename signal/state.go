package signal

// State is the aggregate (WireMap, RegisterMap) pair that a scheduler
// shares exclusively with whichever task it is currently polling. It
// is never observed concurrently by two tasks: the engine grants
// exactly one task a turn at a time (see package engine).
type State struct {
	Wires     *WireMap
	Registers *RegisterMap
}

// NewState constructs an empty, independent State. Handles allocated
// from one State must never be used against another.
func NewState() *State {
	return &State{
		Wires:     NewWireMap(),
		Registers: NewRegisterMap(),
	}
}
