package tracing

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/mafic/signal"
)

// Dump renders the wires and registers of state as two tables onto w,
// for a human debugging a stuck or misbehaving cycle. It never
// mutates state and is safe to call at any point in a cycle, including
// mid-stall from within a deadlock error handler.
func Dump(w io.Writer, state *signal.State) {
	dumpWires(w, state.Wires)
	dumpRegisters(w, state.Registers)
}

func dumpWires(w io.Writer, wm *signal.WireMap) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Wires")
	t.AppendHeader(table.Row{"ID", "Type", "Driven", "Value"})

	for _, s := range wm.Snapshot() {
		value := "-"
		if s.Driven {
			value = fmt.Sprintf("%v", s.Value)
		}
		t.AppendRow(table.Row{s.ID, s.Tag.String(), s.Driven, value})
	}

	t.Render()
}

func dumpRegisters(w io.Writer, rm *signal.RegisterMap) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Registers")
	t.AppendHeader(table.Row{"ID", "Type", "Current", "Pending"})

	for _, s := range rm.Snapshot() {
		pending := "-"
		if s.HasPending {
			pending = fmt.Sprintf("%v", s.Pending)
		}
		t.AppendRow(table.Row{s.ID, s.Tag.String(), fmt.Sprintf("%v", s.Current), pending})
	}

	t.Render()
}
