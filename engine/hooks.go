package engine

import "github.com/sarchlab/akita/v4/sim"

// HookPosWireDriven marks a successful wire drive (DriveWire or the
// drive half of AssignWire). Item is the wire's numeric id.
var HookPosWireDriven = &sim.HookPos{Name: "Wire Driven"}

// HookPosRegisterStaged marks a successful register stage. Item is the
// register's numeric id.
var HookPosRegisterStaged = &sim.HookPos{Name: "Register Staged"}

// HookPosCycleCommitted marks the end of Step, after registers have
// committed and wires have been reset. Item is the cycle number just
// completed.
var HookPosCycleCommitted = &sim.HookPos{Name: "Cycle Committed"}

// HookPosTaskSuspended marks a task yielding control back to the
// scheduler because the wire it needs is not yet driven. Item is the
// task's name.
var HookPosTaskSuspended = &sim.HookPos{Name: "Task Suspended"}
