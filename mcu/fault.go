package mcu

import (
	"fmt"
	"strings"
)

// Snapshot is the register state captured when the core faulted.
// A Snapshot is a copy, not a live view; it never changes after capture.
type Snapshot struct {
	Pc     uint32 // Program counter at the fault.
	Sp     uint32 // Stack pointer at the fault.
	Status uint32 // Status register at the fault.
	Ticks  int    // Core tick count at the fault.
}

// Fault halts the core and captures the fault registers.
// The fault bit is set before capture, so the snapshot records the
// core as halted.
func (m *Mcu) Fault() (snap Snapshot) {
	m.Status |= STATUS_FAULT

	snap = Snapshot{
		Pc:     m.Pc,
		Sp:     m.Sp,
		Status: m.Status,
		Ticks:  m.Ticks,
	}

	return
}

// String renders the fault triage report: the three inspected registers
// and the decoded status bits.
func (snap Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fault at tick %v\n", snap.Ticks)
	fmt.Fprintf(&b, "    pc: %04X_%04X\n", snap.Pc>>16, snap.Pc&0xffff)
	fmt.Fprintf(&b, "    sp: %04X_%04X\n", snap.Sp>>16, snap.Sp&0xffff)
	fmt.Fprintf(&b, "status: %08b %v\n", snap.Status, statusBits(snap.Status))
	return b.String()
}
