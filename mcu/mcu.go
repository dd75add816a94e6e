// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mcu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// Status register bit assignments.
const (
	STATUS_IRQ_ENABLE = uint32(1 << 0) // Interrupts are accepted.
	STATUS_IN_ISR     = uint32(1 << 1) // Executing in interrupt context.
	STATUS_FAULT      = uint32(1 << 2) // Core has faulted and halted.
	STATUS_SLEEP      = uint32(1 << 3) // Core is waiting for an interrupt.
)

// Simulated memory map constants.
const (
	RESET_VECTOR = uint32(0x0000_0004) // Address of the reset vector entry.
	MAIN_ENTRY   = uint32(0x0800_01c0) // Entry point of main().
	RAM_TOP      = uint32(0x2000_8000) // One past the end of RAM; initial SP.
	WORD_SIZE    = uint32(4)           // Stack slot size in bytes.
)

var _mcu_defines = map[string]string{
	"STATUS_IRQ_ENABLE": fmt.Sprintf("0x%x", STATUS_IRQ_ENABLE),
	"STATUS_IN_ISR":     fmt.Sprintf("0x%x", STATUS_IN_ISR),
	"STATUS_FAULT":      fmt.Sprintf("0x%x", STATUS_FAULT),
	"STATUS_SLEEP":      fmt.Sprintf("0x%x", STATUS_SLEEP),
	"RESET_VECTOR":      fmt.Sprintf("0x%x", RESET_VECTOR),
	"MAIN_ENTRY":        fmt.Sprintf("0x%x", MAIN_ENTRY),
	"RAM_TOP":           fmt.Sprintf("0x%x", RAM_TOP),
}

// Mcu is the simulation context for the microcontroller core.
type Mcu struct {
	Verbose bool // Set to enable verbose logging.

	Pc     uint32 // Program counter.
	Sp     uint32 // Stack pointer.
	Status uint32 // Status register.
	Stack  Stack  // Stack simulation.

	Ticks int // Core ticks counter.

	Trace BootTrace // Ordered trace of the most recent boot.
}

// Defines for the core
func (m *Mcu) Defines() iter.Seq2[string, string] {
	return maps.All(_mcu_defines)
}

// String returns the current core state as a string.
func (m *Mcu) String() (text string) {
	regs := []string{"pc", "sp", "status", "stack", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X_%04X", m.Pc>>16, m.Pc&0xffff)
		case "sp":
			strval = fmt.Sprintf("%04X_%04X", m.Sp>>16, m.Sp&0xffff)
		case "status":
			strval = fmt.Sprintf("%08b %v", m.Status, statusBits(m.Status))
		case "stack":
			val, ok := m.Stack.Peek()
			if ok {
				strval = fmt.Sprintf("%04X_%04X", val>>16, val&0xffff)
			} else {
				strval = "----_----"
			}
		case "ticks":
			strval = fmt.Sprintf("%v", m.Ticks)
		}
		text += fmt.Sprintf("% 7s: %v\n", reg, strval)
	}

	return
}

// statusBits decodes a status register value into its set bit names.
func statusBits(status uint32) (names []string) {
	bits := []struct {
		bit  uint32
		name string
	}{
		{STATUS_IRQ_ENABLE, "irq-enable"},
		{STATUS_IN_ISR, "in-isr"},
		{STATUS_FAULT, "fault"},
		{STATUS_SLEEP, "sleep"},
	}
	for _, b := range bits {
		if (status & b.bit) != 0 {
			names = append(names, b.name)
		}
	}

	return
}

// PushWord pushes a word, moving the stack pointer down one slot.
func (m *Mcu) PushWord(value uint32) {
	m.Sp -= WORD_SIZE
	m.Stack.Push(value)
}

// PopWord pops the most recent word, moving the stack pointer up one slot.
// The stack pointer is not moved on failure.
func (m *Mcu) PopWord() (value uint32, err error) {
	value, err = m.Stack.Pop()
	if err != nil {
		return
	}
	m.Sp += WORD_SIZE

	return
}

// Halted reports whether the core has stopped due to a fault.
func (m *Mcu) Halted() bool {
	return (m.Status & STATUS_FAULT) != 0
}

// IrqEnabled reports whether the core accepts interrupts.
func (m *Mcu) IrqEnabled() bool {
	return (m.Status&STATUS_IRQ_ENABLE) != 0 && !m.Halted()
}

// EnterIsr saves the interrupted PC on the stack and switches the core
// into interrupt context at the given vector.
func (m *Mcu) EnterIsr(vector uint32) {
	if m.Verbose {
		log.Printf("mcu: irq enter vector 0x%x from pc 0x%x", vector, m.Pc)
	}

	m.PushWord(m.Pc)
	m.Pc = vector
	m.Status |= STATUS_IN_ISR
}

// LeaveIsr restores the interrupted PC from the stack and returns the
// core to thread context. An empty stack here means the ISR unbalanced
// its pushes and pops.
func (m *Mcu) LeaveIsr() (err error) {
	pc, err := m.PopWord()
	if err != nil {
		return
	}

	m.Pc = pc
	m.Status &= ^STATUS_IN_ISR

	if m.Verbose {
		log.Printf("mcu: irq leave to pc 0x%x", m.Pc)
	}

	return
}
