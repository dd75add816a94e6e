package mcu

import (
	"fmt"
	"log"
	"strings"
)

// BootStage identifies one stage of the reset-to-main boot sequence.
type BootStage int

//go:generate go tool stringer -linecomment -type=BootStage
const (
	BOOT_RESET_VECTOR = BootStage(0) // reset-vector
	BOOT_STACK_INIT   = BootStage(1) // stack-init
	BOOT_DATA_COPY    = BootStage(2) // data-copy
	BOOT_BSS_ZERO     = BootStage(3) // bss-zero
	BOOT_RUNTIME_INIT = BootStage(4) // runtime-init
	BOOT_MAIN         = BootStage(5) // main
)

// Simulated image section sizes, in words.
const (
	BOOT_DATA_WORDS = 64 // .data words copied from flash to RAM.
	BOOT_BSS_WORDS  = 32 // .bss words zeroed.
)

// BootEntry records the completion of a single boot stage.
type BootEntry struct {
	Stage BootStage // Stage that completed.
	Ticks int       // Core tick count at completion.
}

// BootTrace is the ordered log of boot stages from the last reset.
type BootTrace []BootEntry

func (bt BootTrace) String() string {
	var b strings.Builder
	for _, entry := range bt {
		fmt.Fprintf(&b, "tick % 5d: %v\n", entry.Ticks, entry.Stage)
	}
	return b.String()
}

// Reset walks the core through the reset-to-main boot sequence.
// - Clears the registers, stack, and tick counter.
// - Initializes the stack pointer to the top of RAM.
// - Simulates the .data copy and .bss zero loops.
// - Enables interrupts and leaves the PC at the main() entry point.
// Each completed stage is appended to the boot trace in order.
func (m *Mcu) Reset() {
	if m.Verbose {
		log.Printf("mcu: reset")
	}

	m.Pc = 0
	m.Sp = 0
	m.Status = 0
	m.Stack.Reset()
	m.Ticks = 0
	m.Trace = nil

	stages := []BootStage{
		BOOT_RESET_VECTOR,
		BOOT_STACK_INIT,
		BOOT_DATA_COPY,
		BOOT_BSS_ZERO,
		BOOT_RUNTIME_INIT,
		BOOT_MAIN,
	}

	for _, stage := range stages {
		switch stage {
		case BOOT_RESET_VECTOR:
			m.Pc = RESET_VECTOR
			m.Ticks += 1
		case BOOT_STACK_INIT:
			m.Sp = RAM_TOP
			m.Ticks += 1
		case BOOT_DATA_COPY:
			// One tick per word, as the copy loop would cost.
			m.Ticks += BOOT_DATA_WORDS
		case BOOT_BSS_ZERO:
			m.Ticks += BOOT_BSS_WORDS
		case BOOT_RUNTIME_INIT:
			m.Status |= STATUS_IRQ_ENABLE
			m.Ticks += 1
		case BOOT_MAIN:
			m.Pc = MAIN_ENTRY
			m.Ticks += 1
		}

		m.Trace = append(m.Trace, BootEntry{Stage: stage, Ticks: m.Ticks})

		if m.Verbose {
			log.Printf("mcu: boot %v at tick %v", stage, m.Ticks)
		}
	}
}
