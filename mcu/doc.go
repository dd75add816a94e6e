// Package mcu implements the simulated microcontroller core for mcusim.
//
// The core consists of a program counter (PC), a stack pointer (SP), a
// status register with interrupt and fault bits, and a call/context stack.
// Reset() walks the reset-to-main boot sequence, recording each stage in
// an ordered boot trace. Fault() halts the core and captures an immutable
// snapshot of the three registers for later triage.
package mcu
