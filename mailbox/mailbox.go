// Package mailbox implements the single-slot handoff cell between an
// interrupt context and a main loop.
//
// The cell is one byte of payload guarded by a ready flag. The writer
// stores the payload before publishing the flag; the reader checks the
// flag before touching the payload, and clears it after consuming. The
// flag is atomic, so the payload store happens-before any read that
// observes the flag set.
package mailbox

import (
	"sync/atomic"
)

// Mailbox is a single-slot cell with one producer (the interrupt
// context) and one consumer (the main loop). No locks are used.
type Mailbox struct {
	Overruns int // Count of writes dropped while a value was pending.

	value byte
	ready atomic.Bool
}

// Write stores a value and publishes readiness.
// A write while a previous value is still unconsumed is dropped and
// counted as an overrun; the pending value is left intact.
func (mb *Mailbox) Write(value byte) {
	if mb.ready.Load() {
		mb.Overruns++
		return
	}

	// Payload before flag.
	mb.value = value
	mb.ready.Store(true)
}

// TryRead returns the pending value and clears readiness.
// Returns ok == false when no value is pending; that is the normal
// empty case, not an error.
func (mb *Mailbox) TryRead() (value byte, ok bool) {
	if !mb.ready.Load() {
		return
	}

	// Flag before payload.
	value = mb.value
	mb.ready.Store(false)
	ok = true

	return
}

// Pending reports whether a value is waiting to be consumed.
func (mb *Mailbox) Pending() bool {
	return mb.ready.Load()
}

// Reset discards any pending value and zeroes the overrun count.
func (mb *Mailbox) Reset() {
	mb.ready.Store(false)
	mb.value = 0
	mb.Overruns = 0
}
