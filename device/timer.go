package device

import (
	"fmt"
	"iter"
	"maps"
)

const (
	// TIMER_DEFAULT_PERIOD is the default tick period for a new timer.
	TIMER_DEFAULT_PERIOD = 16
)

var _timer_defines = map[string]string{
	"TIMER_DEFAULT_PERIOD": fmt.Sprintf("%v", TIMER_DEFAULT_PERIOD),
}

// Timer is a free-running periodic interrupt source. It asserts its
// interrupt line for one cycle every Period ticks.
type Timer struct {
	Period int // Ticks between interrupts.
	Fires  int // Count of interrupts raised since reset.

	count int
}

var _ Device = (*Timer)(nil)

// Defines returns an iter of defines for the device.
func (tc *Timer) Defines() iter.Seq2[string, string] {
	return maps.All(_timer_defines)
}

// Reset restarts the period counter, applying the default period if
// none was configured.
func (tc *Timer) Reset() {
	if tc.Period == 0 {
		tc.Period = TIMER_DEFAULT_PERIOD
	}
	tc.count = 0
	tc.Fires = 0
}

// Tick advances the timer one cycle.
func (tc *Timer) Tick(now int) (irq bool) {
	tc.count++
	if tc.count < tc.Period {
		return
	}

	tc.count = 0
	tc.Fires++

	return true
}
