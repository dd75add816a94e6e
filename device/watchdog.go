package device

import (
	"fmt"
	"iter"
	"maps"
)

const (
	// WATCHDOG_DEFAULT_LIMIT is the default expiry limit in ticks.
	WATCHDOG_DEFAULT_LIMIT = 1024
)

var _watchdog_defines = map[string]string{
	"WATCHDOG_DEFAULT_LIMIT": fmt.Sprintf("%v", WATCHDOG_DEFAULT_LIMIT),
}

// Watchdog counts ticks since it was last petted. It never raises an
// interrupt; an expired watchdog is a fault condition the simulator
// checks for after every cycle.
type Watchdog struct {
	Limit int // Ticks without a pet before expiry.

	count int
}

var _ Device = (*Watchdog)(nil)

// Defines returns an iter of defines for the device.
func (wd *Watchdog) Defines() iter.Seq2[string, string] {
	return maps.All(_watchdog_defines)
}

// Reset restarts the expiry counter, applying the default limit if
// none was configured.
func (wd *Watchdog) Reset() {
	if wd.Limit == 0 {
		wd.Limit = WATCHDOG_DEFAULT_LIMIT
	}
	wd.count = 0
}

// Tick advances the watchdog one cycle.
func (wd *Watchdog) Tick(now int) (irq bool) {
	wd.count++

	return
}

// Pet restarts the expiry counter.
func (wd *Watchdog) Pet() {
	wd.count = 0
}

// Expired reports whether the limit has been exceeded.
func (wd *Watchdog) Expired() bool {
	return wd.count > wd.Limit
}
