package sim

import (
	"errors"

	"github.com/ezrec/mcusim/translate"
)

var f = translate.From

var (
	// Fault causes
	ErrWatchdog  = errors.New(f("watchdog expired"))
	ErrIsrUnwind = errors.New(f("isr context unwind"))
)

// ErrSim indicates the tick at which a simulation error occurred.
type ErrSim struct {
	Ticks int
	Err   error
}

func (err *ErrSim) Error() string {
	return f("tick %d %v", err.Ticks, err.Err)
}

func (err *ErrSim) Unwrap() error {
	return err.Err
}
