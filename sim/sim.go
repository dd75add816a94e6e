// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mcusim/device"
	"github.com/ezrec/mcusim/internal"
	"github.com/ezrec/mcusim/mailbox"
	"github.com/ezrec/mcusim/mcu"
)

// Interrupt line assignments and their service routine vectors.
const (
	IRQ_UART  = 0
	IRQ_TIMER = 1
	IRQ_LINES = 2

	VECTOR_UART  = uint32(0x0000_0040)
	VECTOR_TIMER = uint32(0x0000_0044)
)

var _sim_defines = map[string]string{
	"IRQ_UART":     fmt.Sprintf("%v", IRQ_UART),
	"IRQ_TIMER":    fmt.Sprintf("%v", IRQ_TIMER),
	"VECTOR_UART":  fmt.Sprintf("0x%x", VECTOR_UART),
	"VECTOR_TIMER": fmt.Sprintf("0x%x", VECTOR_TIMER),
}

// Handler is an interrupt service routine. It runs in interrupt
// context: the core has already saved the interrupted PC on the stack.
type Handler func(s *Simulator)

// Simulator state. Core + mailbox + peripherals.
type Simulator struct {
	Verbose  bool // If set, enables verbose logging.
	*mcu.Mcu      // Reference to the core simulation.

	Mailbox  mailbox.Mailbox // ISR to main-loop handoff cell.
	Uart     device.Uart     // Serial IO peripheral.
	Timer    device.Timer    // Periodic interrupt peripheral.
	Watchdog device.Watchdog // Main-loop progress watchdog.

	Snapshot *mcu.Snapshot // Fault registers, captured at halt.

	Uptime int // Timer interrupts serviced since reset.
	Echoed int // Bytes consumed by the main loop since reset.

	// MainStall is the number of ticks after boot during which the
	// main loop is busy and does not poll the mailbox.
	MainStall int

	handler [IRQ_LINES]Handler
	vector  [IRQ_LINES]uint32

	stallLeft int
}

// NewSimulator creates a new simulator with the default service routines:
// the UART ISR moves a received byte into the mailbox, and the timer ISR
// counts uptime. The main loop polls the mailbox and echoes consumed
// bytes out the UART.
func NewSimulator() (s *Simulator) {
	s = &Simulator{
		Mcu: &mcu.Mcu{},
	}

	s.vector[IRQ_UART] = VECTOR_UART
	s.vector[IRQ_TIMER] = VECTOR_TIMER

	s.handler[IRQ_UART] = func(s *Simulator) {
		value, ok := s.Uart.Rx()
		if ok {
			s.Mailbox.Write(value)
		}
	}
	s.handler[IRQ_TIMER] = func(s *Simulator) {
		s.Uptime++
	}

	return
}

// Defines returns an iterator over all of the defines
func (s *Simulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_sim_defines),
		s.Mcu.Defines(),
		s.Uart.Defines(),
		s.Timer.Defines(),
		s.Watchdog.Defines(),
	)
}

// SetHandler replaces the service routine for an interrupt line.
func (s *Simulator) SetHandler(line int, handler Handler) {
	s.handler[line] = handler
}

// Reset the simulator state.
// - Runs the core boot sequence, recording the boot trace.
// - Resets all peripherals and clears the mailbox.
// - Discards any previous fault snapshot.
func (s *Simulator) Reset() {
	s.Mcu.Verbose = s.Verbose

	s.Mcu.Reset()
	s.Uart.Reset()
	s.Timer.Reset()
	s.Watchdog.Reset()
	s.Mailbox.Reset()

	s.Snapshot = nil
	s.Uptime = 0
	s.Echoed = 0
	s.stallLeft = s.MainStall
}

// BootTrace returns the ordered boot stage log from the last reset.
func (s *Simulator) BootTrace() mcu.BootTrace {
	return s.Mcu.Trace
}

// dispatch services one interrupt line: save context, run the service
// routine, restore context. A failed restore means the ISR unbalanced
// the stack, which is a fault.
func (s *Simulator) dispatch(line int) (err error) {
	if s.Verbose {
		log.Printf("sim: irq %v at tick %v", line, s.Mcu.Ticks)
	}

	s.Mcu.EnterIsr(s.vector[line])
	s.handler[line](s)
	err = s.Mcu.LeaveIsr()
	if err != nil {
		err = errors.Join(ErrIsrUnwind, err)
	}

	return
}

// Tick performs a single cycle of the simulation: peripherals tick,
// pending interrupts are serviced, then the main loop body runs once.
// done is reported when the UART input is exhausted and no byte is
// still in flight.
func (s *Simulator) Tick() (done bool, err error) {
	if s.Mcu.Halted() {
		done = true
		return
	}

	now := s.Mcu.Ticks

	var irqs [IRQ_LINES]bool
	irqs[IRQ_UART] = s.Uart.Tick(now)
	irqs[IRQ_TIMER] = s.Timer.Tick(now)
	s.Watchdog.Tick(now)

	for line, asserted := range irqs {
		if !asserted || !s.Mcu.IrqEnabled() {
			continue
		}
		err = s.dispatch(line)
		if err != nil {
			err = s.fault(err)
			return
		}
	}

	// Main loop body. While stalled, the mailbox is not polled.
	if s.stallLeft > 0 {
		s.stallLeft--
	} else {
		value, ok := s.Mailbox.TryRead()
		if ok {
			err = s.Uart.Tx(value)
			if err != nil && !errors.Is(err, device.ErrTxClosed) {
				err = s.fault(err)
				return
			}
			err = nil
			s.Echoed++
		}
		s.Watchdog.Pet()
	}

	s.Mcu.Ticks++

	if s.Watchdog.Expired() {
		err = s.fault(ErrWatchdog)
		return
	}

	done = s.Uart.Exhausted() && !s.Mailbox.Pending()

	return
}

// fault halts the core, captures the fault registers, and wraps the
// cause with the tick position.
func (s *Simulator) fault(cause error) (err error) {
	snap := s.Mcu.Fault()
	s.Snapshot = &snap

	if s.Verbose {
		log.Printf("sim: fault: %v\n%v", cause, snap)
	}

	err = &ErrSim{Ticks: snap.Ticks, Err: errors.Join(cause, mcu.ErrFaulted)}

	return
}

// Run ticks the simulation until it is done, faults, or the tick limit
// is reached.
func (s *Simulator) Run(limit int) (ticks int, err error) {
	s.Mcu.Verbose = s.Verbose

	for s.Mcu.Ticks < limit {
		var done bool
		done, err = s.Tick()
		if done || err != nil {
			break
		}
	}
	ticks = s.Mcu.Ticks

	return
}
