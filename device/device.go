// Package device provides peripheral models for the mcusim simulator.
// It includes a byte-level serial port (Uart), a periodic interrupt
// source (Timer), and a Watchdog that trips a fault when the main loop
// stops making progress.
package device

// Device defines the interface for all peripherals in the simulator.
// Devices advance one cycle per Tick and report whether their interrupt
// line is asserted for that cycle.
type Device interface {
	// Reset returns the device to its initial state.
	Reset()
	// Tick advances the device one cycle and reports an interrupt request.
	Tick(now int) (irq bool)
}
