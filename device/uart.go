package device

import (
	"io"
	"iter"
	"maps"
)

// Uart provides byte-level serial I/O for the simulator. It wraps an
// io.Reader for receive data and an io.Writer for transmit data, and
// asserts its interrupt line while a received byte is waiting.
type Uart struct {
	Input  io.Reader
	Output io.Writer

	hasInput  bool
	lastInput byte
	eof       bool
}

var _ Device = (*Uart)(nil)

// Defines returns an iter of defines for the device.
func (uc *Uart) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Reset discards any undelivered receive byte.
func (uc *Uart) Reset() {
	uc.hasInput = false
	uc.lastInput = 0
	uc.eof = false
}

// Tick fetches at most one byte from the input stream per cycle.
// The interrupt line stays asserted until the byte is delivered via Rx.
func (uc *Uart) Tick(now int) (irq bool) {
	if uc.hasInput {
		return true
	}
	if uc.Input == nil || uc.eof {
		return
	}

	var one [1]byte
	_, err := uc.Input.Read(one[:])
	if err != nil {
		uc.eof = true
		return
	}
	uc.lastInput = one[0]
	uc.hasInput = true

	return true
}

// Rx delivers the waiting receive byte, clearing the interrupt condition.
func (uc *Uart) Rx() (value byte, ok bool) {
	if !uc.hasInput {
		return
	}

	value = uc.lastInput
	uc.hasInput = false
	ok = true

	return
}

// Exhausted reports that the input stream has ended and no receive
// byte is waiting.
func (uc *Uart) Exhausted() bool {
	if uc.hasInput {
		return false
	}

	return uc.Input == nil || uc.eof
}

// Tx writes a byte to the output stream.
// Returns ErrTxClosed when no output is attached.
func (uc *Uart) Tx(value byte) (err error) {
	if uc.Output == nil {
		err = ErrTxClosed
		return
	}

	_, err = uc.Output.Write([]byte{value})

	return
}
