package device

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUart_Rx(t *testing.T) {
	assert := assert.New(t)

	uc := &Uart{Input: strings.NewReader("ab")}
	uc.Reset()

	irq := uc.Tick(0)
	assert.True(irq)

	value, ok := uc.Rx()
	assert.True(ok)
	assert.Equal(byte('a'), value)

	// Delivered; the line drops until the next byte arrives.
	_, ok = uc.Rx()
	assert.False(ok)

	irq = uc.Tick(1)
	assert.True(irq)
	value, ok = uc.Rx()
	assert.True(ok)
	assert.Equal(byte('b'), value)
}

func TestUart_Rx_Holdoff(t *testing.T) {
	assert := assert.New(t)

	uc := &Uart{Input: strings.NewReader("a")}
	uc.Reset()

	// The line stays asserted until the byte is delivered.
	assert.True(uc.Tick(0))
	assert.True(uc.Tick(1))
	assert.True(uc.Tick(2))

	value, ok := uc.Rx()
	assert.True(ok)
	assert.Equal(byte('a'), value)

	assert.False(uc.Tick(3))
}

func TestUart_Exhausted(t *testing.T) {
	assert := assert.New(t)

	uc := &Uart{Input: strings.NewReader("a")}
	uc.Reset()
	assert.False(uc.Exhausted())

	uc.Tick(0)
	assert.False(uc.Exhausted())
	uc.Rx()

	uc.Tick(1)
	assert.True(uc.Exhausted())
}

func TestUart_Exhausted_NoInput(t *testing.T) {
	assert := assert.New(t)

	uc := &Uart{}
	uc.Reset()

	assert.False(uc.Tick(0))
	assert.True(uc.Exhausted())
}

func TestUart_Tx(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	uc := &Uart{Output: out}
	uc.Reset()

	assert.NoError(uc.Tx('h'))
	assert.NoError(uc.Tx('i'))
	assert.Equal("hi", out.String())
}

func TestUart_Tx_Closed(t *testing.T) {
	assert := assert.New(t)

	uc := &Uart{}
	uc.Reset()

	err := uc.Tx('x')
	assert.ErrorIs(err, ErrTxClosed)
}

func TestUart_Reset(t *testing.T) {
	assert := assert.New(t)

	uc := &Uart{Input: strings.NewReader("")}
	uc.Reset()
	uc.Tick(0)
	assert.True(uc.Exhausted())

	uc.Input = strings.NewReader("z")
	uc.Reset()
	assert.True(uc.Tick(1))
}
