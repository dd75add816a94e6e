package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Capture(t *testing.T) {
	assert := assert.New(t)

	m := &Mcu{}
	m.Reset()
	m.Pc = 0x0800_1234
	m.Ticks = 777

	snap := m.Fault()

	assert.Equal(m.Pc, snap.Pc)
	assert.Equal(m.Sp, snap.Sp)
	assert.Equal(m.Status, snap.Status)
	assert.Equal(777, snap.Ticks)
	assert.NotZero(snap.Status & STATUS_FAULT)
	assert.True(m.Halted())
}

func TestSnapshot_Immutable(t *testing.T) {
	assert := assert.New(t)

	m := &Mcu{}
	m.Reset()
	snap := m.Fault()
	pc, sp, status := snap.Pc, snap.Sp, snap.Status

	// The snapshot is a copy; later register changes do not show.
	m.Pc = 0xDEAD
	m.Sp = 0xBEEF
	m.Status = 0

	assert.Equal(pc, snap.Pc)
	assert.Equal(sp, snap.Sp)
	assert.Equal(status, snap.Status)
}

func TestSnapshot_String(t *testing.T) {
	assert := assert.New(t)

	m := &Mcu{}
	m.Reset()
	m.Pc = 0x0800_01c0
	snap := m.Fault()

	text := snap.String()
	assert.Contains(text, "0800_01C0")
	assert.Contains(text, "2000_8000")
	assert.Contains(text, "fault")
}
