package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())

	s.Push(0x12345678)
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(uint32(0x12345678), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12345678)
	s.Push(0xABCDEF01)

	val, err := s.Pop()
	assert.NoError(err)
	assert.Equal(uint32(0xABCDEF01), val)
	assert.Equal(1, s.Depth())

	val, err = s.Pop()
	assert.NoError(err)
	assert.Equal(uint32(0x12345678), val)
	assert.Equal(0, s.Depth())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, err := s.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(uint32(0), val)

	// Still empty; failing pops never change the depth.
	_, err = s.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(0, s.Depth())
}

func TestStack_Pop_Reverse(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []uint32{3, 2, 1} {
		val, err := s.Pop()
		assert.NoError(err)
		assert.Equal(want, val)
	}

	_, err := s.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
}

func TestStack_Pop_ReverseLong(t *testing.T) {
	assert := assert.New(t)

	const count = 1000

	s := &Stack{}
	for i := range count {
		assert.Equal(i, s.Depth())
		s.Push(uint32(i * 3))
	}

	for i := count - 1; i >= 0; i-- {
		val, err := s.Pop()
		assert.NoError(err)
		assert.Equal(uint32(i*3), val)
		assert.Equal(i, s.Depth())
	}

	assert.True(s.Empty())
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12345678)
	s.Push(0xABCDEF01)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint32(0xABCDEF01), val)
	assert.Equal(2, s.Depth())
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Peek()
	assert.False(ok)
	assert.Equal(uint32(0), val)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12345678)
	s.Push(0xABCDEF01)
	assert.Equal(2, s.Depth())

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())
}

func TestStack_Reset_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Reset()
	assert.True(s.Empty())
}

func TestStack_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(1)
	assert.False(s.Empty())

	s.Pop()
	assert.True(s.Empty())
}
