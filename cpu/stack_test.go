package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.True(s.Push(0x0abc))
	assert.False(s.Empty())
	assert.Equal(1, s.Pointer)
	assert.Equal(uint16(0x0abc), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x0202)
	s.Push(0x0f0e)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0x0f0e), val)
	assert.Equal(1, s.Pointer)

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0x0202), val)
	assert.Equal(0, s.Pointer)
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(uint16(0), val)
	assert.Equal(0, s.Pointer)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(0x0202)
	s.Push(0x0f0e)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint16(0x0f0e), val)
	assert.Equal(2, s.Pointer)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := range STACK_LIMIT {
		assert.False(s.Full())
		assert.True(s.Push(uint16(i)))
	}

	assert.True(s.Full())
	assert.False(s.Push(0xfff))
	assert.Equal(STACK_LIMIT, s.Pointer)
	assert.Equal(uint16(STACK_LIMIT-1), s.Data[STACK_LIMIT-1])
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x0202)
	s.Push(0x0f0e)

	s.Reset()
	assert.True(s.Empty())
	assert.Equal([STACK_LIMIT]uint16{}, s.Data)
}
