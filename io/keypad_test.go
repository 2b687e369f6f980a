package io

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeypad(t *testing.T) {
	assert := assert.New(t)

	kp := &Keypad{}
	for k := range uint8(KEY_COUNT) {
		down, err := kp.Key(k)
		assert.NoError(err)
		assert.False(down)
	}

	assert.NoError(kp.KeyDown(0xA))
	down, err := kp.Key(0xA)
	assert.NoError(err)
	assert.True(down)

	assert.NoError(kp.KeyUp(0xA))
	down, _ = kp.Key(0xA)
	assert.False(down)
}

func TestKeypad_Invalid(t *testing.T) {
	assert := assert.New(t)

	kp := &Keypad{}
	err := kp.KeyDown(16)
	assert.True(errors.Is(err, ErrKeyInvalid))
	assert.Equal(ErrKey(16), err)

	assert.ErrorIs(kp.KeyUp(0xff), ErrKeyInvalid)

	_, err = kp.Key(16)
	assert.ErrorIs(err, ErrKeyInvalid)
}

func TestKeypad_Last(t *testing.T) {
	assert := assert.New(t)

	kp := &Keypad{}
	_, ok := kp.Last()
	assert.False(ok)

	kp.KeyDown(0x3)
	k, ok := kp.Last()
	assert.True(ok)
	assert.Equal(uint8(0x3), k)

	kp.KeyDown(0xB)
	k, _ = kp.Last()
	assert.Equal(uint8(0xB), k)

	kp.Clear()
	_, ok = kp.Last()
	assert.False(ok)
}

func TestKeymap(t *testing.T) {
	assert := assert.New(t)

	k, ok := QwertyKeymap.Lookup('x')
	assert.True(ok)
	assert.Equal(uint8(0x0), k)

	k, ok = QwertyKeymap.Lookup('V')
	assert.True(ok)
	assert.Equal(uint8(0xF), k)

	_, ok = QwertyKeymap.Lookup('p')
	assert.False(ok)

	assert.Equal(KEY_COUNT, len(QwertyKeymap))

	kp := &Keypad{}
	unmapped := QwertyKeymap.Press(kp, "4rp")
	assert.Equal([]rune{'p'}, unmapped)
	down, _ := kp.Key(0xC)
	assert.True(down)
	down, _ = kp.Key(0xD)
	assert.True(down)
}
