package io

import (
	"errors"

	"github.com/dvjn/chip8-emulator/translate"
)

var f = translate.From

var (
	// Device errors
	ErrKeyInvalid  = errors.New(f("key invalid"))
	ErrRomTooLarge = errors.New(f("rom too large"))
	ErrRomEmpty    = errors.New(f("rom empty"))
)

// ErrKey reports the offending key index of a keypad access.
type ErrKey uint8

func (ek ErrKey) Error() string {
	return f("key %d out of range 0-%d", uint8(ek), KEY_COUNT-1)
}

func (ek ErrKey) Unwrap() error {
	return ErrKeyInvalid
}

// ErrRomSize reports the size of a rejected ROM image.
type ErrRomSize int

func (er ErrRomSize) Error() string {
	return f("rom is %d bytes, limit is %d", int(er), ROM_LIMIT)
}

func (er ErrRomSize) Unwrap() error {
	return ErrRomTooLarge
}
