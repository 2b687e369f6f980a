package io

import (
	"bytes"
	"io"
)

const (
	ROM_LIMIT = 0xE00 // Bytes available between 0x200 and the end of memory.
)

// Rom is a program image to be copied into memory at 0x200.
type Rom struct {
	Data []byte
}

// ReadFrom replaces the image with the contents of r. Images larger than
// ROM_LIMIT are rejected with ErrRomTooLarge and leave the Rom unchanged.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	var buf bytes.Buffer

	// Read one byte past the limit to detect an oversized image.
	n, err = buf.ReadFrom(io.LimitReader(r, ROM_LIMIT+1))
	if err != nil {
		return
	}

	if n > ROM_LIMIT {
		err = ErrRomSize(n)
		return
	}

	if n == 0 {
		err = ErrRomEmpty
		return
	}

	rc.Data = buf.Bytes()
	return
}

// Len returns the image size in bytes.
func (rc *Rom) Len() int {
	return len(rc.Data)
}
