package io

import (
	"strings"
)

const (
	DISPLAY_WIDTH  = 64                             // Pixel columns.
	DISPLAY_HEIGHT = 32                             // Pixel rows.
	DISPLAY_PIXELS = DISPLAY_WIDTH * DISPLAY_HEIGHT // Row-major pixel count.
	SPRITE_WIDTH   = 8                              // Bits per sprite row.
)

// Display is the 64x32 monochrome framebuffer. Pixel (x, y) lives at
// index x + y*DISPLAY_WIDTH. Pixels only change through Clear and the
// XOR composition of Draw.
type Display struct {
	pixel [DISPLAY_PIXELS]bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	clear(d.pixel[:])
}

// Buffer returns a copy of the framebuffer.
func (d *Display) Buffer() [DISPLAY_PIXELS]bool {
	return d.pixel
}

// Pixel reports the state of the pixel at (x, y), with both coordinates
// wrapped onto the screen.
func (d *Display) Pixel(x, y int) bool {
	return d.pixel[index(x, y)]
}

func index(x, y int) int {
	x %= DISPLAY_WIDTH
	if x < 0 {
		x += DISPLAY_WIDTH
	}
	y %= DISPLAY_HEIGHT
	if y < 0 {
		y += DISPLAY_HEIGHT
	}
	return x + y*DISPLAY_WIDTH
}

// Draw XORs an 8-pixel wide sprite onto the screen with its top-left
// corner at (x, y). Each byte of sprite is one row, most significant bit
// leftmost. Rows and columns wrap independently, so a sprite crossing
// the right edge continues at column 0 of the same rows.
//
// Draw returns true if any set sprite bit landed on a pixel that was
// already on.
func (d *Display) Draw(x, y int, sprite []byte) (collision bool) {
	for j, row := range sprite {
		for i := range SPRITE_WIDTH {
			if (row>>(SPRITE_WIDTH-1-i))&1 == 0 {
				continue
			}
			n := index(x+i, y+j)
			if d.pixel[n] {
				collision = true
			}
			d.pixel[n] = !d.pixel[n]
		}
	}

	return
}

// String renders the framebuffer as text, one line per row, '#' for a
// lit pixel and '.' for a dark one.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((DISPLAY_WIDTH + 1) * DISPLAY_HEIGHT)
	for y := range DISPLAY_HEIGHT {
		for x := range DISPLAY_WIDTH {
			if d.pixel[x+y*DISPLAY_WIDTH] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
