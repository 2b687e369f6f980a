package io

// The computers that originally ran CHIP-8 had a 16-key hexadecimal
// keypad laid out as:
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+
const (
	KEY_COUNT = 16
)

// Keypad holds one latch per key. Latches are set and cleared by the
// host; there is no queue or debouncing.
type Keypad struct {
	down [KEY_COUNT]bool
}

// Clear releases every key.
func (kp *Keypad) Clear() {
	clear(kp.down[:])
}

// KeyDown latches key k as pressed.
func (kp *Keypad) KeyDown(k uint8) (err error) {
	if k >= KEY_COUNT {
		err = ErrKey(k)
		return
	}

	kp.down[k] = true
	return
}

// KeyUp releases key k.
func (kp *Keypad) KeyUp(k uint8) (err error) {
	if k >= KEY_COUNT {
		err = ErrKey(k)
		return
	}

	kp.down[k] = false
	return
}

// Key reports whether key k is held down.
func (kp *Keypad) Key(k uint8) (down bool, err error) {
	if k >= KEY_COUNT {
		err = ErrKey(k)
		return
	}

	down = kp.down[k]
	return
}

// Last returns the highest-numbered key held down, scanning 0x0 to 0xF.
// ok is false when no key is held.
func (kp *Keypad) Last() (k uint8, ok bool) {
	for n, down := range kp.down {
		if down {
			k = uint8(n)
			ok = true
		}
	}
	return
}
