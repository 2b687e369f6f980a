package io

// Keymap translates host keyboard characters to keypad keys.
type Keymap map[rune]uint8

// QwertyKeymap maps the left-hand 4x4 block of a QWERTY keyboard onto
// the keypad, preserving its physical layout:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  =>  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var QwertyKeymap = Keymap{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Lookup returns the keypad key for a host character. Upper case
// letters map the same as lower case.
func (km Keymap) Lookup(r rune) (k uint8, ok bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	k, ok = km[r]
	return
}

// Press latches the key of every mapped character in text. Characters
// without a mapping are returned in unmapped.
func (km Keymap) Press(kp *Keypad, text string) (unmapped []rune) {
	for _, r := range text {
		k, ok := km.Lookup(r)
		if !ok {
			unmapped = append(unmapped, r)
			continue
		}
		// Mapped keys are always in range.
		_ = kp.KeyDown(k)
	}
	return
}
