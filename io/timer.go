package io

// Timer is an 8-bit countdown register. It only changes when the host
// calls Decrement, normally at 60 Hz.
type Timer struct {
	value uint8
}

// Set loads the counter.
func (tm *Timer) Set(value uint8) {
	tm.value = value
}

// Value returns the current count.
func (tm *Timer) Value() uint8 {
	return tm.value
}

// Decrement counts down by one, stopping at zero.
func (tm *Timer) Decrement() {
	if tm.value > 0 {
		tm.value--
	}
}

// Active is true while the count is above zero.
func (tm *Timer) Active() bool {
	return tm.value > 0
}
