package cpu

const (
	STACK_LIMIT = 16 // Maximum call depth
)

// Stack holds subroutine return addresses. Pointer is the number of
// occupied slots and always stays within 0..STACK_LIMIT.
type Stack struct {
	Data    [STACK_LIMIT]uint16
	Pointer int
}

// Push stores a return address. ok is false, and nothing changes, when
// the stack is full.
func (s *Stack) Push(value uint16) (ok bool) {
	if s.Full() {
		return
	}

	s.Data[s.Pointer] = value
	s.Pointer++
	return true
}

// Pop removes the most recent return address. ok is false when the
// stack is empty.
func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Pointer--
	}
	return
}

func (s *Stack) Empty() bool {
	return s.Pointer == 0
}

func (s *Stack) Full() bool {
	return s.Pointer == STACK_LIMIT
}

func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[s.Pointer-1], true
}

// Reset empties the stack and zeroes every slot.
func (s *Stack) Reset() {
	clear(s.Data[:])
	s.Pointer = 0
}
