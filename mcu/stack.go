package mcu

// Stack is a LIFO container of 32-bit words.
// There is no fixed depth limit; storage grows as needed.
type Stack struct {
	Data []uint32
}

func (s *Stack) Push(value uint32) {
	s.Data = append(s.Data, value)
}

// Pop removes and returns the most recently pushed value.
// Returns ErrStackEmpty when called on an empty stack.
func (s *Stack) Pop() (value uint32, err error) {
	value, ok := s.Peek()
	if !ok {
		err = ErrStackEmpty
		return
	}
	s.Data = s.Data[:len(s.Data)-1]
	return
}

func (s *Stack) Peek() (value uint32, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
