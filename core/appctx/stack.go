package appctx

// Stack is a LIFO stack of contexts. It is owned by a single scope and is
// not safe for concurrent use; isolation between workers is achieved by
// never sharing a stack, not by locking.
type Stack[T any] struct {
	items []T
}

// Push appends a context on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the topmost context.
// It returns ErrEmptyStack when nothing is pushed.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyStack
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Top returns the topmost context without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of pushed contexts.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
