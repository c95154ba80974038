package linkedlist

// Stack is a LIFO stack backed by a List; the top of the stack is the list tail. The zero value is
// an empty stack ready to use.
type Stack[T any] struct {
	list List[T]
}

// NewStack creates an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.list.Append(item)
}

// Pop removes and returns the top item, or ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	return s.list.Pop()
}

// Peek returns the top item without removing it, or ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	return s.list.Back()
}

func (s *Stack[T]) Len() int {
	return s.list.Len()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

func (s *Stack[T]) Clear() {
	s.list.Clear()
}

func (s *Stack[T]) String() string {
	return s.list.String()
}
