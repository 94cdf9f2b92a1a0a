package container

import (
	"github.com/grpc-boot/structs"
)

// Stack 链式栈，零值可直接使用
type Stack[T any] struct {
	top  *structs.SingleNode[T]
	size int
}

func NewStack[T any](values ...T) *Stack[T] {
	stack := &Stack[T]{}
	for _, value := range values {
		stack.Push(value)
	}
	return stack
}

func (s *Stack[T]) Push(value T) {
	s.top = structs.NewSingleNode(value, s.top)
	s.size += structs.Incr
}

func (s *Stack[T]) Pop() (value T, err error) {
	if s.top == nil {
		return value, ErrEmpty
	}

	node := s.top
	s.top = node.Next
	node.Next = nil
	s.size += structs.Decr
	return node.Value, nil
}

func (s *Stack[T]) Top() (value T, err error) {
	if s.top == nil {
		return value, ErrEmpty
	}
	return s.top.Value, nil
}

func (s *Stack[T]) Size() int {
	return s.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
}

// Clone 复制后栈顶到栈底顺序不变
func (s *Stack[T]) Clone() *Stack[T] {
	stack := &Stack[T]{size: s.size}

	var tail *structs.SingleNode[T]
	for node := s.top; node != nil; node = node.Next {
		copied := structs.NewSingleNode(node.Value, nil)
		if tail == nil {
			stack.top = copied
		} else {
			tail.Next = copied
		}
		tail = copied
	}
	return stack
}

// Values 从栈顶到栈底
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.size)
	for node := s.top; node != nil; node = node.Next {
		values = append(values, node.Value)
	}
	return values
}

func (s *Stack[T]) String() string {
	return structs.Join(s.Values(), structs.DefaultSeparator)
}
