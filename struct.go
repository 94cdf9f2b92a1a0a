package structs

// SingleNode 单向链表节点
type SingleNode[T any] struct {
	Value T
	Next  *SingleNode[T]
}

func NewSingleNode[T any](value T, next *SingleNode[T]) (node *SingleNode[T]) {
	return &SingleNode[T]{
		Value: value,
		Next:  next,
	}
}

// DoubleNode 双向链表节点
type DoubleNode[T any] struct {
	Value T
	Prev  *DoubleNode[T]
	Next  *DoubleNode[T]
}

func NewDoubleNode[T any](value T, prev *DoubleNode[T], next *DoubleNode[T]) (node *DoubleNode[T]) {
	return &DoubleNode[T]{
		Value: value,
		Prev:  prev,
		Next:  next,
	}
}
