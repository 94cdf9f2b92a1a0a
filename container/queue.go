package container

import (
	"github.com/grpc-boot/structs"
)

// Queue 链式队列，零值可直接使用
type Queue[T any] struct {
	head *structs.SingleNode[T]
	tail *structs.SingleNode[T]
	size int
}

func NewQueue[T any](values ...T) *Queue[T] {
	queue := &Queue[T]{}
	for _, value := range values {
		queue.Push(value)
	}
	return queue
}

func (q *Queue[T]) Push(value T) {
	node := structs.NewSingleNode(value, nil)
	if q.tail == nil {
		q.head = node
	} else {
		q.tail.Next = node
	}
	q.tail = node
	q.size += structs.Incr
}

func (q *Queue[T]) Pop() (value T, err error) {
	if q.head == nil {
		return value, ErrEmpty
	}

	node := q.head
	q.head = node.Next
	node.Next = nil
	//队列已空
	if q.head == nil {
		q.tail = nil
	}
	q.size += structs.Decr
	return node.Value, nil
}

func (q *Queue[T]) Front() (value T, err error) {
	if q.head == nil {
		return value, ErrEmpty
	}
	return q.head.Value, nil
}

func (q *Queue[T]) Size() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

func (q *Queue[T]) Clear() {
	q.head, q.tail = nil, nil
	q.size = 0
}

func (q *Queue[T]) Clone() *Queue[T] {
	queue := &Queue[T]{}
	for node := q.head; node != nil; node = node.Next {
		queue.Push(node.Value)
	}
	return queue
}

// Values 从队头到队尾
func (q *Queue[T]) Values() []T {
	values := make([]T, 0, q.size)
	for node := q.head; node != nil; node = node.Next {
		values = append(values, node.Value)
	}
	return values
}

func (q *Queue[T]) String() string {
	return structs.Join(q.Values(), structs.DefaultSeparator)
}
