package container

import (
	"github.com/grpc-boot/structs"
)

// List 单向链表，零值可直接使用
//非线程安全版本，如需要线程安全版本，需要自行加锁
type List[T any] struct {
	head   *structs.SingleNode[T]
	tail   *structs.SingleNode[T]
	length int
}

func NewList[T any](values ...T) *List[T] {
	list := &List[T]{}
	for _, value := range values {
		list.PushBack(value)
	}
	return list
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) PushFront(value T) {
	l.head = structs.NewSingleNode(value, l.head)
	if l.tail == nil {
		l.tail = l.head
	}
	l.length += structs.Incr
}

func (l *List[T]) PushBack(value T) {
	node := structs.NewSingleNode(value, nil)
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.Next = node
	}
	l.tail = node
	l.length += structs.Incr
}

func (l *List[T]) PopFront() (value T, err error) {
	if l.head == nil {
		return value, ErrEmpty
	}

	node := l.head
	l.head = node.Next
	node.Next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.length += structs.Decr
	return node.Value, nil
}

// PopBack 需要遍历到倒数第二个节点，O(n)
func (l *List[T]) PopBack() (value T, err error) {
	if l.head == nil {
		return value, ErrEmpty
	}

	if l.head == l.tail {
		value = l.head.Value
		l.head, l.tail = nil, nil
		l.length = 0
		return value, nil
	}

	prev := l.head
	for prev.Next != l.tail {
		prev = prev.Next
	}

	value = l.tail.Value
	prev.Next = nil
	l.tail = prev
	l.length += structs.Decr
	return value, nil
}

func (l *List[T]) Front() (value T, err error) {
	if l.head == nil {
		return value, ErrEmpty
	}
	return l.head.Value, nil
}

func (l *List[T]) Back() (value T, err error) {
	if l.tail == nil {
		return value, ErrEmpty
	}
	return l.tail.Value, nil
}

// Insert 在pos位置插入value，pos取值[0, Len()]
func (l *List[T]) Insert(pos int, value T) (err error) {
	if pos < 0 || pos > l.length {
		return ErrOutOfRange
	}

	if pos == 0 {
		l.PushFront(value)
		return nil
	}

	if pos == l.length {
		l.PushBack(value)
		return nil
	}

	prev := l.nodeAt(pos - 1)
	prev.Next = structs.NewSingleNode(value, prev.Next)
	l.length += structs.Incr
	return nil
}

// Remove 删除pos位置的元素并返回，pos取值[0, Len())
func (l *List[T]) Remove(pos int) (value T, err error) {
	if pos < 0 || pos >= l.length {
		return value, ErrOutOfRange
	}

	if pos == 0 {
		return l.PopFront()
	}

	prev := l.nodeAt(pos - 1)
	node := prev.Next
	prev.Next = node.Next
	node.Next = nil
	if prev.Next == nil {
		l.tail = prev
	}
	l.length += structs.Decr
	return node.Value, nil
}

func (l *List[T]) Clear() {
	l.head, l.tail = nil, nil
	l.length = 0
}

func (l *List[T]) Reverse() {
	var (
		prev    *structs.SingleNode[T]
		current = l.head
	)

	l.tail = l.head
	for current != nil {
		next := current.Next
		current.Next = prev
		prev = current
		current = next
	}
	l.head = prev
}

func (l *List[T]) Clone() *List[T] {
	list := &List[T]{}
	for node := l.head; node != nil; node = node.Next {
		list.PushBack(node.Value)
	}
	return list
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.Next {
		values = append(values, node.Value)
	}
	return values
}

func (l *List[T]) String() string {
	return structs.Join(l.Values(), structs.DefaultSeparator)
}

func (l *List[T]) nodeAt(pos int) (node *structs.SingleNode[T]) {
	node = l.head
	for index := 0; index < pos; index++ {
		node = node.Next
	}
	return node
}
