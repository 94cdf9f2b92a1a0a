package container

import (
	"github.com/grpc-boot/structs"
)

// DoubleList 双向链表，零值可直接使用
type DoubleList[T any] struct {
	head   *structs.DoubleNode[T]
	tail   *structs.DoubleNode[T]
	length int
}

func NewDoubleList[T any](values ...T) *DoubleList[T] {
	list := &DoubleList[T]{}
	for _, value := range values {
		list.PushBack(value)
	}
	return list
}

func (dl *DoubleList[T]) Len() int {
	return dl.length
}

func (dl *DoubleList[T]) IsEmpty() bool {
	return dl.length == 0
}

func (dl *DoubleList[T]) PushFront(value T) {
	node := structs.NewDoubleNode(value, nil, dl.head)
	if dl.head == nil {
		dl.tail = node
	} else {
		dl.head.Prev = node
	}
	dl.head = node
	dl.length += structs.Incr
}

func (dl *DoubleList[T]) PushBack(value T) {
	node := structs.NewDoubleNode(value, dl.tail, nil)
	if dl.tail == nil {
		dl.head = node
	} else {
		dl.tail.Next = node
	}
	dl.tail = node
	dl.length += structs.Incr
}

func (dl *DoubleList[T]) PopFront() (value T, err error) {
	if dl.head == nil {
		return value, ErrEmpty
	}
	return dl.unlink(dl.head), nil
}

func (dl *DoubleList[T]) PopBack() (value T, err error) {
	if dl.tail == nil {
		return value, ErrEmpty
	}
	return dl.unlink(dl.tail), nil
}

func (dl *DoubleList[T]) Front() (value T, err error) {
	if dl.head == nil {
		return value, ErrEmpty
	}
	return dl.head.Value, nil
}

func (dl *DoubleList[T]) Back() (value T, err error) {
	if dl.tail == nil {
		return value, ErrEmpty
	}
	return dl.tail.Value, nil
}

// Insert 在pos位置插入value，pos取值[0, Len()]
func (dl *DoubleList[T]) Insert(pos int, value T) (err error) {
	if pos < 0 || pos > dl.length {
		return ErrOutOfRange
	}

	if pos == 0 {
		dl.PushFront(value)
		return nil
	}

	if pos == dl.length {
		dl.PushBack(value)
		return nil
	}

	next := dl.nodeAt(pos)
	node := structs.NewDoubleNode(value, next.Prev, next)
	next.Prev.Next = node
	next.Prev = node
	dl.length += structs.Incr
	return nil
}

// Remove 删除pos位置的元素并返回，pos取值[0, Len())
func (dl *DoubleList[T]) Remove(pos int) (value T, err error) {
	if pos < 0 || pos >= dl.length {
		return value, ErrOutOfRange
	}
	return dl.unlink(dl.nodeAt(pos)), nil
}

func (dl *DoubleList[T]) Clear() {
	dl.head, dl.tail = nil, nil
	dl.length = 0
}

func (dl *DoubleList[T]) Reverse() {
	for node := dl.head; node != nil; node = node.Prev {
		node.Prev, node.Next = node.Next, node.Prev
	}
	dl.head, dl.tail = dl.tail, dl.head
}

func (dl *DoubleList[T]) Clone() *DoubleList[T] {
	list := &DoubleList[T]{}
	for node := dl.head; node != nil; node = node.Next {
		list.PushBack(node.Value)
	}
	return list
}

func (dl *DoubleList[T]) Values() []T {
	values := make([]T, 0, dl.length)
	for node := dl.head; node != nil; node = node.Next {
		values = append(values, node.Value)
	}
	return values
}

// Backward 从尾到头返回所有元素
func (dl *DoubleList[T]) Backward() []T {
	values := make([]T, 0, dl.length)
	for node := dl.tail; node != nil; node = node.Prev {
		values = append(values, node.Value)
	}
	return values
}

func (dl *DoubleList[T]) String() string {
	return structs.Join(dl.Values(), structs.DefaultSeparator)
}

// nodeAt 从距离pos较近的一端开始查找
func (dl *DoubleList[T]) nodeAt(pos int) (node *structs.DoubleNode[T]) {
	if pos < dl.length/2 {
		node = dl.head
		for index := 0; index < pos; index++ {
			node = node.Next
		}
		return node
	}

	node = dl.tail
	for index := dl.length - 1; index > pos; index-- {
		node = node.Prev
	}
	return node
}

func (dl *DoubleList[T]) unlink(node *structs.DoubleNode[T]) T {
	if node.Prev == nil {
		dl.head = node.Next
	} else {
		node.Prev.Next = node.Next
	}

	if node.Next == nil {
		dl.tail = node.Prev
	} else {
		node.Next.Prev = node.Prev
	}

	node.Prev, node.Next = nil, nil
	dl.length += structs.Decr
	return node.Value
}
