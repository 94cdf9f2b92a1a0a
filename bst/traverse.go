package bst

import (
	"cmp"

	"github.com/grpc-boot/structs/container"
)

// Handler 返回true表示已处理，停止遍历
type Handler[T cmp.Ordered] func(value T) (handled bool)

func (t *BinarySearchTree[T]) PreOrder() []T {
	return t.collect(Pre)
}

func (t *BinarySearchTree[T]) InOrder() []T {
	return t.collect(In)
}

func (t *BinarySearchTree[T]) PostOrder() []T {
	return t.collect(Post)
}

func (t *BinarySearchTree[T]) Traverse(order Order) (values []T, err error) {
	switch order {
	case Pre, In, Post:
		return t.collect(order), nil
	}
	return nil, ErrUnknownOrder
}

// Range 按order顺序访问，handler返回true时提前结束
func (t *BinarySearchTree[T]) Range(order Order, handler Handler[T]) {
	walk(t.root, order, func(n *node[T]) (handled bool) {
		return handler(n.value)
	})
}

func (t *BinarySearchTree[T]) collect(order Order) []T {
	values := make([]T, 0, countNodes(t.root))
	walk(t.root, order, func(n *node[T]) (handled bool) {
		values = append(values, n.value)
		return false
	})
	return values
}

// walk 显式栈遍历，不递归
func walk[T cmp.Ordered](root *node[T], order Order, visit func(n *node[T]) (handled bool)) {
	if root == nil {
		return
	}

	switch order {
	case Pre:
		preOrder(root, visit)
	case In:
		inOrder(root, visit)
	case Post:
		postOrder(root, visit)
	}
}

func preOrder[T cmp.Ordered](root *node[T], visit func(n *node[T]) (handled bool)) {
	stack := container.NewStack(root)
	for !stack.IsEmpty() {
		n, _ := stack.Pop()
		if visit(n) {
			return
		}

		if n.right != nil {
			stack.Push(n.right)
		}
		if n.left != nil {
			stack.Push(n.left)
		}
	}
}

func inOrder[T cmp.Ordered](root *node[T], visit func(n *node[T]) (handled bool)) {
	var (
		stack   container.Stack[*node[T]]
		current = root
	)

	for current != nil || !stack.IsEmpty() {
		for current != nil {
			stack.Push(current)
			current = current.left
		}

		n, _ := stack.Pop()
		if visit(n) {
			return
		}
		current = n.right
	}
}

// postOrder 第一个栈按 根-右-左 展开，第二个栈倒出即为 左-右-根。
// 节点在所有子节点读取完毕后才被访问，visit可以安全地断开子节点
func postOrder[T cmp.Ordered](root *node[T], visit func(n *node[T]) (handled bool)) {
	var (
		pending = container.NewStack(root)
		output  container.Stack[*node[T]]
	)

	for !pending.IsEmpty() {
		n, _ := pending.Pop()
		output.Push(n)

		if n.left != nil {
			pending.Push(n.left)
		}
		if n.right != nil {
			pending.Push(n.right)
		}
	}

	for !output.IsEmpty() {
		n, _ := output.Pop()
		if visit(n) {
			return
		}
	}
}
