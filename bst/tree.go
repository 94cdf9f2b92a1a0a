package bst

import (
	"cmp"
	"io"

	"github.com/grpc-boot/structs"
)

type node[T cmp.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// BinarySearchTree 二叉搜索树，不做平衡，相等的值放在右子树
// 零值为空树；非线程安全
type BinarySearchTree[T cmp.Ordered] struct {
	root *node[T]
}

func New[T cmp.Ordered](values ...T) *BinarySearchTree[T] {
	tree := &BinarySearchTree[T]{}
	for _, value := range values {
		tree.Insert(value)
	}
	return tree
}

func (t *BinarySearchTree[T]) IsEmpty() bool {
	return t.root == nil
}

func (t *BinarySearchTree[T]) Insert(value T) {
	link := &t.root
	for *link != nil {
		if value < (*link).value {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &node[T]{value: value}
}

func (t *BinarySearchTree[T]) Search(value T) bool {
	current := t.root
	for current != nil {
		if current.value == value {
			return true
		}

		if value < current.value {
			current = current.left
		} else {
			current = current.right
		}
	}
	return false
}

// Height 空树为0，单节点为1，每次调用都会重新遍历整棵树
func (t *BinarySearchTree[T]) Height() int {
	return height(t.root)
}

func (t *BinarySearchTree[T]) CountNodes() int {
	return countNodes(t.root)
}

// IsBalanced 每个节点左右子树高度差不超过1。
// 每个节点都重新计算子树高度，最坏O(n²)。空树视为平衡。
func (t *BinarySearchTree[T]) IsBalanced() bool {
	return isBalanced(t.root)
}

// Clone 按先序遍历将值重新插入新树
func (t *BinarySearchTree[T]) Clone() *BinarySearchTree[T] {
	tree := &BinarySearchTree[T]{}
	t.Range(Pre, func(value T) (handled bool) {
		tree.Insert(value)
		return false
	})
	return tree
}

// Clear 后序拆除，先断开子节点再释放父节点
func (t *BinarySearchTree[T]) Clear() {
	walk(t.root, Post, func(n *node[T]) (handled bool) {
		n.left, n.right = nil, nil
		return false
	})
	t.root = nil
}

// Print 以空格分隔输出order顺序的所有值，换行结尾
func (t *BinarySearchTree[T]) Print(w io.Writer, order Order) (err error) {
	values, err := t.Traverse(order)
	if err != nil {
		return err
	}
	return structs.Render(w, values)
}

func (t *BinarySearchTree[T]) String() string {
	return structs.Join(t.InOrder(), structs.DefaultSeparator)
}

func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

func countNodes[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

func isBalanced[T cmp.Ordered](n *node[T]) bool {
	if n == nil {
		return true
	}

	diff := height(n.left) - height(n.right)
	if diff > 1 || diff < -1 {
		return false
	}
	return isBalanced(n.left) && isBalanced(n.right)
}
