package bst

import (
	"errors"
	"strings"
)

// Order 遍历顺序
type Order uint8

const (
	Pre  Order = 1
	In   Order = 2
	Post Order = 3
)

var (
	ErrUnknownOrder = errors.New("unknown traversal order")
)

func (o Order) String() string {
	switch o {
	case Pre:
		return "pre"
	case In:
		return "in"
	case Post:
		return "post"
	}
	return "unknown"
}

// ParseOrder 解析"pre"、"in"、"post"，不区分大小写
func ParseOrder(name string) (order Order, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pre", "preorder":
		return Pre, nil
	case "in", "inorder":
		return In, nil
	case "post", "postorder":
		return Post, nil
	}
	return 0, ErrUnknownOrder
}
