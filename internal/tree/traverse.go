package tree

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrUnknownOrder = errors.New("unknown traversal order")

// Order selects a depth-first traversal.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "in", "inorder" or "in-order" and the pre/post
// equivalents, ignoring case.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.ReplaceAll(name, "-", ""), "order")
	switch name {
	case "in":
		return InOrder, nil
	case "pre":
		return PreOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// All returns an iterator over the keys of t in the given order. Breaking
// out of the loop stops the walk.
func (t *Tree) All(order Order) iter.Seq[int] {
	return func(yield func(int) bool) {
		walk(t.root, order, yield)
	}
}

func walk(n *Node, order Order, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	if order == PreOrder && !yield(n.key) {
		return false
	}
	if !walk(n.left, order, yield) {
		return false
	}
	if order == InOrder && !yield(n.key) {
		return false
	}
	if !walk(n.right, order, yield) {
		return false
	}
	if order == PostOrder && !yield(n.key) {
		return false
	}
	return true
}

// Traverse returns the keys of t in the given order. The result is never nil.
func (t *Tree) Traverse(order Order) []int {
	res := make([]int, 0, t.size)
	for key := range t.All(order) {
		res = append(res, key)
	}
	return res
}

func (t *Tree) InOrder() []int {
	return t.Traverse(InOrder)
}

func (t *Tree) PreOrder() []int {
	return t.Traverse(PreOrder)
}

func (t *Tree) PostOrder() []int {
	return t.Traverse(PostOrder)
}
