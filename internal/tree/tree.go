// Package tree implements an unbalanced binary search tree of int keys
// whose nodes keep a reference to their parent.
package tree

import "errors"

var ErrKeyNotFound = errors.New("key not found")

type Node struct {
	key    int
	left   *Node
	right  *Node
	parent *Node
}

// NewNode returns a detached node holding key.
func NewNode(key int) *Node {
	return &Node{key: key}
}

func (n *Node) Key() int      { return n.key }
func (n *Node) Left() *Node   { return n.left }
func (n *Node) Right() *Node  { return n.right }
func (n *Node) Parent() *Node { return n.parent }

// Tree is a binary search tree. Keys in a left subtree are smaller than the
// subtree's parent, keys in a right subtree are greater or equal, so
// duplicates always land on the right.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

func (t *Tree) Root() *Node { return t.root }

func (t *Tree) Len() int { return t.size }

func (t *Tree) Empty() bool {
	return t.root == nil
}

// Insert adds key to the tree and returns the new node.
func (t *Tree) Insert(key int) *Node {
	n := NewNode(key)

	var parent *Node
	cur := t.root
	for cur != nil {
		parent = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	n.parent = parent
	switch {
	case parent == nil:
		t.root = n
	case key < parent.key:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
	return n
}

// Search returns the first node holding key on the path from the root, or
// nil if there is none.
func (t *Tree) Search(key int) *Node {
	cur := t.root
	for cur != nil {
		switch {
		case key == cur.key:
			return cur
		case key < cur.key:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Minimum returns the leftmost node of the subtree rooted at n. It returns
// nil when n is nil.
func Minimum(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Maximum returns the rightmost node of the subtree rooted at n.
func Maximum(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func (t *Tree) Min() *Node {
	return Minimum(t.root)
}

func (t *Tree) Max() *Node {
	return Maximum(t.root)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

func build(parent *Node, keys []int, low, high int) (*Node, int) {
	if high < low {
		return nil, 0
	}
	mid := (low + high) / 2
	// equal keys belong to the right subtree
	for mid > low && keys[mid-1] == keys[mid] {
		mid--
	}
	n := &Node{key: keys[mid], parent: parent}
	var nl, nr int
	n.left, nl = build(n, keys, low, mid-1)
	n.right, nr = build(n, keys, mid+1, high)
	return n, nl + nr + 1
}

// Build constructs a height-balanced tree from keys, which must be sorted in
// ascending order.
func Build(keys []int) *Tree {
	root, size := build(nil, keys, 0, len(keys)-1)
	return &Tree{root: root, size: size}
}
