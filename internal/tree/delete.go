package tree

import "errors"

var ErrNotMember = errors.New("node does not belong to tree")

// transplant puts replacement in the place target occupies under its parent.
// The children of replacement are left as they are.
func (t *Tree) transplant(target, replacement *Node) {
	switch {
	case target.parent == nil:
		t.root = replacement
	case target == target.parent.left:
		target.parent.left = replacement
	default:
		target.parent.right = replacement
	}
	if replacement != nil {
		replacement.parent = target.parent
	}
}

// Delete removes one node holding key. It returns ErrKeyNotFound and leaves
// the tree untouched if no such node exists.
func (t *Tree) Delete(key int) error {
	n := t.Search(key)
	if n == nil {
		return ErrKeyNotFound
	}
	return t.Remove(n)
}

func (t *Tree) contains(n *Node) bool {
	if n == nil || t.root == nil {
		return false
	}
	for n.parent != nil {
		n = n.parent
	}
	return n == t.root
}

// Remove unlinks n from the tree. It returns ErrNotMember and changes nothing
// when n is not attached to t, for instance after it was already removed.
func (t *Tree) Remove(n *Node) error {
	if !t.contains(n) {
		return ErrNotMember
	}

	switch {
	case n.left == nil:
		t.transplant(n, n.right)
	case n.right == nil:
		t.transplant(n, n.left)
	default:
		successor := Minimum(n.right)
		// Order matters: the successor has to leave its old slot before
		// it takes over n's.
		if successor.parent != n {
			t.transplant(successor, successor.right)
			successor.right = n.right
			successor.right.parent = successor
		}
		t.transplant(n, successor)
		successor.left = n.left
		successor.left.parent = successor
	}

	n.parent = nil
	n.left = nil
	n.right = nil
	t.size--
	return nil
}
